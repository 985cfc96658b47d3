// Package boundary identifies the boundary structure of an oriented
// half-edge mesh: its boundary half-edges, boundary vertices, and the closed
// loops they form.
//
// Definitions:
//
//   - A half-edge is a boundary half-edge iff its Opposite is unset.
//   - A vertex is a boundary vertex iff it is the End of at least one
//     boundary half-edge.
//   - Two boundary vertices are adjacent via a boundary edge iff some
//     boundary half-edge directly connects them, in either direction.
//
// Loop discovery is a depth-first traversal over that adjacency relation
// restricted to the boundary-vertex set: each undiscovered boundary vertex
// seeds one loop, DFS collects everything reachable through boundary edges,
// and the process repeats until no boundary vertex remains. The resulting
// groups are disjoint and exhaustive; for a manifold boundary each group is
// a simple cycle whose size equals its edge count.
//
// Determinism: boundary half-edges are reported in arena order, vertices and
// loop seeds in ascending vertex order.
//
// Errors:
//
//   - ErrMeshNil — mesh pointer is nil.
//
// Complexity: O(H) over the mesh half-edges plus O(B) for the loop DFS,
// B = boundary edge count.
package boundary
