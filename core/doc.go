// Package core defines the half-edge data model — Vertex, Face, HalfEdge,
// Mesh — and the builder that converts a raw vertex/face soup into the linked
// half-edge graph.
//
// What:
//
//   - Arena representation: vertices, faces and half-edges live in flat
//     slices; every cross-reference (Next, Opposite, seeds) is a stable
//     integer index (VertexID, FaceID, HalfEdgeID), never a pointer. There is
//     no global mesh state: every operation receives an explicit *Mesh.
//   - Build(data): allocates one half-edge per (face, slot) pair, wires each
//     face's Next cycle in the input vertex order, seeds every vertex with an
//     incident half-edge, and pairs opposite half-edges through a transient
//     edge-key index that is dropped when Build returns.
//   - Query methods: Start, Prev, FaceHalfEdges, FaceVertices, FaceDegree,
//     IsBoundary.
//   - ReverseFace(f): flips one face's traversal direction. This is the only
//     mutation permitted after Build and exists for the orientation engine.
//   - Extract(faces): re-expresses a face group as an independent MeshData,
//     with vertices renumbered densely, for recursive analysis.
//
// Invariants (established by Build, preserved by ReverseFace):
//
//   - Following Next from any half-edge returns to it after exactly
//     face-degree steps without leaving the owning face.
//   - Opposite is symmetric and exclusive: h.Opposite.Opposite == h whenever
//     set, and no half-edge is its own opposite.
//   - An undirected edge carries at most two half-edges; a third is rejected
//     as ErrNonManifoldEdge during Build.
//   - Every vertex holds a valid incident half-edge after Build.
//
// Errors:
//
//   - ErrInvalidTopology — out-of-range vertex index, face degree < 3, or a
//     vertex left without an incident half-edge.
//   - ErrNonManifoldEdge — an undirected edge shared by more than two
//     half-edges.
//
// Both are sentinels; branch with errors.Is. Build wraps them with the
// offending face/vertex/edge via %w.
//
// Complexity: Build is O(H) time and memory with H = sum of face degrees,
// plus the hash-map overhead of edge pairing. Queries are O(degree);
// ReverseFace is O(degree).
package core
