// Package analyze chains the full pipeline — core.Build, orient.Orient,
// boundary.Extract, invariants.Compute — and reports the queryable results
// for a mesh and each of its disconnected groups.
//
// What:
//
//   - Analyze(data): builds the half-edge graph, derives a consistent
//     orientation, extracts the boundary structure, and computes the
//     invariant summary. When the mesh splits into several disconnected
//     groups, each group is re-expressed as an independent sub-mesh via
//     core.Mesh.Extract and analyzed recursively, so every group gets its own
//     self-contained summary (counts, χ, genus, curvature, loops).
//
// Error policy:
//
//   - Build errors (invalid topology, non-manifold edge) abort the whole run.
//   - A non-manifold boundary vertex (bow-tie) is globally fatal: no
//     invariants are reported for any group.
//   - All failures surface the originating sentinel; branch with errors.Is.
//
// Complexity: O(H) per pipeline stage; the recursive per-group pass adds one
// rebuild of each group's half-edges, still linear overall.
package analyze
