// Package hemesh turns a plain polygon soup — vertex positions plus faces as
// cyclic index sequences — into a half-edge representation and answers the
// questions that representation is for: consistent orientation, connected
// components, boundary loops, and topological invariants.
//
// What does hemesh do?
//
//	A small, deterministic library built from flat index arenas:
//		• core:       Vertex/Face/HalfEdge primitives + the mesh builder
//		• orient:     winding repair & disconnected-group discovery (DFS)
//		• boundary:   boundary half-edges, vertices, and loop grouping
//		• invariants: V/E/F counts, Euler characteristic, genus, angle-deficit
//		              curvature, Gauss–Bonnet residual
//		• analyze:    the whole pipeline with per-group recursive reports
//		• shapes:     canonical fixtures (platonic shells, disk, tube, torus)
//		• geom:       Vec3 algebra and the interior-angle primitive
//
// Why hemesh?
//
//   - Index arenas, no pointer webs — meshes copy, compare and traverse cleanly
//   - Explicit errors — sentinel values for invalid topology, non-manifold
//     edges and bow-tie boundary vertices, branchable with errors.Is
//   - Hooks & context on the traversal entry point for observability
//   - No mesh repair, no re-triangulation, no mutation of positions: the only
//     post-build mutation is the one-time winding flip during orientation
//
// Quick ASCII example:
//
//	0───1        two triangles sharing edge 1–2: one group,
//	│ ╱ │        one square boundary loop, χ = 4 − 5 + 2 = 1
//	2───3
//
// Start with analyze.Analyze for the full pipeline, or drive the stages
// yourself: core.Build → orient.Orient → boundary.Extract →
// invariants.Compute.
package hemesh
