// Package invariants computes the topological and differential-geometric
// invariants of an oriented half-edge mesh.
//
// What:
//
//   - Counts: V (vertices), F (faces), and E = B + (H−B)/2 where H is the
//     total number of half-edges and B the boundary half-edges — each
//     interior edge is represented by exactly two opposite half-edges, each
//     boundary edge by one.
//   - Euler characteristic χ = V − E + F.
//   - Genus g = (2 − χ − b)/2 for a surface with b boundary loops
//     (equivalently χ = 2 − 2g − b).
//   - Discrete curvature: per-vertex angle deficit — 2π minus the sum of the
//     incident face angles at an interior vertex, π minus that sum at a
//     boundary vertex — summed over all vertices.
//   - Gauss–Bonnet residual |κ − 2πχ|, a self-consistency check. For meshes
//     whose faces are planar (in particular, any triangulated mesh) the
//     polyhedral Gauss–Bonnet identity holds exactly, so the residual is
//     rounding noise; it is reported, never used as a correctness gate.
//   - Closed/open classification: closed iff the mesh has no boundary
//     half-edge.
//
// Validation:
//
//   - If the boundary-vertex count and boundary-edge count disagree, some
//     boundary vertex is non-manifold (a bow-tie) and genus/characteristic
//     are undefined: Compute refuses with ErrNonManifoldBoundary.
//
// Errors:
//
//   - ErrMeshNil, ErrBoundaryNil — nil inputs.
//   - ErrNonManifoldBoundary — bow-tie vertex detected.
//
// Complexity: O(H) over the half-edges plus O(V) for the deficit sums.
package invariants
