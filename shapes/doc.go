// Package shapes provides canonical, deterministic mesh constructors used as
// fixtures and demos: the triangulatable Platonic shells with exact
// coordinates, small parametric surfaces (disk, tube, torus), and the
// bow-tie non-manifold fixture.
//
// What:
//
//   - Triangle, Tetrahedron, Cube, Octahedron, Icosahedron: fixed vertex and
//     face datasets with consistent winding (every shared edge is traversed
//     in opposite directions by its two faces).
//   - Disk(n): triangle fan — one interior vertex, one boundary loop, χ = 1.
//   - Tube(n): open prism — two boundary loops, χ = 0, zero total curvature.
//   - Torus(m, n): triangulated closed surface of genus 1, χ = 0.
//   - BowTie: two triangles sharing exactly one vertex; its boundary-edge
//     and boundary-vertex counts diverge, the canonical non-manifold
//     boundary-vertex input.
//
// Why:
//   - Every constructor returns a plain core.MeshData, so tests and examples
//     can exercise the full Build → Orient → Extract → Compute pipeline with
//     fixtures whose invariants are known in closed form.
//
// Determinism:
//   - All datasets are emitted in a fixed order; parametric constructors are
//     pure functions of their parameters.
//
// Errors:
//
//   - ErrTooFewSegments — a parametric constructor was asked for fewer than
//     three segments along some direction.
package shapes
