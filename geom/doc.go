// Package geom provides the small set of 3-space primitives the half-edge
// core needs: a Vec3 value type with the usual vector algebra, and the
// interior-angle measurement used by discrete-curvature computations.
//
// What:
//
//   - Vec3: plain value type with Add, Sub, Scale, Dot, Cross, Len.
//   - InteriorAngle(at, a, b): angle at `at` between the rays at→a and at→b,
//     computed as a clamped arccosine of the normalized dot product.
//
// Why:
//   - The topology packages (core, orient, boundary) are purely combinatorial;
//     only the invariant calculator touches coordinates, and it does so through
//     this package alone.
//
// Errors:
//   - None. Degenerate input (a zero-length ray) yields an angle of 0 rather
//     than NaN, so curvature sums stay finite.
//
// Complexity: all operations are O(1).
package geom
