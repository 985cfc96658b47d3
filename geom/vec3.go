package geom

import "math"

// Vec3 is a point or direction in 3-space. It is a small value type;
// all methods return new values and never mutate the receiver.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns the component-wise sum v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns the component-wise difference v − o.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product v · o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns the cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Len returns the Euclidean length of v.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.Dot(v))
}

// InteriorAngle returns the angle, in radians, at vertex `at` between the
// rays at→a and at→b. The cosine is clamped to [-1, 1] before the arccosine
// so that rounding noise on collinear rays cannot produce NaN.
// A zero-length ray yields 0.
func InteriorAngle(at, a, b Vec3) float64 {
	u := a.Sub(at)
	w := b.Sub(at)
	lu, lw := u.Len(), w.Len()
	if lu == 0 || lw == 0 {
		return 0
	}
	cos := u.Dot(w) / (lu * lw)
	// Clamp against floating-point drift outside the valid cosine range.
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}

	return math.Acos(cos)
}
