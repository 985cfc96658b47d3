package geom_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/hemesh/geom"
)

func TestVec3_Algebra(t *testing.T) {
	a := geom.Vec3{X: 1, Y: 2, Z: 3}
	b := geom.Vec3{X: -1, Y: 0, Z: 2}

	assert.Equal(t, geom.Vec3{X: 0, Y: 2, Z: 5}, a.Add(b))
	assert.Equal(t, geom.Vec3{X: 2, Y: 2, Z: 1}, a.Sub(b))
	assert.Equal(t, geom.Vec3{X: 2, Y: 4, Z: 6}, a.Scale(2))
	assert.InDelta(t, 5.0, a.Dot(b), 1e-12)
}

func TestVec3_Cross(t *testing.T) {
	x := geom.Vec3{X: 1}
	y := geom.Vec3{Y: 1}

	// Right-handed basis: x × y = z.
	assert.Equal(t, geom.Vec3{Z: 1}, x.Cross(y))
	assert.Equal(t, geom.Vec3{Z: -1}, y.Cross(x))
}

func TestVec3_Len(t *testing.T) {
	assert.InDelta(t, 5.0, geom.Vec3{X: 3, Y: 4}.Len(), 1e-12)
	assert.Zero(t, geom.Vec3{}.Len())
}

func TestInteriorAngle_RightAngle(t *testing.T) {
	at := geom.Vec3{}
	a := geom.Vec3{X: 1}
	b := geom.Vec3{Y: 1}

	assert.InDelta(t, math.Pi/2, geom.InteriorAngle(at, a, b), 1e-12)
}

func TestInteriorAngle_Collinear(t *testing.T) {
	at := geom.Vec3{}
	a := geom.Vec3{X: 1}

	// Same ray: 0; opposite ray: π. Both rely on clamping for stability.
	assert.InDelta(t, 0.0, geom.InteriorAngle(at, a, geom.Vec3{X: 2}), 1e-12)
	assert.InDelta(t, math.Pi, geom.InteriorAngle(at, a, geom.Vec3{X: -3}), 1e-12)
}

func TestInteriorAngle_DegenerateRay(t *testing.T) {
	at := geom.Vec3{X: 1, Y: 1, Z: 1}

	// A ray of zero length cannot subtend an angle.
	assert.Zero(t, geom.InteriorAngle(at, at, geom.Vec3{X: 2}))
}

func TestInteriorAngle_EquilateralTriangle(t *testing.T) {
	a := geom.Vec3{X: 0, Y: 0}
	b := geom.Vec3{X: 1, Y: 0}
	c := geom.Vec3{X: 0.5, Y: math.Sqrt(3) / 2}

	sum := geom.InteriorAngle(a, b, c) +
		geom.InteriorAngle(b, c, a) +
		geom.InteriorAngle(c, a, b)

	assert.InDelta(t, math.Pi/3, geom.InteriorAngle(a, b, c), 1e-12)
	assert.InDelta(t, math.Pi, sum, 1e-12)
}
