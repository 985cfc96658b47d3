// SPDX-License-Identifier: MIT
// Package: hemesh/shapes
//
// platonic.go — fixed datasets for the Platonic shells and small fixtures.
//
// Contract:
//   • Each constructor returns a fresh core.MeshData (callers may mutate it).
//   • Winding is consistent across every shared edge, so orient.Orient
//     reports zero flips on these meshes.
//   • Coordinates are exact where possible (unit cube, ±1 tetrahedron) and
//     derived from the golden-ratio-free spherical layout for the
//     icosahedron (poles plus two pentagon rings at z = ±1/√5).
//
// Determinism:
//   • Vertex and face emission order is fixed; no randomness anywhere.

package shapes

import (
	"math"

	"github.com/katalvlaran/hemesh/core"
	"github.com/katalvlaran/hemesh/geom"
)

// Triangle returns a single right triangle in the z=0 plane: the minimal
// open mesh (χ = 1, one boundary loop of three vertices).
func Triangle() core.MeshData {
	return core.MeshData{
		Positions: []geom.Vec3{{}, {X: 1}, {Y: 1}},
		Faces:     [][]int{{0, 1, 2}},
	}
}

// Tetrahedron returns the regular tetrahedron inscribed in the ±1 cube,
// wound outward. V=4, E=6, F=4, χ=2, closed, genus 0.
func Tetrahedron() core.MeshData {
	return core.MeshData{
		Positions: []geom.Vec3{
			{X: 1, Y: 1, Z: 1},
			{X: 1, Y: -1, Z: -1},
			{X: -1, Y: 1, Z: -1},
			{X: -1, Y: -1, Z: 1},
		},
		Faces: [][]int{
			{0, 1, 2},
			{0, 3, 1},
			{0, 2, 3},
			{1, 3, 2},
		},
	}
}

// Cube returns the ±1 cube with six outward quad faces.
// V=8, E=12, F=6, χ=2, closed, genus 0; every angle deficit is π/2.
func Cube() core.MeshData {
	return core.MeshData{
		Positions: []geom.Vec3{
			{X: -1, Y: -1, Z: -1}, // 0
			{X: 1, Y: -1, Z: -1},  // 1
			{X: 1, Y: 1, Z: -1},   // 2
			{X: -1, Y: 1, Z: -1},  // 3
			{X: -1, Y: -1, Z: 1},  // 4
			{X: 1, Y: -1, Z: 1},   // 5
			{X: 1, Y: 1, Z: 1},    // 6
			{X: -1, Y: 1, Z: 1},   // 7
		},
		Faces: [][]int{
			{0, 3, 2, 1}, // bottom  z = -1
			{4, 5, 6, 7}, // top     z = +1
			{0, 1, 5, 4}, // front   y = -1
			{2, 3, 7, 6}, // back    y = +1
			{0, 4, 7, 3}, // left    x = -1
			{1, 2, 6, 5}, // right   x = +1
		},
	}
}

// Octahedron returns the regular octahedron on the coordinate axes, wound
// outward. V=6, E=12, F=8, χ=2, closed, genus 0.
func Octahedron() core.MeshData {
	return core.MeshData{
		Positions: []geom.Vec3{
			{X: 1},  // 0
			{X: -1}, // 1
			{Y: 1},  // 2
			{Y: -1}, // 3
			{Z: 1},  // 4: top pole
			{Z: -1}, // 5: bottom pole
		},
		Faces: [][]int{
			// upper pyramid around 4
			{0, 2, 4}, {2, 1, 4}, {1, 3, 4}, {3, 0, 4},
			// lower pyramid around 5
			{2, 0, 5}, {1, 2, 5}, {3, 1, 5}, {0, 3, 5},
		},
	}
}

// Icosahedron returns the regular icosahedron on the unit sphere using the
// classical pole-and-two-rings layout: top pole 0, top ring 1..5, bottom
// ring 6..10 (offset half a step), bottom pole 11.
// V=12, E=30, F=20, χ=2, closed, genus 0.
func Icosahedron() core.MeshData {
	const ring = 5
	positions := make([]geom.Vec3, 0, 12)
	positions = append(positions, geom.Vec3{Z: 1}) // 0: top pole

	z := 1 / math.Sqrt(5) // ring height
	r := 2 / math.Sqrt(5) // ring radius
	step := 2 * math.Pi / ring

	for i := 0; i < ring; i++ { // 1..5: top ring
		theta := step * float64(i)
		positions = append(positions, geom.Vec3{
			X: r * math.Cos(theta), Y: r * math.Sin(theta), Z: z,
		})
	}
	for j := 0; j < ring; j++ { // 6..10: bottom ring, offset half a step
		phi := step*float64(j) - math.Pi/ring
		positions = append(positions, geom.Vec3{
			X: r * math.Cos(phi), Y: r * math.Sin(phi), Z: -z,
		})
	}
	positions = append(positions, geom.Vec3{Z: -1}) // 11: bottom pole

	return core.MeshData{
		Positions: positions,
		Faces: [][]int{
			// top cap
			{0, 1, 2}, {0, 2, 3}, {0, 3, 4}, {0, 4, 5}, {0, 5, 1},
			// upper band (ring edge Ti+1→Ti against the cap)
			{2, 1, 7}, {3, 2, 8}, {4, 3, 9}, {5, 4, 10}, {1, 5, 6},
			// lower band
			{6, 7, 1}, {7, 8, 2}, {8, 9, 3}, {9, 10, 4}, {10, 6, 5},
			// bottom cap
			{11, 7, 6}, {11, 8, 7}, {11, 9, 8}, {11, 10, 9}, {11, 6, 10},
		},
	}
}

// BowTie returns two triangles sharing exactly one vertex (the origin).
// Its six boundary edges meet only five boundary vertices, so the shared
// vertex is non-manifold: invariants.Compute must refuse this mesh.
func BowTie() core.MeshData {
	return core.MeshData{
		Positions: []geom.Vec3{
			{},             // 0: the pinch vertex
			{X: 1, Y: 1},   // 1
			{X: 1, Y: -1},  // 2
			{X: -1, Y: -1}, // 3
			{X: -1, Y: 1},  // 4
		},
		Faces: [][]int{{0, 1, 2}, {0, 3, 4}},
	}
}
