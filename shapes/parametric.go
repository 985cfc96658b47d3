// SPDX-License-Identifier: MIT
// Package: hemesh/shapes
//
// parametric.go — Disk(n), Tube(n) and Torus(m, n) constructors.
//
// Contract:
//   • n (and m) count segments around a circle; fewer than three cannot
//     close a cycle → ErrTooFewSegments.
//   • Winding is consistent across every shared edge; orient.Orient reports
//     zero flips.
//   • Disk and Tube faces are planar and Torus is triangulated, so the
//     discrete Gauss–Bonnet identity holds to rounding error on all three.
//
// Determinism:
//   • Vertices are emitted ring-major in ascending angle; faces in ascending
//     segment order. No randomness.

package shapes

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/hemesh/core"
	"github.com/katalvlaran/hemesh/geom"
)

// ErrTooFewSegments indicates a segment count too small to close a cycle.
// Usage: if errors.Is(err, ErrTooFewSegments) { /* reject parameter */ }.
var ErrTooFewSegments = errors.New("shapes: fewer than three segments")

// minSegments is the smallest ring that closes into a cycle.
const minSegments = 3

// Disk returns a triangle fan: one center vertex surrounded by an n-gon rim
// in the z=0 plane. V=n+1, F=n, E=2n, χ=1, one boundary loop, genus 0.
func Disk(n int) (core.MeshData, error) {
	if n < minSegments {
		return core.MeshData{}, fmt.Errorf("shapes: Disk(%d): %w", n, ErrTooFewSegments)
	}

	data := core.MeshData{
		Positions: make([]geom.Vec3, 0, n+1),
		Faces:     make([][]int, 0, n),
	}
	data.Positions = append(data.Positions, geom.Vec3{}) // 0: fan center

	step := 2 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		theta := step * float64(i)
		data.Positions = append(data.Positions, geom.Vec3{
			X: math.Cos(theta), Y: math.Sin(theta),
		})
	}
	for i := 1; i <= n; i++ {
		next := i%n + 1
		data.Faces = append(data.Faces, []int{0, i, next})
	}

	return data, nil
}

// Tube returns an open right prism over a regular n-gon: two vertex rings at
// z=0 and z=1 joined by quads. V=2n, F=n, E=3n, χ=0, two boundary loops,
// genus 0, zero total curvature.
func Tube(n int) (core.MeshData, error) {
	if n < minSegments {
		return core.MeshData{}, fmt.Errorf("shapes: Tube(%d): %w", n, ErrTooFewSegments)
	}

	data := core.MeshData{
		Positions: make([]geom.Vec3, 0, 2*n),
		Faces:     make([][]int, 0, n),
	}

	step := 2 * math.Pi / float64(n)
	for _, z := range []float64{0, 1} {
		for i := 0; i < n; i++ {
			theta := step * float64(i)
			data.Positions = append(data.Positions, geom.Vec3{
				X: math.Cos(theta), Y: math.Sin(theta), Z: z,
			})
		}
	}
	for i := 0; i < n; i++ {
		next := (i + 1) % n
		data.Faces = append(data.Faces, []int{i, next, n + next, n + i})
	}

	return data, nil
}

// Torus returns a triangulated torus: m segments around the main ring, n
// around the tube (major radius 2, minor radius 1). V=mn, F=2mn, E=3mn,
// χ=0, closed, genus 1.
func Torus(m, n int) (core.MeshData, error) {
	if m < minSegments || n < minSegments {
		return core.MeshData{}, fmt.Errorf("shapes: Torus(%d,%d): %w", m, n, ErrTooFewSegments)
	}

	const (
		major = 2.0
		minor = 1.0
	)

	data := core.MeshData{
		Positions: make([]geom.Vec3, 0, m*n),
		Faces:     make([][]int, 0, 2*m*n),
	}

	for i := 0; i < m; i++ {
		theta := 2 * math.Pi * float64(i) / float64(m)
		for j := 0; j < n; j++ {
			phi := 2 * math.Pi * float64(j) / float64(n)
			ring := major + minor*math.Cos(phi)
			data.Positions = append(data.Positions, geom.Vec3{
				X: ring * math.Cos(theta),
				Y: ring * math.Sin(theta),
				Z: minor * math.Sin(phi),
			})
		}
	}

	id := func(i, j int) int { return (i%m)*n + j%n }
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			a := id(i, j)
			b := id(i+1, j)
			c := id(i+1, j+1)
			d := id(i, j+1)
			// Split each grid quad along the a–c diagonal.
			data.Faces = append(data.Faces, []int{a, b, c}, []int{a, c, d})
		}
	}

	return data, nil
}
