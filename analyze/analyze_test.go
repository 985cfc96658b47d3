package analyze_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hemesh/analyze"
	"github.com/katalvlaran/hemesh/core"
	"github.com/katalvlaran/hemesh/geom"
	"github.com/katalvlaran/hemesh/invariants"
	"github.com/katalvlaran/hemesh/shapes"
)

// disjointTriangles returns two triangles sharing no vertices.
func disjointTriangles() core.MeshData {
	return core.MeshData{
		Positions: []geom.Vec3{
			{}, {X: 1}, {Y: 1},
			{Z: 1}, {X: 1, Z: 1}, {Y: 1, Z: 1},
		},
		Faces: [][]int{{0, 1, 2}, {3, 4, 5}},
	}
}

func TestAnalyze_Tetrahedron(t *testing.T) {
	rep, err := analyze.Analyze(shapes.Tetrahedron())
	require.NoError(t, err)

	assert.Equal(t, 2, rep.Summary.EulerCharacteristic)
	assert.Equal(t, 0, rep.Summary.Genus)
	assert.True(t, rep.Summary.Closed)

	// A connected mesh is its own single group.
	require.Len(t, rep.Groups, 1)
	assert.Len(t, rep.Groups[0].Faces, 4)
	assert.Equal(t, rep.Summary, rep.Groups[0].Summary)
}

func TestAnalyze_DisjointTriangles(t *testing.T) {
	rep, err := analyze.Analyze(disjointTriangles())
	require.NoError(t, err)

	// Whole-mesh counts cover both components.
	assert.Equal(t, 6, rep.Summary.Vertices)
	assert.Equal(t, 6, rep.Summary.Edges)
	assert.Equal(t, 2, rep.Summary.Faces)
	assert.Equal(t, 2, rep.Summary.EulerCharacteristic)
	assert.Equal(t, 2, rep.Summary.BoundaryLoops)
	assert.False(t, rep.Summary.Closed)

	// Each group independently satisfies the single-triangle invariants.
	require.Len(t, rep.Groups, 2)
	for _, g := range rep.Groups {
		assert.Len(t, g.Faces, 1)
		assert.Equal(t, 3, g.Summary.Vertices)
		assert.Equal(t, 3, g.Summary.Edges)
		assert.Equal(t, 1, g.Summary.Faces)
		assert.Equal(t, 1, g.Summary.EulerCharacteristic)
		assert.Equal(t, 1, g.Summary.BoundaryLoops)
		assert.Equal(t, 0, g.Summary.Genus)
		assert.False(t, g.Summary.Closed)
	}
}

func TestAnalyze_MixedComponents(t *testing.T) {
	// A closed tetrahedron next to an open triangle in one soup.
	tet := shapes.Tetrahedron()
	data := core.MeshData{Positions: tet.Positions, Faces: tet.Faces}
	base := len(data.Positions)
	data.Positions = append(data.Positions,
		geom.Vec3{X: 5}, geom.Vec3{X: 6}, geom.Vec3{X: 5, Y: 1})
	data.Faces = append(data.Faces, []int{base, base + 1, base + 2})

	rep, err := analyze.Analyze(data)
	require.NoError(t, err)
	require.Len(t, rep.Groups, 2)

	assert.Equal(t, 2, rep.Groups[0].Summary.EulerCharacteristic)
	assert.True(t, rep.Groups[0].Summary.Closed)
	assert.Equal(t, 1, rep.Groups[1].Summary.EulerCharacteristic)
	assert.False(t, rep.Groups[1].Summary.Closed)
}

func TestAnalyze_BowTieIsGloballyFatal(t *testing.T) {
	rep, err := analyze.Analyze(shapes.BowTie())
	assert.Nil(t, rep, "no partial results for a non-manifold boundary")
	assert.ErrorIs(t, err, invariants.ErrNonManifoldBoundary)
}

func TestAnalyze_BuildErrorsPropagate(t *testing.T) {
	bad := shapes.Triangle()
	bad.Faces = [][]int{{0, 1, 7}}

	rep, err := analyze.Analyze(bad)
	assert.Nil(t, rep)
	assert.ErrorIs(t, err, core.ErrInvalidTopology)

	nonManifold := core.MeshData{
		Positions: []geom.Vec3{{}, {X: 1}, {Y: 1}, {Z: 1}, {Y: -1}},
		Faces:     [][]int{{0, 1, 2}, {0, 1, 3}, {0, 1, 4}},
	}
	rep, err = analyze.Analyze(nonManifold)
	assert.Nil(t, rep)
	assert.ErrorIs(t, err, core.ErrNonManifoldEdge)
}

func TestAnalyze_TorusGroupMatchesWhole(t *testing.T) {
	data, err := shapes.Torus(6, 4)
	require.NoError(t, err)

	rep, err := analyze.Analyze(data)
	require.NoError(t, err)

	assert.Equal(t, 1, rep.Summary.Genus)
	assert.True(t, rep.Summary.Closed)
	require.Len(t, rep.Groups, 1)
	assert.Equal(t, rep.Summary, rep.Groups[0].Summary)
}
