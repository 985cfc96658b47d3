package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hemesh/core"
	"github.com/katalvlaran/hemesh/geom"
)

// triangleData is the minimal valid mesh: one face, three boundary edges.
func triangleData() core.MeshData {
	return core.MeshData{
		Positions: []geom.Vec3{{}, {X: 1}, {Y: 1}},
		Faces:     [][]int{{0, 1, 2}},
	}
}

// tetrahedronData is a closed mesh with consistent outward winding.
func tetrahedronData() core.MeshData {
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

func TestBuild_SingleTriangle(t *testing.T) {
	m, err := core.Build(triangleData())
	require.NoError(t, err)

	assert.Equal(t, 3, m.VertexCount())
	assert.Equal(t, 1, m.FaceCount())
	assert.Equal(t, 3, m.HalfEdgeCount())

	// A lone face has no neighbors: every half-edge is boundary.
	for h := range m.HalfEdges {
		assert.True(t, m.IsBoundary(core.HalfEdgeID(h)))
	}

	// Every vertex carries a valid incoming seed.
	for v, vert := range m.Vertices {
		require.NotEqual(t, core.NoHalfEdge, vert.HalfEdge)
		assert.Equal(t, core.VertexID(v), m.HalfEdges[vert.HalfEdge].End)
	}
}

func TestBuild_Tetrahedron(t *testing.T) {
	m, err := core.Build(tetrahedronData())
	require.NoError(t, err)

	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, 4, m.FaceCount())
	assert.Equal(t, 12, m.HalfEdgeCount())

	// Closed surface: every half-edge is paired.
	for h := range m.HalfEdges {
		assert.False(t, m.IsBoundary(core.HalfEdgeID(h)))
	}
}

func TestBuild_OppositeSymmetricAndExclusive(t *testing.T) {
	m, err := core.Build(tetrahedronData())
	require.NoError(t, err)

	for h, he := range m.HalfEdges {
		id := core.HalfEdgeID(h)
		if he.Opposite == core.NoHalfEdge {
			continue
		}
		assert.NotEqual(t, id, he.Opposite, "a half-edge must never be its own opposite")
		assert.Equal(t, id, m.HalfEdges[he.Opposite].Opposite, "opposite must be symmetric")
		assert.NotEqual(t, he.Face, m.HalfEdges[he.Opposite].Face,
			"opposite half-edges belong to different faces")
	}
}

func TestBuild_NextCycleMatchesDegree(t *testing.T) {
	// One triangle and one quad sharing the edge (1,2).
	data := core.MeshData{
		Positions: []geom.Vec3{{}, {X: 1}, {X: 1, Y: 1}, {Y: 1}, {X: 2, Y: 0.5}},
		Faces:     [][]int{{0, 1, 2, 3}, {2, 1, 4}},
	}
	m, err := core.Build(data)
	require.NoError(t, err)

	for f, face := range data.Faces {
		id := core.FaceID(f)
		assert.Equal(t, len(face), m.FaceDegree(id))

		// The Next chain must return to its start after exactly degree steps
		// without leaving the owning face.
		hs := m.FaceHalfEdges(id)
		require.Len(t, hs, len(face))
		for _, h := range hs {
			assert.Equal(t, id, m.HalfEdges[h].Face)
		}
	}
}

func TestBuild_FaceDegreeTooSmall(t *testing.T) {
	data := core.MeshData{
		Positions: []geom.Vec3{{}, {X: 1}},
		Faces:     [][]int{{0, 1}},
	}
	m, err := core.Build(data)
	assert.Nil(t, m)
	assert.ErrorIs(t, err, core.ErrInvalidTopology)
}

func TestBuild_VertexIndexOutOfRange(t *testing.T) {
	data := triangleData()
	data.Faces = [][]int{{0, 1, 3}}

	m, err := core.Build(data)
	assert.Nil(t, m)
	assert.ErrorIs(t, err, core.ErrInvalidTopology)

	data.Faces = [][]int{{0, 1, -1}}
	m, err = core.Build(data)
	assert.Nil(t, m)
	assert.ErrorIs(t, err, core.ErrInvalidTopology)
}

func TestBuild_IsolatedVertex(t *testing.T) {
	data := triangleData()
	data.Positions = append(data.Positions, geom.Vec3{Z: 5})

	m, err := core.Build(data)
	assert.Nil(t, m)
	assert.ErrorIs(t, err, core.ErrInvalidTopology)
}

func TestBuild_NonManifoldEdge(t *testing.T) {
	// Three triangles all claiming the undirected edge (0,1).
	data := core.MeshData{
		Positions: []geom.Vec3{{}, {X: 1}, {Y: 1}, {Z: 1}, {Y: -1}},
		Faces:     [][]int{{0, 1, 2}, {0, 1, 3}, {0, 1, 4}},
	}
	m, err := core.Build(data)
	assert.Nil(t, m)
	assert.ErrorIs(t, err, core.ErrNonManifoldEdge)
}

func TestBuild_InteriorHalfEdgesComeInPairs(t *testing.T) {
	m, err := core.Build(tetrahedronData())
	require.NoError(t, err)

	interior := 0
	for h := range m.HalfEdges {
		if !m.IsBoundary(core.HalfEdgeID(h)) {
			interior++
		}
	}
	assert.Zero(t, interior%2, "interior half-edges must pair up exactly")
	assert.Equal(t, 6, interior/2, "tetrahedron has 6 edges")
}
