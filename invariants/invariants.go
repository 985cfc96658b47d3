package invariants

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/hemesh/boundary"
	"github.com/katalvlaran/hemesh/core"
	"github.com/katalvlaran/hemesh/geom"
)

// Sentinel errors for invariant computation.
var (
	// ErrMeshNil is returned when a nil *core.Mesh is passed to Compute.
	ErrMeshNil = errors.New("invariants: mesh is nil")

	// ErrBoundaryNil is returned when a nil *boundary.Boundary is passed to
	// Compute.
	ErrBoundaryNil = errors.New("invariants: boundary is nil")

	// ErrNonManifoldBoundary indicates a bow-tie vertex: the boundary-vertex
	// count and boundary-edge count disagree, so Euler characteristic and
	// genus are undefined and no invariants are reported.
	ErrNonManifoldBoundary = errors.New("invariants: non-manifold boundary vertex")
)

// Summary holds every queryable result for one mesh (or one disconnected
// group re-expressed as a mesh).
type Summary struct {
	Vertices int // V
	Faces    int // F
	Edges    int // E = boundary + interior/2

	BoundaryLoops    int
	BoundaryVertices int
	BoundaryEdges    int

	EulerCharacteristic int // χ = V − E + F
	Genus               int // g = (2 − χ − loops) / 2

	TotalCurvature      float64 // κ: summed angle deficits
	GaussBonnetResidual float64 // |κ − 2πχ|

	Closed bool // no boundary half-edges
}

// Compute derives the invariant set of mesh m with boundary structure b.
// The mesh must already be oriented (adjacent faces wind consistently);
// Compute itself never mutates m.
//
// Returns ErrNonManifoldBoundary when b's vertex and edge counts diverge —
// the mesh has a bow-tie vertex and its invariants are undefined.
func Compute(m *core.Mesh, b *boundary.Boundary) (Summary, error) {
	// 1. Validate inputs.
	if m == nil {
		return Summary{}, ErrMeshNil
	}
	if b == nil {
		return Summary{}, ErrBoundaryNil
	}

	// 2. Manifold-boundary gate: each loop of a manifold boundary is a simple
	//    cycle, so the two counts must match exactly.
	if b.VertexCount() != b.EdgeCount() {
		return Summary{}, fmt.Errorf("invariants: %d boundary vertices vs %d boundary edges: %w",
			b.VertexCount(), b.EdgeCount(), ErrNonManifoldBoundary)
	}

	// 3. Counts and Euler characteristic.
	bEdges := b.EdgeCount()
	interior := m.HalfEdgeCount() - bEdges // opposite pairs, always even
	s := Summary{
		Vertices:         m.VertexCount(),
		Faces:            m.FaceCount(),
		Edges:            bEdges + interior/2,
		BoundaryLoops:    b.LoopCount(),
		BoundaryVertices: b.VertexCount(),
		BoundaryEdges:    bEdges,
		Closed:           bEdges == 0,
	}
	s.EulerCharacteristic = s.Vertices - s.Edges + s.Faces

	// 4. Genus from χ = 2 − 2g − loops.
	s.Genus = (2 - s.EulerCharacteristic - s.BoundaryLoops) / 2

	// 5. Discrete curvature: accumulate incident face angles per vertex,
	//    then take the angle deficit (2π interior, π boundary).
	angleSum := make([]float64, s.Vertices)
	for f := range m.Faces {
		vs := m.FaceVertices(core.FaceID(f))
		n := len(vs)
		for i, at := range vs {
			prev := m.Vertices[vs[(i+n-1)%n]].Position
			next := m.Vertices[vs[(i+1)%n]].Position
			angleSum[at] += geom.InteriorAngle(m.Vertices[at].Position, prev, next)
		}
	}

	onBoundary := make(map[core.VertexID]bool, len(b.Vertices))
	for _, v := range b.Vertices {
		onBoundary[v] = true
	}

	for v := range angleSum {
		full := 2 * math.Pi
		if onBoundary[core.VertexID(v)] {
			full = math.Pi
		}
		s.TotalCurvature += full - angleSum[v]
	}

	// 6. Gauss–Bonnet self-consistency residual.
	s.GaussBonnetResidual = math.Abs(s.TotalCurvature - 2*math.Pi*float64(s.EulerCharacteristic))

	return s, nil
}
