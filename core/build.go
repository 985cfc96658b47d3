package core

import "fmt"

// minFaceDegree is the smallest admissible face (a triangle).
const minFaceDegree = 3

// edgeKey is the canonical, order-independent identifier of an undirected
// edge: the endpoint indices sorted ascending, so that a→b and b→a hash to
// the same bucket.
type edgeKey struct {
	lo, hi VertexID
}

// formKey canonicalizes the vertex pair (a, b) into an edgeKey.
func formKey(a, b VertexID) edgeKey {
	if a > b {
		a, b = b, a
	}

	return edgeKey{lo: a, hi: b}
}

// edgeIndex pairs opposite half-edges during Build. It maps each undirected
// edge to the one half-edge still waiting for its partner; once a second
// half-edge arrives the two are cross-linked and the key moves to the paired
// set so a third registration can be rejected. The index is a build-local
// helper and is dropped when Build returns.
type edgeIndex struct {
	pending map[edgeKey]HalfEdgeID
	paired  map[edgeKey]struct{}
}

func newEdgeIndex(capHint int) *edgeIndex {
	return &edgeIndex{
		pending: make(map[edgeKey]HalfEdgeID, capHint),
		paired:  make(map[edgeKey]struct{}, capHint),
	}
}

// record registers half-edge h as traversing the undirected edge (from, to).
// The first registration on a key parks h as pending; the second cross-links
// both Opposite fields; a third fails with ErrNonManifoldEdge.
//
// Faces arrive with arbitrary per-face winding, so the two half-edges on a
// shared edge may still run the same direction here; the orientation pass
// later flips faces until every linked pair runs opposite ways.
func (x *edgeIndex) record(m *Mesh, from, to VertexID, h HalfEdgeID) error {
	key := formKey(from, to)

	prev, ok := x.pending[key]
	if !ok {
		if _, done := x.paired[key]; done {
			return fmt.Errorf("core: edge (%d,%d) shared by more than two half-edges: %w",
				key.lo, key.hi, ErrNonManifoldEdge)
		}
		x.pending[key] = h

		return nil
	}

	m.HalfEdges[prev].Opposite = h
	m.HalfEdges[h].Opposite = prev
	delete(x.pending, key)
	x.paired[key] = struct{}{}

	return nil
}

// Build converts raw vertex/face lists into the linked half-edge graph.
//
// For each input face it allocates one half-edge per vertex slot, wires the
// Next cycle in the face's given vertex order, points each half-edge at its
// end vertex, seeds every end vertex with the incoming half-edge (last
// writer wins — only one seed per vertex is needed), and registers each
// directed edge with the edge index to establish Opposite links. The winding
// chosen here is arbitrary per face; orient.Orient corrects it afterwards.
//
// Returns ErrInvalidTopology for an out-of-range vertex index, a face of
// degree < 3, or a vertex left without an incident half-edge, and
// ErrNonManifoldEdge when an undirected edge is claimed by a third half-edge.
func Build(data MeshData) (*Mesh, error) {
	// 1. Allocate the vertex arena with unset seeds.
	m := &Mesh{
		Vertices: make([]Vertex, len(data.Positions)),
		Faces:    make([]Face, 0, len(data.Faces)),
	}
	for i := range m.Vertices {
		m.Vertices[i] = Vertex{Position: data.Positions[i], HalfEdge: NoHalfEdge}
	}

	idx := newEdgeIndex(len(data.Faces) * minFaceDegree)

	// 2. Emit one half-edge per (face, slot) pair.
	for fi, face := range data.Faces {
		deg := len(face)
		if deg < minFaceDegree {
			return nil, fmt.Errorf("core: face %d has degree %d (minimum %d): %w",
				fi, deg, minFaceDegree, ErrInvalidTopology)
		}
		for _, vi := range face {
			if vi < 0 || vi >= len(m.Vertices) {
				return nil, fmt.Errorf("core: face %d references vertex %d outside [0,%d): %w",
					fi, vi, len(m.Vertices), ErrInvalidTopology)
			}
		}

		base := HalfEdgeID(len(m.HalfEdges))
		m.Faces = append(m.Faces, Face{HalfEdge: base})

		for s := 0; s < deg; s++ {
			from := VertexID(face[s])
			to := VertexID(face[(s+1)%deg])
			h := base + HalfEdgeID(s)

			m.HalfEdges = append(m.HalfEdges, HalfEdge{
				End:      to,
				Next:     base + HalfEdgeID((s+1)%deg),
				Face:     FaceID(fi),
				Opposite: NoHalfEdge,
			})

			// Seed the end vertex with its incoming half-edge.
			m.Vertices[to].HalfEdge = h

			if err := idx.record(m, from, to, h); err != nil {
				return nil, err
			}
		}
	}

	// 3. Reject isolated vertices: every vertex must carry an incident
	//    half-edge after the build.
	for vi := range m.Vertices {
		if m.Vertices[vi].HalfEdge == NoHalfEdge {
			return nil, fmt.Errorf("core: vertex %d has no incident half-edge: %w",
				vi, ErrInvalidTopology)
		}
	}

	return m, nil
}
