package boundary

import (
	"errors"
	"sort"

	"github.com/katalvlaran/hemesh/core"
)

// ErrMeshNil is returned when a nil *core.Mesh is passed to Extract.
var ErrMeshNil = errors.New("boundary: mesh is nil")

// Boundary captures the boundary structure of one mesh.
type Boundary struct {
	// HalfEdges lists every boundary half-edge in arena order.
	HalfEdges []core.HalfEdgeID

	// Vertices lists every boundary vertex in ascending order.
	Vertices []core.VertexID

	// Loops partitions the boundary vertices into one group per boundary
	// loop. Groups are disjoint sets; their internal order follows the DFS
	// and is not part of the contract.
	Loops [][]core.VertexID
}

// EdgeCount returns the number of boundary edges (one half-edge each).
func (b *Boundary) EdgeCount() int { return len(b.HalfEdges) }

// VertexCount returns the number of boundary vertices.
func (b *Boundary) VertexCount() int { return len(b.Vertices) }

// LoopCount returns the number of boundary loops.
func (b *Boundary) LoopCount() int { return len(b.Loops) }

// Extract identifies the boundary half-edges and vertices of m and groups
// the vertices into boundary loops. The mesh is only read; Extract is meant
// to run after orientation, but depends solely on Opposite links.
func Extract(m *core.Mesh) (*Boundary, error) {
	// 1. Validate input mesh.
	if m == nil {
		return nil, ErrMeshNil
	}

	b := &Boundary{}

	// 2. Collect boundary half-edges in arena order.
	for h := range m.HalfEdges {
		if m.IsBoundary(core.HalfEdgeID(h)) {
			b.HalfEdges = append(b.HalfEdges, core.HalfEdgeID(h))
		}
	}

	// 3. Boundary vertices: ends of boundary half-edges.
	onBoundary := make(map[core.VertexID]bool, len(b.HalfEdges))
	for _, h := range b.HalfEdges {
		onBoundary[m.HalfEdges[h].End] = true
	}
	b.Vertices = make([]core.VertexID, 0, len(onBoundary))
	for v := range onBoundary {
		b.Vertices = append(b.Vertices, v)
	}
	sort.Slice(b.Vertices, func(i, j int) bool { return b.Vertices[i] < b.Vertices[j] })

	// 4. Adjacency via boundary edges, restricted to boundary vertices.
	adj := make(map[core.VertexID][]core.VertexID, len(onBoundary))
	for _, h := range b.HalfEdges {
		u, v := m.Start(h), m.HalfEdges[h].End
		if !onBoundary[u] || !onBoundary[v] {
			continue
		}
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
	}

	// 5. Loop discovery: DFS from each undiscovered boundary vertex.
	seen := make(map[core.VertexID]bool, len(onBoundary))
	stack := make([]core.VertexID, 0, len(onBoundary))
	for _, seed := range b.Vertices {
		if seen[seed] {
			continue
		}
		seen[seed] = true
		stack = append(stack[:0], seed)
		loop := make([]core.VertexID, 0)

		for len(stack) > 0 {
			v := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			loop = append(loop, v)

			for _, w := range adj[v] {
				if !seen[w] {
					seen[w] = true
					stack = append(stack, w)
				}
			}
		}

		b.Loops = append(b.Loops, loop)
	}

	return b, nil
}
