// Package core declares the half-edge arena types and sentinel errors.
// See doc.go for the data-model invariants.
package core

import (
	"errors"

	"github.com/katalvlaran/hemesh/geom"
)

// VertexID indexes Mesh.Vertices.
type VertexID int

// FaceID indexes Mesh.Faces.
type FaceID int

// HalfEdgeID indexes Mesh.HalfEdges.
type HalfEdgeID int

// NoHalfEdge marks an absent half-edge reference: an unpaired Opposite
// (boundary edge) or a vertex seed not yet assigned during Build.
const NoHalfEdge HalfEdgeID = -1

// Sentinel errors for mesh construction.
var (
	// ErrInvalidTopology indicates malformed input: a face referencing an
	// out-of-range vertex index, a face of degree < 3, or a vertex that ends
	// up with no incident half-edge.
	ErrInvalidTopology = errors.New("core: invalid topology")

	// ErrNonManifoldEdge indicates an undirected edge shared by more than two
	// half-edges. The mesh is not repairable by this library; Build aborts.
	ErrNonManifoldEdge = errors.New("core: non-manifold edge")
)

// Vertex is a mesh corner: a position plus one incident half-edge used as a
// traversal seed. The seed is an *incoming* half-edge (its End is this
// vertex); the matching outgoing half-edge is the seed's Next.
type Vertex struct {
	// Position is the vertex location in 3-space.
	Position geom.Vec3

	// HalfEdge is any half-edge ending at this vertex (last writer during
	// Build wins; refreshed by ReverseFace). Never NoHalfEdge after Build.
	HalfEdge HalfEdgeID
}

// Face references one of its bounding half-edges; the rest of the face is
// reachable by following Next. Faces are never destroyed once built.
type Face struct {
	// HalfEdge is any half-edge bounding this face.
	HalfEdge HalfEdgeID

	// Oriented is false at creation and set true exactly once by the
	// orientation pass.
	Oriented bool
}

// HalfEdge is one directed traversal of one undirected edge, owned by
// exactly one face.
type HalfEdge struct {
	// End is the vertex this half-edge points to.
	End VertexID

	// Next is the following half-edge around the owning face; the Next chain
	// forms a cycle whose length equals the face degree.
	Next HalfEdgeID

	// Face is the owning face (exclusive, many-to-one).
	Face FaceID

	// Opposite is the half-edge spanning the same undirected edge from the
	// adjacent face, or NoHalfEdge for a boundary edge.
	Opposite HalfEdgeID
}

// MeshData is the raw mesh value the builder consumes: an ordered list of
// positions and an ordered list of faces, each face a cyclic sequence of
// 0-based vertex indices of degree ≥ 3. How MeshData is loaded from disk (or
// printed) is the caller's concern.
type MeshData struct {
	Positions []geom.Vec3
	Faces     [][]int
}

// Mesh is the linked half-edge graph. All entities live in flat arenas and
// reference each other by index, so a Mesh can be copied, compared and
// traversed without pointer aliasing concerns. A Mesh is owned by a single
// goroutine: it is mutated during Build and orientation, read-only after.
type Mesh struct {
	Vertices  []Vertex
	Faces     []Face
	HalfEdges []HalfEdge
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int { return len(m.Vertices) }

// FaceCount returns the number of faces.
func (m *Mesh) FaceCount() int { return len(m.Faces) }

// HalfEdgeCount returns the total number of half-edges (sum of face degrees).
func (m *Mesh) HalfEdgeCount() int { return len(m.HalfEdges) }
