package core

// IsBoundary reports whether half-edge h lies on the mesh boundary, i.e. has
// no opposite half-edge.
func (m *Mesh) IsBoundary(h HalfEdgeID) bool {
	return m.HalfEdges[h].Opposite == NoHalfEdge
}

// Prev returns the half-edge preceding h in its face cycle, found by walking
// the Next chain once around the face. O(degree).
func (m *Mesh) Prev(h HalfEdgeID) HalfEdgeID {
	cur := h
	for m.HalfEdges[cur].Next != h {
		cur = m.HalfEdges[cur].Next
	}

	return cur
}

// Start returns the vertex half-edge h points away from: the end of its
// predecessor in the face cycle. O(degree).
func (m *Mesh) Start(h HalfEdgeID) VertexID {
	return m.HalfEdges[m.Prev(h)].End
}

// FaceHalfEdges returns the face's half-edges in cycle order, beginning at
// the face's seed half-edge.
func (m *Mesh) FaceHalfEdges(f FaceID) []HalfEdgeID {
	first := m.Faces[f].HalfEdge
	hs := make([]HalfEdgeID, 0, minFaceDegree)
	for h := first; ; h = m.HalfEdges[h].Next {
		hs = append(hs, h)
		if m.HalfEdges[h].Next == first {
			break
		}
	}

	return hs
}

// FaceVertices returns the face's vertices in traversal order (the End of
// each half-edge along the cycle).
func (m *Mesh) FaceVertices(f FaceID) []VertexID {
	hs := m.FaceHalfEdges(f)
	vs := make([]VertexID, len(hs))
	for i, h := range hs {
		vs[i] = m.HalfEdges[h].End
	}

	return vs
}

// FaceDegree returns the number of edges bounding face f.
func (m *Mesh) FaceDegree(f FaceID) int {
	first := m.Faces[f].HalfEdge
	deg := 0
	for h := first; ; h = m.HalfEdges[h].Next {
		deg++
		if m.HalfEdges[h].Next == first {
			break
		}
	}

	return deg
}

// ReverseFace flips the traversal direction of face f: every half-edge of
// the cycle points at its former start vertex and the Next chain runs the
// other way round. Opposite links are untouched — a half-edge still spans the
// same undirected edge. Vertex seeds of the face are refreshed so that each
// still names an incoming half-edge.
//
// This is the only mutation permitted after Build; the orientation engine
// applies it at most once per face.
func (m *Mesh) ReverseFace(f FaceID) {
	hs := m.FaceHalfEdges(f)
	n := len(hs)

	// Snapshot current ends; ends[i] is also the start of hs[(i+1)%n].
	ends := make([]VertexID, n)
	for i, h := range hs {
		ends[i] = m.HalfEdges[h].End
	}

	for i, h := range hs {
		m.HalfEdges[h].End = ends[(i+n-1)%n] // new end = old start
		m.HalfEdges[h].Next = hs[(i+n-1)%n]  // cycle direction flips
		// Every vertex of this face is the End of some cycle half-edge, so
		// reseeding along the cycle keeps all of the face's seeds valid.
		m.Vertices[m.HalfEdges[h].End].HalfEdge = h
	}
}

// Extract re-expresses the given face group as an independent MeshData:
// vertices are renumbered densely in first-encounter order and faces keep
// their current (post-orientation) traversal order. The receiver is not
// modified. The result feeds straight back into Build for recursive
// per-group analysis.
func (m *Mesh) Extract(faces []FaceID) MeshData {
	remap := make(map[VertexID]int, len(faces)*minFaceDegree)
	data := MeshData{Faces: make([][]int, 0, len(faces))}

	for _, f := range faces {
		vs := m.FaceVertices(f)
		face := make([]int, len(vs))
		for i, v := range vs {
			nv, ok := remap[v]
			if !ok {
				nv = len(data.Positions)
				remap[v] = nv
				data.Positions = append(data.Positions, m.Vertices[v].Position)
			}
			face[i] = nv
		}
		data.Faces = append(data.Faces, face)
	}

	return data
}
