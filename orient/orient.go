package orient

import (
	"fmt"

	"github.com/katalvlaran/hemesh/core"
)

// Orient propagates a consistent winding across every connected patch of
// faces in m and partitions the faces into disconnected groups.
//
// Two adjacent faces are consistent when their half-edges traverse the shared
// undirected edge in opposite directions (h.End != h.Opposite.End). When a
// yet-unoriented neighbor disagrees, its whole cycle is reversed once via
// core.ReverseFace. Every face's Oriented flag is true on return.
//
// Returns the partial Result alongside the error when a hook or the context
// aborts propagation.
func Orient(m *core.Mesh, opts ...Option) (*Result, error) {
	// 1. Validate input mesh.
	if m == nil {
		return nil, ErrMeshNil
	}

	// 2. Apply options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	res := &Result{}
	stack := make([]core.FaceID, 0, len(m.Faces))

	// 3. Outer loop: each still-unoriented face seeds a new group.
	for seed := range m.Faces {
		if m.Faces[seed].Oriented {
			continue
		}
		m.Faces[seed].Oriented = true
		stack = append(stack[:0], core.FaceID(seed))
		group := make([]core.FaceID, 0)

		// 4. Depth-first propagation with an explicit LIFO stack.
		for len(stack) > 0 {
			// Cancellation check once per popped face.
			select {
			case <-o.Ctx.Done():
				return res, o.Ctx.Err()
			default:
			}

			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			group = append(group, f)

			if o.OnVisit != nil {
				if err := o.OnVisit(f); err != nil {
					return res, fmt.Errorf("orient: OnVisit hook for face %d: %w", f, err)
				}
			}

			// 5. Pull unoriented neighbors across each paired edge.
			for _, h := range m.FaceHalfEdges(f) {
				opp := m.HalfEdges[h].Opposite
				if opp == core.NoHalfEdge {
					continue // boundary edge, no neighbor
				}
				nf := m.HalfEdges[opp].Face
				if m.Faces[nf].Oriented {
					continue
				}

				// Same End on both half-edges means both faces run the
				// shared edge in the same direction: flip the neighbor.
				if m.HalfEdges[opp].End == m.HalfEdges[h].End {
					m.ReverseFace(nf)
					res.Flipped++
					if o.OnFlip != nil {
						o.OnFlip(nf)
					}
				}

				m.Faces[nf].Oriented = true
				stack = append(stack, nf)
			}
		}

		// 6. Stack drained: the group is complete.
		res.Groups = append(res.Groups, group)
	}

	return res, nil
}

// AllOriented reports whether every face of m carries the Oriented flag.
// It is the post-condition of a successful Orient run.
func AllOriented(m *core.Mesh) bool {
	if m == nil {
		return false
	}
	for f := range m.Faces {
		if !m.Faces[f].Oriented {
			return false
		}
	}

	return true
}
