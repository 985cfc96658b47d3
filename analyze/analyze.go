package analyze

import (
	"fmt"

	"github.com/katalvlaran/hemesh/boundary"
	"github.com/katalvlaran/hemesh/core"
	"github.com/katalvlaran/hemesh/invariants"
	"github.com/katalvlaran/hemesh/orient"
)

// GroupReport pairs one disconnected group with the summary of the
// independent sub-mesh it re-expresses.
type GroupReport struct {
	// Faces are the group members, as face IDs of the analyzed mesh.
	Faces []core.FaceID

	// Summary holds the group's own invariants: the group is extracted into
	// a standalone mesh (vertices renumbered) and run through the full
	// pipeline, so counts refer to the sub-mesh.
	Summary invariants.Summary
}

// Report is the result of analyzing one mesh.
type Report struct {
	// Summary holds the whole-mesh invariants. For a disconnected mesh the
	// genus entry follows the χ = 2 − 2g − b arithmetic and is only
	// meaningful per group.
	Summary invariants.Summary

	// Groups holds one entry per disconnected group, in discovery order.
	Groups []GroupReport
}

// Analyze runs the full pipeline on a raw mesh and reports invariants for
// the mesh and each disconnected group. The mesh value is consumed: the
// half-edge graph is built and oriented internally.
//
// Errors carry the originating sentinel (core.ErrInvalidTopology,
// core.ErrNonManifoldEdge, invariants.ErrNonManifoldBoundary); the bow-tie
// check is globally fatal, so a single non-manifold boundary vertex
// suppresses results for all groups.
func Analyze(data core.MeshData) (*Report, error) {
	// 1. Raw lists → half-edge graph.
	m, err := core.Build(data)
	if err != nil {
		return nil, fmt.Errorf("analyze: build: %w", err)
	}

	// 2. Consistent winding + disconnected groups.
	res, err := orient.Orient(m)
	if err != nil {
		return nil, fmt.Errorf("analyze: orient: %w", err)
	}

	// 3. Boundary structure.
	b, err := boundary.Extract(m)
	if err != nil {
		return nil, fmt.Errorf("analyze: boundary: %w", err)
	}

	// 4. Whole-mesh invariants; the non-manifold boundary gate lives here.
	sum, err := invariants.Compute(m, b)
	if err != nil {
		return nil, fmt.Errorf("analyze: invariants: %w", err)
	}

	rep := &Report{
		Summary: sum,
		Groups:  make([]GroupReport, 0, res.GroupCount()),
	}

	// 5. One group: its sub-mesh is the mesh itself, reuse the summary.
	if res.GroupCount() == 1 {
		rep.Groups = append(rep.Groups, GroupReport{Faces: res.Groups[0], Summary: sum})

		return rep, nil
	}

	// 6. Several groups: re-express each as an independent sub-mesh and
	//    recurse through the full pipeline.
	for _, group := range res.Groups {
		subRep, subErr := Analyze(m.Extract(group))
		if subErr != nil {
			return nil, fmt.Errorf("analyze: group of %d faces: %w", len(group), subErr)
		}
		rep.Groups = append(rep.Groups, GroupReport{Faces: group, Summary: subRep.Summary})
	}

	return rep, nil
}
