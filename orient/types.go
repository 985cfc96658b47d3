// Package orient defines the options and result types for orientation
// propagation. See doc.go for the algorithm contract.
package orient

import (
	"context"
	"errors"

	"github.com/katalvlaran/hemesh/core"
)

// ErrMeshNil is returned when a nil *core.Mesh is passed to Orient.
var ErrMeshNil = errors.New("orient: mesh is nil")

// Option configures optional behavior of orientation propagation.
// Use with Orient(m, opts...).
type Option func(*Options)

// Options holds configurable parameters for orientation propagation.
// Complexity stays O(H) when hooks are O(1).
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts propagation early.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a face is popped from the
	// traversal stack (pre-order). Returning an error aborts propagation
	// with that error.
	OnVisit func(f core.FaceID) error

	// OnFlip, if non-nil, is invoked after a face's winding has been
	// reversed to match its already-oriented neighbor.
	OnFlip func(f core.FaceID)
}

// DefaultOptions returns an Options struct with a background context and no
// hooks installed.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: nil,
		OnFlip:  nil,
	}
}

// WithContext returns an Option that sets the context for propagation.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook,
// called once per face as it is appended to its group.
func WithOnVisit(fn func(f core.FaceID) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnFlip returns an Option that installs fn as a flip diagnostics hook.
func WithOnFlip(fn func(f core.FaceID)) Option {
	return func(o *Options) {
		o.OnFlip = fn
	}
}

// Result captures the outcome of orientation propagation.
type Result struct {
	// Groups partitions all faces into maximal groups connected via shared
	// (non-boundary) edges. Membership is deterministic; the face order
	// inside a group is not part of the contract.
	Groups [][]core.FaceID

	// Flipped counts the faces whose winding was reversed to agree with
	// their group.
	Flipped int
}

// GroupCount returns the number of disconnected groups.
func (r *Result) GroupCount() int { return len(r.Groups) }
