package support

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for support-graph operations.
var (
	// ErrResultNil is returned when NewGraph is given a nil result.
	ErrResultNil = errors.New("support: settle result is nil")

	// ErrHandleRange indicates a brick handle outside the graph.
	ErrHandleRange = errors.New("support: brick handle out of range")

	// ErrSelfSupport indicates a brick listed as its own supporter.
	ErrSelfSupport = errors.New("support: brick supports itself")

	// ErrCycleDetected indicates the support relation contains a cycle.
	ErrCycleDetected = errors.New("support: cycle detected")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("support: invalid option supplied")
)

// Option configures a Cascade run via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option func(*CascadeOptions)

// CascadeOptions holds parameters and callbacks for Cascade.
type CascadeOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnFall is called for every brick that falls, with its depth in the
	// chain reaction (1 for bricks resting directly on the removed brick).
	// Returning an error aborts the cascade.
	OnFall func(id, depth int) error

	// MaxDepth, if > 0, stops following the chain reaction beyond this depth.
	MaxDepth int

	err error
}

// DefaultOptions returns CascadeOptions with a background context, no depth
// limit and a no-op hook.
func DefaultOptions() CascadeOptions {
	return CascadeOptions{
		Ctx:    context.Background(),
		OnFall: func(int, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *CascadeOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnFall registers a callback invoked for every falling brick.
func WithOnFall(fn func(id, depth int) error) Option {
	return func(o *CascadeOptions) {
		if fn != nil {
			o.OnFall = fn
		}
	}
}

// WithMaxDepth limits how far the chain reaction is followed.
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *CascadeOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// CascadeResult is the outcome of disintegrating one brick.
type CascadeResult struct {
	// Start is the disintegrated brick.
	Start int

	// Fallen lists the bricks that fall as a consequence, in fall order.
	// Start itself is not included.
	Fallen []int

	// Depth maps every fallen brick (and Start, at 0) to its chain depth.
	Depth map[int]int
}

// Count is the number of other bricks that fall.
func (r *CascadeResult) Count() int {
	return len(r.Fallen)
}
