package settle

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"

	"github.com/katalvlaran/brickstack/geom"
)

// Sentinel errors for settlement.
var (
	// ErrInvalidBrick wraps geometry validation failures.
	ErrInvalidBrick = errors.New("settle: invalid brick")

	// ErrEmptyFootprint indicates a brick whose footprint has zero area.
	ErrEmptyFootprint = errors.New("settle: brick has zero area in the xy plane")
)

// Option configures optional behavior of Settle.
type Option func(*Options)

// Options holds configurable parameters for a settlement run.
type Options struct {
	// Ctx is checked once per brick; defaults to context.Background().
	Ctx context.Context

	// Logger receives one debug record per settled brick.
	// Defaults to a logger that discards everything.
	Logger *slog.Logger

	// OnSettle, if non-nil, is called after each brick comes to rest with its
	// input index and settled geometry. Returning an error aborts the run.
	OnSettle func(index int, b geom.Brick) error
}

// DefaultOptions returns Options with a background context, a discarding
// logger and no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:    context.Background(),
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithContext sets the context used for cancellation.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger installs a structured logger. A nil logger has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnSettle installs a per-brick hook.
func WithOnSettle(fn func(index int, b geom.Brick) error) Option {
	return func(o *Options) {
		o.OnSettle = fn
	}
}

// Result is the settled configuration.
//
// Slices indexed "by handle" use the brick's index in the input slice given
// to Settle.
type Result struct {
	// Bricks holds the settled bricks in settle order (ascending initial height).
	Bricks []geom.Brick

	// Order maps each entry of Bricks back to its handle.
	Order []int

	// Positions holds the settled brick by handle.
	Positions []geom.Brick

	// Supporters lists, by handle, the sorted handles the brick rests on.
	// Empty for bricks resting on the ground.
	Supporters [][]int

	// Fell records, by handle, how many levels the brick dropped.
	Fell []int

	// Candidates holds every handle that is not the sole supporter of any brick.
	Candidates map[int]struct{}
}

// Removable returns the candidate handles in ascending order.
func (r *Result) Removable() []int {
	out := make([]int, 0, len(r.Candidates))
	for h := range r.Candidates {
		out = append(out, h)
	}
	slices.Sort(out)

	return out
}

// RemovableCount is the number of bricks whose removal collapses nothing.
func (r *Result) RemovableCount() int {
	return len(r.Candidates)
}

// Len is the number of settled bricks.
func (r *Result) Len() int {
	return len(r.Bricks)
}
