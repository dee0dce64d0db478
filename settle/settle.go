package settle

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/katalvlaran/brickstack/geom"
	"github.com/katalvlaran/brickstack/surface"
)

// indexed pairs a brick with its handle (index in the caller's slice).
type indexed struct {
	brick geom.Brick
	index int
}

// settler encapsulates mutable state for one settlement run.
type settler struct {
	opts       Options
	surface    *surface.Surface
	candidates map[int]struct{}
	tops       []int // input Upper.Z by handle
	res        *Result
}

// Settle lowers every brick to its resting position.
//
// The input slice is not modified. Bricks are processed in ascending
// geom.CompareBricks order; the sort is stable so exact duplicates keep their
// input order. An empty input yields an empty Result. Any error aborts the
// run and returns a nil Result.
func Settle(bricks []geom.Brick, opts ...Option) (*Result, error) {
	// 1. Validate input
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	for i, b := range bricks {
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("%w %d (%s): %w", ErrInvalidBrick, i, b, err)
		}
		// Brick.Footprint takes min/max per axis and always spans a cell;
		// Validate only rejects hand-built inverted Footprint values.
		if err := b.Footprint().Validate(); err != nil {
			return nil, fmt.Errorf("%w: brick %d (%s): %w", ErrEmptyFootprint, i, b, err)
		}
	}

	// 2. Pair with handles and order by height above ground
	queue := make([]indexed, len(bricks))
	for i, b := range bricks {
		queue[i] = indexed{brick: b, index: i}
	}
	slices.SortStableFunc(queue, func(a, b indexed) int {
		return geom.CompareBricks(a.brick, b.brick)
	})

	// 3. Optimistic default: every brick may be disintegrated
	n := len(bricks)
	s := &settler{
		opts:       o,
		surface:    surface.New(),
		candidates: make(map[int]struct{}, n),
		tops:       make([]int, n),
		res: &Result{
			Bricks:     make([]geom.Brick, 0, n),
			Order:      make([]int, 0, n),
			Positions:  make([]geom.Brick, n),
			Supporters: make([][]int, n),
			Fell:       make([]int, n),
		},
	}
	for i, b := range bricks {
		s.candidates[i] = struct{}{}
		s.tops[i] = b.Upper.Z
	}

	// 4. Drop each brick in turn
	for _, item := range queue {
		if err := s.opts.Ctx.Err(); err != nil {
			return nil, err
		}
		if err := s.drop(item); err != nil {
			return nil, err
		}
	}
	s.res.Candidates = s.candidates

	return s.res, nil
}

// drop brings one brick to rest on the current surface and publishes it.
func (s *settler) drop(item indexed) error {
	fp := item.brick.Footprint()

	// 1. Tallest columns under the footprint and who owns them
	support := s.surface.Highest(fp)

	// 2. Rest one level above them, keeping the brick's height.
	// A supporter whose input top reaches the brick's input bottom shares a
	// cell with it in the input: the bricks overlap.
	for _, o := range support.Owners {
		if s.tops[o] >= item.brick.Lower.Z {
			return fmt.Errorf("settle: brick %d (%s) starts at z=%d inside brick %d (input top z=%d): %w",
				item.index, item.brick, item.brick.Lower.Z, o, s.tops[o], surface.ErrOverlap)
		}
	}
	resting := support.Height + 1
	fell := item.brick.Lower.Z - resting
	settled := item.brick.Lowered(fell)

	// 3. Become the new top of every footprint column
	if err := s.surface.SetHeight(fp, settled.Upper.Z, item.index); err != nil {
		return fmt.Errorf("settle: brick %d (%s): %w", item.index, item.brick, err)
	}

	// 4. A sole supporter is load-bearing from now on
	if len(support.Owners) == 1 {
		delete(s.candidates, support.Owners[0])
	}

	s.res.Bricks = append(s.res.Bricks, settled)
	s.res.Order = append(s.res.Order, item.index)
	s.res.Positions[item.index] = settled
	s.res.Supporters[item.index] = support.Owners
	s.res.Fell[item.index] = fell

	s.opts.Logger.Debug("brick settled",
		slog.Int("index", item.index),
		slog.String("label", item.brick.Label),
		slog.Int("fell", fell),
		slog.Int("z", settled.Lower.Z),
		slog.Any("supporters", support.Owners),
	)

	if s.opts.OnSettle != nil {
		if err := s.opts.OnSettle(item.index, settled); err != nil {
			return fmt.Errorf("settle: OnSettle error at brick %d: %w", item.index, err)
		}
	}

	return nil
}
