package support

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// queueItem pairs a fallen brick with its depth in the chain reaction.
type queueItem struct {
	id    int
	depth int
}

// walker encapsulates mutable state for one cascade.
type walker struct {
	graph     *Graph
	opts      CascadeOptions
	queue     []queueItem
	remaining map[int]int // supporters still standing, for bricks touched so far
	res       *CascadeResult
}

// Cascade disintegrates brick start and follows the chain reaction upward.
// A brick falls as soon as every one of its supporters has fallen; bricks
// with at least one standing supporter stay put.
//
// Returns ErrHandleRange for a bad start, ErrOptionViolation for bad options,
// ctx.Err() on cancellation, or any OnFall error.
// Complexity: O(V + E) time, O(V) memory.
func (g *Graph) Cascade(start int, opts ...Option) (*CascadeResult, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := g.check(start); err != nil {
		return nil, err
	}

	w := &walker{
		graph:     g,
		opts:      o,
		remaining: make(map[int]int),
		res: &CascadeResult{
			Start: start,
			Depth: map[int]int{start: 0},
		},
	}
	w.queue = append(w.queue, queueItem{id: start})

	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// loop processes fallen bricks until the chain reaction stops.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.release(item); err != nil {
			return err
		}
	}

	return nil
}

// release removes item's support from every brick above it and drops those
// left with no standing supporter.
func (w *walker) release(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for _, v := range w.graph.supports[item.id] {
		if _, fell := w.res.Depth[v]; fell {
			continue
		}
		left, seen := w.remaining[v]
		if !seen {
			left = len(w.graph.supportedBy[v])
		}
		left--
		w.remaining[v] = left
		if left > 0 {
			continue
		}
		w.res.Depth[v] = next
		w.res.Fallen = append(w.res.Fallen, v)
		if err := w.opts.OnFall(v, next); err != nil {
			return fmt.Errorf("support: OnFall error at brick %d: %w", v, err)
		}
		w.queue = append(w.queue, queueItem{id: v, depth: next})
	}

	return nil
}

// CascadeCounts runs Cascade for every brick and returns, by handle, how many
// other bricks would fall. Runs are independent and execute in parallel on at
// most workers goroutines (0 means runtime.GOMAXPROCS(0)).
// The first failing run cancels the rest.
func (g *Graph) CascadeCounts(ctx context.Context, workers int) ([]int, error) {
	if workers < 0 {
		return nil, fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, workers)
	}
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	counts := make([]int, g.Len())
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for id := range counts {
		eg.Go(func() error {
			res, err := g.Cascade(id, WithContext(egCtx))
			if err != nil {
				return err
			}
			counts[id] = res.Count()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return counts, nil
}

// CascadeTotal is the sum of CascadeCounts: over every brick, how many other
// bricks would fall if that brick alone were disintegrated.
func (g *Graph) CascadeTotal(ctx context.Context, workers int) (int, error) {
	counts, err := g.CascadeCounts(ctx, workers)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, c := range counts {
		total += c
	}

	return total, nil
}
