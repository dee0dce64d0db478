package support

import (
	"context"
	"fmt"
)

// Visitation states for the topological walk.
const (
	white = iota // not visited yet
	gray         // on the current path
	black        // fully explored
)

// topoSorter encapsulates state for a topological walk.
type topoSorter struct {
	graph *Graph
	ctx   context.Context
	state []int // white / gray / black by handle
	order []int // post-order
}

// TopologicalOrder returns a bottom-up order of all bricks: every brick
// appears after all of its supporters. Ties are broken by handle so the
// result is deterministic.
// Returns ErrCycleDetected if the support relation is cyclic, or ctx.Err()
// on cancellation.
// Complexity: O(V + E) time, O(V) memory.
func (g *Graph) TopologicalOrder(ctx context.Context) ([]int, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	n := g.Len()
	t := &topoSorter{
		graph: g,
		ctx:   ctx,
		state: make([]int, n),
		order: make([]int, 0, n),
	}
	// walk from the top: visit highest handles first so the reversed
	// post-order favors low handles among independent bricks
	for id := n - 1; id >= 0; id-- {
		if t.state[id] == white {
			if err := t.visit(id); err != nil {
				return nil, err
			}
		}
	}
	// reverse post-order: supporters first
	for i, j := 0, len(t.order)-1; i < j; i, j = i+1, j-1 {
		t.order[i], t.order[j] = t.order[j], t.order[i]
	}

	return t.order, nil
}

// visit explores every brick resting on id before recording id.
func (t *topoSorter) visit(id int) error {
	select {
	case <-t.ctx.Done():
		return t.ctx.Err()
	default:
	}
	switch t.state[id] {
	case gray:
		return fmt.Errorf("%w: at brick %d", ErrCycleDetected, id)
	case black:
		return nil
	}
	t.state[id] = gray

	above := t.graph.supports[id]
	for i := len(above) - 1; i >= 0; i-- {
		if err := t.visit(above[i]); err != nil {
			return err
		}
	}

	t.state[id] = black
	t.order = append(t.order, id)

	return nil
}
