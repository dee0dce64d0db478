package support

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/brickstack/settle"
)

// Graph is the immutable support relation between settled bricks.
// It is safe for concurrent readers once built.
type Graph struct {
	supportedBy [][]int // supportedBy[v] = sorted handles v rests on
	supports    [][]int // supports[u]    = sorted handles resting on u
	edges       int
}

// NewGraph builds the support graph recorded by a settlement run.
func NewGraph(res *settle.Result) (*Graph, error) {
	if res == nil {
		return nil, ErrResultNil
	}

	return FromSupporters(res.Supporters)
}

// FromSupporters builds a Graph from per-brick supporter lists indexed by
// handle. Duplicate entries are collapsed. The input is not retained.
func FromSupporters(supporters [][]int) (*Graph, error) {
	n := len(supporters)
	g := &Graph{
		supportedBy: make([][]int, n),
		supports:    make([][]int, n),
	}
	for v, list := range supporters {
		below := slices.Clone(list)
		slices.Sort(below)
		below = slices.Compact(below)
		for _, u := range below {
			if u < 0 || u >= n {
				return nil, fmt.Errorf("%w: brick %d rests on %d (have %d bricks)", ErrHandleRange, v, u, n)
			}
			if u == v {
				return nil, fmt.Errorf("%w: brick %d", ErrSelfSupport, v)
			}
			g.supports[u] = append(g.supports[u], v)
		}
		g.supportedBy[v] = below
		g.edges += len(below)
	}
	// v ascends in the outer loop, so supports[u] is already sorted

	return g, nil
}

// Len is the number of bricks in the graph.
func (g *Graph) Len() int { return len(g.supportedBy) }

// EdgeCount is the number of support edges.
func (g *Graph) EdgeCount() int { return g.edges }

// SupportedBy returns the sorted handles brick id rests on.
func (g *Graph) SupportedBy(id int) ([]int, error) {
	if err := g.check(id); err != nil {
		return nil, err
	}

	return slices.Clone(g.supportedBy[id]), nil
}

// Supports returns the sorted handles resting on brick id.
func (g *Graph) Supports(id int) ([]int, error) {
	if err := g.check(id); err != nil {
		return nil, err
	}

	return slices.Clone(g.supports[id]), nil
}

// OnGround reports whether brick id rests directly on the ground.
func (g *Graph) OnGround(id int) bool {
	return g.check(id) == nil && len(g.supportedBy[id]) == 0
}

// IsRemovable reports whether brick id is nobody's sole supporter.
func (g *Graph) IsRemovable(id int) bool {
	if g.check(id) != nil {
		return false
	}
	for _, v := range g.supports[id] {
		if len(g.supportedBy[v]) == 1 {
			return false
		}
	}

	return true
}

// Removable returns, in ascending order, every brick whose removal leaves all
// other bricks with at least one supporter.
// Complexity: O(V + E).
func (g *Graph) Removable() []int {
	out := make([]int, 0, g.Len())
	for id := range g.supportedBy {
		if g.IsRemovable(id) {
			out = append(out, id)
		}
	}

	return out
}

// RemovableCount is len(Removable()).
func (g *Graph) RemovableCount() int {
	n := 0
	for id := range g.supportedBy {
		if g.IsRemovable(id) {
			n++
		}
	}

	return n
}

func (g *Graph) check(id int) error {
	if id < 0 || id >= g.Len() {
		return fmt.Errorf("%w: %d (have %d bricks)", ErrHandleRange, id, g.Len())
	}

	return nil
}
