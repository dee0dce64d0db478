package support_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/brickstack/geom"
	"github.com/katalvlaran/brickstack/settle"
	"github.com/katalvlaran/brickstack/support"
)

func brick(x1, y1, z1, x2, y2, z2 int, label string) geom.Brick {
	return geom.NewBrick(geom.Point3{X: x1, Y: y1, Z: z1}, geom.Point3{X: x2, Y: y2, Z: z2}, label)
}

// example returns the seven-brick example, labeled A through G.
func example() []geom.Brick {
	return []geom.Brick{
		brick(1, 0, 1, 1, 2, 1, "A"),
		brick(0, 0, 2, 2, 0, 2, "B"),
		brick(0, 2, 3, 2, 2, 3, "C"),
		brick(0, 0, 4, 0, 2, 4, "D"),
		brick(2, 0, 5, 2, 2, 5, "E"),
		brick(0, 1, 6, 2, 1, 6, "F"),
		brick(1, 1, 8, 1, 1, 9, "G"),
	}
}

// exampleGraph settles the example and builds its support graph.
func exampleGraph(t testing.TB) (*settle.Result, *support.Graph) {
	t.Helper()
	res, err := settle.Settle(example())
	require.NoError(t, err)
	g, err := support.NewGraph(res)
	require.NoError(t, err)

	return res, g
}

// TestGraph_Example checks adjacency in both directions.
func TestGraph_Example(t *testing.T) {
	_, g := exampleGraph(t)
	require.Equal(t, 7, g.Len())
	assert.Equal(t, 9, g.EdgeCount())

	above, err := g.Supports(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, above)

	below, err := g.SupportedBy(5)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, below)

	above, err = g.Supports(6)
	require.NoError(t, err)
	assert.Empty(t, above)

	assert.True(t, g.OnGround(0))
	assert.False(t, g.OnGround(1))
}

// TestGraph_Removable: the graph agrees with the engine's online candidates.
func TestGraph_Removable(t *testing.T) {
	res, g := exampleGraph(t)
	assert.Equal(t, []int{1, 2, 3, 4, 6}, g.Removable())
	assert.Equal(t, 5, g.RemovableCount())
	assert.Equal(t, res.Removable(), g.Removable())
	assert.False(t, g.IsRemovable(0))
	assert.False(t, g.IsRemovable(5))
	assert.False(t, g.IsRemovable(99))
}

// TestGraph_RemovableMatchesEngine on a random tower.
func TestGraph_RemovableMatchesEngine(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	bricks := make([]geom.Brick, 0, 400)
	z := 1
	for len(bricks) < 400 {
		x, y := rng.Intn(6), rng.Intn(6)
		b := brick(x, y, z, x+rng.Intn(3), y, z, "")
		if rng.Intn(2) == 0 {
			b = brick(x, y, z, x, y+rng.Intn(3), z, "")
		}
		bricks = append(bricks, b)
		z += 1 + rng.Intn(2)
	}
	res, err := settle.Settle(bricks)
	require.NoError(t, err)
	g, err := support.NewGraph(res)
	require.NoError(t, err)
	assert.Equal(t, res.Removable(), g.Removable())
}

// TestGraph_Errors covers invalid construction and queries.
func TestGraph_Errors(t *testing.T) {
	_, err := support.NewGraph(nil)
	assert.ErrorIs(t, err, support.ErrResultNil)

	_, err = support.FromSupporters([][]int{{}, {5}})
	assert.ErrorIs(t, err, support.ErrHandleRange)

	_, err = support.FromSupporters([][]int{{}, {1}})
	assert.ErrorIs(t, err, support.ErrSelfSupport)

	g, err := support.FromSupporters([][]int{{}, {0, 0}})
	require.NoError(t, err)
	below, err := g.SupportedBy(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, below, "duplicates collapse")

	_, err = g.Supports(-1)
	assert.ErrorIs(t, err, support.ErrHandleRange)
	_, err = g.SupportedBy(2)
	assert.ErrorIs(t, err, support.ErrHandleRange)
}

// TestTopologicalOrder returns supporters before the bricks they hold.
func TestTopologicalOrder(t *testing.T) {
	_, g := exampleGraph(t)
	order, err := g.TopologicalOrder(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, order)

	// handles need not follow height: 2 holds 0, which holds 1
	g, err = support.FromSupporters([][]int{{2}, {0}, {}})
	require.NoError(t, err)
	order, err = g.TopologicalOrder(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 1}, order)
}

// TestTopologicalOrder_Cycle rejects a cyclic relation.
func TestTopologicalOrder_Cycle(t *testing.T) {
	g, err := support.FromSupporters([][]int{{2}, {0}, {1}})
	require.NoError(t, err)
	_, err = g.TopologicalOrder(context.Background())
	assert.ErrorIs(t, err, support.ErrCycleDetected)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = g.TopologicalOrder(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestCascade_Example follows the chain reaction from A and F.
func TestCascade_Example(t *testing.T) {
	_, g := exampleGraph(t)

	res, err := g.Cascade(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, res.Fallen)
	assert.Equal(t, 6, res.Count())
	assert.Equal(t, map[int]int{0: 0, 1: 1, 2: 1, 3: 2, 4: 2, 5: 3, 6: 4}, res.Depth)

	res, err = g.Cascade(5)
	require.NoError(t, err)
	assert.Equal(t, []int{6}, res.Fallen)

	// D shares its load with E: nothing falls
	res, err = g.Cascade(3)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Count())
}

// TestCascade_Options covers depth limits, hooks and invalid input.
func TestCascade_Options(t *testing.T) {
	_, g := exampleGraph(t)

	res, err := g.Cascade(0, support.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, res.Fallen)

	var depths []int
	_, err = g.Cascade(0, support.WithOnFall(func(_, depth int) error {
		depths = append(depths, depth)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 2, 2, 3, 4}, depths)

	stop := errors.New("stop")
	_, err = g.Cascade(0, support.WithOnFall(func(id, _ int) error {
		if id == 3 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)

	_, err = g.Cascade(0, support.WithMaxDepth(-1))
	assert.ErrorIs(t, err, support.ErrOptionViolation)

	_, err = g.Cascade(7)
	assert.ErrorIs(t, err, support.ErrHandleRange)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = g.Cascade(0, support.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestCascadeTotal sums every brick's chain reaction, in parallel.
func TestCascadeTotal(t *testing.T) {
	_, g := exampleGraph(t)

	counts, err := g.CascadeCounts(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, []int{6, 0, 0, 0, 0, 1, 0}, counts)

	for _, workers := range []int{0, 1, 8} {
		total, err := g.CascadeTotal(context.Background(), workers)
		require.NoError(t, err)
		assert.Equal(t, 7, total, "workers=%d", workers)
	}

	_, err = g.CascadeTotal(context.Background(), -1)
	assert.ErrorIs(t, err, support.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = g.CascadeTotal(ctx, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

// TestCascade_Stack: in a plain column every brick topples the rest above it.
func TestCascade_Stack(t *testing.T) {
	bricks := make([]geom.Brick, 5)
	for i := range bricks {
		bricks[i] = brick(0, 0, 10+i, 1, 0, 10+i, "")
	}
	res, err := settle.Settle(bricks)
	require.NoError(t, err)
	g, err := support.NewGraph(res)
	require.NoError(t, err)

	counts, err := g.CascadeCounts(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3, 2, 1, 0}, counts)
	assert.Equal(t, []int{4}, g.Removable())
}
