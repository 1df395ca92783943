package walk_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridray/grid"
	"github.com/katalvlaran/gridray/walk"
)

func enterCost(_, _ grid.Position, _, to int) (int, bool) { return to, true }

// TestCheapest_Weighted prefers the cheap detour over the short expensive route.
func TestCheapest_Weighted(t *testing.T) {
	g, err := grid.ParseDigits("131\n919\n111\n")
	require.NoError(t, err)

	res, err := walk.Cheapest(g, grid.P(0, 0), enterCost)
	require.NoError(t, err)
	require.Equal(t, 6, res.Depth[grid.P(2, 2)])
	require.Equal(t, grid.P(0, 0), res.Order[0])
	require.Len(t, res.Order, 9)

	path, err := res.PathTo(grid.P(2, 2))
	require.NoError(t, err)
	want := []grid.Position{grid.P(0, 0), grid.P(1, 0), grid.P(1, 1), grid.P(1, 2), grid.P(2, 2)}
	if diff := cmp.Diff(want, path); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}
}

// TestCheapest_MaxCost stops relaxing beyond the cost limit.
func TestCheapest_MaxCost(t *testing.T) {
	g, err := grid.ParseDigits("131\n919\n111\n")
	require.NoError(t, err)

	res, err := walk.Cheapest(g, grid.P(0, 0), enterCost, walk.WithMaxDepth[int](4))
	require.NoError(t, err)
	require.Equal(t, 4, res.Depth[grid.P(1, 1)])
	_, reached := res.Depth[grid.P(2, 2)]
	require.False(t, reached)
	_, err = res.PathTo(grid.P(2, 2))
	require.ErrorIs(t, err, walk.ErrNoPath)
}

// TestCheapest_Forbidden honours both Step and the cost function's ok flag.
func TestCheapest_Forbidden(t *testing.T) {
	g := mustParse(t, maze)
	unit := func(_, _ grid.Position, _, to rune) (int, bool) { return 1, to != '#' }

	res, err := walk.Cheapest(g, grid.P(0, 0), unit)
	require.NoError(t, err)
	require.Equal(t, 4, res.Depth[grid.P(2, 2)])
	_, reached := res.Depth[grid.P(2, 0)]
	require.False(t, reached)

	free := func(_, _ grid.Position, _, _ rune) (int, bool) { return 1, true }
	res, err = walk.Cheapest(g, grid.P(0, 0), free, walk.WithStep(open))
	require.NoError(t, err)
	require.Equal(t, 4, res.Depth[grid.P(2, 2)])
}

// TestCheapest_Errors covers invalid input.
func TestCheapest_Errors(t *testing.T) {
	g, err := grid.ParseDigits("12\n")
	require.NoError(t, err)

	_, err = walk.Cheapest[int](nil, grid.P(0, 0), enterCost)
	require.ErrorIs(t, err, walk.ErrGridNil)

	_, err = walk.Cheapest(g, grid.P(5, 0), enterCost)
	require.ErrorIs(t, err, walk.ErrStartOutOfBounds)

	neg := func(_, _ grid.Position, _, _ int) (int, bool) { return -1, true }
	_, err = walk.Cheapest(g, grid.P(0, 0), neg)
	require.ErrorIs(t, err, walk.ErrNegativeCost)

	_, err = walk.Cheapest(g, grid.P(0, 0), nil)
	require.ErrorIs(t, err, walk.ErrOptionViolation)
}
