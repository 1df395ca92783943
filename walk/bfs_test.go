package walk_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridray/grid"
	"github.com/katalvlaran/gridray/walk"
)

const maze = "" +
	"S.#\n" +
	".##\n" +
	"..E\n"

func mustParse(t *testing.T, text string) *grid.Grid[rune] {
	t.Helper()
	g, err := grid.Parse(text)
	require.NoError(t, err)
	return g
}

func open(_, _ grid.Position, _, to rune) bool { return to != '#' }

// TestBFS_Maze checks depths, order and the reconstructed shortest path.
func TestBFS_Maze(t *testing.T) {
	g := mustParse(t, maze)
	res, err := walk.BFS(g, grid.P(0, 0), walk.WithStep(open))
	require.NoError(t, err)

	require.Equal(t, 4, res.Depth[grid.P(2, 2)])
	require.Equal(t, grid.P(0, 0), res.Order[0])
	require.Len(t, res.Order, 6)
	_, reached := res.Depth[grid.P(2, 0)]
	require.False(t, reached, "wall must not be entered")

	path, err := res.PathTo(grid.P(2, 2))
	require.NoError(t, err)
	want := []grid.Position{grid.P(0, 0), grid.P(0, 1), grid.P(0, 2), grid.P(1, 2), grid.P(2, 2)}
	if diff := cmp.Diff(want, path); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}

	_, err = res.PathTo(grid.P(1, 1))
	require.ErrorIs(t, err, walk.ErrNoPath)
}

// TestBFS_MaxDepth limits exploration.
func TestBFS_MaxDepth(t *testing.T) {
	g := mustParse(t, "....\n....\n")
	res, err := walk.BFS(g, grid.P(0, 0), walk.WithMaxDepth[rune](1))
	require.NoError(t, err)
	require.ElementsMatch(t, []grid.Position{grid.P(0, 0), grid.P(1, 0), grid.P(0, 1)}, res.Order)

	_, err = walk.BFS(g, grid.P(0, 0), walk.WithMaxDepth[rune](-1))
	require.ErrorIs(t, err, walk.ErrOptionViolation)
}

// TestBFS_Directions uses king moves to reach the far corner in fewer steps.
func TestBFS_Directions(t *testing.T) {
	g := mustParse(t, "...\n...\n...\n")
	res, err := walk.BFS(g, grid.P(0, 0), walk.WithDirections[rune](grid.AllDirections()...))
	require.NoError(t, err)
	require.Equal(t, 2, res.Depth[grid.P(2, 2)])

	_, err = walk.BFS(g, grid.P(0, 0), walk.WithDirections[rune](grid.East, grid.D(0, 0)))
	require.ErrorIs(t, err, walk.ErrOptionViolation)
	require.ErrorIs(t, err, walk.ErrZeroDirection)

	_, err = walk.BFS(g, grid.P(0, 0), walk.WithDirections[rune]())
	require.ErrorIs(t, err, walk.ErrOptionViolation)
}

// TestBFS_InvalidInput covers nil grids and off-grid starts.
func TestBFS_InvalidInput(t *testing.T) {
	_, err := walk.BFS[rune](nil, grid.P(0, 0))
	require.ErrorIs(t, err, walk.ErrGridNil)

	_, err = walk.BFS(mustParse(t, "ab"), grid.P(2, 0))
	require.ErrorIs(t, err, walk.ErrStartOutOfBounds)
}

// TestBFS_OnVisitError aborts the traversal and wraps the hook error.
func TestBFS_OnVisitError(t *testing.T) {
	stop := errors.New("stop")
	visits := 0
	_, err := walk.BFS(mustParse(t, "....."), grid.P(0, 0), walk.WithOnVisit(func(p grid.Position, _ rune, depth int) error {
		visits++
		if depth == 2 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	require.Equal(t, 3, visits)
}

// TestBFS_Cancelled returns the context error.
func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := walk.BFS(mustParse(t, "..\n.."), grid.P(0, 0), walk.WithContext[rune](ctx))
	require.ErrorIs(t, err, context.Canceled)
}
