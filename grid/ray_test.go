package grid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridray/grid"
)

func rectGrid(t *testing.T) *grid.Grid[rune] {
	t.Helper()
	g, err := grid.Parse("ABC\nDEF")
	require.NoError(t, err)
	return g
}

type step struct {
	p grid.Position
	v rune
}

func collect(r *grid.Ray[rune]) []step {
	var out []step
	for p, v := range r.All() {
		out = append(out, step{p, v})
	}
	return out
}

// TestCastRay_Rect covers the three reference rays on the ABC/DEF grid.
func TestCastRay_Rect(t *testing.T) {
	g := rectGrid(t)
	cases := []struct {
		name string
		dir  grid.Direction
		want []step
	}{
		{"Down", grid.D(0, 1), []step{{grid.P(0, 0), 'A'}, {grid.P(0, 1), 'D'}}},
		{"Diagonal", grid.D(1, 1), []step{{grid.P(0, 0), 'A'}, {grid.P(1, 1), 'E'}}},
		{"Right", grid.D(1, 0), []step{{grid.P(0, 0), 'A'}, {grid.P(1, 0), 'B'}, {grid.P(2, 0), 'C'}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, collect(grid.CastRay(g, grid.P(0, 0), tc.dir)))
		})
	}
}

// TestCastRay_NegativeEdge ensures stepping past column/row 0 terminates
// instead of wrapping.
func TestCastRay_NegativeEdge(t *testing.T) {
	g := rectGrid(t)

	got := collect(grid.CastRay(g, grid.P(2, 1), grid.NorthWest))
	require.Equal(t, []step{{grid.P(2, 1), 'F'}, {grid.P(1, 0), 'B'}}, got)

	got = collect(grid.CastRay(g, grid.P(2, 0), grid.West))
	require.Equal(t, []step{{grid.P(2, 0), 'C'}, {grid.P(1, 0), 'B'}, {grid.P(0, 0), 'A'}}, got)
}

// TestCastRay_OriginOutside yields nothing.
func TestCastRay_OriginOutside(t *testing.T) {
	g := rectGrid(t)
	require.Empty(t, collect(grid.CastRay(g, grid.P(3, 0), grid.West)))
	require.Empty(t, collect(grid.CastRay(g, grid.P(-1, 0), grid.East)))
}

// TestCastRay_Inclusive checks the first item is the origin for every cell.
func TestCastRay_Inclusive(t *testing.T) {
	g := rectGrid(t)
	for p, v := range g.All() {
		for _, d := range grid.AllDirections() {
			q, got, ok := grid.CastRay(g, p, d).Next()
			require.True(t, ok)
			require.Equal(t, p, q)
			require.Equal(t, v, got)
		}
	}
}

// TestCastRay_Finite bounds every unit ray by max(height, width).
func TestCastRay_Finite(t *testing.T) {
	g, err := grid.Parse("abcd\nefgh\nijkl")
	require.NoError(t, err)
	h, w := g.Dimensions()
	for p := range g.All() {
		for _, d := range grid.AllDirections() {
			n := len(collect(grid.CastRay(g, p, d)))
			require.GreaterOrEqual(t, n, 1)
			require.LessOrEqual(t, n, max(h, w))
		}
	}
}

// TestRay_Exhausted verifies termination is permanent.
func TestRay_Exhausted(t *testing.T) {
	g := rectGrid(t)
	r := grid.CastRay(g, grid.P(1, 0), grid.South)
	require.Equal(t, []rune("BE"), r.Take(5))
	for i := 0; i < 3; i++ {
		_, _, ok := r.Next()
		require.False(t, ok)
	}
	require.Empty(t, r.Take(2))

	all := grid.CastRay(g, grid.P(0, 0), grid.East).Take(math.MaxInt)
	require.Equal(t, []rune("ABC"), all)
}

// TestRay_Stride casts along a non-unit vector.
func TestRay_Stride(t *testing.T) {
	g, err := grid.Parse("abcdefg")
	require.NoError(t, err)
	require.Equal(t, []rune("aceg"), grid.CastRay(g, grid.P(0, 0), grid.D(2, 0)).Take(10))
	require.Equal(t, []rune("gda"), grid.CastRay(g, grid.P(6, 0), grid.D(-3, 0)).Take(10))
}

// TestRay_ZeroDirection is only safe with an explicit bound.
func TestRay_ZeroDirection(t *testing.T) {
	g := rectGrid(t)
	require.Equal(t, []rune("EEEE"), grid.CastRay(g, grid.P(1, 1), grid.D(0, 0)).Take(4))
	require.True(t, grid.MatchRay(g, grid.P(1, 1), grid.D(0, 0), []rune("EE")))
}

// TestMatchRay checks prefix matching, including running off the edge.
func TestMatchRay(t *testing.T) {
	g, err := grid.Parse("XMAS\nMMMM\nAAAA\nSSSX")
	require.NoError(t, err)
	xmas := []rune("XMAS")

	require.True(t, grid.MatchRay(g, grid.P(0, 0), grid.East, xmas))
	require.True(t, grid.MatchRay(g, grid.P(0, 0), grid.South, xmas))
	require.True(t, grid.MatchRay(g, grid.P(0, 0), grid.SouthEast, []rune("XMAX")))
	require.False(t, grid.MatchRay(g, grid.P(0, 0), grid.SouthEast, xmas))
	require.False(t, grid.MatchRay(g, grid.P(3, 3), grid.West, xmas))
	require.False(t, grid.MatchRay(g, grid.P(1, 0), grid.East, xmas))
	require.True(t, grid.MatchRay(g, grid.P(2, 2), grid.East, nil))
}
