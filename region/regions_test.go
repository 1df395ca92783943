// File: region/regions_test.go
package region_test

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridray/grid"
	"github.com/katalvlaran/gridray/region"
)

func mustParse(t *testing.T, text string) *grid.Grid[rune] {
	t.Helper()
	g, err := grid.Parse(text)
	require.NoError(t, err)
	return g
}

func mustRows(t *testing.T, rows [][]int) *grid.Grid[int] {
	t.Helper()
	g, err := grid.FromRows(rows)
	require.NoError(t, err)
	return g
}

func water(v int) bool { return v == 0 }

// TestFind_Simple4 runs Find on a 4×3 grid with orthogonal connectivity.
//
// Grid (1 = land, 0 = water):
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
//
// Expected: 2 regions of sizes 4 and 2.
func TestFind_Simple4(t *testing.T) {
	g := mustRows(t, [][]int{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
	})
	pt := region.Find(g, region.Options[int]{Conn: region.Conn4, Ignore: water})
	require.Len(t, pt.Regions, 2)

	sizes := []int{pt.Regions[0].Area(), pt.Regions[1].Area()}
	sort.Ints(sizes)
	require.Equal(t, []int{2, 4}, sizes)

	_, ok := pt.Label(grid.P(0, 0))
	require.False(t, ok, "water has no label")
	id, ok := pt.Label(grid.P(3, 2))
	require.True(t, ok)
	require.Equal(t, 1, id)
}

// TestFind_Diagonal8 uses Conn8 to join "touching corners" cells.
//
//	1 0 0 0 1
//	0 1 0 1 0
//	0 0 1 0 0
//	0 1 0 1 0
//	1 0 0 0 1
//
// With Conn8 all nine ones form a single region; with Conn4 they are nine.
func TestFind_Diagonal8(t *testing.T) {
	g := mustRows(t, [][]int{
		{1, 0, 0, 0, 1},
		{0, 1, 0, 1, 0},
		{0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	})
	pt := region.Find(g, region.Options[int]{Conn: region.Conn8, Ignore: water})
	require.Len(t, pt.Regions, 1)
	require.Equal(t, 9, pt.Regions[0].Area())

	pt4 := region.Find(g, region.Options[int]{Conn: region.Conn4, Ignore: water})
	require.Len(t, pt4.Regions, 9)
}

// TestFind_EqualValues splits regions on value changes and numbers them in
// row-major order of their first cell.
func TestFind_EqualValues(t *testing.T) {
	g := mustParse(t, "AAAA\nBBCD\nBBCC\nEEEC\n")
	pt := region.Find(g, region.DefaultOptions[rune]())

	var values []rune
	for i, r := range pt.Regions {
		require.Equal(t, i, r.ID)
		values = append(values, r.Value)
	}
	require.Equal(t, []rune("ABCDE"), values)

	want := []grid.Position{grid.P(2, 1), grid.P(2, 2), grid.P(3, 2), grid.P(3, 3)}
	got := append([]grid.Position(nil), pt.Regions[2].Cells...)
	sort.Slice(got, func(i, j int) bool {
		if got[i].Y != got[j].Y {
			return got[i].Y < got[j].Y
		}
		return got[i].X < got[j].X
	})
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("region C cells mismatch (-want +got):\n%s", diff)
	}
}

// TestPerimeterAndSides checks fence measurements on two reference gardens.
func TestPerimeterAndSides(t *testing.T) {
	cases := []struct {
		name                       string
		text                       string
		wantPerimeter, wantSides   []int
		wantPrice, wantBulkPricing int
	}{
		{
			name:            "Small",
			text:            "AAAA\nBBCD\nBBCC\nEEEC\n",
			wantPerimeter:   []int{10, 8, 10, 4, 8},
			wantSides:       []int{4, 4, 8, 4, 4},
			wantPrice:       140,
			wantBulkPricing: 80,
		},
		{
			name:            "Holes",
			text:            "OOOOO\nOXOXO\nOOOOO\nOXOXO\nOOOOO\n",
			wantPerimeter:   []int{36, 4, 4, 4, 4},
			wantSides:       []int{20, 4, 4, 4, 4},
			wantPrice:       772,
			wantBulkPricing: 436,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pt := region.Find(mustParse(t, tc.text), region.DefaultOptions[rune]())
			require.Len(t, pt.Regions, len(tc.wantPerimeter))

			price, bulk := 0, 0
			for i, r := range pt.Regions {
				per, err := pt.Perimeter(i)
				require.NoError(t, err)
				sides, err := pt.Sides(i)
				require.NoError(t, err)
				require.Equal(t, tc.wantPerimeter[i], per, "perimeter of region %d (%c)", i, r.Value)
				require.Equal(t, tc.wantSides[i], sides, "sides of region %d (%c)", i, r.Value)
				price += r.Area() * per
				bulk += r.Area() * sides
			}
			require.Equal(t, tc.wantPrice, price)
			require.Equal(t, tc.wantBulkPricing, bulk)
		})
	}
}

// TestFindFunc groups letters case-insensitively.
func TestFindFunc(t *testing.T) {
	g := mustParse(t, "aA\nbB")
	fold := func(a, b rune) bool { return a|0x20 == b|0x20 }
	pt := region.FindFunc(g, region.DefaultOptions[rune](), fold)
	require.Len(t, pt.Regions, 2)
	require.Equal(t, 2, pt.Regions[0].Area())
}

// TestInvalidRegionIndex ensures measurement calls validate IDs.
func TestInvalidRegionIndex(t *testing.T) {
	pt := region.Find(mustParse(t, "ab"), region.DefaultOptions[rune]())
	_, err := pt.Perimeter(-1)
	require.ErrorIs(t, err, region.ErrRegionIndex)
	_, err = pt.Sides(2)
	require.ErrorIs(t, err, region.ErrRegionIndex)
}

// TestFind_NilGrid yields an empty partition.
func TestFind_NilGrid(t *testing.T) {
	pt := region.Find[rune](nil, region.DefaultOptions[rune]())
	require.Empty(t, pt.Regions)
	_, ok := pt.Label(grid.P(0, 0))
	require.False(t, ok)
	_, _, err := pt.Bridge(0, 1)
	require.ErrorIs(t, err, region.ErrRegionIndex)
}

// TestLabels returns an independent copy.
func TestLabels(t *testing.T) {
	pt := region.Find(mustParse(t, "a.b"), region.Options[rune]{Ignore: func(r rune) bool { return r == '.' }})
	labels := pt.Labels()
	require.Equal(t, []int{0, -1, 1}, labels.Row(0))

	labels.Set(grid.P(0, 0), 5)
	require.True(t, pt.Contains(0, grid.P(0, 0)))
}

// TestParseConnectivity accepts both spellings.
func TestParseConnectivity(t *testing.T) {
	for in, want := range map[string]region.Connectivity{"4": region.Conn4, "Conn8": region.Conn8, " conn4 ": region.Conn4, "8": region.Conn8} {
		got, err := region.ParseConnectivity(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := region.ParseConnectivity("6")
	require.ErrorIs(t, err, region.ErrConnectivity)
	require.Equal(t, "conn8", region.Conn8.String())
}
