package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridray/grid"
	"github.com/katalvlaran/gridray/walk"
)

func newTrailsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "trails <file>",
		Short: "Score hiking trails on a digit height map",
		Long: `Reads a grid of digits. A trail starts at 0 and climbs exactly one unit
per 4-directional step up to 9. For every trailhead the score is the number
of distinct 9s reachable and the rating is the number of distinct trails.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readText(args[0])
			if err != nil {
				return err
			}
			g, err := grid.ParseDigits(text)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			heads := g.FindAll(func(v int) bool { return v == 0 })
			var score, rating int
			for _, p := range heads {
				score += summits(g, p)
				rating += summits(g, p, walk.HikeRevisits())
			}
			a.logger.Debug("trails scored", "trailheads", len(heads))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "trailheads: %d\n", len(heads))
			fmt.Fprintf(out, "score: %d\n", score)
			fmt.Fprintf(out, "rating: %d\n", rating)
			return nil
		},
	}
}

func climb(_, _ grid.Position, from, to int) bool { return to == from+1 }

// summits counts the 9s a hike from start yields.
func summits(g *grid.Grid[int], start grid.Position, opts ...walk.HikerOption) int {
	n := 0
	for _, v := range walk.NewHiker(g, start, climb, opts...).All() {
		if v == 9 {
			n++
		}
	}
	return n
}
