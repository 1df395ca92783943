package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridray/graph"
	"github.com/katalvlaran/gridray/grid"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Print dimensions, cell counts and connected plots",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGrid(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			h, w := g.Dimensions()
			fmt.Fprintf(out, "size: %d rows × %d cols (%d cells)\n", h, w, g.Len())

			counts := make(map[rune]int)
			for _, r := range g.All() {
				counts[r]++
			}
			keys := make([]rune, 0, len(counts))
			for r := range counts {
				keys = append(keys, r)
			}
			slices.Sort(keys)
			for _, r := range keys {
				fmt.Fprintf(out, "  %q: %d\n", r, counts[r])
			}

			gr := graph.FromGrid(g, grid.Cardinal(), func(x, y rune) bool { return x == y }, false)
			fmt.Fprintf(out, "plots: %d (%d adjacencies)\n", len(gr.Components()), gr.EdgeCount())
			return nil
		},
	}
}
