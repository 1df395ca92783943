package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridray/grid"
	"github.com/katalvlaran/gridray/internal/render"
)

func newShowCmd(a *app) *cobra.Command {
	var marks []string
	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Render the grid, highlighting marked cells",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGrid(args[0])
			if err != nil {
				return err
			}
			m := make(map[grid.Position]render.Mark, len(marks))
			for _, s := range marks {
				p, err := parsePosition(s)
				if err != nil {
					return fmt.Errorf("--mark: %w", err)
				}
				if !g.InBounds(p) {
					a.logger.Warn("mark outside grid", "position", p)
					continue
				}
				m[p] = render.MarkPath
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.painter.Marked(g, m))
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&marks, "mark", nil, "Cell to highlight as x,y (repeatable)")
	return cmd
}
