package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridray/grid"
	"github.com/katalvlaran/gridray/internal/render"
	"github.com/katalvlaran/gridray/walk"
)

func newPathCmd(a *app) *cobra.Command {
	var (
		from, to, wall string
		weighted       bool
		draw           bool
	)
	cmd := &cobra.Command{
		Use:   "path <file>",
		Short: "Find the shortest path between two cells, avoiding walls",
		Long: `Finds a shortest 4-directional path from --from to --to that never enters
a --wall cell. With --weighted the grid must contain digits and entering a
cell costs its digit; the path then minimises total cost.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGrid(args[0])
			if err != nil {
				return err
			}
			src, err := parsePosition(from)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			dst, err := parsePosition(to)
			if err != nil {
				return fmt.Errorf("--to: %w", err)
			}
			w, err := firstRune("wall", wall)
			if err != nil {
				return err
			}

			opts := []walk.Option[rune]{
				walk.WithContext[rune](cmd.Context()),
				walk.WithStep(func(_, _ grid.Position, _, c rune) bool { return c != w }),
			}
			var res *walk.Result
			if weighted {
				res, err = walk.Cheapest(g, src, digitCost, opts...)
			} else {
				res, err = walk.BFS(g, src, opts...)
			}
			if err != nil {
				return err
			}
			path, err := res.PathTo(dst)
			if err != nil {
				return err
			}
			a.logger.Info("path found", "from", src, "to", dst, "steps", len(path)-1, "reached", len(res.Order))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "steps: %d\n", len(path)-1)
			if weighted {
				fmt.Fprintf(out, "cost: %d\n", res.Depth[dst])
			}
			if draw {
				marks := make(map[grid.Position]render.Mark, len(path))
				for _, p := range path {
					marks[p] = render.MarkPath
				}
				marks[src] = render.MarkOrigin
				fmt.Fprintln(out, a.painter.Marked(g, marks))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "0,0", "Start as x,y")
	cmd.Flags().StringVar(&to, "to", "", "Destination as x,y")
	cmd.Flags().StringVar(&wall, "wall", "#", "Impassable character")
	cmd.Flags().BoolVar(&weighted, "weighted", false, "Treat digits as entry costs")
	cmd.Flags().BoolVar(&draw, "draw", false, "Render the grid with the path highlighted")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

// digitCost prices entering a digit cell at its value; other cells are impassable.
func digitCost(_, _ grid.Position, _, to rune) (int, bool) {
	if to < '0' || to > '9' {
		return 0, false
	}
	return int(to - '0'), true
}
