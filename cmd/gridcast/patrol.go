package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridray/grid"
	"github.com/katalvlaran/gridray/internal/render"
	"github.com/katalvlaran/gridray/walk"
)

func newPatrolCmd(a *app) *cobra.Command {
	var (
		wall string
		draw bool
	)
	cmd := &cobra.Command{
		Use:   "patrol <file>",
		Short: "Follow a guard (^ > v <) until it leaves the grid or loops",
		Long: `Finds the guard marked by an arrow (^ > v <), walks it forward and turns it
clockwise at every --wall cell. Prints the number of distinct cells visited,
or reports that the guard is stuck in a loop.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGrid(args[0])
			if err != nil {
				return err
			}
			w, err := firstRune("wall", wall)
			if err != nil {
				return err
			}

			arrows := grid.ArrowMap()
			start, ok := g.Find(func(r rune) bool {
				_, isArrow := arrows.Direction(r)
				return isArrow
			})
			if !ok {
				return errors.New("no guard (^ > v <) found")
			}
			r, _ := g.Get(start)
			dir, _ := arrows.Direction(r)

			p := walk.NewPatrol(g, start, dir, func(c rune) bool { return c == w })
			visited, looped := p.Visited()
			a.logger.Info("patrol finished", "start", start, "heading", dir, "looped", looped)

			out := cmd.OutOrStdout()
			if looped {
				fmt.Fprintf(out, "loop after visiting %d cells\n", len(visited))
			} else {
				fmt.Fprintf(out, "visited: %d\n", len(visited))
			}
			if draw {
				marks := make(map[grid.Position]render.Mark, len(visited))
				for q := range visited {
					marks[q] = render.MarkPath
				}
				marks[start] = render.MarkOrigin
				fmt.Fprintln(out, a.painter.Marked(g, marks))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&wall, "wall", "#", "Obstacle character")
	cmd.Flags().BoolVar(&draw, "draw", false, "Render the grid with the route highlighted")
	return cmd
}
