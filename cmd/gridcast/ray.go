package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridray/grid"
	"github.com/katalvlaran/gridray/internal/render"
)

func newRayCmd(a *app) *cobra.Command {
	var (
		from, dir string
		limit     int
		draw      bool
	)
	cmd := &cobra.Command{
		Use:   "ray <file>",
		Short: "Cast a ray and list the cells it passes",
		Long: `Casts a ray from --from along --dir and prints every cell until the ray
leaves the grid. The origin is always the first cell. --dir accepts "dx,dy"
or a compass name (n, ne, e, se, s, sw, w, nw).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGrid(args[0])
			if err != nil {
				return err
			}
			origin, err := parsePosition(from)
			if err != nil {
				return fmt.Errorf("--from: %w", err)
			}
			d, err := parseDirection(dir)
			if err != nil {
				return fmt.Errorf("--dir: %w", err)
			}
			if d.IsZero() && limit <= 0 {
				return errors.New("--dir 0,0 never leaves the grid; set --limit")
			}

			out := cmd.OutOrStdout()
			marks := make(map[grid.Position]render.Mark)
			ray := grid.CastRay(g, origin, d)
			n := 0
			for p, v := range ray.All() {
				if limit > 0 && n == limit {
					break
				}
				fmt.Fprintf(out, "%v %c\n", p, v)
				if _, seen := marks[p]; !seen {
					marks[p] = render.MarkPath
				}
				n++
			}
			a.logger.Info("ray cast", "origin", origin, "dir", d, "cells", n)

			if draw && n > 0 {
				marks[origin] = render.MarkOrigin
				fmt.Fprintln(out, a.painter.Marked(g, marks))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "0,0", "Origin as x,y")
	cmd.Flags().StringVar(&dir, "dir", "e", "Direction as dx,dy or compass name")
	cmd.Flags().IntVar(&limit, "limit", 0, "Stop after this many cells (0 = until off-grid)")
	cmd.Flags().BoolVar(&draw, "draw", false, "Render the grid with the ray highlighted")
	return cmd
}
