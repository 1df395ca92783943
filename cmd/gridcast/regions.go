package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridray/region"
)

func newRegionsCmd(a *app) *cobra.Command {
	var (
		conn   string
		ignore string
		paint  bool
	)
	cmd := &cobra.Command{
		Use:   "regions <file>",
		Short: "List connected regions of equal cells with area, perimeter and sides",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGrid(args[0])
			if err != nil {
				return err
			}
			if conn == "" {
				conn = a.cfg.Regions.Connectivity
			}
			c, err := region.ParseConnectivity(conn)
			if err != nil {
				return err
			}
			opts := region.Options[rune]{Conn: c}
			if ignore != "" {
				opts.Ignore = func(r rune) bool { return strings.ContainsRune(ignore, r) }
			}
			part := region.Find(g, opts)
			a.logger.Info("regions found", "count", len(part.Regions), "conn", c)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-4s %-5s %6s %9s %5s\n", "ID", "VALUE", "AREA", "PERIMETER", "SIDES")
			var byPerimeter, bySides int
			for _, r := range part.Regions {
				per, err := part.Perimeter(r.ID)
				if err != nil {
					return err
				}
				sides, err := part.Sides(r.ID)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-4d %-5q %6d %9d %5d\n", r.ID, r.Value, r.Area(), per, sides)
				byPerimeter += r.Area() * per
				bySides += r.Area() * sides
			}
			fmt.Fprintf(out, "total area×perimeter: %d\n", byPerimeter)
			fmt.Fprintf(out, "total area×sides: %d\n", bySides)

			if paint {
				fmt.Fprintln(out, a.painter.Regions(g, part.Labels()))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&conn, "conn", "", "Connectivity: 4 or 8 (default from config)")
	cmd.Flags().StringVar(&ignore, "ignore", "", "Characters that belong to no region")
	cmd.Flags().BoolVar(&paint, "paint", false, "Render the grid coloured by region")
	return cmd
}
