package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridray/grid"
	"github.com/katalvlaran/gridray/scan"
)

func newCountCmd(a *app) *cobra.Command {
	var (
		word     string
		cardinal bool
		workers  int
	)
	cmd := &cobra.Command{
		Use:   "count <file>",
		Short: "Count occurrences of a word along straight lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if word == "" {
				return errors.New("--word is required")
			}
			g, err := a.loadGrid(args[0])
			if err != nil {
				return err
			}
			dirs := grid.AllDirections()
			if cardinal {
				dirs = grid.Cardinal()
			}
			if !cmd.Flags().Changed("workers") {
				workers = a.cfg.Scan.Workers
			}

			n, err := scan.CountRays(cmd.Context(), g, dirs, []rune(word), scan.WithWorkers(workers))
			if err != nil {
				return err
			}
			a.logger.Debug("scan finished", "word", word, "directions", len(dirs), "workers", workers)
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
	cmd.Flags().StringVar(&word, "word", "", "Word to search for")
	cmd.Flags().BoolVar(&cardinal, "cardinal", false, "Only search N, E, S and W")
	cmd.Flags().IntVar(&workers, "workers", 0, "Parallel rows (0 = GOMAXPROCS; default from config)")
	return cmd
}
