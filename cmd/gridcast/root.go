package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridray/internal/config"
	"github.com/katalvlaran/gridray/internal/render"
)

// app carries state shared by every subcommand once the root has loaded it.
type app struct {
	configPath string
	logLevel   string

	cfg     config.Config
	logger  *log.Logger
	painter *render.Painter
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "gridcast",
		Short: "Inspect text grids: rays, regions, paths and word searches",
		Long: `gridcast loads a rectangular text grid and runs one analysis on it.

Examples:
  gridcast info map.txt
  gridcast ray map.txt --from 0,0 --dir 1,1
  gridcast regions garden.txt --conn 4 --paint
  gridcast count puzzle.txt --word XMAS`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	root.AddCommand(
		newInfoCmd(a),
		newShowCmd(a),
		newRayCmd(a),
		newRegionsCmd(a),
		newCountCmd(a),
		newPathCmd(a),
		newPatrolCmd(a),
		newTrailsCmd(a),
	)
	return root
}

// setup loads configuration and builds the logger and painter.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := cfg.Log.Level
	if a.logLevel != "" {
		level = a.logLevel
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		ReportTimestamp: true,
		Prefix:          "gridcast",
		Level:           lvl,
	})
	a.painter = render.New(lipgloss.NewRenderer(cmd.OutOrStdout()), cfg.Render)
	a.logger.Debug("config loaded", "path", a.configPath, "workers", cfg.Scan.Workers, "connectivity", cfg.Regions.Connectivity)
	return nil
}

// stdin is swapped in tests.
var stdin = os.Stdin
