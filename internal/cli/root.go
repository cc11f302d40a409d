// Package cli implements the urbanplan command-line interface.
//
// Every subcommand answers one planning question over a dataset snapshot
// (the built-in Nagpur sample unless --dataset is given) and prints the answer
// as text or, with --output json, as a JSON document. The all command runs
// every question concurrently and prints a combined report.
//
// Settings are layered: defaults, then the TOML file named by --config, then
// explicit flags. --verbose switches the stderr logger to debug level, which
// adds per-solver timing.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/urbanplan/config"
	"github.com/katalvlaran/urbanplan/dataset"
	"github.com/katalvlaran/urbanplan/planner"
)

// app holds state shared by all commands of one invocation.
type app struct {
	stdout     io.Writer
	stderr     io.Writer
	configPath string
	cfg        config.Config
	planner    *planner.Planner
}

// Execute runs the CLI with os.Args and the standard streams.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree writing results to stdout and logs
// to stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, cfg: config.Default()}

	root := &cobra.Command{
		Use:           "urbanplan",
		Short:         "urbanplan answers municipal planning questions over a city dataset",
		Long:          `urbanplan runs route, network backbone, budget, boundary, sensor placement, proximity, maintenance and coverage solvers over a fixed-size urban dataset.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "TOML config file")
	a.cfg.BindFlags(root.PersistentFlags())

	root.AddCommand(
		a.routeCommand(),
		a.corridorCommand(),
		a.mstCommand(),
		a.budgetCommand(),
		a.hullCommand(),
		a.sensorsCommand(),
		a.proximityCommand(),
		a.equityCommand(),
		a.maintenanceCommand(),
		a.coverageCommand(),
		a.allCommand(),
	)

	return root
}

// setup merges the config layers, attaches the logger and loads the dataset.
func (a *app) setup(cmd *cobra.Command) error {
	if a.configPath != "" {
		fileCfg, err := config.Load(a.configPath)
		if err != nil {
			return err
		}
		if a.cfg, err = config.Overlay(fileCfg, cmd.Flags()); err != nil {
			return err
		}
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	level := log.InfoLevel
	if a.cfg.Verbose {
		level = log.DebugLevel
	}
	logger := newLogger(a.stderr, level)
	cmd.SetContext(withLogger(cmd.Context(), logger))

	snap := dataset.Default()
	if a.cfg.Dataset != "" {
		loaded, err := dataset.Load(a.cfg.Dataset)
		if err != nil {
			return err
		}
		snap = loaded
	}
	logger.Debug("dataset loaded", "name", snap.Name, "nodes", len(snap.Nodes), "edges", len(snap.Edges))

	p, err := planner.New(snap, planner.WithLogger(logger))
	if err != nil {
		return errors.Wrap(err, "create planner")
	}
	a.planner = p

	return nil
}
