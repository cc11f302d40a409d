package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) routeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "route [START END]",
		Short: "Shortest road path between two nodes",
		Long:  `route finds the minimum-cost road path between START and END. Without arguments it uses --from and --to; an empty --to selects the last network node.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("route takes START and END, or no arguments (got %d)", len(args))
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			start, end := a.cfg.Route.Start, a.cfg.Route.End
			if len(args) == 2 {
				start, end = args[0], args[1]
			}
			if end == "" {
				if g, err := a.planner.Network(); err == nil && g.Len() > 0 {
					end = g.ID(g.Len() - 1)
				}
			}
			res, err := a.planner.Route(start, end)
			if err != nil {
				return err
			}

			return a.emit(res, func(r *renderer) { r.path(res) })
		},
	}
}

func (a *app) corridorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "corridor",
		Short: "Shortest path from the first to the last network node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.planner.Corridor()
			if err != nil {
				return err
			}

			return a.emit(res, func(r *renderer) { r.path(res) })
		},
	}
}

func (a *app) mstCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "mst",
		Aliases: []string{"backbone"},
		Short:   "Minimum spanning road backbone",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.planner.Backbone()
			if err != nil {
				return err
			}

			return a.emit(res, func(r *renderer) { r.tree(res) })
		},
	}
}

func (a *app) budgetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "budget",
		Short: "Most beneficial project portfolio within --budget",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.planner.Budget(a.cfg.Budget)
			if err != nil {
				return err
			}

			return a.emit(res, func(r *renderer) { r.selection(res) })
		},
	}
}

func (a *app) hullCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "hull",
		Aliases: []string{"boundary"},
		Short:   "Convex service boundary of all localities",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.planner.Boundary()
			if err != nil {
				return err
			}

			return a.emit(res, func(r *renderer) { r.boundary(res) })
		},
	}
}

func (a *app) sensorsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sensors",
		Short: "Place --sensors non-conflicting sensors on a grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.planner.Sensors(a.cfg.Sensors)
			if err != nil {
				return err
			}

			return a.emit(res, func(r *renderer) { r.placement(res) })
		},
	}
}

func (a *app) proximityCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "proximity",
		Short: "Closest pair of emergency facilities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.planner.Proximity()
			if err != nil {
				return err
			}

			return a.emit(res, func(r *renderer) { r.pair(res) })
		},
	}
}

func (a *app) equityCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "equity",
		Short: "Closest pair of underserved areas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.planner.Equity()
			if err != nil {
				return err
			}

			return a.emit(res, func(r *renderer) { r.pair(res) })
		},
	}
}

func (a *app) maintenanceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "maintenance",
		Short: "Largest set of non-overlapping maintenance windows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.planner.Maintenance()
			if err != nil {
				return err
			}

			return a.emit(res, func(r *renderer) { r.schedule(res) })
		},
	}
}

func (a *app) coverageCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "coverage",
		Short: "Localities pairwise at least --threshold apart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.planner.Coverage(a.cfg.Threshold)
			if err != nil {
				return err
			}

			return a.emit(res, func(r *renderer) { r.coverage(res) })
		},
	}
}

func (a *app) allCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run every solver and print a combined report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			report, err := a.planner.RunAll(cmd.Context(), a.cfg.Params())
			if err != nil {
				return err
			}
			for _, f := range report.Failures {
				logger.Warn("task failed", "task", f.Task, "err", f.Message)
			}

			return a.emit(report, func(r *renderer) { r.report(report) })
		},
	}
}
