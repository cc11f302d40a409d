package planner

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/urbanplan/conflict"
	"github.com/katalvlaran/urbanplan/dijkstra"
	"github.com/katalvlaran/urbanplan/knapsack"
	"github.com/katalvlaran/urbanplan/nqueens"
	"github.com/katalvlaran/urbanplan/planerr"
)

// RunAll answers every task concurrently. Task errors are recorded in the
// report; the returned error is non-nil only when ctx is done before all
// tasks have run.
func (p *Planner) RunAll(ctx context.Context, params Params) (*Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start, end := params.RouteStart, params.RouteEnd
	if p.graphErr == nil && p.graph.Len() > 0 {
		if start == "" {
			start = p.graph.ID(0)
		}
		if end == "" {
			end = p.graph.ID(p.graph.Len() - 1)
		}
	}

	var (
		report Report
		errs   = make([]error, len(Tasks))
	)
	jobs := map[Task]func() error{
		TaskRoute: slot(&report.Route, func() (dijkstra.PathResult, error) {
			return p.Route(start, end)
		}),
		TaskCorridor: slot(&report.Corridor, p.Corridor),
		TaskBackbone: slot(&report.Backbone, p.Backbone),
		TaskBudget: slot(&report.Budget, func() (knapsack.SelectionResult, error) {
			return p.Budget(params.Budget)
		}),
		TaskBoundary: slot(&report.Boundary, p.Boundary),
		TaskSensors: slot(&report.Sensors, func() (nqueens.PlacementResult, error) {
			return p.Sensors(params.Sensors)
		}),
		TaskProximity:   slot(&report.Proximity, p.Proximity),
		TaskEquity:      slot(&report.Equity, p.Equity),
		TaskMaintenance: slot(&report.Maintenance, p.Maintenance),
		TaskCoverage: slot(&report.Coverage, func() (conflict.ConflictResult, error) {
			return p.Coverage(params.Threshold)
		}),
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, task := range Tasks {
		job := jobs[task]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			errs[i] = job()

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for i, err := range errs {
		if err == nil {
			continue
		}
		report.Failures = append(report.Failures, Failure{
			Task:    Tasks[i],
			Kind:    planerr.KindOf(err),
			Message: err.Error(),
			Err:     err,
		})
	}
	p.logger.Debug("run complete", "tasks", len(Tasks), "failures", len(report.Failures))

	return &report, nil
}

// slot adapts a solver call so that a successful result is stored in *dst.
// Each job owns its own report field.
func slot[T any](dst **T, fn func() (T, error)) func() error {
	return func() error {
		res, err := fn()
		if err != nil {
			return err
		}
		*dst = &res

		return nil
	}
}
