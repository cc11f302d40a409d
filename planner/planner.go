package planner

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/urbanplan/activity"
	"github.com/katalvlaran/urbanplan/closestpair"
	"github.com/katalvlaran/urbanplan/conflict"
	"github.com/katalvlaran/urbanplan/dataset"
	"github.com/katalvlaran/urbanplan/dijkstra"
	"github.com/katalvlaran/urbanplan/hull"
	"github.com/katalvlaran/urbanplan/knapsack"
	"github.com/katalvlaran/urbanplan/mst"
	"github.com/katalvlaran/urbanplan/network"
	"github.com/katalvlaran/urbanplan/nqueens"
)

// Planner runs the solvers over one snapshot.
type Planner struct {
	snap   *dataset.Snapshot
	logger *log.Logger

	// graph is built once; graphErr is returned by every network task when
	// the snapshot's road network is invalid.
	graph    *network.Graph
	graphErr error
}

// New binds a Planner to snap. An invalid road network does not fail New;
// it fails the network tasks only.
func New(snap *dataset.Snapshot, opts ...Option) (*Planner, error) {
	if snap == nil {
		return nil, ErrNilSnapshot
	}
	p := &Planner{snap: snap, logger: discardLogger()}
	for _, opt := range opts {
		opt(p)
	}
	p.graph, p.graphErr = snap.Network()
	if p.graphErr != nil {
		p.logger.Warn("road network rejected", "err", p.graphErr)
	}

	return p, nil
}

// Network returns the road graph built from the snapshot.
func (p *Planner) Network() (*network.Graph, error) { return p.graph, p.graphErr }

// Route finds the shortest road path from start to end.
func (p *Planner) Route(start, end string) (dijkstra.PathResult, error) {
	return observe(p, TaskRoute, func() (dijkstra.PathResult, error) {
		if p.graphErr != nil {
			return dijkstra.PathResult{}, p.graphErr
		}

		return dijkstra.ShortestPath(p.graph, start, end)
	})
}

// Corridor finds the shortest road path from the first to the last node of
// the network, in document order.
func (p *Planner) Corridor() (dijkstra.PathResult, error) {
	return observe(p, TaskCorridor, func() (dijkstra.PathResult, error) {
		if p.graphErr != nil {
			return dijkstra.PathResult{}, p.graphErr
		}
		if p.graph.Len() == 0 {
			return dijkstra.PathResult{}, ErrEmptyNetwork
		}

		return dijkstra.ShortestPath(p.graph, p.graph.ID(0), p.graph.ID(p.graph.Len()-1))
	})
}

// Backbone builds the minimum spanning forest of the road network.
func (p *Planner) Backbone() (mst.TreeResult, error) {
	return observe(p, TaskBackbone, func() (mst.TreeResult, error) {
		if p.graphErr != nil {
			return mst.TreeResult{}, p.graphErr
		}

		return mst.Kruskal(p.graph)
	})
}

// Budget selects the most beneficial project portfolio costing at most budget.
func (p *Planner) Budget(budget int) (knapsack.SelectionResult, error) {
	return observe(p, TaskBudget, func() (knapsack.SelectionResult, error) {
		return knapsack.Select(p.snap.ProjectList(), budget)
	})
}

// Boundary computes the convex boundary enclosing every locality.
func (p *Planner) Boundary() (hull.HullResult, error) {
	return observe(p, TaskBoundary, func() (hull.HullResult, error) {
		return hull.Build(p.snap.LocalityPoints())
	})
}

// Sensors places n mutually non-attacking sensors on an n×n grid.
func (p *Planner) Sensors(n int) (nqueens.PlacementResult, error) {
	return observe(p, TaskSensors, func() (nqueens.PlacementResult, error) {
		return nqueens.Place(n)
	})
}

// Proximity finds the two emergency facilities closest to each other.
func (p *Planner) Proximity() (closestpair.ClosestPairResult, error) {
	return observe(p, TaskProximity, func() (closestpair.ClosestPairResult, error) {
		return closestpair.Find(p.snap.EmergencyPoints())
	})
}

// Equity finds the two underserved areas closest to each other.
func (p *Planner) Equity() (closestpair.ClosestPairResult, error) {
	return observe(p, TaskEquity, func() (closestpair.ClosestPairResult, error) {
		return closestpair.Find(p.snap.UnderservedPoints())
	})
}

// Maintenance schedules the largest set of non-overlapping traffic flow
// maintenance windows.
func (p *Planner) Maintenance() (activity.ScheduleResult, error) {
	return observe(p, TaskMaintenance, func() (activity.ScheduleResult, error) {
		return activity.Schedule(p.snap.Intervals())
	})
}

// Coverage selects localities that are pairwise at least threshold apart.
func (p *Planner) Coverage(threshold float64) (conflict.ConflictResult, error) {
	return observe(p, TaskCoverage, func() (conflict.ConflictResult, error) {
		return conflict.Select(p.snap.LocalityPoints(), threshold)
	})
}

// observe runs fn and logs its outcome with the elapsed time.
func observe[T any](p *Planner, task Task, fn func() (T, error)) (T, error) {
	start := time.Now()
	res, err := fn()
	elapsed := time.Since(start)
	if err != nil {
		p.logger.Debug("task failed", "task", task, "elapsed", elapsed, "err", err)

		return res, err
	}
	p.logger.Debug("task solved", "task", task, "elapsed", elapsed)

	return res, nil
}
