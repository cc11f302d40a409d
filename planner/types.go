package planner

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/urbanplan/activity"
	"github.com/katalvlaran/urbanplan/closestpair"
	"github.com/katalvlaran/urbanplan/conflict"
	"github.com/katalvlaran/urbanplan/dijkstra"
	"github.com/katalvlaran/urbanplan/hull"
	"github.com/katalvlaran/urbanplan/knapsack"
	"github.com/katalvlaran/urbanplan/mst"
	"github.com/katalvlaran/urbanplan/nqueens"
	"github.com/katalvlaran/urbanplan/planerr"
)

// Sentinel errors.
var (
	// ErrNilSnapshot indicates New was called without a snapshot.
	ErrNilSnapshot = planerr.New(planerr.InvalidInput, "planner: snapshot is nil")

	// ErrEmptyNetwork indicates a corridor query on a network without nodes.
	ErrEmptyNetwork = planerr.New(planerr.Unsolvable, "planner: network has no nodes")
)

// Task names one planning question.
type Task string

// Tasks run by RunAll.
const (
	TaskRoute       Task = "route"
	TaskCorridor    Task = "corridor"
	TaskBackbone    Task = "backbone"
	TaskBudget      Task = "budget"
	TaskBoundary    Task = "boundary"
	TaskSensors     Task = "sensors"
	TaskProximity   Task = "proximity"
	TaskEquity      Task = "equity"
	TaskMaintenance Task = "maintenance"
	TaskCoverage    Task = "coverage"
)

// Tasks lists every task in report order.
var Tasks = []Task{
	TaskRoute, TaskCorridor, TaskBackbone, TaskBudget, TaskBoundary,
	TaskSensors, TaskProximity, TaskEquity, TaskMaintenance, TaskCoverage,
}

// Params carries the per-run inputs of RunAll.
type Params struct {
	// RouteStart and RouteEnd bound the Route task. Empty values select the
	// first and last network node respectively.
	RouteStart string
	RouteEnd   string

	Budget    int
	Sensors   int
	Threshold float64
}

// Failure records one task that returned an error.
type Failure struct {
	Task    Task         `json:"task"`
	Kind    planerr.Kind `json:"kind,omitempty"`
	Message string       `json:"message"`
	Err     error        `json:"-"`
}

// Report gathers the results of RunAll. A nil slot means its task failed.
type Report struct {
	Route       *dijkstra.PathResult           `json:"route,omitempty"`
	Corridor    *dijkstra.PathResult           `json:"corridor,omitempty"`
	Backbone    *mst.TreeResult                `json:"backbone,omitempty"`
	Budget      *knapsack.SelectionResult      `json:"budget,omitempty"`
	Boundary    *hull.HullResult               `json:"boundary,omitempty"`
	Sensors     *nqueens.PlacementResult       `json:"sensors,omitempty"`
	Proximity   *closestpair.ClosestPairResult `json:"proximity,omitempty"`
	Equity      *closestpair.ClosestPairResult `json:"equity,omitempty"`
	Maintenance *activity.ScheduleResult       `json:"maintenance,omitempty"`
	Coverage    *conflict.ConflictResult       `json:"coverage,omitempty"`

	// Failures lists failed tasks in Tasks order.
	Failures []Failure `json:"failures,omitempty"`
}

// Failed returns the failure recorded for task, if any.
func (r *Report) Failed(task Task) (Failure, bool) {
	for _, f := range r.Failures {
		if f.Task == task {
			return f, true
		}
	}

	return Failure{}, false
}

// Option configures a Planner.
type Option func(*Planner)

// WithLogger sets the logger used for per-task debug timing. The default
// discards everything.
func WithLogger(l *log.Logger) Option {
	return func(p *Planner) {
		if l != nil {
			p.logger = l
		}
	}
}

func discardLogger() *log.Logger { return log.New(io.Discard) }
