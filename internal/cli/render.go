package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/katalvlaran/urbanplan/activity"
	"github.com/katalvlaran/urbanplan/closestpair"
	"github.com/katalvlaran/urbanplan/config"
	"github.com/katalvlaran/urbanplan/conflict"
	"github.com/katalvlaran/urbanplan/dijkstra"
	"github.com/katalvlaran/urbanplan/hull"
	"github.com/katalvlaran/urbanplan/knapsack"
	"github.com/katalvlaran/urbanplan/mst"
	"github.com/katalvlaran/urbanplan/nqueens"
	"github.com/katalvlaran/urbanplan/planner"
)

var headingStyle = lipgloss.NewStyle().Bold(true)

// emit writes v as JSON, or calls text with a renderer over stdout.
func (a *app) emit(v any, text func(r *renderer)) error {
	if a.cfg.Output == config.OutputJSON {
		enc := json.NewEncoder(a.stdout)
		enc.SetIndent("", "  ")

		return errors.Wrap(enc.Encode(v), "encode json")
	}

	r := &renderer{w: a.stdout}
	text(r)

	return errors.Wrap(r.err, "write output")
}

// renderer prints plain-text results. The first write error sticks and
// silences the rest.
type renderer struct {
	w   io.Writer
	err error
}

func (r *renderer) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, format, args...)
}

func (r *renderer) heading(title string) {
	r.printf("%s\n", headingStyle.Render("== "+title+" =="))
}

func (r *renderer) path(res dijkstra.PathResult) {
	r.printf("Path: %s\n", strings.Join(res.Path, " -> "))
	r.printf("Distance: %d (%d hops)\n", res.Distance, res.Hops())
}

func (r *renderer) tree(res mst.TreeResult) {
	t := table.New().Border(lipgloss.NormalBorder()).Headers("From", "To", "Cost")
	for _, e := range res.Edges {
		t.Row(e.U, e.V, strconv.FormatInt(e.Weight, 10))
	}
	r.printf("%s\n", t.String())
	r.printf("Total weight: %d\n", res.TotalWeight)
	if !res.Spanning() {
		r.printf("Network is disconnected: %d components\n", res.Components)
	}
}

func (r *renderer) selection(res knapsack.SelectionResult) {
	names := "(none)"
	if len(res.SelectedNames) > 0 {
		names = strings.Join(res.SelectedNames, ", ")
	}
	r.printf("Selected: %s\n", names)
	r.printf("Total benefit: %d\n", res.TotalBenefit)
	r.printf("Total cost: %d\n", res.TotalCost)
	r.printf("Remaining budget: %d\n", res.RemainingBudget)
}

func (r *renderer) boundary(res hull.HullResult) {
	r.printf("Boundary (%d vertices):\n", len(res.Vertices))
	for _, p := range res.Vertices {
		r.printf("  %s\n", p)
	}
	r.printf("Area: %.2f\n", res.Area)
}

func (r *renderer) placement(res nqueens.PlacementResult) {
	if !res.Success {
		r.printf("No placement exists for N=%d\n", res.N)
		return
	}
	r.printf("Placement for N=%d: %s\n", res.N, cells(res.Coordinates))
	for _, row := range res.Board() {
		r.printf("  %s\n", row)
	}
}

func (r *renderer) pair(res closestpair.ClosestPairResult) {
	r.printf("Closest pair: %s / %s\n", res.A.Name, res.B.Name)
	r.printf("Distance: %.3f\n", res.Distance)
}

func (r *renderer) schedule(res activity.ScheduleResult) {
	t := table.New().Border(lipgloss.NormalBorder()).Headers("ID", "Name", "Window", "Status")
	for _, d := range res.Decisions {
		t.Row(d.Interval.ID, d.Interval.Name,
			fmt.Sprintf("%d-%d", d.Interval.Start, d.Interval.Finish), d.Status.String())
	}
	r.printf("%s\n", t.String())
	r.printf("Selected: %d of %d, total span: %d\n", len(res.Selected), len(res.Decisions), res.TotalSpan)
}

func (r *renderer) coverage(res conflict.ConflictResult) {
	r.printf("Selected %d localities (threshold %g):\n", res.Size, res.Threshold)
	for _, p := range res.Selected {
		r.printf("  %s\n", p)
	}
}

func (r *renderer) report(rep *planner.Report) {
	section := func(task planner.Task, present bool, body func()) {
		r.heading(string(task))
		if present {
			body()
		} else if f, ok := rep.Failed(task); ok {
			r.printf("failed: %s\n", f.Message)
		}
		r.printf("\n")
	}

	section(planner.TaskRoute, rep.Route != nil, func() { r.path(*rep.Route) })
	section(planner.TaskCorridor, rep.Corridor != nil, func() { r.path(*rep.Corridor) })
	section(planner.TaskBackbone, rep.Backbone != nil, func() { r.tree(*rep.Backbone) })
	section(planner.TaskBudget, rep.Budget != nil, func() { r.selection(*rep.Budget) })
	section(planner.TaskBoundary, rep.Boundary != nil, func() { r.boundary(*rep.Boundary) })
	section(planner.TaskSensors, rep.Sensors != nil, func() { r.placement(*rep.Sensors) })
	section(planner.TaskProximity, rep.Proximity != nil, func() { r.pair(*rep.Proximity) })
	section(planner.TaskEquity, rep.Equity != nil, func() { r.pair(*rep.Equity) })
	section(planner.TaskMaintenance, rep.Maintenance != nil, func() { r.schedule(*rep.Maintenance) })
	section(planner.TaskCoverage, rep.Coverage != nil, func() { r.coverage(*rep.Coverage) })
}

func cells(cs []nqueens.Cell) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}

	return strings.Join(parts, " ")
}
