package dataset

import (
	"github.com/katalvlaran/urbanplan/activity"
	"github.com/katalvlaran/urbanplan/geom"
	"github.com/katalvlaran/urbanplan/knapsack"
	"github.com/katalvlaran/urbanplan/network"
)

// Network builds the undirected road graph.
func (s *Snapshot) Network() (*network.Graph, error) {
	nodes := make([]network.Node, len(s.Nodes))
	for i, n := range s.Nodes {
		nodes[i] = network.Node{ID: n.ID, Name: n.Name}
	}
	edges := make([]network.Edge, len(s.Edges))
	for i, e := range s.Edges {
		edges[i] = network.Edge{U: e.From, V: e.To, Weight: e.Weight}
	}

	return network.NewGraph(nodes, edges)
}

// ProjectList returns the candidate projects in document order.
func (s *Snapshot) ProjectList() []knapsack.Project {
	out := make([]knapsack.Project, len(s.Projects))
	for i, p := range s.Projects {
		out[i] = knapsack.Project{Name: p.Name, Cost: p.Cost, Benefit: p.Benefit}
	}

	return out
}

// LocalityPoints returns the locality coordinates.
func (s *Snapshot) LocalityPoints() []geom.Point { return points(s.Localities) }

// EmergencyPoints returns the emergency facility coordinates.
func (s *Snapshot) EmergencyPoints() []geom.Point { return points(s.Emergency) }

// UnderservedPoints returns the underserved area coordinates.
func (s *Snapshot) UnderservedPoints() []geom.Point { return points(s.Underserved) }

// Intervals returns the traffic flows as maintenance intervals. A flow
// without a name takes the name of the network node sharing its ID, or its
// own ID when no such node exists.
func (s *Snapshot) Intervals() []activity.Interval {
	names := make(map[string]string, len(s.Nodes))
	for _, n := range s.Nodes {
		names[n.ID] = n.Name
	}

	out := make([]activity.Interval, len(s.Flows))
	for i, f := range s.Flows {
		name := f.Name
		if name == "" {
			name = names[f.ID]
		}
		if name == "" {
			name = f.ID
		}
		out[i] = activity.Interval{ID: f.ID, Name: name, Start: f.Start, Finish: f.Finish}
	}

	return out
}

func points(records []PointRecord) []geom.Point {
	out := make([]geom.Point, len(records))
	for i, r := range records {
		out[i] = geom.Point{Name: r.Name, X: r.X, Y: r.Y}
	}

	return out
}
