package dijkstra

import "github.com/katalvlaran/urbanplan/planerr"

// Sentinel errors returned by ShortestPath.
var (
	// ErrNilGraph indicates that a nil *network.Graph was passed.
	ErrNilGraph = planerr.New(planerr.InvalidInput, "dijkstra: graph is nil")

	// ErrUnknownNode indicates that start or end is absent from the graph.
	ErrUnknownNode = planerr.New(planerr.UnknownEntity, "dijkstra: node not found in graph")

	// ErrNoPath indicates that end cannot be reached from start.
	ErrNoPath = planerr.New(planerr.Unsolvable, "dijkstra: no path between nodes")
)

// PathResult is the cheapest route between two nodes.
type PathResult struct {
	// Path lists node IDs from start to end, both inclusive.
	Path []string `json:"path"`

	// Distance is the sum of edge weights along Path.
	Distance int64 `json:"distance"`
}

// Hops returns the number of edges on the path.
func (r PathResult) Hops() int {
	if len(r.Path) == 0 {
		return 0
	}

	return len(r.Path) - 1
}
