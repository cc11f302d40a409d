package mst

import (
	"github.com/katalvlaran/urbanplan/network"
	"github.com/katalvlaran/urbanplan/planerr"
)

// Sentinel errors returned by Kruskal.
var (
	// ErrNilGraph indicates that a nil *network.Graph was passed.
	ErrNilGraph = planerr.New(planerr.InvalidInput, "mst: graph is nil")

	// ErrDirectedGraph indicates a directed graph; spanning trees need undirected edges.
	ErrDirectedGraph = planerr.New(planerr.InvalidInput, "mst: graph must be undirected")

	// ErrEmptyGraph indicates a graph without nodes.
	ErrEmptyGraph = planerr.New(planerr.InvalidInput, "mst: graph has no nodes")
)

// TreeResult is a minimum spanning forest.
type TreeResult struct {
	// Edges are the accepted edges in the order Kruskal accepted them.
	Edges []network.Edge `json:"edges"`

	// TotalWeight is the sum of Edges' weights.
	TotalWeight int64 `json:"totalWeight"`

	// Components is the number of connected components the forest spans.
	// 1 means Edges form a single spanning tree.
	Components int `json:"components"`
}

// Spanning reports whether the result is a single tree covering every node.
func (r TreeResult) Spanning() bool { return r.Components == 1 }
