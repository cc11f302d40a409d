package network

import "github.com/katalvlaran/urbanplan/planerr"

// Sentinel errors for graph construction.
var (
	// ErrEmptyNodeID indicates a node with an empty ID.
	ErrEmptyNodeID = planerr.New(planerr.InvalidInput, "network: node ID is empty")

	// ErrDuplicateNode indicates two nodes share one ID.
	ErrDuplicateNode = planerr.New(planerr.InvalidInput, "network: duplicate node ID")

	// ErrUnknownNode indicates an edge endpoint that is not a declared node.
	ErrUnknownNode = planerr.New(planerr.UnknownEntity, "network: node not found")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = planerr.New(planerr.InvalidInput, "network: negative edge weight")
)

// Node is a locality in the road network.
type Node struct {
	// ID uniquely identifies the node within its Graph (e.g. "N1").
	ID string `json:"id"`

	// Name is the human-readable label (e.g. "Sitabuldi").
	Name string `json:"name"`
}

// Edge is a road segment between two nodes.
type Edge struct {
	U      string `json:"u"`
	V      string `json:"v"`
	Weight int64  `json:"weight"`
}

// Arc is one traversable direction of an Edge, expressed in node indices.
type Arc struct {
	To     int   // index of the head node
	Weight int64 // copied from the originating edge
	Edge   int   // position of the originating edge in Graph.Edges()
}

// Option configures a Graph before validation.
type Option func(*Graph)

// WithDirected makes every edge one-way from U to V.
func WithDirected() Option {
	return func(g *Graph) { g.directed = true }
}

// Graph is an immutable, index-addressed road network.
type Graph struct {
	directed bool

	nodes []Node         // index → node
	index map[string]int // node ID → index
	edges []Edge         // input order
	ends  [][2]int       // edge position → endpoint indices
	adj   [][]Arc        // index → outgoing arcs, in edge input order
}
