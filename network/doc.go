// Package network defines the shared road-network model consumed by the
// shortest-path and spanning-tree solvers.
//
// A Graph is built once from caller-supplied Node and Edge snapshots and is
// immutable afterwards:
//
//   - Every node receives a dense integer index in input order, so solvers can
//     keep per-node state in plain slices instead of maps.
//   - Adjacency is derived at construction. Undirected graphs (the default)
//     store each edge as two arcs, directed graphs (WithDirected) as one.
//   - Edge weights are non-negative integers; a negative weight is rejected
//     with ErrNegativeWeight rather than left as undefined behaviour.
//
// Because nothing mutates a Graph after NewGraph returns, any number of
// goroutines may read it concurrently without locking.
//
// Errors:
//
//	ErrEmptyNodeID    - a node has an empty ID (planerr.InvalidInput).
//	ErrDuplicateNode  - two nodes share an ID (planerr.InvalidInput).
//	ErrUnknownNode    - an edge references an absent node (planerr.UnknownEntity).
//	ErrNegativeWeight - an edge weight is below zero (planerr.InvalidInput).
package network
