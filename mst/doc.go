// Package mst builds the cheapest road backbone connecting every locality of
// an undirected network, using Kruskal's algorithm.
//
// What & Why
//
//   - A minimum spanning tree (MST) of a connected, weighted, undirected graph
//     is an edge subset that connects every node with minimal total weight.
//   - For a planning dataset it answers "which roads must be maintained so
//     that every locality stays reachable, at the lowest cost?".
//
// Algorithm
//
//   - Edges are stable-sorted by ascending weight, so equal weights keep their
//     input order and the output is deterministic.
//   - A DisjointSet over the integer node indices assigned by network.Graph
//     (path compression + union by rank) rejects edges that would close a cycle.
//   - The scan stops at |V|−1 accepted edges. If the network is disconnected
//     the scan runs to the end and Kruskal returns a spanning forest together
//     with the number of components; it never truncates silently.
//
// Complexity
//
//   - Time:  O(E log E + E·α(V))
//   - Space: O(V + E)
//
// Error Conditions
//
//   - ErrNilGraph      - graph is nil (planerr.InvalidInput).
//   - ErrDirectedGraph - graph was built WithDirected (planerr.InvalidInput).
//   - ErrEmptyGraph    - graph has no nodes (planerr.InvalidInput).
package mst
