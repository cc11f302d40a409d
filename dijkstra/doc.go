// Package dijkstra finds the cheapest route between two localities of a
// road network with non-negative edge weights.
//
// Overview:
//
//   - ShortestPath runs Dijkstra's algorithm from the start node and stops as
//     soon as the target is popped from the priority queue; its distance is
//     final at that moment, so the rest of the graph is never explored.
//   - The priority queue is a binary min-heap (container/heap) with the
//     "lazy decrease-key" strategy: an improved distance pushes a new entry,
//     stale entries are skipped when popped.
//   - Ties between equal distances are broken by push order, so the same
//     input always yields the same path.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), distances and predecessors live in slices indexed by
//     the node indices network.Graph assigns at construction.
//
// Errors (sentinel):
//
//   - ErrNilGraph    - graph is nil (planerr.InvalidInput).
//   - ErrUnknownNode - start or end is not a node of the graph (planerr.UnknownEntity).
//   - ErrNoPath      - end is unreachable from start (planerr.Unsolvable).
//
// Example:
//
//	res, err := dijkstra.ShortestPath(g, "A", "D")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Path, res.Distance) // [A B C D] 4
package dijkstra
