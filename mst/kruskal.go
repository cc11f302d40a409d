package mst

import (
	"sort"

	"github.com/katalvlaran/urbanplan/network"
)

// Kruskal computes a minimum spanning forest of an undirected network.
//
// Steps:
//  1. Validate: graph != nil, undirected, at least one node.
//  2. Collect edge positions, skipping self-loops.
//  3. Stable-sort positions by ascending weight (ties keep input order).
//  4. Walk the sorted edges; accept an edge when its endpoints lie in
//     different DisjointSet components.
//  5. Stop at |V|−1 accepted edges; otherwise exhaust the list and report the
//     forest with its component count.
//
// Complexity: O(E log E + E·α(V)). Memory: O(V + E).
func Kruskal(g *network.Graph) (TreeResult, error) {
	// 1. Validate input.
	if g == nil {
		return TreeResult{}, ErrNilGraph
	}
	if g.Directed() {
		return TreeResult{}, ErrDirectedGraph
	}
	n := g.Len()
	if n == 0 {
		return TreeResult{}, ErrEmptyGraph
	}

	// 2. Collect candidate edges by position.
	order := make([]int, 0, g.EdgeCount())
	for i := 0; i < g.EdgeCount(); i++ {
		if _, u, v := g.Edge(i); u != v {
			order = append(order, i)
		}
	}

	// 3. Sort by weight, stable on input position.
	sort.SliceStable(order, func(a, b int) bool {
		ea, _, _ := g.Edge(order[a])
		eb, _, _ := g.Edge(order[b])

		return ea.Weight < eb.Weight
	})

	// 4. Accept edges joining distinct components.
	var (
		dsu    = NewDisjointSet(n)
		result = TreeResult{Edges: make([]network.Edge, 0, n-1)}
	)
	for _, pos := range order {
		e, u, v := g.Edge(pos)
		if !dsu.Union(u, v) {
			continue
		}
		result.Edges = append(result.Edges, e)
		result.TotalWeight += e.Weight

		// 5. A single tree is complete.
		if len(result.Edges) == n-1 {
			break
		}
	}
	result.Components = dsu.Sets()

	return result, nil
}
