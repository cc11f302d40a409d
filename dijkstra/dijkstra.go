package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/urbanplan/network"
)

// ShortestPath computes the minimum-weight path from start to end in g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start and end must be nodes of g (ErrUnknownNode).
//
// Negative weights cannot occur: network.NewGraph rejects them.
// If end is unreachable the result is ErrNoPath. start == end yields the
// single-node path with distance 0.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func ShortestPath(g *network.Graph, start, end string) (PathResult, error) {
	// 1) Validate the graph.
	if g == nil {
		return PathResult{}, ErrNilGraph
	}

	// 2) Resolve both endpoints to their indices.
	src, ok := g.Index(start)
	if !ok {
		return PathResult{}, fmt.Errorf("%w: start %q", ErrUnknownNode, start)
	}
	dst, ok := g.Index(end)
	if !ok {
		return PathResult{}, fmt.Errorf("%w: end %q", ErrUnknownNode, end)
	}

	// 3) Run the search; all state belongs to this call.
	r := newRunner(g, src)
	r.process(dst)

	// 4) Unreachable target keeps its infinite distance.
	if r.dist[dst] == math.MaxInt64 {
		return PathResult{}, fmt.Errorf("%w: %s→%s", ErrNoPath, start, end)
	}

	return PathResult{Path: r.path(dst), Distance: r.dist[dst]}, nil
}

// runner holds the mutable state for a single ShortestPath execution.
type runner struct {
	g       *network.Graph
	dist    []int64 // index → best known distance (MaxInt64 = unreached)
	prev    []int   // index → predecessor on the best path (-1 = none)
	visited []bool  // index → distance is final
	pq      nodePQ
	seq     uint64 // push counter used to break distance ties
}

// newRunner sets every distance to +∞, the source to 0, and seeds the heap.
func newRunner(g *network.Graph, src int) *runner {
	n := g.Len()
	r := &runner{
		g:       g,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	for i := 0; i < n; i++ {
		r.dist[i] = math.MaxInt64
		r.prev[i] = -1
	}
	r.dist[src] = 0
	heap.Init(&r.pq)
	r.push(src, 0)

	return r
}

// process pops nodes in order of distance until dst is finalized or the
// heap is exhausted.
func (r *runner) process(dst int) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Skip stale entries left behind by lazy decrease-key.
		if r.visited[u] {
			continue
		}
		r.visited[u] = true

		// The target's distance is final once popped.
		if u == dst {
			return
		}

		r.relax(u)
	}
}

// relax tries to improve the distance of every neighbour of u.
func (r *runner) relax(u int) {
	du := r.dist[u]
	for _, a := range r.g.Arcs(u) {
		if r.visited[a.To] {
			continue
		}
		// Saturate instead of wrapping around on huge weights.
		if a.Weight > math.MaxInt64-du {
			continue
		}
		nd := du + a.Weight
		// Strict "<" keeps the first-found predecessor among equal-cost routes.
		if nd >= r.dist[a.To] {
			continue
		}
		r.dist[a.To] = nd
		r.prev[a.To] = u
		r.push(a.To, nd)
	}
}

func (r *runner) push(id int, dist int64) {
	heap.Push(&r.pq, &nodeItem{id: id, dist: dist, seq: r.seq})
	r.seq++
}

// path walks predecessors back from dst and returns IDs in forward order.
func (r *runner) path(dst int) []string {
	var rev []int
	for v := dst; v != -1; v = r.prev[v] {
		rev = append(rev, v)
	}
	out := make([]string, len(rev))
	for i, v := range rev {
		out[len(rev)-1-i] = r.g.ID(v)
	}

	return out
}

// nodeItem is a heap entry: a node and the tentative distance it was pushed with.
type nodeItem struct {
	id   int
	dist int64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
