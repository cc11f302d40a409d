package mst

// DisjointSet is a union-find structure over the integers [0, n).
// It uses path compression in Find and union by rank in Union.
type DisjointSet struct {
	parent []int
	rank   []int
	sets   int
}

// NewDisjointSet creates n singleton sets.
func NewDisjointSet(n int) *DisjointSet {
	d := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
		sets:   n,
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Find returns the representative of x's set.
// Iterative path halving keeps deep chains from recursing.
func (d *DisjointSet) Find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// Union merges the sets of x and y. It reports false if they were already
// the same set.
func (d *DisjointSet) Union(x, y int) bool {
	rx, ry := d.Find(x), d.Find(y)
	if rx == ry {
		return false
	}
	// Attach the shallower tree under the deeper root.
	switch {
	case d.rank[rx] < d.rank[ry]:
		d.parent[rx] = ry
	case d.rank[rx] > d.rank[ry]:
		d.parent[ry] = rx
	default:
		d.parent[ry] = rx
		d.rank[rx]++
	}
	d.sets--

	return true
}

// Sets returns the current number of disjoint sets.
func (d *DisjointSet) Sets() int { return d.sets }
