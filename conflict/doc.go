// Package conflict picks a set of localities that are pairwise at least a
// threshold distance apart, e.g. sensor or facility sites that must not
// interfere with one another.
//
// Two points conflict when their Euclidean distance is strictly below the
// threshold. The conflict graph is built over all pairs and an independent
// set is grown greedily: at every step the available point with the fewest
// available conflicting neighbours is selected (ties go to the earliest input
// position), then it and its neighbours leave the pool.
//
// The greedy is a heuristic. Its result is always conflict-free but is not
// guaranteed to be a maximum independent set.
//
// Complexity: O(n²) time and memory for the conflict graph, O(n²) for the
// selection loop.
package conflict
