package conflict

import (
	"fmt"
	"math"

	"github.com/katalvlaran/urbanplan/geom"
	"github.com/katalvlaran/urbanplan/planerr"
)

// DefaultThreshold is the critical distance used when callers have no
// site-specific value.
const DefaultThreshold = 25.0

// ErrThresholdOutOfRange indicates a non-finite or non-positive threshold.
var ErrThresholdOutOfRange = planerr.New(planerr.OutOfRange, "conflict: threshold must be finite and positive")

// ConflictResult is the outcome of Select.
type ConflictResult struct {
	// Selected lists the chosen points in selection order.
	Selected []geom.Point `json:"selected"`

	// Size is len(Selected).
	Size int `json:"size"`

	// Threshold echoes the distance used to build the conflict graph.
	Threshold float64 `json:"threshold"`
}

// Select returns a conflict-free subset of points: every selected pair is at
// least threshold apart.
func Select(points []geom.Point, threshold float64) (ConflictResult, error) {
	if math.IsNaN(threshold) || math.IsInf(threshold, 0) || threshold <= 0 {
		return ConflictResult{}, fmt.Errorf("%w: %v", ErrThresholdOutOfRange, threshold)
	}
	if err := geom.Validate(points); err != nil {
		return ConflictResult{}, err
	}

	n := len(points)
	res := ConflictResult{Selected: []geom.Point{}, Threshold: threshold}

	// 1) Conflict graph; compare squared distances.
	limit := threshold * threshold
	adj := make([][]int, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if geom.SquaredDistance(points[i], points[j]) < limit {
				adj[i] = append(adj[i], j)
				adj[j] = append(adj[j], i)
			}
		}
	}

	// 2) Remaining degree of every available node.
	degree := make([]int, n)
	for i := range adj {
		degree[i] = len(adj[i])
	}
	available := make([]bool, n)
	for i := range available {
		available[i] = true
	}
	left := n

	remove := func(v int) {
		available[v] = false
		left--
		for _, u := range adj[v] {
			if available[u] {
				degree[u]--
			}
		}
	}

	// 3) Greedy: minimum remaining degree, earliest index on ties.
	for left > 0 {
		best := -1
		for i := 0; i < n; i++ {
			if available[i] && (best < 0 || degree[i] < degree[best]) {
				best = i
			}
		}

		res.Selected = append(res.Selected, points[best])
		remove(best)
		for _, u := range adj[best] {
			if available[u] {
				remove(u)
			}
		}
	}
	res.Size = len(res.Selected)

	return res, nil
}
