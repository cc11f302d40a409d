// Package closestpair finds the two localities nearest to each other, e.g.
// duplicated emergency facilities or the tightest cluster of underserved
// areas.
//
// Find scans all n(n-1)/2 unordered pairs. For the dataset sizes this
// library targets (tens of points) the brute-force scan is faster than a
// divide-and-conquer variant and its tie rule is trivial to state: the first
// pair (i < j, in input order) attaining the minimum wins.
package closestpair

import (
	"fmt"
	"math"

	"github.com/katalvlaran/urbanplan/geom"
	"github.com/katalvlaran/urbanplan/planerr"
)

// ErrTooFewPoints indicates fewer than two input points.
var ErrTooFewPoints = planerr.New(planerr.Unsolvable, "closestpair: need at least 2 points")

// ClosestPairResult is the nearest pair and its Euclidean distance.
type ClosestPairResult struct {
	A        geom.Point `json:"a"`
	B        geom.Point `json:"b"`
	Distance float64    `json:"distance"`
}

// Find returns the closest pair of points. A precedes B in input order.
//
// Complexity: O(n²) time, O(1) extra memory.
func Find(points []geom.Point) (ClosestPairResult, error) {
	if err := geom.Validate(points); err != nil {
		return ClosestPairResult{}, err
	}
	if len(points) < 2 {
		return ClosestPairResult{}, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(points))
	}

	bi, bj, best := 0, 1, math.Inf(1)
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			// Strict "<" keeps the earliest pair on ties.
			if d := geom.SquaredDistance(points[i], points[j]); d < best {
				bi, bj, best = i, j, d
			}
		}
	}

	return ClosestPairResult{
		A:        points[bi],
		B:        points[bj],
		Distance: math.Sqrt(best),
	}, nil
}
