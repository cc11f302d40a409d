package hull

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/urbanplan/geom"
)

// Build returns the convex hull of points.
//
// Errors:
//   - geom.ErrNonFinite if any coordinate is NaN or ±Inf.
//   - ErrTooFewPoints   if len(points) < 3.
//   - ErrDegenerate     if the points do not span a positive area; the
//     returned HullResult then has zero area and no vertices.
//
// When several input points share coordinates, the first one in input order
// represents them.
func Build(points []geom.Point) (HullResult, error) {
	if err := geom.Validate(points); err != nil {
		return HullResult{}, err
	}
	if len(points) < 3 {
		return HullResult{}, fmt.Errorf("%w: got %d", ErrTooFewPoints, len(points))
	}

	// 1) Sort a copy; stability keeps the first of coincident points first.
	pts := make([]geom.Point, len(points))
	copy(pts, points)
	sort.SliceStable(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}

		return pts[i].Y < pts[j].Y
	})
	pts = dedupe(pts)

	// 2-3) Lower and upper chains share one buffer.
	n := len(pts)
	chain := make([]geom.Point, 0, 2*n)
	for i := 0; i < n; i++ {
		chain = push(chain, pts[i], 2)
	}
	lower := len(chain) + 1
	for i := n - 2; i >= 0; i-- {
		chain = push(chain, pts[i], lower)
	}

	// 4) The last point repeats the first.
	vertices := chain[:len(chain)-1]
	if len(vertices) < 3 {
		return HullResult{}, fmt.Errorf("%w: %d points", ErrDegenerate, n)
	}

	return HullResult{Vertices: vertices, Area: round2(Area(vertices))}, nil
}

// push appends p after popping every trailing vertex that would make the
// chain turn clockwise or go straight. keep is the chain length that must be
// kept before popping is allowed.
func push(chain []geom.Point, p geom.Point, keep int) []geom.Point {
	for len(chain) >= keep && geom.Cross(chain[len(chain)-2], chain[len(chain)-1], p) <= 0 {
		chain = chain[:len(chain)-1]
	}

	return append(chain, p)
}

// Area returns the unrounded area of a simple polygon given in order
// (shoelace formula). Orientation does not matter.
func Area(polygon []geom.Point) float64 {
	var sum float64
	for i := range polygon {
		j := (i + 1) % len(polygon)
		sum += polygon[i].X*polygon[j].Y - polygon[j].X*polygon[i].Y
	}

	return math.Abs(sum) / 2
}

// dedupe drops consecutive coincident points from a sorted slice in place.
func dedupe(pts []geom.Point) []geom.Point {
	out := pts[:1]
	for _, p := range pts[1:] {
		if last := out[len(out)-1]; p.X != last.X || p.Y != last.Y {
			out = append(out, p)
		}
	}

	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
