// Package geom holds the planar Point record and the small set of vector
// primitives shared by the hull, closest-pair and conflict solvers.
package geom

import (
	"fmt"
	"math"

	"github.com/katalvlaran/urbanplan/planerr"
)

// ErrNonFinite indicates a coordinate that is NaN or ±Inf.
var ErrNonFinite = planerr.New(planerr.InvalidInput, "geom: coordinate is not finite")

// Point is a named locality in the plane.
type Point struct {
	Name string  `json:"name"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// String renders the point as "Name(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("%s(%g, %g)", p.Name, p.X, p.Y)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Sqrt(SquaredDistance(a, b))
}

// SquaredDistance returns |a-b|². Comparing squared distances avoids a sqrt
// per pair in O(n²) scans.
func SquaredDistance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y

	return dx*dx + dy*dy
}

// Cross returns the z-component of (a-o) × (b-o).
// Positive: o→a→b turns left (counter-clockwise); zero: collinear.
func Cross(o, a, b Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// Validate rejects any point with a non-finite coordinate.
func Validate(points []Point) error {
	for i, p := range points {
		if !finite(p.X) || !finite(p.Y) {
			return fmt.Errorf("%w: point %d %q", ErrNonFinite, i, p.Name)
		}
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
