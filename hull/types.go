package hull

import (
	"github.com/katalvlaran/urbanplan/geom"
	"github.com/katalvlaran/urbanplan/planerr"
)

// Sentinel errors returned by Build.
var (
	// ErrTooFewPoints indicates fewer than three input points.
	ErrTooFewPoints = planerr.New(planerr.Unsolvable, "hull: need at least 3 points")

	// ErrDegenerate indicates that all points are collinear (or coincide).
	ErrDegenerate = planerr.New(planerr.Degenerate, "hull: points are collinear")
)

// HullResult is a convex polygon.
type HullResult struct {
	// Vertices are the hull corners in counter-clockwise order.
	Vertices []geom.Point `json:"vertices"`

	// Area is the enclosed area rounded to 2 decimals.
	Area float64 `json:"area"`
}
