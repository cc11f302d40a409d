package hull_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/urbanplan/geom"
	"github.com/katalvlaran/urbanplan/hull"
	"github.com/katalvlaran/urbanplan/planerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pt(name string, x, y float64) geom.Point { return geom.Point{Name: name, X: x, Y: y} }

func TestBuild_SquareWithInteriorAndEdgePoints(t *testing.T) {
	points := []geom.Point{
		pt("NE", 10, 10),
		pt("center", 5, 5),
		pt("SW", 0, 0),
		pt("mid-south", 5, 0), // on an edge: dropped
		pt("NW", 0, 10),
		pt("SE", 10, 0),
	}
	res, err := hull.Build(points)
	require.NoError(t, err)

	want := []geom.Point{pt("SW", 0, 0), pt("SE", 10, 0), pt("NE", 10, 10), pt("NW", 0, 10)}
	if diff := cmp.Diff(want, res.Vertices); diff != "" {
		t.Errorf("vertices mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 100.0, res.Area)
}

func TestBuild_AreaRoundedToTwoDecimals(t *testing.T) {
	res, err := hull.Build([]geom.Point{pt("a", 0, 0), pt("b", 1, 0), pt("c", 0, 1.0/3)})
	require.NoError(t, err)
	assert.Equal(t, 0.17, res.Area)
}

func TestBuild_Errors(t *testing.T) {
	_, err := hull.Build([]geom.Point{pt("a", 0, 0), pt("b", 1, 1)})
	assert.ErrorIs(t, err, hull.ErrTooFewPoints)
	assert.True(t, planerr.Is(err, planerr.Unsolvable))

	res, err := hull.Build([]geom.Point{pt("a", 0, 0), pt("b", 1, 1), pt("c", 2, 2), pt("d", 3, 3)})
	assert.ErrorIs(t, err, hull.ErrDegenerate)
	assert.True(t, planerr.Is(err, planerr.Degenerate))
	assert.Zero(t, res.Area)

	_, err = hull.Build([]geom.Point{pt("a", 1, 1), pt("b", 1, 1), pt("c", 1, 1)})
	assert.ErrorIs(t, err, hull.ErrDegenerate)

	_, err = hull.Build([]geom.Point{pt("a", 0, 0), pt("b", 1, 0), pt("c", math.Inf(1), 0)})
	assert.ErrorIs(t, err, geom.ErrNonFinite)
}

func TestBuild_DuplicateKeepsFirst(t *testing.T) {
	res, err := hull.Build([]geom.Point{
		pt("first", 0, 0), pt("b", 4, 0), pt("second", 0, 0), pt("c", 0, 4),
	})
	require.NoError(t, err)
	require.Len(t, res.Vertices, 3)
	assert.Equal(t, "first", res.Vertices[0].Name)
}

func TestBuild_DoesNotReorderInput(t *testing.T) {
	points := []geom.Point{pt("c", 2, 2), pt("a", 0, 0), pt("b", 2, 0)}
	_, err := hull.Build(points)
	require.NoError(t, err)
	assert.Equal(t, "c", points[0].Name)
}

// ------------------------------------------------------------------------
// Properties on random clouds.
// ------------------------------------------------------------------------

func randomCloud(r *rand.Rand, n int) []geom.Point {
	pts := make([]geom.Point, n)
	for i := range pts {
		pts[i] = pt(fmt.Sprintf("L%d", i), float64(r.Intn(50)), float64(r.Intn(50)))
	}

	return pts
}

func TestBuild_Properties(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for trial := 0; trial < 100; trial++ {
		points := randomCloud(r, 3+r.Intn(40))
		res, err := hull.Build(points)
		if err != nil {
			require.ErrorIs(t, err, hull.ErrDegenerate)
			continue
		}
		vs := res.Vertices

		// Strictly counter-clockwise: every consecutive triple turns left.
		for i := range vs {
			a, b, c := vs[i], vs[(i+1)%len(vs)], vs[(i+2)%len(vs)]
			assert.Positive(t, geom.Cross(a, b, c), "trial %d: non-left turn at %v", trial, b)
		}

		// Every input point lies inside or on the boundary.
		for _, p := range points {
			for i := range vs {
				assert.GreaterOrEqual(t, geom.Cross(vs[i], vs[(i+1)%len(vs)], p), 0.0,
					"trial %d: %v outside edge %d", trial, p, i)
			}
		}

		// Removing any hull vertex shrinks the enclosed area.
		full := hull.Area(vs)
		for _, v := range vs {
			rest := make([]geom.Point, 0, len(points))
			for _, p := range points {
				if p.X != v.X || p.Y != v.Y {
					rest = append(rest, p)
				}
			}
			smaller, err := hull.Build(rest)
			if err != nil {
				continue // remaining points are collinear: area dropped to zero
			}
			assert.Less(t, hull.Area(smaller.Vertices), full, "trial %d: removing %v", trial, v)
		}
	}
}
