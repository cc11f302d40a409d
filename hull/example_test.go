package hull_test

import (
	"fmt"

	"github.com/katalvlaran/urbanplan/geom"
	"github.com/katalvlaran/urbanplan/hull"
)

func ExampleBuild() {
	res, err := hull.Build([]geom.Point{
		{Name: "Sitabuldi", X: 0, Y: 0},
		{Name: "Dharampeth", X: 6, Y: 0},
		{Name: "Civil Lines", X: 3, Y: 2},
		{Name: "Itwari", X: 3, Y: 5},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, v := range res.Vertices {
		fmt.Println(v.Name)
	}
	fmt.Println("area:", res.Area)
	// Output:
	// Sitabuldi
	// Dharampeth
	// Itwari
	// area: 15
}
