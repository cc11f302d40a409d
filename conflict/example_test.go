package conflict_test

import (
	"fmt"

	"github.com/katalvlaran/urbanplan/conflict"
	"github.com/katalvlaran/urbanplan/geom"
)

func ExampleSelect() {
	sites := []geom.Point{
		{Name: "Sitabuldi", X: 10, Y: 10},
		{Name: "Dharampeth", X: 20, Y: 15},
		{Name: "Itwari", X: 60, Y: 10},
		{Name: "Sadar", X: 30, Y: 50},
	}
	res, err := conflict.Select(sites, conflict.DefaultThreshold)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, p := range res.Selected {
		fmt.Println(p.Name)
	}
	// Output:
	// Itwari
	// Sadar
	// Sitabuldi
}
