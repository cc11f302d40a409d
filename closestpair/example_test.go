package closestpair_test

import (
	"fmt"

	"github.com/katalvlaran/urbanplan/closestpair"
	"github.com/katalvlaran/urbanplan/geom"
)

func ExampleFind() {
	res, err := closestpair.Find([]geom.Point{
		{Name: "Fire station 1", X: 0, Y: 0},
		{Name: "Fire station 2", X: 1, Y: 1},
		{Name: "Fire station 3", X: 5, Y: 5},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%s / %s: %.3f\n", res.A.Name, res.B.Name, res.Distance)
	// Output: Fire station 1 / Fire station 2: 1.414
}
