package mst_test

import (
	"fmt"

	"github.com/katalvlaran/urbanplan/mst"
	"github.com/katalvlaran/urbanplan/network"
)

// ExampleKruskal builds the backbone of a four-locality envelope graph:
//
//	A-B (4), A-C (1), C-B (2), B-D (3), C-D (5), D-A (4)
//
// The MST has 3 edges {A–C, C–B, B–D} with total weight 6.
func ExampleKruskal() {
	nodes := []network.Node{{ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "D"}}
	g, err := network.NewGraph(nodes, []network.Edge{
		{U: "A", V: "B", Weight: 4},
		{U: "A", V: "C", Weight: 1},
		{U: "C", V: "B", Weight: 2},
		{U: "B", V: "D", Weight: 3},
		{U: "C", V: "D", Weight: 5},
		{U: "D", V: "A", Weight: 4},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := mst.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("Total: %d, Edges:", res.TotalWeight)
	for _, e := range res.Edges {
		fmt.Printf(" %s-%s", e.U, e.V)
	}
	fmt.Println()
	// Output: Total: 6, Edges: A-C C-B B-D
}

// ExampleKruskal_forest shows the component count on a split network.
func ExampleKruskal_forest() {
	nodes := []network.Node{{ID: "A"}, {ID: "B"}, {ID: "C"}}
	g, _ := network.NewGraph(nodes, []network.Edge{{U: "A", V: "B", Weight: 2}})

	res, _ := mst.Kruskal(g)
	fmt.Println(res.TotalWeight, res.Components, res.Spanning())
	// Output: 2 2 false
}
