package knapsack_test

import (
	"fmt"

	"github.com/katalvlaran/urbanplan/knapsack"
)

func ExampleSelect() {
	projects := []knapsack.Project{
		{Name: "Flyover", Cost: 3, Benefit: 5},
		{Name: "Metro feeder", Cost: 4, Benefit: 6},
		{Name: "Bus depot", Cost: 2, Benefit: 3},
	}
	res, err := knapsack.Select(projects, 5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.SelectedNames, res.TotalBenefit, res.TotalCost, res.RemainingBudget)
	// Output: [Flyover Bus depot] 8 5 0
}
