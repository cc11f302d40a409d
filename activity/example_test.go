package activity_test

import (
	"fmt"

	"github.com/katalvlaran/urbanplan/activity"
)

func ExampleSchedule() {
	res, err := activity.Schedule([]activity.Interval{
		{ID: "I1", Name: "Sitabuldi", Start: 0, Finish: 25},
		{ID: "I2", Name: "Dharampeth", Start: 5, Finish: 15},
		{ID: "I3", Name: "Civil Lines", Start: 15, Finish: 30},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, d := range res.Decisions {
		fmt.Printf("%s [%d, %d) %s\n", d.Interval.Name, d.Interval.Start, d.Interval.Finish, d.Status)
	}
	fmt.Println("total span:", res.TotalSpan)
	// Output:
	// Sitabuldi [0, 25) Rejected
	// Dharampeth [5, 15) Selected
	// Civil Lines [15, 30) Selected
	// total span: 25
}
