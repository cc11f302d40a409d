package knapsack_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/urbanplan/knapsack"
)

// BenchmarkSelect fills a 31×1001 table.
func BenchmarkSelect(b *testing.B) {
	items := randomItems(rand.New(rand.NewSource(42)), 30)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = knapsack.Select(items, 1000)
	}
}
