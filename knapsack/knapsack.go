package knapsack

import "fmt"

// Select funds the subset of items with maximal total benefit whose total
// cost does not exceed budget.
//
// Validation (in order):
//  1. Every item has a name, cost > 0 and benefit ≥ 0 (planerr.InvalidInput).
//  2. 0 ≤ budget ≤ MaxBudget and (n+1)·(budget+1) ≤ MaxCells (ErrBudgetOutOfRange).
//
// A zero budget or an empty item list returns an empty selection with
// RemainingBudget == budget. Among several optimal subsets, the one found by
// the backward scan is returned; it is deterministic for a given input.
//
// Complexity: O(n·budget) time and memory.
func Select(items []Project, budget int, opts ...Option) (SelectionResult, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Validate items.
	for i, it := range items {
		switch {
		case it.Name == "":
			return SelectionResult{}, fmt.Errorf("%w: item %d", ErrEmptyName, i)
		case it.Cost <= 0:
			return SelectionResult{}, fmt.Errorf("%w: %q cost=%d", ErrNonPositiveCost, it.Name, it.Cost)
		case it.Benefit < 0:
			return SelectionResult{}, fmt.Errorf("%w: %q benefit=%d", ErrNegativeBenefit, it.Name, it.Benefit)
		}
	}

	// 2) Validate the budget and the table size it implies.
	n := len(items)
	if budget < 0 || budget > cfg.MaxBudget {
		return SelectionResult{}, fmt.Errorf("%w: budget=%d (max %d)", ErrBudgetOutOfRange, budget, cfg.MaxBudget)
	}
	if cells := (n + 1) * (budget + 1); cells > cfg.MaxCells {
		return SelectionResult{}, fmt.Errorf("%w: %d×%d table exceeds %d cells", ErrBudgetOutOfRange, n+1, budget+1, cfg.MaxCells)
	}

	res := SelectionResult{SelectedNames: []string{}, RemainingBudget: budget}
	if n == 0 || budget == 0 {
		return res, nil
	}

	// 3) Fill the table row by row; row i uses only row i-1.
	width := budget + 1
	dp := make([]int64, (n+1)*width)
	for i := 1; i <= n; i++ {
		cost, benefit := items[i-1].Cost, int64(items[i-1].Benefit)
		prev, cur := dp[(i-1)*width:i*width], dp[i*width:(i+1)*width]
		for w := 0; w <= budget; w++ {
			cur[w] = prev[w]
			if cost <= w {
				if take := prev[w-cost] + benefit; take > cur[w] {
					cur[w] = take
				}
			}
		}
	}

	// 4) Backward scan: a changed cell means item i was taken.
	picked := make([]bool, n)
	w := budget
	for i := n; i >= 1; i-- {
		if dp[i*width+w] != dp[(i-1)*width+w] {
			picked[i-1] = true
			w -= items[i-1].Cost
		}
	}

	for i, ok := range picked {
		if !ok {
			continue
		}
		res.SelectedNames = append(res.SelectedNames, items[i].Name)
		res.TotalCost += items[i].Cost
		res.TotalBenefit += int64(items[i].Benefit)
	}
	res.RemainingBudget = budget - res.TotalCost

	return res, nil
}
