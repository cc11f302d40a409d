// Package knapsack chooses which candidate projects to fund under a fixed
// budget, maximizing total benefit (the 0/1 knapsack problem).
//
// Algorithm (dynamic programming):
//
//  1. Let n = len(items), W = budget. Allocate a table dp of (n+1)×(W+1).
//  2. dp[0][w] = 0 for every w.
//  3. For i = 1..n and w = 0..W:
//     dp[i][w] = dp[i-1][w]                                  if cost_i > w
//     dp[i][w] = max(dp[i-1][w], dp[i-1][w-cost_i] + benefit_i) otherwise
//  4. Reconstruct by scanning i = n..1: item i is selected iff
//     dp[i][w] != dp[i-1][w], in which case w -= cost_i.
//
// This is the exact algorithm. A benefit/cost ratio greedy is not optimal
// for indivisible items and is deliberately not offered.
//
// Complexity: O(n·W) time and memory. Because memory grows with the budget,
// Select rejects budgets above MaxBudget and tables above MaxCells with
// ErrBudgetOutOfRange; both limits can be tuned with options.
//
// Errors:
//
//	ErrEmptyName        - an item has no name (planerr.InvalidInput).
//	ErrNonPositiveCost  - an item costs ≤ 0 (planerr.InvalidInput).
//	ErrNegativeBenefit  - an item has benefit < 0 (planerr.InvalidInput).
//	ErrBudgetOutOfRange - budget < 0 or beyond the configured caps (planerr.OutOfRange).
package knapsack
