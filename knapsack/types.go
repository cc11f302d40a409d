package knapsack

import "github.com/katalvlaran/urbanplan/planerr"

// Default caps on the DP table.
const (
	// DefaultMaxBudget bounds the budget axis of the table.
	DefaultMaxBudget = 1 << 20

	// DefaultMaxCells bounds (n+1)·(budget+1), i.e. roughly 512 MiB of int64 cells.
	DefaultMaxCells = 1 << 26
)

// Sentinel errors returned by Select.
var (
	ErrEmptyName        = planerr.New(planerr.InvalidInput, "knapsack: project name is empty")
	ErrNonPositiveCost  = planerr.New(planerr.InvalidInput, "knapsack: project cost must be positive")
	ErrNegativeBenefit  = planerr.New(planerr.InvalidInput, "knapsack: project benefit must be non-negative")
	ErrBudgetOutOfRange = planerr.New(planerr.OutOfRange, "knapsack: budget out of range")
)

// Project is a candidate investment.
type Project struct {
	Name    string `json:"name"`
	Cost    int    `json:"cost"`
	Benefit int    `json:"benefit"`
}

// SelectionResult is the funded subset of projects.
type SelectionResult struct {
	// SelectedNames lists funded projects in input order.
	SelectedNames []string `json:"selectedNames"`

	TotalBenefit    int64 `json:"totalBenefit"`
	TotalCost       int   `json:"totalCost"`
	RemainingBudget int   `json:"remainingBudget"`
}

// Options bounds the size of the DP table.
type Options struct {
	MaxBudget int
	MaxCells  int
}

// Option configures Select.
type Option func(*Options)

// WithMaxBudget overrides DefaultMaxBudget. Non-positive values are ignored.
func WithMaxBudget(limit int) Option {
	return func(o *Options) {
		if limit > 0 {
			o.MaxBudget = limit
		}
	}
}

// WithMaxCells overrides DefaultMaxCells. Non-positive values are ignored.
func WithMaxCells(limit int) Option {
	return func(o *Options) {
		if limit > 0 {
			o.MaxCells = limit
		}
	}
}

// DefaultOptions returns the default table caps.
func DefaultOptions() Options {
	return Options{
		MaxBudget: DefaultMaxBudget,
		MaxCells:  DefaultMaxCells,
	}
}
