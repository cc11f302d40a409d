package activity

import (
	"fmt"
	"sort"
)

// Schedule selects a maximum-cardinality set of pairwise non-overlapping
// intervals. Touching intervals (one finishes exactly when the next starts)
// do not overlap.
//
// Validation: every interval needs a unique, non-empty ID and Start < Finish.
func Schedule(intervals []Interval) (ScheduleResult, error) {
	// 1) Validate.
	seen := make(map[string]struct{}, len(intervals))
	for i, iv := range intervals {
		if iv.ID == "" {
			return ScheduleResult{}, fmt.Errorf("%w: interval %d", ErrEmptyID, i)
		}
		if _, dup := seen[iv.ID]; dup {
			return ScheduleResult{}, fmt.Errorf("%w: %q", ErrDuplicateID, iv.ID)
		}
		seen[iv.ID] = struct{}{}
		if iv.Start >= iv.Finish {
			return ScheduleResult{}, fmt.Errorf("%w: %q [%d, %d)", ErrInvalidInterval, iv.ID, iv.Start, iv.Finish)
		}
	}

	// 2) Order input positions by finish time.
	order := make([]int, len(intervals))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return intervals[order[a]].Finish < intervals[order[b]].Finish
	})

	// 3) Greedy acceptance.
	res := ScheduleResult{
		Selected:  []Interval{},
		Rejected:  []Interval{},
		Decisions: make([]Decision, len(intervals)),
	}
	var (
		accepted   = make([]bool, len(intervals))
		lastFinish int64
		started    bool
	)
	for _, i := range order {
		iv := intervals[i]
		if started && iv.Start < lastFinish {
			continue
		}
		accepted[i] = true
		started = true
		lastFinish = iv.Finish
		res.Selected = append(res.Selected, iv)
		res.TotalSpan += iv.Duration()
	}

	// 4) Classify in input order.
	for i, iv := range intervals {
		res.Decisions[i] = Decision{Interval: iv, Status: Rejected}
		if accepted[i] {
			res.Decisions[i].Status = Selected
			continue
		}
		res.Rejected = append(res.Rejected, iv)
	}

	return res, nil
}
