package activity

import (
	"fmt"

	"github.com/katalvlaran/urbanplan/planerr"
)

// Sentinel errors returned by Schedule.
var (
	ErrEmptyID         = planerr.New(planerr.InvalidInput, "activity: interval ID is empty")
	ErrDuplicateID     = planerr.New(planerr.InvalidInput, "activity: duplicate interval ID")
	ErrInvalidInterval = planerr.New(planerr.InvalidInput, "activity: start must be before finish")
)

// Interval is a half-open time window [Start, Finish).
type Interval struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Start  int64  `json:"start"`
	Finish int64  `json:"finish"`
}

// Duration returns Finish - Start.
func (iv Interval) Duration() int64 { return iv.Finish - iv.Start }

// Status classifies one input interval.
type Status int

const (
	Rejected Status = iota
	Selected
)

// String returns "Selected" or "Rejected".
func (s Status) String() string {
	if s == Selected {
		return "Selected"
	}

	return "Rejected"
}

// MarshalText renders the status name in JSON output.
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText parses "Selected" or "Rejected".
func (s *Status) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Selected":
		*s = Selected
	case "Rejected":
		*s = Rejected
	default:
		return fmt.Errorf("activity: unknown status %q", text)
	}

	return nil
}

// Decision pairs an input interval with its outcome.
type Decision struct {
	Interval Interval `json:"interval"`
	Status   Status   `json:"status"`
}

// ScheduleResult is the outcome of Schedule.
type ScheduleResult struct {
	// Selected lists accepted intervals in acceptance (finish-time) order.
	Selected []Interval `json:"selected"`

	// Rejected lists the remaining intervals in input order.
	Rejected []Interval `json:"rejected"`

	// Decisions classifies every input interval, in input order.
	Decisions []Decision `json:"decisions"`

	// TotalSpan is the summed duration of Selected.
	TotalSpan int64 `json:"totalSpan"`
}
