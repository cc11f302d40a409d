// Package planerr defines the error taxonomy shared by every solver.
//
// Each solver package declares its own sentinel errors (for errors.Is) built
// with New, so a caller can match either the specific sentinel or the broad
// Kind of failure:
//
//	_, err := dijkstra.ShortestPath(g, "N1", "N9")
//	switch {
//	case errors.Is(err, dijkstra.ErrNoPath):
//	    // unreachable target
//	case planerr.Is(err, planerr.UnknownEntity):
//	    // any "referenced thing is absent" failure
//	}
//
// Kinds:
//
//	InvalidInput  - malformed or missing required fields.
//	UnknownEntity - referenced node or point is absent.
//	OutOfRange    - N, budget, or another bound outside its documented domain.
//	Unsolvable    - no path, no placement, insufficient points.
//	Degenerate    - geometric input without a proper answer (collinear hull).
package planerr

import (
	"errors"
	"fmt"
)

// Kind classifies a solver failure.
type Kind string

// Error kinds.
const (
	InvalidInput  Kind = "INVALID_INPUT"
	UnknownEntity Kind = "UNKNOWN_ENTITY"
	OutOfRange    Kind = "OUT_OF_RANGE"
	Unsolvable    Kind = "UNSOLVABLE"
	Degenerate    Kind = "DEGENERATE"
)

// Error is a classified error with an optional cause.
type Error struct {
	Kind    Kind   // failure class
	Message string // human-readable message, prefixed with the package name
	Cause   error  // underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}

	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates an Error of the given kind wrapping cause.
func Wrap(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether the first *Error in err's chain has the given kind.
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// KindOf extracts the kind of err, or "" when err carries no *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return ""
}
