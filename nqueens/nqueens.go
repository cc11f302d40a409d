package nqueens

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/urbanplan/planerr"
)

// Bounds on the board size accepted by Place.
const (
	MinN = 1
	MaxN = 14
)

// ErrOutOfRange indicates n outside [MinN, MaxN].
var ErrOutOfRange = planerr.New(planerr.OutOfRange, "nqueens: board size out of range")

// Cell is one placement on the board.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// PlacementResult is the outcome of a search.
type PlacementResult struct {
	N           int    `json:"n"`
	Success     bool   `json:"success"`
	Coordinates []Cell `json:"coordinates"` // one per row, ordered by row; empty on failure
}

// Columns returns the column of each row's queen.
func (r PlacementResult) Columns() []int {
	out := make([]int, len(r.Coordinates))
	for i, c := range r.Coordinates {
		out[i] = c.Col
	}

	return out
}

// Board renders the placement as N rows of "Q" and "." separated by spaces.
// It returns nil when no placement was found.
func (r PlacementResult) Board() []string {
	if !r.Success {
		return nil
	}
	rows := make([]string, r.N)
	line := make([]string, r.N)
	for _, c := range r.Coordinates {
		for j := range line {
			line[j] = "."
		}
		line[c.Col] = "Q"
		rows[c.Row] = strings.Join(line, " ")
	}

	return rows
}

// Place searches for a non-attacking placement of n queens.
func Place(n int) (PlacementResult, error) {
	if n < MinN || n > MaxN {
		return PlacementResult{}, fmt.Errorf("%w: n=%d (want %d..%d)", ErrOutOfRange, n, MinN, MaxN)
	}

	s := &search{
		n:    n,
		cols: make([]int, n),
		used: make([]bool, n),
		diag: make([]bool, 2*n-1),
		anti: make([]bool, 2*n-1),
	}
	res := PlacementResult{N: n, Coordinates: []Cell{}}
	if !s.place(0) {
		return res, nil
	}

	res.Success = true
	for row, col := range s.cols {
		res.Coordinates = append(res.Coordinates, Cell{Row: row, Col: col})
	}

	return res, nil
}

// search is the backtracking state of one Place call.
type search struct {
	n    int
	cols []int  // row → column of its queen
	used []bool // column occupied
	diag []bool // row-col+n-1 occupied ("\" diagonals)
	anti []bool // row+col occupied ("/" diagonals)
}

// place fills rows [row, n) and reports whether it succeeded.
func (s *search) place(row int) bool {
	if row == s.n {
		return true
	}
	for col := 0; col < s.n; col++ {
		d, a := row-col+s.n-1, row+col
		if s.used[col] || s.diag[d] || s.anti[a] {
			continue
		}
		s.cols[row] = col
		s.used[col], s.diag[d], s.anti[a] = true, true, true
		if s.place(row + 1) {
			return true
		}
		s.used[col], s.diag[d], s.anti[a] = false, false, false
	}

	return false
}
