// Package nqueens places N sensors on an N×N grid so that no two share a
// row, column or diagonal (the N-Queens problem).
//
// Place assigns one queen per row by recursive backtracking. A row tries
// columns left to right and keeps three occupancy tables (columns, "\" and
// "/" diagonals) so the safety test is O(1). The first complete placement in
// that search order is returned; Place never enumerates all solutions.
//
// All search state is allocated per call, so Place is safe to call from
// several goroutines at once.
//
// N is restricted to [MinN, MaxN]; beyond that the search time is not
// predictable enough for an interactive planner. N = 2 and N = 3 have no
// solution and return Success == false without an error.
package nqueens
