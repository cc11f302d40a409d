// Package planner binds the solver packages to one dataset snapshot.
//
// A Planner answers one question per method, each the Go counterpart of a
// planning tool:
//
//	Route        shortest road path between two nodes      (dijkstra)
//	Corridor     shortest path from the first to the last node (dijkstra)
//	Backbone     cheapest road set connecting every locality (mst)
//	Budget       best project portfolio within a budget     (knapsack)
//	Boundary     convex service boundary of all localities  (hull)
//	Sensors      non-conflicting sensor grid placement      (nqueens)
//	Proximity    nearest pair of emergency facilities       (closestpair)
//	Equity       nearest pair of underserved areas          (closestpair)
//	Maintenance  non-overlapping maintenance windows        (activity)
//	Coverage     mutually distant locality subset            (conflict)
//
// RunAll fans every question out concurrently and gathers the answers in a
// Report. A failing solver only empties its own slot; its error is listed in
// Report.Failures.
//
// The snapshot is read, never written, so a Planner may be shared between
// goroutines.
package planner
