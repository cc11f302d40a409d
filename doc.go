// Package urbanplan is a solver library for municipal planning decisions
// over small, fixed-size city datasets: a weighted road network, candidate
// projects with costs and benefits, locality coordinates and maintenance
// windows.
//
// Every solver is a pure, synchronous function of its input. Solvers share
// no package-level mutable state, so any of them may be called from many
// goroutines at once.
//
// Packages:
//
//	planerr/     error kinds (InvalidInput, UnknownEntity, OutOfRange, Unsolvable, Degenerate)
//	geom/        named planar Point and distance primitives
//	network/     immutable, index-addressed road graph
//	dijkstra/    shortest road path (binary heap, lazy decrease-key)
//	mst/         Kruskal minimum spanning forest + disjoint-set union
//	knapsack/    0/1 project selection under a budget (exact DP)
//	hull/        convex boundary (monotone chain) and shoelace area
//	nqueens/     non-attacking sensor placement (backtracking)
//	closestpair/ nearest pair of localities
//	activity/    maximum set of non-overlapping maintenance windows
//	conflict/    greedy conflict-free locality selection
//	dataset/     JSON / YAML / TOML snapshot loader + built-in Nagpur sample
//	planner/     runs every solver over one snapshot, concurrently on demand
//	config/      layered run configuration (defaults, TOML, flags)
//
// The urbanplan command (cmd/urbanplan) exposes each solver as a subcommand:
//
//	urbanplan route N1 N10
//	urbanplan budget --budget 80 -o json
//	urbanplan all --dataset city.yaml -v
//
// Quick example:
//
//	g, _ := network.NewGraph(
//		[]network.Node{{ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "D"}},
//		[]network.Edge{{U: "A", V: "B", Weight: 1}, {U: "B", V: "C", Weight: 2},
//			{U: "A", V: "C", Weight: 4}, {U: "C", V: "D", Weight: 1}},
//	)
//	res, _ := dijkstra.ShortestPath(g, "A", "D") // A→B→C→D, distance 4
package urbanplan
