// Package dataset loads the fixed-size urban snapshot the planner works on:
// the road network, candidate projects, locality coordinates, the two
// proximity point groups and the maintenance traffic flows.
//
// A snapshot is a single document in JSON, YAML or TOML. Load picks the
// decoder from the file extension; Decode takes an explicit Format. Edges may
// be written either as objects
//
//	{"from": "N1", "to": "N2", "weight": 4}
//
// or as the compact triple form
//
//	["N1", "N2", 4]
//
// Default returns the built-in Nagpur sample, which every command falls back
// to when no dataset path is configured.
//
// Converters (Network, ProjectList, LocalityPoints, ...) turn the records into
// the value types each solver package accepts. A Snapshot is never mutated
// after decoding, so one value can be shared by concurrent solvers.
package dataset
