// Package hull computes the convex boundary of a set of localities and the
// area it encloses.
//
// Build uses Andrew's monotone chain:
//
//  1. Sort points lexicographically by (X, Y).
//  2. Sweep left to right building the lower chain, popping the last vertex
//     while it does not make a strict left turn (cross product ≤ 0).
//  3. Sweep right to left building the upper chain the same way.
//  4. Concatenate both chains without their duplicated end points.
//
// The result is counter-clockwise, starts at the lexicographically smallest
// point and omits points lying on a hull edge. The area comes from the
// shoelace formula and is rounded to two decimals.
//
// Complexity: O(n log n) time, O(n) memory.
package hull
