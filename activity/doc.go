// Package activity schedules mutually exclusive maintenance windows (road
// closures, signal phases) so that as many as possible take place.
//
// Schedule is the classic earliest-finish-time greedy:
//
//  1. Stable-sort intervals by ascending Finish (ties keep input order).
//  2. Accept an interval iff its Start ≥ the Finish of the last accepted one.
//     The first interval in sorted order is always accepted.
//
// The exchange argument shows this maximizes the NUMBER of accepted
// intervals. It does not maximize their total duration; TotalSpan simply
// reports the duration of the chosen set.
//
// Complexity: O(n log n).
package activity
