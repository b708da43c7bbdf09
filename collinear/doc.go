// Package collinear detects maximal sets of 4 or more collinear points
// among a finite set of integer points, using two algorithms:
//
//   - FastCollinearPoints: for each point p (in sorted order), stably
//     sorts the remaining points by slope to p and scans runs of equal
//     slope. A run of length >= 3 (so the segment including p has >= 4
//     points) is a candidate maximal segment, emitted exactly once by
//     requiring p be the minimum point in {p} ∪ run. O(n² log n).
//
//   - BruteCollinearPoints: enumerates every 4-subset of the sorted input
//     and emits a segment when all three pairwise slopes from the first
//     point agree. O(n⁴). Does not extend beyond exactly four collinear
//     points: when 5 or more points are collinear, it reports multiple
//     overlapping segments — this is an intentional, documented
//     limitation of the brute form, not a bug.
//
// Both constructors detect duplicate input points (adjacent equality in
// the sorted copy) and, if found, skip detection entirely: the Duplicate
// flag is set and Segments returns empty.
package collinear
