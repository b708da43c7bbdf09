// Package unionfind provides disjoint-set data structures for tracking
// connectivity among a fixed universe of n integer sites, plus an overlay
// that adds per-site open/blocked state on top of any implementation.
//
// What & Why
//
//   - QuickUF: quick-find (no trees). connected is O(1); join is
//     O(n) because it rewrites every entry matching p's class. Retained
//     for pedagogy — it is the structure every weighted/compressed variant
//     is built to improve on.
//
//   - WeightedUF: union-by-size with one-pass path halving. connected and
//     join are amortized near-constant. This is the variant percolation
//     and every other consumer in this module should reach for.
//
//   - OpenOverlay: wraps either variant (or any type satisfying Interface)
//     and adds a blocked/open bit per site. New sites start blocked;
//     Connected and Join are no-ops against a blocked endpoint. This lets
//     a percolation system of n²+2 sites model "not yet opened" with one
//     same-length bool side table next to the union-find.
//
// Contract
//
//	Site indices are integers in [0, n). Passing an index outside that
//	range is a programming error: the affected method panics rather than
//	returning an error, matching the rest of this module's treatment of
//	out-of-range access as a contract violation, not a recoverable failure.
//
// Complexity
//
//   - QuickUF:    Connected O(1), Join O(n).
//   - WeightedUF: Connected/Join amortized O(α(n)) with path halving.
//   - OpenOverlay adds O(1) on top of whichever Interface it wraps.
package unionfind
