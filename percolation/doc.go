// Package percolation models an n-by-n grid of sites, each either open or
// blocked, and answers whether the system percolates: a chain of open
// neighboring sites connects the top row to the bottom row.
//
// What & Why
//
//   - Percolation wraps an unionfind.OpenOverlay of n²+2 sites — the grid
//     plus two virtual sites (top, bottom) — so percolation reduces to a
//     single Connected query between the two virtual sites.
//   - Stats runs repeated Monte-Carlo trials (open uniformly random sites
//     until the system percolates) to estimate the percolation threshold:
//     the fraction of sites that must be open before percolation becomes
//     overwhelmingly likely, a classic statistical-physics quantity.
//
// Backwash
//
//	Because every bottom-row site is wired directly to the single virtual
//	bottom sentinel, IsFull can report true for a site that is only
//	connected to the bottom via a side path once the system percolates,
//	even though no open chain from that site reaches the top row. This is
//	the textbook "backwash" artifact of the single-virtual-bottom design
//	and is preserved here to match the source model; IsFullNoBackwash
//	offers the two-pass alternative (a second overlay wired only to the
//	virtual top) for callers that need a backwash-free answer.
//
// Complexity
//
//   - Open:    amortized O(α(n²)) — a handful of union-find operations.
//   - IsFull, Percolates: O(α(n²)).
//   - Stats:   O(T · n² · α(n²)) for T trials in the worst case.
package percolation
