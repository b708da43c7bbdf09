package unionfind

import "fmt"

// Interface is the capability every union-find variant in this package
// satisfies. Percolation and OpenOverlay depend on this rather than on a
// concrete type, so the underlying algorithm can be swapped without
// touching callers.
type Interface interface {
	// Connected reports whether p and q belong to the same class.
	Connected(p, q int) bool
	// Join merges the classes containing p and q. Idempotent.
	Join(p, q int)
	// ID returns the raw stored parent entry for p, for inspection/testing.
	ID(p int) int
	// Size returns the number of sites in the universe.
	Size() int
}

// checkIndex panics if p does not lie in [0, n). Out-of-range access is a
// programming-error contract throughout this package, not a recoverable
// failure: callers are expected to keep indices in range themselves.
func checkIndex(p, n int) {
	if p < 0 || p >= n {
		panic(fmt.Sprintf("unionfind: index %d out of range [0, %d)", p, n))
	}
}
