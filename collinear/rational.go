package collinear

import "github.com/katalvlaran/algoexercises/geometry"

// sameSlope reports whether the slope from base to a equals the slope
// from base to b, using the exact integer cross-product test
// (ya-y0)*(xb-x0) == (yb-y0)*(xa-x0) rather than floating-point division.
// The brute-force path only ever compares a handful of pairs per
// 4-subset and has no sort-stability requirement to preserve, so it can
// use this exact test; the fast path keeps the float slope-sort it
// depends on for its ordering (see fast.go).
func sameSlope(base, a, b geometry.Point) bool {
	dya := int64(a.Y - base.Y)
	dxa := int64(a.X - base.X)
	dyb := int64(b.Y - base.Y)
	dxb := int64(b.X - base.X)

	return dya*dxb == dyb*dxa
}
