package geometry

import (
	"fmt"
	"math"
)

// Point is an integer-plane point. Its total order is lexicographic with
// y as the primary key and x as secondary.
type Point struct {
	X, Y int
}

// String renders the point as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Equal reports whether p and q share both coordinates.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Compare returns a negative number if p < q, zero if p == q, and a
// positive number if p > q under the y-primary, x-secondary total order.
func (p Point) Compare(q Point) int {
	if p.Y != q.Y {
		return p.Y - q.Y
	}

	return p.X - q.X
}

// Less reports whether p sorts strictly before q.
func (p Point) Less(q Point) bool {
	return p.Compare(q) < 0
}

// SlopeTo computes the slope from p to q under the convention this
// module's collinear algorithms depend on:
//
//   - slope to itself: negative infinity
//   - vertical (Δx == 0, Δy != 0): positive infinity
//   - horizontal (Δy == 0, Δx != 0): positive zero, never a signed -0
//     that would otherwise flip comparisons
//   - otherwise: Δy / Δx as an ordinary real number
func (p Point) SlopeTo(q Point) float64 {
	dx := float64(q.X - p.X)
	dy := float64(q.Y - p.Y)

	switch {
	case dx == 0 && dy == 0:
		return math.Inf(-1)
	case dx == 0:
		return math.Inf(1)
	case dy == 0:
		return 0 // +0, not -0: dividing 0 by a negative dx would give -0
	default:
		return dy / dx
	}
}
