package collinear

import (
	"sort"

	"github.com/katalvlaran/algoexercises/geometry"
)

// sortedCopy returns an owned, sorted copy of points (by the Point total
// order) and reports whether any two adjacent points in that copy are
// equal, i.e. the input contained a duplicate.
func sortedCopy(points []geometry.Point) ([]geometry.Point, bool) {
	cp := make([]geometry.Point, len(points))
	copy(cp, points)

	sort.Slice(cp, func(i, j int) bool { return cp[i].Less(cp[j]) })

	duplicate := false
	for i := 1; i < len(cp); i++ {
		if cp[i-1].Equal(cp[i]) {
			duplicate = true
			break
		}
	}

	return cp, duplicate
}
