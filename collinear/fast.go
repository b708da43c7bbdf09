package collinear

import (
	"sort"

	"github.com/katalvlaran/algoexercises/geometry"
)

// FastCollinearPoints finds every maximal collinear set of >= 4 points in
// O(n² log n) time via sort-by-slope, emitting each maximal segment
// exactly once.
type FastCollinearPoints struct {
	points    []geometry.Point
	duplicate bool
	segments  []geometry.LineSegment
}

// NewFast builds a FastCollinearPoints over points. If points contains a
// duplicate, detection is skipped: Duplicate() reports true and
// Segments() returns an empty slice.
func NewFast(points []geometry.Point) *FastCollinearPoints {
	sorted, dup := sortedCopy(points)

	f := &FastCollinearPoints{points: sorted, duplicate: dup}
	if !dup {
		f.detect()
	}

	return f
}

// Duplicate reports whether the input contained a repeated point.
func (f *FastCollinearPoints) Duplicate() bool { return f.duplicate }

// Segments returns every maximal collinear segment found, each emitted
// exactly once.
func (f *FastCollinearPoints) Segments() []geometry.LineSegment { return f.segments }

func (f *FastCollinearPoints) detect() {
	n := len(f.points)

	for i, p := range f.points {
		others := make([]geometry.Point, 0, n-1)
		for j, q := range f.points {
			if j != i {
				others = append(others, q)
			}
		}

		sort.SliceStable(others, func(a, b int) bool {
			sa, sb := p.SlopeTo(others[a]), p.SlopeTo(others[b])
			if sa != sb {
				return sa < sb
			}

			return others[a].Less(others[b])
		})

		f.scanRuns(p, others)
	}
}

// scanRuns walks others (already slope-sorted w.r.t. p) and emits a
// segment for every run of >= 3 equal-slope points, provided p is the
// minimum of {p} ∪ run — since others is a stable sort of an
// already-Point-sorted array, it suffices to check p against the run's
// first element.
func (f *FastCollinearPoints) scanRuns(p geometry.Point, others []geometry.Point) {
	i := 0
	for i < len(others) {
		j := i + 1
		slope := p.SlopeTo(others[i])
		for j < len(others) && p.SlopeTo(others[j]) == slope {
			j++
		}

		runLen := j - i
		if runLen >= 3 && p.Less(others[i]) {
			f.segments = append(f.segments, geometry.LineSegment{
				P: p,
				Q: others[j-1],
			})
		}

		i = j
	}
}
