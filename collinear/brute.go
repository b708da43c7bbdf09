package collinear

import "github.com/katalvlaran/algoexercises/geometry"

// BruteCollinearPoints enumerates every 4-subset (i<j<k<m) of the sorted
// input and emits (p_i, p_m) when the three pairwise slopes from p_i
// agree, in O(n⁴) time. Because the input is sorted and i is always the
// subset's minimum, no deduplication pass is needed. Does not extend
// beyond exactly four points: 5+ collinear points yield multiple
// overlapping segments, by design (see package doc).
type BruteCollinearPoints struct {
	points    []geometry.Point
	duplicate bool
	segments  []geometry.LineSegment
}

// NewBrute builds a BruteCollinearPoints over points. If points contains
// a duplicate, detection is skipped: Duplicate() reports true and
// Segments() returns an empty slice.
func NewBrute(points []geometry.Point) *BruteCollinearPoints {
	sorted, dup := sortedCopy(points)

	b := &BruteCollinearPoints{points: sorted, duplicate: dup}
	if !dup {
		b.detect()
	}

	return b
}

// Duplicate reports whether the input contained a repeated point.
func (b *BruteCollinearPoints) Duplicate() bool { return b.duplicate }

// Segments returns every collinear 4-subset found, one segment per
// subset (overlapping segments are possible for 5+ collinear points).
func (b *BruteCollinearPoints) Segments() []geometry.LineSegment { return b.segments }

func (b *BruteCollinearPoints) detect() {
	n := len(b.points)
	p := b.points

	for i := 0; i < n-3; i++ {
		for j := i + 1; j < n-2; j++ {
			for k := j + 1; k < n-1; k++ {
				if !sameSlope(p[i], p[j], p[k]) {
					continue
				}
				for m := k + 1; m < n; m++ {
					if sameSlope(p[i], p[j], p[m]) {
						b.segments = append(b.segments, geometry.LineSegment{
							P: p[i],
							Q: p[m],
						})
					}
				}
			}
		}
	}
}
