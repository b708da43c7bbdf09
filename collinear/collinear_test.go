package collinear_test

import (
	"testing"

	"github.com/katalvlaran/algoexercises/collinear"
	"github.com/katalvlaran/algoexercises/geometry"
	"github.com/stretchr/testify/assert"
)

func pt(x, y int) geometry.Point { return geometry.Point{X: x, Y: y} }

// TestBrute_DiagonalSubset checks the canonical brute-force scenario:
// four points on slope 1 among a larger mixed set.
func TestBrute_DiagonalSubset(t *testing.T) {
	points := []geometry.Point{
		pt(10000, 0), pt(0, 10000), pt(3000, 7000), pt(7000, 3000),
		pt(20000, 21000), pt(3000, 4000), pt(14000, 15000), pt(6000, 7000),
	}

	b := collinear.NewBrute(points)
	want := geometry.LineSegment{P: pt(3000, 4000), Q: pt(20000, 21000)}

	found := false
	for _, s := range b.Segments() {
		if s.Equal(want) {
			found = true
			break
		}
	}
	assert.True(t, found, "expected segment %v among %v", want, b.Segments())
}

// TestFast_HorizontalRun checks the canonical fast-algorithm scenario: a
// horizontal run of 4 collinear points among noise, emitted exactly once.
func TestFast_HorizontalRun(t *testing.T) {
	points := []geometry.Point{
		pt(19000, 10000), pt(18000, 10000), pt(32000, 10000),
		pt(21000, 10000), pt(1234, 5678), pt(14000, 10000),
	}

	f := collinear.NewFast(points)
	want := geometry.LineSegment{P: pt(14000, 10000), Q: pt(32000, 10000)}

	require := f.Segments()
	assert.Len(t, require, 1)
	if len(require) == 1 {
		assert.True(t, require[0].Equal(want), "got %v want %v", require[0], want)
	}
}

// TestFast_EmitOnce checks no two emitted segments share the same
// unordered endpoint pair, across a scenario with multiple collinear
// runs through different base points.
func TestFast_EmitOnce(t *testing.T) {
	points := []geometry.Point{
		pt(0, 0), pt(1, 1), pt(2, 2), pt(3, 3), pt(4, 4),
		pt(0, 4), pt(1, 3), pt(3, 1),
	}

	f := collinear.NewFast(points)
	seen := map[[4]int]bool{}
	for _, s := range f.Segments() {
		a, b := s.P, s.Q
		if b.Less(a) {
			a, b = b, a
		}
		key := [4]int{a.X, a.Y, b.X, b.Y}
		assert.False(t, seen[key], "segment %v emitted more than once", s)
		seen[key] = true
	}
}

// TestDuplicateInput checks duplicate detection short-circuits both
// algorithms.
func TestDuplicateInput(t *testing.T) {
	points := []geometry.Point{pt(0, 0), pt(1, 1), pt(1, 1), pt(2, 2)}

	f := collinear.NewFast(points)
	assert.True(t, f.Duplicate())
	assert.Empty(t, f.Segments())

	b := collinear.NewBrute(points)
	assert.True(t, b.Duplicate())
	assert.Empty(t, b.Segments())
}

// TestFastVsBrute_AgreeWhenNoFivePlusCollinear checks that, absent any
// 5+ collinear subset, fast and brute report the same set of endpoint
// pairs (brute never produces overlaps in this regime).
func TestFastVsBrute_AgreeWhenNoFivePlusCollinear(t *testing.T) {
	points := []geometry.Point{
		pt(1, 1), pt(2, 2), pt(3, 3), pt(4, 4), // slope 1 run of 4
		pt(1, 4), pt(2, 3), pt(3, 2), pt(4, 1), // slope -1 run of 4
		pt(0, 9), pt(9, 0), // noise, not collinear with either run beyond overlap
	}

	f := collinear.NewFast(points)
	b := collinear.NewBrute(points)

	normalize := func(segs []geometry.LineSegment) map[[4]int]bool {
		m := map[[4]int]bool{}
		for _, s := range segs {
			// brute and fast may order endpoints differently in general,
			// but both always emit (min, max) under the Point order here
			// since both always choose the subset/run minimum as P.
			m[[4]int{s.P.X, s.P.Y, s.Q.X, s.Q.Y}] = true
		}

		return m
	}

	assert.Equal(t, normalize(f.Segments()), normalize(b.Segments()))
}
