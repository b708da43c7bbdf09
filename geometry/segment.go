package geometry

import "fmt"

// LineSegment is an ordered pair of distinct points, interpreted as the
// geometric segment joining them. Equality is by endpoint identity, not
// geometric collinearity with other segments.
type LineSegment struct {
	P, Q Point
}

// String renders the segment as "(x1, y1) -> (x2, y2)".
func (s LineSegment) String() string {
	return fmt.Sprintf("%s -> %s", s.P, s.Q)
}

// Equal reports whether s and t share the same ordered endpoints.
func (s LineSegment) Equal(t LineSegment) bool {
	return s.P.Equal(t.P) && s.Q.Equal(t.Q)
}
