package kdtree

import (
	"fmt"
	"math"
)

// Rectangle is a closed, axis-aligned rectangle: xmin <= xmax, ymin <=
// ymax, boundary included.
type Rectangle struct {
	XMin, YMin, XMax, YMax float64
}

// UnitSquareRectangle returns the closed unit square [0,1]x[0,1].
func UnitSquareRectangle() Rectangle {
	return Rectangle{XMin: 0, YMin: 0, XMax: 1, YMax: 1}
}

// String renders the rectangle as "[xmin, xmax] X [ymin, ymax]".
func (r Rectangle) String() string {
	return fmt.Sprintf("[%g, %g] X [%g, %g]", r.XMin, r.XMax, r.YMin, r.YMax)
}

// Contains reports whether p lies within r, boundary included.
func (r Rectangle) Contains(p Point2D) bool {
	return p.X >= r.XMin && p.X <= r.XMax && p.Y >= r.YMin && p.Y <= r.YMax
}

// Intersects reports whether r and o share any point, including nested
// and boundary-touching rectangles.
func (r Rectangle) Intersects(o Rectangle) bool {
	return !(r.XMin > o.XMax || r.XMax < o.XMin || r.YMax < o.YMin || r.YMin > o.YMax)
}

// DistanceSquaredTo returns the squared Euclidean distance from p to the
// nearest point of r; 0 if p is contained in r.
func (r Rectangle) DistanceSquaredTo(p Point2D) float64 {
	if r.Contains(p) {
		return 0
	}

	// point in vertical corridor: nearest point is directly above/below
	if p.X >= r.XMin && p.X <= r.XMax {
		return math.Min(sq(r.YMax-p.Y), sq(r.YMin-p.Y))
	}

	// point in horizontal corridor: nearest point is directly left/right
	if p.Y >= r.YMin && p.Y <= r.YMax {
		return math.Min(sq(r.XMax-p.X), sq(r.XMin-p.X))
	}

	// otherwise nearest point is whichever corner is closest
	cx := r.XMin
	if p.X > r.XMax {
		cx = r.XMax
	}
	cy := r.YMin
	if p.Y > r.YMax {
		cy = r.YMax
	}
	corner := Point2D{X: cx, Y: cy}

	return corner.DistanceSquaredTo(p)
}

// DistanceTo returns the Euclidean distance from p to the nearest point
// of r.
func (r Rectangle) DistanceTo(p Point2D) float64 {
	return math.Sqrt(r.DistanceSquaredTo(p))
}

func sq(d float64) float64 { return d * d }
