// Package geometry contains the screen-space primitives shared by the
// drawing tools: points, line segments, viewport rectangles and the vector
// helpers used by the clipping and label-placement code. Everything here is
// pure computation in pixel coordinates; data-space conversion lives in the
// scale package.
package geometry

import "math"

// Epsilon is the tolerance used for degeneracy checks on pixel coordinates.
const Epsilon = 1e-9

// Point is a 2D screen-space coordinate in pixels. The origin is top-left,
// X increases rightward and Y increases downward.
type Point struct {
	X, Y float64
}

// Segment is a directed line segment in screen space.
type Segment struct {
	X1, Y1, X2, Y2 float64
}

// SegmentBetween returns the segment from a to b.
func SegmentBetween(a, b Point) Segment {
	return Segment{X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y}
}

// Start returns the first endpoint.
func (s Segment) Start() Point { return Point{s.X1, s.Y1} }

// End returns the second endpoint.
func (s Segment) End() Point { return Point{s.X2, s.Y2} }

// Dx returns the X delta from start to end.
func (s Segment) Dx() float64 { return s.X2 - s.X1 }

// Dy returns the Y delta from start to end.
func (s Segment) Dy() float64 { return s.Y2 - s.Y1 }

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return math.Hypot(s.Dx(), s.Dy())
}

// IsDegenerate reports whether both endpoints coincide.
func (s Segment) IsDegenerate() bool {
	return math.Abs(s.Dx()) < Epsilon && math.Abs(s.Dy()) < Epsilon
}

// PointAt returns the point at parameter t along the segment, where t=0 is
// the start and t=1 the end. Values outside [0,1] extrapolate.
func (s Segment) PointAt(t float64) Point {
	return Point{
		X: s.X1 + s.Dx()*t,
		Y: s.Y1 + s.Dy()*t,
	}
}

// Unit returns the unit direction vector from start to end. ok is false for
// a degenerate segment, in which case both components are zero.
func (s Segment) Unit() (ux, uy float64, ok bool) {
	length := s.Length()
	if length < Epsilon {
		return 0, 0, false
	}
	return s.Dx() / length, s.Dy() / length, true
}

// Perp returns the unit vector perpendicular to the segment that points
// toward the visual "top" side of the line in screen coordinates (negative
// Y for a left-to-right horizontal segment). ok is false for a degenerate
// segment.
func (s Segment) Perp() (nx, ny float64, ok bool) {
	length := s.Length()
	if length < Epsilon {
		return 0, 0, false
	}
	return s.Dy() / length, -s.Dx() / length, true
}

// Rect is a viewport rectangle in screen space. Top is the smaller Y value.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// Contains reports whether p lies inside the rectangle, within tol.
func (r Rect) Contains(p Point, tol float64) bool {
	return p.X >= r.Left-tol && p.X <= r.Right+tol &&
		p.Y >= r.Top-tol && p.Y <= r.Bottom+tol
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
