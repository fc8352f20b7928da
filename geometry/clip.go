package geometry

import "math"

// ExtendRay returns the point where the ray starting at (x1,y1) and passing
// through (x2,y2) leaves the viewport. The ray is extended toward whichever
// vertical edge its direction points at; if the intersection falls outside
// the vertical range, Y is clamped to the nearer horizontal edge and X is
// re-solved from the slope so the result stays on the line.
//
// A near-vertical ray (|dx| below Epsilon) extends straight to the top or
// bottom edge based on the sign of dy. A fully degenerate ray (both deltas
// zero) is returned unchanged; callers treat that as "no extension".
func ExtendRay(x1, y1, x2, y2 float64, vp Rect) Point {
	dx := x2 - x1
	dy := y2 - y1

	if math.Abs(dx) < Epsilon {
		switch {
		case dy > 0:
			return Point{X: x2, Y: vp.Bottom}
		case dy < 0:
			return Point{X: x2, Y: vp.Top}
		default:
			return Point{X: x2, Y: y2}
		}
	}

	slope := dy / dx
	edgeX := vp.Right
	if dx < 0 {
		edgeX = vp.Left
	}

	x := edgeX
	y := y1 + slope*(edgeX-x1)
	if y < vp.Top || y > vp.Bottom {
		y = Clamp(y, vp.Top, vp.Bottom)
		if math.Abs(slope) >= Epsilon {
			x = x1 + (y-y1)/slope
		}
		x = Clamp(x, vp.Left, vp.Right)
	}
	return Point{X: x, Y: y}
}

// ExtendLine clips the infinite line through (x1,y1) and (x2,y2) to the
// viewport, solving the edge intersection independently at the left and
// right edges. A near-vertical line degrades to the full vertical extent at
// the anchor X.
func ExtendLine(x1, y1, x2, y2 float64, vp Rect) Segment {
	dx := x2 - x1
	dy := y2 - y1

	if math.Abs(dx) < Epsilon {
		return Segment{X1: x1, Y1: vp.Top, X2: x1, Y2: vp.Bottom}
	}

	slope := dy / dx
	left := solveAtEdge(x1, y1, slope, vp.Left, vp)
	right := solveAtEdge(x1, y1, slope, vp.Right, vp)
	return SegmentBetween(left, right)
}

// solveAtEdge intersects the line through (x1,y1) with the vertical edge at
// edgeX, clamping to the horizontal edges and re-solving X when the raw
// intersection leaves the viewport vertically.
func solveAtEdge(x1, y1, slope, edgeX float64, vp Rect) Point {
	x := edgeX
	y := y1 + slope*(edgeX-x1)
	if y < vp.Top || y > vp.Bottom {
		y = Clamp(y, vp.Top, vp.Bottom)
		if math.Abs(slope) >= Epsilon {
			x = x1 + (y-y1)/slope
		}
		x = Clamp(x, vp.Left, vp.Right)
	}
	return Point{X: x, Y: y}
}
