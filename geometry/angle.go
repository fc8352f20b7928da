package geometry

import "math"

// Angle returns the angle of the direction vector (dx, dy) in degrees, in
// the range (-180, 180]. Screen coordinates: a positive dy points down, so
// a falling line (in price terms) has a positive angle.
func Angle(dx, dy float64) float64 {
	return math.Atan2(dy, dx) * 180 / math.Pi
}

// NormalizeTextAngle rotates an angle into [-90, 90] so text drawn along a
// line never renders upside-down. flipped reports whether a half-turn was
// applied; callers placing labels above or below the line must invert their
// perpendicular offset sign when flipped is true, otherwise "top" labels
// land below the line.
func NormalizeTextAngle(deg float64) (angle float64, flipped bool) {
	if deg > 90 {
		return deg - 180, true
	}
	if deg < -90 {
		return deg + 180, true
	}
	return deg, false
}
