// Package scale defines the coordinate-mapper contract between a host chart
// and the drawing tools: converting data-space coordinates (series index,
// price) into screen-space pixels, and deriving the visible viewport. The
// tools only ever consume this contract; the host chart owns the mapping.
package scale

import "github.com/ayoubsiyari/full-talaria-log--sub003/geometry"

// Scale maps one data-space axis onto a pixel range.
type Scale interface {
	// Apply converts a data-space value to a pixel coordinate.
	Apply(v float64) float64

	// Range returns the pixel bounds of the axis. The pair may be
	// inverted (min > max): price axes conventionally map the highest
	// price to the smallest pixel Y.
	Range() (min, max float64)
}

// Linear is a linear data-to-pixel mapping.
type Linear struct {
	DomainMin, DomainMax float64
	RangeMin, RangeMax   float64
}

// Apply converts a data-space value to a pixel coordinate.
func (l Linear) Apply(v float64) float64 {
	span := l.DomainMax - l.DomainMin
	if span == 0 {
		return l.RangeMin
	}
	return l.RangeMin + (v-l.DomainMin)/span*(l.RangeMax-l.RangeMin)
}

// Range returns the pixel bounds of the axis.
func (l Linear) Range() (min, max float64) {
	return l.RangeMin, l.RangeMax
}

// ChartInfo carries a host chart's specialized index mapping and layout
// margins. When present it takes precedence over the plain X scale: some
// hosts map series indexes through a time axis that is not linear in pixel
// space, and their plot area excludes axis gutters.
type ChartInfo struct {
	// DataIndexToPixel converts a series index to a pixel X, overriding
	// the X scale when non-nil.
	DataIndexToPixel func(index float64) float64

	// MarginLeft and MarginRight are the gutter widths, and Width the
	// total chart width. When Width is positive these define the
	// horizontal viewport instead of the X scale's range.
	MarginLeft, MarginRight float64
	Width                   float64
}

// Scales aggregates both axes plus the optional host-chart overrides. It is
// the single capability a drawing tool needs from its environment.
type Scales struct {
	X, Y  Scale
	Chart *ChartInfo
}

// ScreenX converts a series index to a pixel X coordinate, preferring the
// host chart's specialized mapping when available.
func (s *Scales) ScreenX(index float64) float64 {
	if s.Chart != nil && s.Chart.DataIndexToPixel != nil {
		return s.Chart.DataIndexToPixel(index)
	}
	return s.X.Apply(index)
}

// ScreenY converts a price to a pixel Y coordinate.
func (s *Scales) ScreenY(price float64) float64 {
	return s.Y.Apply(price)
}

// Project converts a data-space point to screen space.
func (s *Scales) Project(index, price float64) geometry.Point {
	return geometry.Point{X: s.ScreenX(index), Y: s.ScreenY(price)}
}

// Viewport returns the visible pixel bounds. Horizontal bounds come from
// the chart margins when the host supplies them, otherwise from the X
// scale's range; vertical bounds always come from the Y scale. Inverted
// ranges are normalized so Top < Bottom and Left < Right.
func (s *Scales) Viewport() geometry.Rect {
	var left, right float64
	if s.Chart != nil && s.Chart.Width > 0 {
		left = s.Chart.MarginLeft
		right = s.Chart.Width - s.Chart.MarginRight
	} else {
		left, right = ordered(s.X.Range())
	}
	top, bottom := ordered(s.Y.Range())
	return geometry.Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

func ordered(a, b float64) (float64, float64) {
	if a > b {
		return b, a
	}
	return a, b
}
