package tools

import (
	"github.com/ayoubsiyari/full-talaria-log--sub003/canvas"
	"github.com/ayoubsiyari/full-talaria-log--sub003/geometry"
	"github.com/ayoubsiyari/full-talaria-log--sub003/scale"
)

// Vertical is a time marker spanning the full viewport height at the
// anchor's series index. Its label reads along the line by default and can
// be flipped horizontal through the style's text orientation.
type Vertical struct {
	base
}

// NewVertical creates a vertical line at the anchor's series index.
func NewVertical(id string, p Point) *Vertical {
	return &Vertical{base: newBase(KindVertical, id, p)}
}

// Render draws the marker across the viewport's vertical extent. The label
// anchor is clamped vertically so it never leaves the visible area.
func (v *Vertical) Render(c canvas.Container, s *scale.Scales) *canvas.Element {
	v.teardown(c)
	if !v.ready() {
		return nil
	}
	st := v.effectiveStyle()
	vp := s.Viewport()
	x := s.ScreenX(v.points[0].X)
	seg := geometry.Segment{X1: x, Y1: vp.Top, X2: x, Y2: vp.Bottom}

	g := v.newGroup()
	v.drawLabeledLine(g, seg, st, vp, lineOpts{
		mode:           anchorFraction,
		clamp:          clampY,
		horizontalText: st.TextOrientation == TextHorizontal,
	})
	if v.selected {
		appendHandles(g, v.Handles(s), st)
	}
	v.attach(c, g)
	return g
}

// Handles returns the anchor's screen position.
func (v *Vertical) Handles(s *scale.Scales) []geometry.Point {
	if len(v.points) < 1 {
		return nil
	}
	return []geometry.Point{s.Project(v.points[0].X, v.points[0].Y)}
}
