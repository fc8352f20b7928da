package tools

import (
	"github.com/ayoubsiyari/full-talaria-log--sub003/canvas"
	"github.com/ayoubsiyari/full-talaria-log--sub003/geometry"
	"github.com/ayoubsiyari/full-talaria-log--sub003/scale"
)

// Horizontal is a price level spanning the full viewport width. It needs a
// single anchor; only the anchor's price matters.
type Horizontal struct {
	base
}

// NewHorizontal creates a horizontal line at the anchor's price.
func NewHorizontal(id string, p Point) *Horizontal {
	return &Horizontal{base: newBase(KindHorizontal, id, p)}
}

// Render draws the level across the viewport and, when enabled, the price
// tag at the right edge.
func (h *Horizontal) Render(c canvas.Container, s *scale.Scales) *canvas.Element {
	h.teardown(c)
	if !h.ready() {
		return nil
	}
	st := h.effectiveStyle()
	vp := s.Viewport()
	y := s.ScreenY(h.points[0].Y)
	seg := geometry.Segment{X1: vp.Left, Y1: y, X2: vp.Right, Y2: y}

	g := h.newGroup()
	h.drawLabeledLine(g, seg, st, vp, lineOpts{mode: anchorFraction})
	if st.priceLabelOn() {
		g.Append(priceLabelElement(h.points[0].Y, y, vp, st, h.measurer()))
	}
	if h.selected {
		appendHandles(g, h.Handles(s), st)
	}
	h.attach(c, g)
	return g
}

// Handles returns the anchor's screen position.
func (h *Horizontal) Handles(s *scale.Scales) []geometry.Point {
	if len(h.points) < 1 {
		return nil
	}
	return []geometry.Point{s.Project(h.points[0].X, h.points[0].Y)}
}
