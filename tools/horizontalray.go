package tools

import (
	"github.com/ayoubsiyari/full-talaria-log--sub003/canvas"
	"github.com/ayoubsiyari/full-talaria-log--sub003/geometry"
	"github.com/ayoubsiyari/full-talaria-log--sub003/scale"
)

// HorizontalRay runs from its anchor to the right viewport edge at the
// anchor's price. It marks a level that only holds from a point in time
// onward.
type HorizontalRay struct {
	base
}

// NewHorizontalRay creates a horizontal ray starting at the anchor.
func NewHorizontalRay(id string, p Point) *HorizontalRay {
	return &HorizontalRay{base: newBase(KindHorizontalRay, id, p)}
}

// Render draws the ray from the anchor to the right edge.
func (h *HorizontalRay) Render(c canvas.Container, s *scale.Scales) *canvas.Element {
	h.teardown(c)
	if !h.ready() {
		return nil
	}
	st := h.effectiveStyle()
	vp := s.Viewport()
	p := s.Project(h.points[0].X, h.points[0].Y)
	seg := geometry.Segment{X1: p.X, Y1: p.Y, X2: vp.Right, Y2: p.Y}

	g := h.newGroup()
	h.drawLabeledLine(g, seg, st, vp, lineOpts{mode: anchorFraction})
	appendArrowHeads(g, seg, st)
	if st.priceLabelOn() {
		g.Append(priceLabelElement(h.points[0].Y, p.Y, vp, st, h.measurer()))
	}
	if h.selected {
		appendHandles(g, h.Handles(s), st)
	}
	h.attach(c, g)
	return g
}

// Handles returns the anchor's screen position.
func (h *HorizontalRay) Handles(s *scale.Scales) []geometry.Point {
	if len(h.points) < 1 {
		return nil
	}
	return []geometry.Point{s.Project(h.points[0].X, h.points[0].Y)}
}
