package tools

import (
	"github.com/ayoubsiyari/full-talaria-log--sub003/canvas"
	"github.com/ayoubsiyari/full-talaria-log--sub003/geometry"
	"github.com/ayoubsiyari/full-talaria-log--sub003/scale"
)

// Extended is an infinite line through two anchors, clipped to the viewport
// in both directions. Like Ray, its labels pin near the viewport edges.
type Extended struct {
	base
}

// NewExtended creates an extended line through two data-space points.
func NewExtended(id string, p1, p2 Point) *Extended {
	return &Extended{base: newBase(KindExtended, id, p1, p2)}
}

// Render clips the infinite line to the viewport and draws it.
func (e *Extended) Render(c canvas.Container, s *scale.Scales) *canvas.Element {
	e.teardown(c)
	if !e.ready() {
		return nil
	}
	st := e.effectiveStyle()
	vp := s.Viewport()
	a := s.Project(e.points[0].X, e.points[0].Y)
	b := s.Project(e.points[1].X, e.points[1].Y)
	seg := geometry.ExtendLine(a.X, a.Y, b.X, b.Y, vp)

	g := e.newGroup()
	e.drawLabeledLine(g, seg, st, vp, lineOpts{mode: anchorEdge, clamp: clampX})
	appendArrowHeads(g, seg, st)
	if e.selected {
		appendHandles(g, e.Handles(s), st)
	}
	e.attach(c, g)
	return g
}

// Handles returns the screen positions of both anchors. Handles stay on the
// anchors, not on the clipped endpoints, so dragging keeps its meaning.
func (e *Extended) Handles(s *scale.Scales) []geometry.Point {
	if len(e.points) < 2 {
		return nil
	}
	return []geometry.Point{
		s.Project(e.points[0].X, e.points[0].Y),
		s.Project(e.points[1].X, e.points[1].Y),
	}
}
