package tools

import (
	"github.com/ayoubsiyari/full-talaria-log--sub003/canvas"
	"github.com/ayoubsiyari/full-talaria-log--sub003/geometry"
	"github.com/ayoubsiyari/full-talaria-log--sub003/scale"
)

// Ray starts at its first anchor and projects through the second to the
// viewport edge. Left/right aligned labels pin near the viewport edges
// rather than at segment fractions, since the far end moves with every
// viewport change.
type Ray struct {
	base
}

// NewRay creates a ray from origin through direction point.
func NewRay(id string, origin, through Point) *Ray {
	return &Ray{base: newBase(KindRay, id, origin, through)}
}

// Render projects the ray to the viewport edge and draws it.
func (r *Ray) Render(c canvas.Container, s *scale.Scales) *canvas.Element {
	r.teardown(c)
	if !r.ready() {
		return nil
	}
	st := r.effectiveStyle()
	vp := s.Viewport()
	a := s.Project(r.points[0].X, r.points[0].Y)
	b := s.Project(r.points[1].X, r.points[1].Y)
	end := geometry.ExtendRay(a.X, a.Y, b.X, b.Y, vp)
	seg := geometry.SegmentBetween(a, end)

	g := r.newGroup()
	r.drawLabeledLine(g, seg, st, vp, lineOpts{mode: anchorEdge, clamp: clampX})
	appendArrowHeads(g, seg, st)
	if r.selected {
		appendHandles(g, r.Handles(s), st)
	}
	r.attach(c, g)
	return g
}

// Handles returns the screen positions of both anchors.
func (r *Ray) Handles(s *scale.Scales) []geometry.Point {
	if len(r.points) < 2 {
		return nil
	}
	return []geometry.Point{
		s.Project(r.points[0].X, r.points[0].Y),
		s.Project(r.points[1].X, r.points[1].Y),
	}
}
