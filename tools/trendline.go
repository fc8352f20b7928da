package tools

import (
	"github.com/ayoubsiyari/full-talaria-log--sub003/canvas"
	"github.com/ayoubsiyari/full-talaria-log--sub003/geometry"
	"github.com/ayoubsiyari/full-talaria-log--sub003/scale"
)

// Trendline is a straight segment between two anchor points. Either end can
// be extended to the viewport edge, decorated with an arrow head, and the
// selected statistics shown in an info box.
type Trendline struct {
	base
}

// NewTrendline creates a trendline between two data-space points.
func NewTrendline(id string, p1, p2 Point) *Trendline {
	return &Trendline{base: newBase(KindTrendline, id, p1, p2)}
}

// Render projects the trendline into screen space and appends its
// primitives to c.
func (t *Trendline) Render(c canvas.Container, s *scale.Scales) *canvas.Element {
	t.teardown(c)
	if !t.ready() {
		return nil
	}
	st := t.effectiveStyle()
	vp := s.Viewport()
	a := s.Project(t.points[0].X, t.points[0].Y)
	b := s.Project(t.points[1].X, t.points[1].Y)
	seg := geometry.SegmentBetween(a, b)

	// Extensions run the ray through the anchor pair in each direction;
	// a degenerate pair stays where it is.
	if st.ExtendLeft {
		p := geometry.ExtendRay(b.X, b.Y, a.X, a.Y, vp)
		seg.X1, seg.Y1 = p.X, p.Y
	}
	if st.ExtendRight {
		p := geometry.ExtendRay(a.X, a.Y, b.X, b.Y, vp)
		seg.X2, seg.Y2 = p.X, p.Y
	}

	g := t.newGroup()
	t.drawLabeledLine(g, seg, st, vp, lineOpts{mode: anchorFraction})
	appendArrowHeads(g, seg, st)
	if st.Info != nil && st.Info.any() {
		if el := infoBoxElement(*st.Info, t.points[0], t.points[1], seg, st, t.measurer()); el != nil {
			g.Append(el)
		}
	}
	if t.selected {
		appendHandles(g, t.Handles(s), st)
	}
	t.attach(c, g)
	return g
}

// Handles returns the screen positions of the two anchor points.
func (t *Trendline) Handles(s *scale.Scales) []geometry.Point {
	if len(t.points) < 2 {
		return nil
	}
	return []geometry.Point{
		s.Project(t.points[0].X, t.points[0].Y),
		s.Project(t.points[1].X, t.points[1].Y),
	}
}
