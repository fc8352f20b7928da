package tools

import (
	"github.com/ayoubsiyari/full-talaria-log--sub003/canvas"
	"github.com/ayoubsiyari/full-talaria-log--sub003/geometry"
	"github.com/ayoubsiyari/full-talaria-log--sub003/scale"
)

// CrossLine is a full-viewport crosshair through a single anchor: a
// horizontal line at the anchor's price plus a vertical line at its series
// index. The label travels with the horizontal member.
type CrossLine struct {
	base
}

// NewCrossLine creates a crosshair through the anchor.
func NewCrossLine(id string, p Point) *CrossLine {
	return &CrossLine{base: newBase(KindCrossLine, id, p)}
}

// Render draws both crosshair members.
func (x *CrossLine) Render(c canvas.Container, s *scale.Scales) *canvas.Element {
	x.teardown(c)
	if !x.ready() {
		return nil
	}
	st := x.effectiveStyle()
	vp := s.Viewport()
	p := s.Project(x.points[0].X, x.points[0].Y)
	horiz := geometry.Segment{X1: vp.Left, Y1: p.Y, X2: vp.Right, Y2: p.Y}
	vert := geometry.Segment{X1: p.X, Y1: vp.Top, X2: p.X, Y2: vp.Bottom}

	g := x.newGroup()
	x.drawLabeledLine(g, horiz, st, vp, lineOpts{mode: anchorFraction})
	g.Append(lineElement(vert, st))
	if st.priceLabelOn() {
		g.Append(priceLabelElement(x.points[0].Y, p.Y, vp, st, x.measurer()))
	}
	if x.selected {
		appendHandles(g, x.Handles(s), st)
	}
	x.attach(c, g)
	return g
}

// Handles returns the crosshair center's screen position.
func (x *CrossLine) Handles(s *scale.Scales) []geometry.Point {
	if len(x.points) < 1 {
		return nil
	}
	return []geometry.Point{s.Project(x.points[0].X, x.points[0].Y)}
}
