package tools

import (
	"fmt"
	"math"

	"github.com/ayoubsiyari/full-talaria-log--sub003/canvas"
	"github.com/ayoubsiyari/full-talaria-log--sub003/geometry"
)

// pipSize is the price increment of one pip, fixed at the four-decimal FX
// convention.
const pipSize = 0.0001

// handleRadius is the resize handle circle radius in pixels.
const handleRadius = 4.0

// FormatPrice renders a price with magnitude-aware precision: four decimals
// for prices under 1 (FX pairs), two otherwise.
func FormatPrice(p float64) string {
	if math.Abs(p) < 1 {
		return fmt.Sprintf("%.4f", p)
	}
	return fmt.Sprintf("%.2f", p)
}

// priceLabelElement builds the price tag pinned to the right edge of the
// viewport at the line's pixel Y.
func priceLabelElement(price, y float64, vp geometry.Rect, st Style, m canvas.Metrics) *canvas.Element {
	text := FormatPrice(price)
	font := st.fontSpec()
	w, h := m.Measure(text, font)
	padX, padY := 4.0, 2.0
	boxW := w + 2*padX
	boxH := h + 2*padY
	left := vp.Right - boxW

	g := canvas.NewElement("g").Set("class", "price-label")
	g.Append(canvas.NewElement("rect").
		SetFloat("x", left).
		SetFloat("y", y-boxH/2).
		SetFloat("width", boxW).
		SetFloat("height", boxH).
		SetFloat("rx", 2).
		Set("fill", st.Stroke))
	g.Append(canvas.NewElement("text").
		SetFloat("x", left+boxW/2).
		SetFloat("y", y).
		Set("fill", "#ffffff").
		Set("font-family", st.FontFamily).
		SetFloat("font-size", font.Size).
		Set("text-anchor", "middle").
		Set("dominant-baseline", "middle").
		SetText(text))
	return g
}

// arrowHeadElement builds a solid triangular head at tip, pointing along
// (dx, dy). Returns nil for a degenerate direction.
func arrowHeadElement(tip geometry.Point, dx, dy float64, st Style) *canvas.Element {
	length := math.Hypot(dx, dy)
	if length < geometry.Epsilon {
		return nil
	}
	size := math.Max(8, 4*st.strokeWidth())
	ux, uy := dx/length, dy/length
	bx, by := tip.X-ux*size, tip.Y-uy*size
	nx, ny := uy, -ux
	half := size / 2
	points := fmt.Sprintf("%s,%s %s,%s %s,%s",
		canvas.FormatFloat(tip.X), canvas.FormatFloat(tip.Y),
		canvas.FormatFloat(bx+nx*half), canvas.FormatFloat(by+ny*half),
		canvas.FormatFloat(bx-nx*half), canvas.FormatFloat(by-ny*half))
	return canvas.NewElement("polygon").
		Set("points", points).
		Set("fill", st.Stroke)
}

// appendArrowHeads decorates the segment ends configured as arrows.
func appendArrowHeads(g *canvas.Element, seg geometry.Segment, st Style) {
	if st.LeftEnd == LineEndArrow {
		if el := arrowHeadElement(seg.Start(), -seg.Dx(), -seg.Dy(), st); el != nil {
			g.Append(el)
		}
	}
	if st.RightEnd == LineEndArrow {
		if el := arrowHeadElement(seg.End(), seg.Dx(), seg.Dy(), st); el != nil {
			g.Append(el)
		}
	}
}

// infoLines derives the selected trendline statistics from the two anchor
// points (data space) and the projected segment (screen space).
func infoLines(set InfoSettings, p1, p2 Point, seg geometry.Segment) []string {
	var out []string
	delta := p2.Y - p1.Y
	if set.PriceRange {
		out = append(out, FormatPrice(delta))
	}
	if set.PercentChange && p1.Y != 0 {
		out = append(out, fmt.Sprintf("%.2f%%", delta/math.Abs(p1.Y)*100))
	}
	if set.Pips {
		out = append(out, fmt.Sprintf("%.1f pips", delta/pipSize))
	}
	if set.Bars {
		out = append(out, fmt.Sprintf("%d bars", int(math.Round(p2.X-p1.X))))
	}
	if set.Distance {
		out = append(out, fmt.Sprintf("%.0f px", seg.Length()))
	}
	if set.Angle {
		angle, _ := geometry.NormalizeTextAngle(geometry.Angle(seg.Dx(), seg.Dy()))
		out = append(out, fmt.Sprintf("%.1f°", angle))
	}
	return out
}

// infoBoxElement renders the statistics rows in a filled box just past the
// segment's second endpoint. Returns nil when no rows are enabled.
func infoBoxElement(set InfoSettings, p1, p2 Point, seg geometry.Segment, st Style, m canvas.Metrics) *canvas.Element {
	rows := infoLines(set, p1, p2, seg)
	if len(rows) == 0 {
		return nil
	}
	font := st.fontSpec()
	width, height := canvas.MeasureLines(m, rows, font)
	lineHeight := height / float64(len(rows))
	padX, padY := 6.0, 4.0
	boxW := width + 2*padX
	boxH := height + 2*padY

	// The box trails the second endpoint along the line direction, or
	// sits directly below it when the segment is degenerate.
	offX, offY := 0.0, 12.0
	if ux, uy, ok := seg.Unit(); ok {
		offX, offY = ux*12, uy*12
	}
	left := seg.X2 + offX
	top := seg.Y2 + offY
	if offX < 0 {
		left -= boxW
	}
	if offY < 0 {
		top -= boxH
	}

	g := canvas.NewElement("g").Set("class", "info-box")
	g.Append(canvas.NewElement("rect").
		SetFloat("x", left).
		SetFloat("y", top).
		SetFloat("width", boxW).
		SetFloat("height", boxH).
		SetFloat("rx", 3).
		Set("fill", st.Stroke).
		SetFloat("fill-opacity", 0.85))
	for i, row := range rows {
		g.Append(canvas.NewElement("text").
			SetFloat("x", left+padX).
			SetFloat("y", top+padY+lineHeight*(float64(i)+0.5)).
			Set("fill", "#ffffff").
			Set("font-family", st.FontFamily).
			SetFloat("font-size", font.Size).
			Set("dominant-baseline", "middle").
			SetText(row))
	}
	return g
}

// appendHandles draws the resize handle circles for a selected tool.
func appendHandles(g *canvas.Element, pts []geometry.Point, st Style) {
	for i, p := range pts {
		g.Append(canvas.NewElement("circle").
			Set("class", "handle").
			Set("data-index", fmt.Sprintf("%d", i)).
			SetFloat("cx", p.X).
			SetFloat("cy", p.Y).
			SetFloat("r", handleRadius).
			Set("fill", "#ffffff").
			Set("stroke", st.Stroke).
			SetFloat("stroke-width", 1))
	}
}
