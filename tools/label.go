package tools

import (
	"strings"

	"github.com/ayoubsiyari/full-talaria-log--sub003/canvas"
	"github.com/ayoubsiyari/full-talaria-log--sub003/geometry"
)

// LineLabelOffset is the perpendicular distance, in pixels, between a line
// and a label placed above or below it.
const LineLabelOffset = 14.0

// labelPadding is the horizontal breathing room on each side of a label
// sitting inside a line gap.
const labelPadding = 4.0

// edgeLabelPad is how far an edge-anchored label sits inside the viewport
// edge, measured along the line.
const edgeLabelPad = 30.0

// clampPad keeps clamped labels from touching the viewport edge exactly.
const clampPad = 2.0

// SplitInfo couples the gap carved out of a line with the anchor and
// rotation of the label occupying it, so both stay geometrically consistent
// within a single render pass. It is computed fresh on every render and
// never stored on the tool.
type SplitInfo struct {
	TextX, TextY float64
	Angle        float64
	Flipped      bool
	GapSize      float64
}

// splitResult is the internal pairing of the public SplitInfo with the two
// residual sub-segments.
type splitResult struct {
	gap  geometry.Gap
	info SplitInfo
}

// anchorMode selects how the label anchor travels along the line.
type anchorMode int

const (
	// anchorFraction places the anchor at a fraction of the visible
	// segment (15%, 50% or 85% by alignment).
	anchorFraction anchorMode = iota

	// anchorEdge pins left/right-aligned anchors a fixed distance inside
	// the viewport edge. Rays and extended lines use this so the label
	// stays on screen no matter how far the line projects.
	anchorEdge
)

// clampAxis selects which coordinate of the final anchor is clamped into
// the viewport.
type clampAxis int

const (
	clampNone clampAxis = iota
	clampX
	clampY
)

// lineOpts tunes the shared labeled-line drawing path per variant.
type lineOpts struct {
	mode  anchorMode
	clamp clampAxis

	// horizontalText forces an unrotated label regardless of line angle.
	// The vertical-line tool uses it for its horizontal text orientation.
	horizontalText bool
}

// labelFraction maps an alignment to the anchor's position along the
// segment in fraction mode.
func labelFraction(h HAlign) float64 {
	switch h {
	case HAlignLeft:
		return 0.15
	case HAlignRight:
		return 0.85
	default:
		return 0.5
	}
}

// gapFraction maps an alignment to the gap center's position along the
// segment. Gaps sit closer to the ends than the label anchors so the
// residual stub stays visible.
func gapFraction(h HAlign) float64 {
	switch h {
	case HAlignLeft:
		return 0.05
	case HAlignRight:
		return 0.95
	default:
		return 0.5
	}
}

// edgeAnchor returns the anchor point for edge-pinned placement: a fixed
// distance along the line from the chosen end.
func edgeAnchor(seg geometry.Segment, h HAlign) geometry.Point {
	ux, uy, ok := seg.Unit()
	if !ok {
		return seg.Start()
	}
	inset := edgeLabelPad
	if inset > seg.Length()/2 {
		inset = seg.Length() / 2
	}
	switch h {
	case HAlignLeft:
		return geometry.Point{X: seg.X1 + ux*inset, Y: seg.Y1 + uy*inset}
	case HAlignRight:
		return geometry.Point{X: seg.X2 - ux*inset, Y: seg.Y2 - uy*inset}
	default:
		return seg.PointAt(0.5)
	}
}

// splitLines breaks label text into display lines.
func splitLines(text string) []string {
	return strings.Split(text, "\n")
}

// hasLabel reports whether the tool currently has visible label text.
func (b *base) hasLabel() bool {
	return strings.TrimSpace(b.text) != ""
}

// splitForLabel computes the gap the label carves out of seg. It returns
// nil when no split applies: no text, text not on the line, a degenerate
// segment, or a segment too short to keep both stubs visible.
func (b *base) splitForLabel(seg geometry.Segment, st Style, mode anchorMode) *splitResult {
	if !b.hasLabel() || st.TextVAlign != VAlignMiddle {
		return nil
	}
	if seg.IsDegenerate() {
		return nil
	}
	width, _ := canvas.MeasureLines(b.measurer(), splitLines(b.text), st.fontSpec())
	size := geometry.GapSize(width, labelPadding, st.strokeWidth())

	var center geometry.Point
	if mode == anchorEdge && st.TextHAlign != HAlignCenter {
		center = edgeAnchor(seg, st.TextHAlign)
	} else {
		center = seg.PointAt(gapFraction(st.TextHAlign))
	}
	gap, ok := geometry.SplitAround(seg, center, size)
	if !ok {
		return nil
	}
	angle, flipped := geometry.NormalizeTextAngle(geometry.Angle(seg.Dx(), seg.Dy()))
	return &splitResult{
		gap: gap,
		info: SplitInfo{
			TextX:   gap.Center.X,
			TextY:   gap.Center.Y,
			Angle:   angle,
			Flipped: flipped,
			GapSize: size,
		},
	}
}

// labelElement builds the text primitive for seg. split carries the gap
// placement when the label interrupts the line; otherwise the anchor is
// derived from the segment and alignment. vp bounds the optional clamping.
func (b *base) labelElement(seg geometry.Segment, st Style, vp geometry.Rect, split *splitResult, opts lineOpts) *canvas.Element {
	lines := splitLines(b.text)
	font := st.fontSpec()
	width, height := canvas.MeasureLines(b.measurer(), lines, font)
	lineHeight := height / float64(len(lines))

	var anchor geometry.Point
	var angle float64
	var flipped bool
	if split != nil {
		anchor = geometry.Point{X: split.info.TextX, Y: split.info.TextY}
		angle = split.info.Angle
		flipped = split.info.Flipped
	} else {
		angle, flipped = geometry.NormalizeTextAngle(geometry.Angle(seg.Dx(), seg.Dy()))
		if opts.mode == anchorEdge && st.TextHAlign != HAlignCenter {
			anchor = edgeAnchor(seg, st.TextHAlign)
		} else {
			anchor = seg.PointAt(labelFraction(st.TextHAlign))
		}
		// Above/below placement offsets along the perpendicular. The
		// normal flips with the text angle so "top" stays the reader's
		// top once the label is rotated into readable range.
		if st.TextVAlign != VAlignMiddle {
			if nx, ny, ok := seg.Perp(); ok {
				sign := 1.0
				if flipped {
					sign = -1
				}
				dist := LineLabelOffset
				if st.TextVAlign == VAlignBottom {
					dist = -dist
				}
				anchor.X += nx * dist * sign
				anchor.Y += ny * dist * sign
			} else {
				anchor.Y -= LineLabelOffset
			}
		}
	}
	if opts.horizontalText {
		angle = 0
	}

	if st.TextOffsetX != DefaultTextOffsetX {
		anchor.X += st.TextOffsetX
	}
	if st.TextOffsetY != DefaultTextOffsetY {
		anchor.Y += st.TextOffsetY
	}

	switch opts.clamp {
	case clampX:
		lo := vp.Left + width/2 + clampPad
		hi := vp.Right - width/2 - clampPad
		if lo <= hi {
			anchor.X = geometry.Clamp(anchor.X, lo, hi)
		}
	case clampY:
		half := width / 2
		if opts.horizontalText {
			half = height / 2
		}
		lo := vp.Top + half + clampPad
		hi := vp.Bottom - half - clampPad
		if lo <= hi {
			anchor.Y = geometry.Clamp(anchor.Y, lo, hi)
		}
	}

	el := canvas.NewElement("text").
		SetFloat("x", anchor.X).
		SetFloat("y", anchor.Y).
		Set("fill", st.textColor()).
		Set("font-family", st.FontFamily).
		SetFloat("font-size", font.Size).
		Set("text-anchor", "middle").
		Set("dominant-baseline", "middle")
	if st.FontWeight != "" && st.FontWeight != "normal" {
		el.Set("font-weight", st.FontWeight)
	}
	if st.FontStyle != "" && st.FontStyle != "normal" {
		el.Set("font-style", st.FontStyle)
	}
	if angle != 0 {
		el.Set("transform", rotateTransform(angle, anchor))
	}

	if len(lines) == 1 {
		el.SetText(preserveSpaces(lines[0]))
		return el
	}
	// Multi-line labels stack as tspans. Centered stacks start half the
	// block above the anchor; top/bottom stacks grow from the anchor.
	first := 0.0
	if st.TextVAlign == VAlignMiddle {
		first = -float64(len(lines)-1) / 2 * lineHeight
	}
	for i, line := range lines {
		dy := lineHeight
		if i == 0 {
			dy = first
		}
		el.Append(canvas.NewElement("tspan").
			SetFloat("x", anchor.X).
			SetFloat("dy", dy).
			SetText(preserveSpaces(line)))
	}
	return el
}

// rotateTransform formats an SVG rotation about a point.
func rotateTransform(deg float64, p geometry.Point) string {
	return "rotate(" + canvas.FormatFloat(deg) + " " +
		canvas.FormatFloat(p.X) + " " + canvas.FormatFloat(p.Y) + ")"
}

// preserveSpaces swaps regular spaces for non-breaking ones so XML
// whitespace collapsing cannot eat leading, trailing or repeated spaces.
func preserveSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "\u00a0")
}

// drawLabeledLine is the shared drawing path for every line variant: split
// the segment around an on-line label when one applies, draw the residual
// stubs (or the whole line), then place the label.
func (b *base) drawLabeledLine(g *canvas.Element, seg geometry.Segment, st Style, vp geometry.Rect, opts lineOpts) {
	split := b.splitForLabel(seg, st, opts.mode)
	if split == nil {
		g.Append(lineElement(seg, st))
	} else {
		g.Append(lineElement(split.gap.First, st), lineElement(split.gap.Second, st))
	}
	if b.hasLabel() {
		g.Append(b.labelElement(seg, st, vp, split, opts))
	}
}

// lineElement builds one stroked line primitive.
func lineElement(seg geometry.Segment, st Style) *canvas.Element {
	el := canvas.NewElement("line").
		SetFloat("x1", seg.X1).
		SetFloat("y1", seg.Y1).
		SetFloat("x2", seg.X2).
		SetFloat("y2", seg.Y2).
		Set("stroke", st.Stroke).
		SetFloat("stroke-width", st.strokeWidth())
	if st.Dash != "" {
		el.Set("stroke-dasharray", st.Dash)
	}
	if st.Opacity > 0 && st.Opacity < 1 {
		el.SetFloat("stroke-opacity", st.Opacity)
	}
	return el
}
