package geometry

// Gap describes a segment split in two around a text gap. First runs from
// the original start to the near gap boundary, Second from the far gap
// boundary to the original end. Both boundary points lie on the original
// line.
type Gap struct {
	First  Segment
	Second Segment
	Center Point
	Size   float64
}

// GapSize returns the pixel length to carve out of a line for a label of
// the given measured width: the label itself, padding on both sides, and a
// stroke-width-scaled cap allowance on each cut end (never less than 2px).
func GapSize(labelWidth, padding, strokeWidth float64) float64 {
	capPad := strokeWidth
	if capPad < 2 {
		capPad = 2
	}
	return labelWidth + 2*padding + 2*capPad
}

// SplitAround carves a gap of the given size out of seg, centered at
// center, and returns the two remaining sub-segments. center is expected to
// lie on the segment. ok is false when the segment is degenerate, in which
// case no split is possible and callers fall through to the unsplit path.
func SplitAround(seg Segment, center Point, size float64) (Gap, bool) {
	ux, uy, ok := seg.Unit()
	if !ok {
		return Gap{}, false
	}
	half := size / 2
	near := Point{X: center.X - ux*half, Y: center.Y - uy*half}
	far := Point{X: center.X + ux*half, Y: center.Y + uy*half}
	return Gap{
		First:  SegmentBetween(seg.Start(), near),
		Second: SegmentBetween(far, seg.End()),
		Center: center,
		Size:   size,
	}, true
}
