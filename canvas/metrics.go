package canvas

import "unicode"

// DefaultFontSize is used when a font spec leaves the size unset.
const DefaultFontSize = 12.0

// lineHeightFactor converts a font size to a single-line pixel height.
const lineHeightFactor = 1.25

// FontSpec describes the font configuration a string would be rendered
// with. Only the fields that affect measurement are carried.
type FontSpec struct {
	Family string
	Size   float64
	Weight string
	Style  string
}

// sizeOrDefault returns the configured size, falling back to
// DefaultFontSize.
func (f FontSpec) sizeOrDefault() float64 {
	if f.Size > 0 {
		return f.Size
	}
	return DefaultFontSize
}

// Metrics measures the rendered pixel extent of a string. Hosts backed by a
// real rendering surface substitute an implementation that measures against
// it (e.g. an off-screen text node); measurement must not permanently
// mutate visible output.
type Metrics interface {
	Measure(text string, font FontSpec) (width, height float64)
}

// EstimatingMetrics approximates glyph advances from per-character classes.
// It is deterministic and surface-free, which keeps gap sizing and label
// clamping testable; the estimates track common sans-serif faces closely
// enough for layout purposes.
type EstimatingMetrics struct{}

// Measure returns the estimated pixel width and height of text at the given
// font configuration.
func (EstimatingMetrics) Measure(text string, font FontSpec) (width, height float64) {
	size := font.sizeOrDefault()
	var w float64
	for _, r := range text {
		w += charAdvance(r)
	}
	w *= size
	if font.Weight == "bold" || font.Weight == "600" || font.Weight == "700" {
		w *= 1.04
	}
	return w, size * lineHeightFactor
}

// MeasureLines measures a multi-line label: the widest line and the total
// stacked height.
func MeasureLines(m Metrics, lines []string, font FontSpec) (maxWidth, totalHeight float64) {
	for _, line := range lines {
		w, h := m.Measure(line, font)
		if w > maxWidth {
			maxWidth = w
		}
		totalHeight += h
	}
	return maxWidth, totalHeight
}

// charAdvance returns the advance of a rune in em units.
func charAdvance(r rune) float64 {
	switch {
	case r == ' ', r == '\u00a0':
		return 0.30
	case isNarrow(r):
		return 0.30
	case r == 'm' || r == 'w':
		return 0.85
	case r == 'M' || r == 'W':
		return 0.95
	case unicode.IsUpper(r):
		return 0.70
	case unicode.IsDigit(r):
		return 0.58
	case r > 0x2E80:
		// CJK and other full-width scripts.
		return 1.0
	default:
		return 0.55
	}
}

func isNarrow(r rune) bool {
	switch r {
	case 'i', 'j', 'l', 't', 'f', 'r', 'I',
		'.', ',', ':', ';', '\'', '|', '!', '(', ')', '[', ']', '-':
		return true
	}
	return false
}
