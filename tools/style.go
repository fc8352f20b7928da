// Package tools implements the chart drawing tools: seven line-tool
// variants that project data-space points through the host chart's scales,
// clip against the viewport, split around on-line labels and decorate
// themselves with price tags, info boxes and resize handles. Tools render
// into a canvas.Container and are pure functions of their points, style and
// the current viewport.
package tools

import "github.com/ayoubsiyari/full-talaria-log--sub003/canvas"

// HAlign is a horizontal text alignment preference.
type HAlign string

// Horizontal alignments.
const (
	HAlignLeft   HAlign = "left"
	HAlignCenter HAlign = "center"
	HAlignRight  HAlign = "right"
)

// VAlign is a vertical text alignment preference. VAlignMiddle places the
// label on the line itself, which triggers gap splitting.
type VAlign string

// Vertical alignments.
const (
	VAlignTop    VAlign = "top"
	VAlignMiddle VAlign = "middle"
	VAlignBottom VAlign = "bottom"
)

// LineEnd selects the decoration drawn at a line ending.
type LineEnd string

// Line ending styles.
const (
	LineEndNormal LineEnd = "normal"
	LineEndArrow  LineEnd = "arrow"
)

// TextOrientation selects how a vertical line's label is rotated.
type TextOrientation string

// Text orientations for the vertical-line tool.
const (
	TextHorizontal TextOrientation = "horizontal"
	TextVertical   TextOrientation = "vertical"
)

// DefaultTextOffsetY is the historical default vertical text offset. A
// style carrying exactly this value is treated as "offset never set"; the
// comparison is against this named constant, not against zero. A caller
// who wants precisely this offset cannot express it.
const DefaultTextOffsetY = -8.0

// DefaultTextOffsetX is the default horizontal text offset; like
// DefaultTextOffsetY, the exact default value means "not set".
const DefaultTextOffsetX = 0.0

// InfoSettings selects which derived metrics the trendline info box shows.
type InfoSettings struct {
	PriceRange    bool `json:"priceRange,omitempty" yaml:"price_range,omitempty"`
	PercentChange bool `json:"percentChange,omitempty" yaml:"percent_change,omitempty"`
	Pips          bool `json:"pips,omitempty" yaml:"pips,omitempty"`
	Bars          bool `json:"bars,omitempty" yaml:"bars,omitempty"`
	Distance      bool `json:"distance,omitempty" yaml:"distance,omitempty"`
	Angle         bool `json:"angle,omitempty" yaml:"angle,omitempty"`
}

func (s InfoSettings) any() bool {
	return s.PriceRange || s.PercentChange || s.Pips || s.Bars || s.Distance || s.Angle
}

// Style is the flat presentation configuration of a tool. The zero value of
// every field means "unset"; Resolve fills unset fields from a defaults
// style. An explicit zero is indistinguishable from unset.
type Style struct {
	Stroke      string  `json:"stroke,omitempty" yaml:"stroke,omitempty"`
	StrokeWidth float64 `json:"strokeWidth,omitempty" yaml:"stroke_width,omitempty"`
	Dash        string  `json:"dash,omitempty" yaml:"dash,omitempty"`
	Opacity     float64 `json:"opacity,omitempty" yaml:"opacity,omitempty"`

	FontFamily string  `json:"fontFamily,omitempty" yaml:"font_family,omitempty"`
	FontSize   float64 `json:"fontSize,omitempty" yaml:"font_size,omitempty"`
	FontWeight string  `json:"fontWeight,omitempty" yaml:"font_weight,omitempty"`
	FontStyle  string  `json:"fontStyle,omitempty" yaml:"font_style,omitempty"`
	TextColor  string  `json:"textColor,omitempty" yaml:"text_color,omitempty"`

	TextHAlign      HAlign          `json:"textHAlign,omitempty" yaml:"text_halign,omitempty"`
	TextVAlign      VAlign          `json:"textVAlign,omitempty" yaml:"text_valign,omitempty"`
	TextOrientation TextOrientation `json:"textOrientation,omitempty" yaml:"text_orientation,omitempty"`
	TextOffsetX     float64         `json:"textOffsetX,omitempty" yaml:"text_offset_x,omitempty"`
	TextOffsetY     float64         `json:"textOffsetY,omitempty" yaml:"text_offset_y,omitempty"`

	LeftEnd  LineEnd `json:"leftEnd,omitempty" yaml:"left_end,omitempty"`
	RightEnd LineEnd `json:"rightEnd,omitempty" yaml:"right_end,omitempty"`

	ExtendLeft  bool `json:"extendLeft,omitempty" yaml:"extend_left,omitempty"`
	ExtendRight bool `json:"extendRight,omitempty" yaml:"extend_right,omitempty"`

	// PriceLabel toggles the price tag at the right axis edge; nil means
	// the per-variant default.
	PriceLabel *bool `json:"priceLabel,omitempty" yaml:"price_label,omitempty"`

	// Info selects the trendline info-box rows; nil disables the box.
	Info *InfoSettings `json:"infoSettings,omitempty" yaml:"info_settings,omitempty"`
}

// Resolve fills every unset field from def and returns the merged style.
// It is pure and idempotent: resolving the result against the same defaults
// again changes nothing, and explicitly set caller values always win.
func (s Style) Resolve(def Style) Style {
	out := s
	if out.Stroke == "" {
		out.Stroke = def.Stroke
	}
	if out.StrokeWidth == 0 {
		out.StrokeWidth = def.StrokeWidth
	}
	if out.Dash == "" {
		out.Dash = def.Dash
	}
	if out.Opacity == 0 {
		out.Opacity = def.Opacity
	}
	if out.FontFamily == "" {
		out.FontFamily = def.FontFamily
	}
	if out.FontSize == 0 {
		out.FontSize = def.FontSize
	}
	if out.FontWeight == "" {
		out.FontWeight = def.FontWeight
	}
	if out.FontStyle == "" {
		out.FontStyle = def.FontStyle
	}
	if out.TextColor == "" {
		out.TextColor = def.TextColor
	}
	if out.TextHAlign == "" {
		out.TextHAlign = def.TextHAlign
	}
	if out.TextVAlign == "" {
		out.TextVAlign = def.TextVAlign
	}
	if out.TextOrientation == "" {
		out.TextOrientation = def.TextOrientation
	}
	if out.TextOffsetX == 0 {
		out.TextOffsetX = def.TextOffsetX
	}
	if out.TextOffsetY == 0 {
		out.TextOffsetY = def.TextOffsetY
	}
	if out.LeftEnd == "" {
		out.LeftEnd = def.LeftEnd
	}
	if out.RightEnd == "" {
		out.RightEnd = def.RightEnd
	}
	if !out.ExtendLeft {
		out.ExtendLeft = def.ExtendLeft
	}
	if !out.ExtendRight {
		out.ExtendRight = def.ExtendRight
	}
	if out.PriceLabel == nil {
		out.PriceLabel = def.PriceLabel
	}
	if out.Info == nil {
		out.Info = def.Info
	}
	return out
}

// strokeWidth returns the effective stroke width with a 1px floor.
func (s Style) strokeWidth() float64 {
	if s.StrokeWidth <= 0 {
		return 1
	}
	return s.StrokeWidth
}

// textColor returns the label color, falling back to the stroke color.
func (s Style) textColor() string {
	if s.TextColor != "" {
		return s.TextColor
	}
	return s.Stroke
}

// fontSpec converts the style's font fields into a measurable spec.
func (s Style) fontSpec() canvas.FontSpec {
	return canvas.FontSpec{
		Family: s.FontFamily,
		Size:   s.FontSize,
		Weight: s.FontWeight,
		Style:  s.FontStyle,
	}
}

// priceLabelOn reports whether the price tag decoration is enabled after
// resolution.
func (s Style) priceLabelOn() bool {
	return s.PriceLabel != nil && *s.PriceLabel
}

var (
	priceLabelDefaultOn  = true
	priceLabelDefaultOff = false
)

// defaultAccent is the stroke color shared by every variant default.
const defaultAccent = "#2962ff"

// DefaultStyle returns the documented per-variant default style. The
// returned value is fresh on every call so resolved styles never alias
// shared state.
func DefaultStyle(k Kind) Style {
	st := Style{
		Stroke:      defaultAccent,
		StrokeWidth: 1,
		Opacity:     1,
		FontFamily:  "sans-serif",
		FontSize:    canvas.DefaultFontSize,
		FontWeight:  "normal",
		TextColor:   defaultAccent,
		TextHAlign:  HAlignCenter,
		TextVAlign:  VAlignTop,
		TextOffsetY: DefaultTextOffsetY,
		LeftEnd:     LineEndNormal,
		RightEnd:    LineEndNormal,
	}
	switch k {
	case KindHorizontal:
		st.Dash = "1,4"
		st.PriceLabel = &priceLabelDefaultOn
	case KindHorizontalRay:
		st.PriceLabel = &priceLabelDefaultOn
	case KindCrossLine:
		st.Dash = "1,4"
		st.PriceLabel = &priceLabelDefaultOff
	case KindVertical:
		st.TextOrientation = TextVertical
	}
	return st
}
