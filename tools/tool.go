package tools

import (
	"encoding/json"
	"fmt"

	"github.com/ayoubsiyari/full-talaria-log--sub003/canvas"
	"github.com/ayoubsiyari/full-talaria-log--sub003/geometry"
	"github.com/ayoubsiyari/full-talaria-log--sub003/scale"
)

// Point is a data-space coordinate: X is a series index, Y a price. Tools
// store data-space points only and project them to pixels on every render,
// so pan and zoom never require touching the tool.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Kind identifies a drawing tool variant.
type Kind string

// The supported tool variants.
const (
	KindTrendline     Kind = "trendline"
	KindHorizontal    Kind = "horizontal"
	KindVertical      Kind = "vertical"
	KindRay           Kind = "ray"
	KindHorizontalRay Kind = "horizontal-ray"
	KindExtended      Kind = "extended"
	KindCrossLine     Kind = "cross-line"
)

// RequiredPoints returns how many anchor points the variant needs before it
// draws anything. Single-anchor variants derive their full geometry from
// the viewport.
func (k Kind) RequiredPoints() int {
	switch k {
	case KindHorizontal, KindVertical, KindHorizontalRay, KindCrossLine:
		return 1
	default:
		return 2
	}
}

// Valid reports whether k names a known variant.
func (k Kind) Valid() bool {
	_, ok := constructors[k]
	return ok
}

// Tool is a drawing tool instance. Render is idempotent: it tears down the
// tool's previous primitives and rebuilds them from current state, so hosts
// re-render freely on every viewport change.
type Tool interface {
	ID() string
	Kind() Kind

	// Render projects the tool into screen space and appends its
	// primitive group to c. It returns the group, or nil when the tool
	// rendered nothing (hidden, or too few points).
	Render(c canvas.Container, s *scale.Scales) *canvas.Element

	// Update replaces the tool's anchor points.
	Update(points []Point)

	// Points returns a copy of the anchor points.
	Points() []Point

	// Handles returns the screen positions where resize handles belong.
	Handles(s *scale.Scales) []geometry.Point

	// State returns the serializable snapshot of the tool.
	State() State
}

// State is the serialization envelope shared by every variant. Visible is a
// pointer so that absence in stored JSON means visible, matching documents
// written before the flag existed.
type State struct {
	ID      string            `json:"id"`
	Kind    Kind              `json:"kind"`
	Points  []Point           `json:"points"`
	Style   Style             `json:"style,omitempty"`
	Text    string            `json:"text,omitempty"`
	Visible *bool             `json:"visible,omitempty"`
	Meta    map[string]string `json:"meta,omitempty"`
}

// constructors maps each kind to its state loader.
var constructors = map[Kind]func(State) Tool{
	KindTrendline:     func(st State) Tool { return &Trendline{base: baseFrom(st)} },
	KindHorizontal:    func(st State) Tool { return &Horizontal{base: baseFrom(st)} },
	KindVertical:      func(st State) Tool { return &Vertical{base: baseFrom(st)} },
	KindRay:           func(st State) Tool { return &Ray{base: baseFrom(st)} },
	KindHorizontalRay: func(st State) Tool { return &HorizontalRay{base: baseFrom(st)} },
	KindExtended:      func(st State) Tool { return &Extended{base: baseFrom(st)} },
	KindCrossLine:     func(st State) Tool { return &CrossLine{base: baseFrom(st)} },
}

// FromState reconstructs a tool from its serialized snapshot.
func FromState(st State) (Tool, error) {
	ctor, ok := constructors[st.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown tool kind %q", st.Kind)
	}
	return ctor(st), nil
}

// FromJSON decodes a single tool from its JSON envelope.
func FromJSON(data []byte) (Tool, error) {
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("decode tool state: %w", err)
	}
	return FromState(st)
}

// base carries the state and behavior shared by every variant. The rendered
// group is remembered only so the next Render can tear it down; all
// per-render placement data stays local to the render call.
type base struct {
	id       string
	kind     Kind
	points   []Point
	style    Style
	theme    Style
	hasTheme bool
	text     string
	visible  bool
	selected bool
	meta     map[string]string

	metrics canvas.Metrics
	group   *canvas.Element
}

func newBase(kind Kind, id string, points ...Point) base {
	return base{
		id:      id,
		kind:    kind,
		points:  append([]Point(nil), points...),
		visible: true,
	}
}

func baseFrom(st State) base {
	b := newBase(st.Kind, st.ID, st.Points...)
	b.style = st.Style
	b.text = st.Text
	b.meta = st.Meta
	if st.Visible != nil {
		b.visible = *st.Visible
	}
	return b
}

// ID returns the tool's identifier.
func (b *base) ID() string { return b.id }

// Kind returns the tool's variant.
func (b *base) Kind() Kind { return b.kind }

// Update replaces the anchor points. The next Render picks them up; nothing
// is redrawn here.
func (b *base) Update(points []Point) {
	b.points = append(b.points[:0], points...)
}

// Points returns a copy of the anchor points.
func (b *base) Points() []Point {
	return append([]Point(nil), b.points...)
}

// SetStyle replaces the tool's own style layer.
func (b *base) SetStyle(st Style) { b.style = st }

// Style returns the tool's own style layer, before theme and default
// resolution.
func (b *base) Style() Style { return b.style }

// SetTheme installs a theme layer that resolves between the tool's own
// style and the variant defaults.
func (b *base) SetTheme(st Style) {
	b.theme = st
	b.hasTheme = true
}

// SetText sets the label text. Empty text removes the label on the next
// render.
func (b *base) SetText(text string) { b.text = text }

// Text returns the label text.
func (b *base) Text() string { return b.text }

// SetVisible toggles rendering. A hidden tool tears down its primitives on
// the next Render and draws nothing.
func (b *base) SetVisible(v bool) { b.visible = v }

// Visible reports whether the tool renders.
func (b *base) Visible() bool { return b.visible }

// SetSelected toggles the resize handles.
func (b *base) SetSelected(v bool) { b.selected = v }

// Selected reports whether handles are drawn.
func (b *base) Selected() bool { return b.selected }

// SetMeta attaches an opaque key/value pair that round-trips through State.
func (b *base) SetMeta(key, value string) {
	if b.meta == nil {
		b.meta = make(map[string]string)
	}
	b.meta[key] = value
}

// Meta returns the value stored under key, or "".
func (b *base) Meta(key string) string { return b.meta[key] }

// SetMetrics installs the text measurement service. Hosts with a real
// rendering surface pass a surface-backed implementation; nil falls back to
// the deterministic estimator.
func (b *base) SetMetrics(m canvas.Metrics) { b.metrics = m }

func (b *base) measurer() canvas.Metrics {
	if b.metrics != nil {
		return b.metrics
	}
	return canvas.EstimatingMetrics{}
}

// State returns the serializable snapshot.
func (b *base) State() State {
	v := b.visible
	return State{
		ID:      b.id,
		Kind:    b.kind,
		Points:  append([]Point(nil), b.points...),
		Style:   b.style,
		Text:    b.text,
		Visible: &v,
		Meta:    b.meta,
	}
}

// effectiveStyle layers the tool's own style over the theme over the
// variant defaults.
func (b *base) effectiveStyle() Style {
	st := b.style
	if b.hasTheme {
		st = st.Resolve(b.theme)
	}
	return st.Resolve(DefaultStyle(b.kind))
}

// ready reports whether the tool has enough state to draw.
func (b *base) ready() bool {
	return b.visible && len(b.points) >= b.kind.RequiredPoints()
}

// teardown removes the previously rendered group, if any.
func (b *base) teardown(c canvas.Container) {
	if b.group != nil {
		c.Remove(b.group)
		b.group = nil
	}
}

// newGroup starts the tool's primitive group for this render.
func (b *base) newGroup() *canvas.Element {
	g := canvas.NewElement("g").
		Set("class", "tool tool-"+string(b.kind)).
		Set("data-id", b.id)
	return g
}

// attach appends the finished group and remembers it for the next teardown.
func (b *base) attach(c canvas.Container, g *canvas.Element) {
	c.Append(g)
	b.group = g
}
