package tools

import (
	"reflect"
	"strings"
	"testing"

	"github.com/ayoubsiyari/full-talaria-log--sub003/canvas"
	"github.com/ayoubsiyari/full-talaria-log--sub003/geometry"
	"github.com/ayoubsiyari/full-talaria-log--sub003/scale"
)

// testScales maps index 0..10 onto 0..800 px and price 0..300 onto an
// inverted 300..0 px axis.
func testScales() *scale.Scales {
	return &scale.Scales{
		X: scale.Linear{DomainMin: 0, DomainMax: 10, RangeMin: 0, RangeMax: 800},
		Y: scale.Linear{DomainMin: 0, DomainMax: 300, RangeMin: 300, RangeMax: 0},
	}
}

// findAll collects descendants with the given tag, depth-first.
func findAll(el *canvas.Element, tag string) []*canvas.Element {
	var out []*canvas.Element
	if el.Tag == tag {
		out = append(out, el)
	}
	for _, c := range el.Children {
		out = append(out, findAll(c, tag)...)
	}
	return out
}

func attrf(t *testing.T, el *canvas.Element, name string) float64 {
	t.Helper()
	v, ok := el.FloatAttr(name)
	if !ok {
		t.Fatalf("attribute %q missing or not numeric", name)
	}
	return v
}

func TestTrendlineRenderEndpoints(t *testing.T) {
	doc := canvas.NewDocument(800, 300)
	tl := NewTrendline("t1", Point{X: 0, Y: 100}, Point{X: 10, Y: 200})
	g := tl.Render(doc, testScales())
	if g == nil {
		t.Fatal("Render() returned nil")
	}
	lines := findAll(g, "line")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	l := lines[0]
	got := [4]float64{attrf(t, l, "x1"), attrf(t, l, "y1"), attrf(t, l, "x2"), attrf(t, l, "y2")}
	want := [4]float64{0, 200, 800, 100}
	if got != want {
		t.Errorf("endpoints = %v, want %v", got, want)
	}
}

// Extending a line whose endpoint already sits on the viewport edge must
// not move it.
func TestTrendlineExtendRightAtEdge(t *testing.T) {
	doc := canvas.NewDocument(800, 300)
	tl := NewTrendline("t1", Point{X: 0, Y: 100}, Point{X: 10, Y: 200})
	tl.SetStyle(Style{ExtendRight: true})
	g := tl.Render(doc, testScales())
	l := findAll(g, "line")[0]
	if attrf(t, l, "x2") != 800 || attrf(t, l, "y2") != 100 {
		t.Errorf("extended endpoint moved: (%v, %v)", attrf(t, l, "x2"), attrf(t, l, "y2"))
	}
}

func TestTrendlineExtendLeft(t *testing.T) {
	doc := canvas.NewDocument(800, 300)
	tl := NewTrendline("t1", Point{X: 2, Y: 150}, Point{X: 8, Y: 150})
	tl.SetStyle(Style{ExtendLeft: true})
	g := tl.Render(doc, testScales())
	l := findAll(g, "line")[0]
	if attrf(t, l, "x1") != 0 {
		t.Errorf("left extension x1 = %v, want 0", attrf(t, l, "x1"))
	}
}

func TestInsufficientPointsNoRender(t *testing.T) {
	tests := []struct {
		kind   Kind
		points []Point
	}{
		{KindTrendline, []Point{{X: 1, Y: 1}}},
		{KindRay, []Point{{X: 1, Y: 1}}},
		{KindExtended, []Point{{X: 1, Y: 1}}},
		{KindHorizontal, nil},
		{KindVertical, nil},
		{KindHorizontalRay, nil},
		{KindCrossLine, nil},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			tool, err := FromState(State{ID: "x", Kind: tt.kind, Points: tt.points})
			if err != nil {
				t.Fatal(err)
			}
			doc := canvas.NewDocument(800, 300)
			if g := tool.Render(doc, testScales()); g != nil {
				t.Error("Render() drew with insufficient points")
			}
			if doc.Len() != 0 {
				t.Errorf("document has %d elements, want 0", doc.Len())
			}
		})
	}
}

// Re-rendering must replace the previous primitives, not accumulate them.
func TestRenderIdempotent(t *testing.T) {
	doc := canvas.NewDocument(800, 300)
	tl := NewTrendline("t1", Point{X: 0, Y: 100}, Point{X: 10, Y: 200})
	tl.Render(doc, testScales())
	tl.Render(doc, testScales())
	if doc.Len() != 1 {
		t.Errorf("document has %d groups after two renders, want 1", doc.Len())
	}
}

func TestHiddenToolTearsDown(t *testing.T) {
	doc := canvas.NewDocument(800, 300)
	tl := NewTrendline("t1", Point{X: 0, Y: 100}, Point{X: 10, Y: 200})
	tl.Render(doc, testScales())
	tl.SetVisible(false)
	if g := tl.Render(doc, testScales()); g != nil {
		t.Error("hidden tool rendered")
	}
	if doc.Len() != 0 {
		t.Errorf("document has %d elements after hiding, want 0", doc.Len())
	}
}

func TestHorizontalSpansViewport(t *testing.T) {
	doc := canvas.NewDocument(800, 300)
	h := NewHorizontal("h1", Point{X: 3, Y: 150})
	g := h.Render(doc, testScales())
	lines := findAll(g, "line")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	l := lines[0]
	if attrf(t, l, "x1") != 0 || attrf(t, l, "x2") != 800 {
		t.Errorf("span = [%v, %v], want [0, 800]", attrf(t, l, "x1"), attrf(t, l, "x2"))
	}
	if attrf(t, l, "y1") != 150 || attrf(t, l, "y2") != 150 {
		t.Errorf("level = %v, want 150", attrf(t, l, "y1"))
	}
}

func TestHorizontalPriceLabel(t *testing.T) {
	doc := canvas.NewDocument(800, 300)
	h := NewHorizontal("h1", Point{X: 3, Y: 150})
	g := h.Render(doc, testScales())
	texts := findAll(g, "text")
	found := false
	for _, el := range texts {
		if el.Text == "150.00" {
			found = true
		}
	}
	if !found {
		t.Error("price label 150.00 not rendered")
	}

	// Sub-1 prices use four decimals.
	doc2 := canvas.NewDocument(800, 300)
	h2 := NewHorizontal("h2", Point{X: 3, Y: 0.5})
	g2 := h2.Render(doc2, testScales())
	found = false
	for _, el := range findAll(g2, "text") {
		if el.Text == "0.5000" {
			found = true
		}
	}
	if !found {
		t.Error("sub-1 price label not rendered with four decimals")
	}
}

func TestVerticalMiddleLabelSplits(t *testing.T) {
	doc := canvas.NewDocument(800, 300)
	v := NewVertical("v1", Point{X: 5, Y: 0})
	v.SetText("Session Open")
	v.SetStyle(Style{TextVAlign: VAlignMiddle})
	g := v.Render(doc, testScales())

	lines := findAll(g, "line")
	if len(lines) != 2 {
		t.Fatalf("got %d line segments, want 2 around the label gap", len(lines))
	}
	for _, l := range lines {
		if attrf(t, l, "x1") != 400 || attrf(t, l, "x2") != 400 {
			t.Errorf("segment left x=400: (%v, %v)", attrf(t, l, "x1"), attrf(t, l, "x2"))
		}
	}
	// The gap between the two stubs must match the measured label width
	// plus padding and cap allowance.
	gap := attrf(t, lines[1], "y1") - attrf(t, lines[0], "y2")
	width, _ := canvas.MeasureLines(canvas.EstimatingMetrics{},
		[]string{"Session Open"}, Style{}.Resolve(DefaultStyle(KindVertical)).fontSpec())
	want := geometry.GapSize(width, labelPadding, 1)
	if diff := gap - want; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("gap = %v, want %v", gap, want)
	}

	texts := findAll(g, "text")
	if len(texts) != 1 {
		t.Fatalf("got %d texts, want 1", len(texts))
	}
	if tr := texts[0].Attr("transform"); !strings.HasPrefix(tr, "rotate(-90") {
		t.Errorf("transform = %q, want a -90 rotation", tr)
	}
}

func TestVerticalHorizontalTextOrientation(t *testing.T) {
	doc := canvas.NewDocument(800, 300)
	v := NewVertical("v1", Point{X: 5, Y: 0})
	v.SetText("open")
	v.SetStyle(Style{TextVAlign: VAlignMiddle, TextOrientation: TextHorizontal})
	g := v.Render(doc, testScales())
	texts := findAll(g, "text")
	if len(texts) != 1 {
		t.Fatalf("got %d texts, want 1", len(texts))
	}
	if tr := texts[0].Attr("transform"); tr != "" {
		t.Errorf("horizontal orientation still rotated: %q", tr)
	}
}

func TestRayExtendsToEdge(t *testing.T) {
	doc := canvas.NewDocument(800, 300)
	r := NewRay("r1", Point{X: 0, Y: 100}, Point{X: 5, Y: 100})
	g := r.Render(doc, testScales())
	l := findAll(g, "line")[0]
	if attrf(t, l, "x1") != 0 || attrf(t, l, "x2") != 800 {
		t.Errorf("ray = [%v, %v], want [0, 800]", attrf(t, l, "x1"), attrf(t, l, "x2"))
	}
	if attrf(t, l, "y2") != 200 {
		t.Errorf("ray end y = %v, want 200", attrf(t, l, "y2"))
	}
}

// An edge-anchored label must keep its anchor inside the horizontal
// viewport even when the ray runs to the very edge.
func TestRayLabelClampedX(t *testing.T) {
	doc := canvas.NewDocument(800, 300)
	r := NewRay("r1", Point{X: 0, Y: 100}, Point{X: 5, Y: 100})
	r.SetText("a rather long resistance label")
	r.SetStyle(Style{TextHAlign: HAlignRight})
	g := r.Render(doc, testScales())
	texts := findAll(g, "text")
	if len(texts) != 1 {
		t.Fatalf("got %d texts, want 1", len(texts))
	}
	x := attrf(t, texts[0], "x")
	if x > 800 || x < 0 {
		t.Errorf("label anchor x = %v, outside viewport", x)
	}
}

func TestExtendedSpansBothEdges(t *testing.T) {
	doc := canvas.NewDocument(800, 300)
	e := NewExtended("e1", Point{X: 4, Y: 150}, Point{X: 6, Y: 150})
	g := e.Render(doc, testScales())
	l := findAll(g, "line")[0]
	if attrf(t, l, "x1") != 0 || attrf(t, l, "x2") != 800 {
		t.Errorf("extended = [%v, %v], want [0, 800]", attrf(t, l, "x1"), attrf(t, l, "x2"))
	}
}

func TestCrossLineMembers(t *testing.T) {
	doc := canvas.NewDocument(800, 300)
	x := NewCrossLine("x1", Point{X: 5, Y: 150})
	g := x.Render(doc, testScales())
	lines := findAll(g, "line")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want horizontal and vertical members", len(lines))
	}
	h, v := lines[0], lines[1]
	if attrf(t, h, "y1") != 150 || attrf(t, h, "x2") != 800 {
		t.Errorf("horizontal member wrong: y=%v x2=%v", attrf(t, h, "y1"), attrf(t, h, "x2"))
	}
	if attrf(t, v, "x1") != 400 || attrf(t, v, "y2") != 300 {
		t.Errorf("vertical member wrong: x=%v y2=%v", attrf(t, v, "x1"), attrf(t, v, "y2"))
	}
}

func TestSelectedHandles(t *testing.T) {
	doc := canvas.NewDocument(800, 300)
	tl := NewTrendline("t1", Point{X: 0, Y: 100}, Point{X: 10, Y: 200})
	tl.SetSelected(true)
	g := tl.Render(doc, testScales())
	circles := findAll(g, "circle")
	if len(circles) != 2 {
		t.Fatalf("got %d handles, want 2", len(circles))
	}
	if attrf(t, circles[0], "cx") != 0 || attrf(t, circles[0], "cy") != 200 {
		t.Errorf("first handle at (%v, %v)", attrf(t, circles[0], "cx"), attrf(t, circles[0], "cy"))
	}
}

func TestArrowEndings(t *testing.T) {
	doc := canvas.NewDocument(800, 300)
	r := NewRay("r1", Point{X: 0, Y: 100}, Point{X: 5, Y: 100})
	r.SetStyle(Style{RightEnd: LineEndArrow})
	g := r.Render(doc, testScales())
	if len(findAll(g, "polygon")) != 1 {
		t.Error("arrow ending not rendered")
	}
}

func TestTrendlineInfoBox(t *testing.T) {
	doc := canvas.NewDocument(800, 300)
	tl := NewTrendline("t1", Point{X: 0, Y: 100}, Point{X: 10, Y: 200})
	tl.SetStyle(Style{Info: &InfoSettings{PriceRange: true, Bars: true}})
	g := tl.Render(doc, testScales())
	var rows []string
	for _, el := range findAll(g, "text") {
		rows = append(rows, el.Text)
	}
	joined := strings.Join(rows, "|")
	if !strings.Contains(joined, "100.00") {
		t.Errorf("price range row missing: %v", rows)
	}
	if !strings.Contains(joined, "10 bars") {
		t.Errorf("bars row missing: %v", rows)
	}
}

func TestMultilineLabel(t *testing.T) {
	doc := canvas.NewDocument(800, 300)
	h := NewHorizontal("h1", Point{X: 3, Y: 150})
	h.SetText("level one\nlevel two")
	h.SetStyle(Style{TextVAlign: VAlignMiddle, PriceLabel: &priceLabelDefaultOff})
	g := h.Render(doc, testScales())
	texts := findAll(g, "text")
	if len(texts) != 1 {
		t.Fatalf("got %d texts, want 1", len(texts))
	}
	spans := findAll(texts[0], "tspan")
	if len(spans) != 2 {
		t.Fatalf("got %d tspans, want 2", len(spans))
	}
	// Centered stacks start half a line above the anchor.
	_, lineH := canvas.EstimatingMetrics{}.Measure("level one",
		Style{}.Resolve(DefaultStyle(KindHorizontal)).fontSpec())
	if dy := attrf(t, spans[0], "dy"); dy >= 0 || dy < -lineH {
		t.Errorf("first tspan dy = %v, want -lineHeight/2 = %v", dy, -lineH/2)
	}
	if !strings.Contains(spans[0].Text, "\u00a0") {
		t.Error("spaces not preserved as non-breaking")
	}
}

func TestStateRoundTrip(t *testing.T) {
	tl := NewTrendline("t1", Point{X: 1, Y: 2}, Point{X: 3, Y: 4})
	tl.SetText("breakout")
	tl.SetStyle(Style{Stroke: "#ff8800", ExtendRight: true})
	tl.SetMeta("journal", "entry-42")

	st := tl.State()
	restored, err := FromState(st)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(restored.State(), st) {
		t.Errorf("round trip changed state:\nbefore: %+v\nafter:  %+v", st, restored.State())
	}
}

func TestFromJSON(t *testing.T) {
	raw := `{"id":"h1","kind":"horizontal","points":[{"x":0,"y":95.5}],"text":"support"}`
	tool, err := FromJSON([]byte(raw))
	if err != nil {
		t.Fatal(err)
	}
	if tool.Kind() != KindHorizontal || tool.ID() != "h1" {
		t.Errorf("decoded %s/%s", tool.Kind(), tool.ID())
	}
	if pts := tool.Points(); len(pts) != 1 || pts[0].Y != 95.5 {
		t.Errorf("points = %+v", tool.Points())
	}
}

func TestFromStateUnknownKind(t *testing.T) {
	if _, err := FromState(State{ID: "z", Kind: "pitchfork"}); err == nil {
		t.Error("unknown kind accepted")
	}
}

func TestRequiredPoints(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindTrendline, 2},
		{KindRay, 2},
		{KindExtended, 2},
		{KindHorizontal, 1},
		{KindVertical, 1},
		{KindHorizontalRay, 1},
		{KindCrossLine, 1},
	}
	for _, tt := range tests {
		if got := tt.kind.RequiredPoints(); got != tt.want {
			t.Errorf("%s.RequiredPoints() = %d, want %d", tt.kind, got, tt.want)
		}
	}
}

func TestHorizontalRayFromAnchor(t *testing.T) {
	doc := canvas.NewDocument(800, 300)
	h := NewHorizontalRay("hr1", Point{X: 5, Y: 150})
	g := h.Render(doc, testScales())
	lines := findAll(g, "line")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	l := lines[0]
	if attrf(t, l, "x1") != 400 || attrf(t, l, "x2") != 800 {
		t.Errorf("ray = [%v, %v], want [400, 800]", attrf(t, l, "x1"), attrf(t, l, "x2"))
	}
}

// A "top" label must land above the line whether or not the text angle was
// flipped into readable range. The offset sign inversion on flip is what
// keeps reversed lines from painting their labels on the wrong side.
func TestTopLabelAboveLineBothDirections(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 Point
	}{
		{"left to right", Point{X: 0, Y: 150}, Point{X: 10, Y: 150}},
		{"right to left", Point{X: 10, Y: 150}, Point{X: 0, Y: 150}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := canvas.NewDocument(800, 300)
			tl := NewTrendline("t1", tt.p1, tt.p2)
			tl.SetText("entry")
			g := tl.Render(doc, testScales())
			texts := findAll(g, "text")
			if len(texts) != 1 {
				t.Fatalf("got %d texts, want 1", len(texts))
			}
			// The line sits at y=150; a top label must be above it.
			if y := attrf(t, texts[0], "y"); y >= 150 {
				t.Errorf("label y = %v, want above the line (< 150)", y)
			}
		})
	}
}
