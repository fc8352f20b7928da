package chart

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/ayoubsiyari/full-talaria-log--sub003/tools"
)

const sampleDoc = `{
	"width": 800,
	"height": 600,
	"background": "#141821",
	"xDomain": {"min": 0, "max": 10},
	"yDomain": {"min": 0, "max": 300},
	"tools": [
		{"id": "t1", "kind": "trendline", "points": [{"x": 0, "y": 100}, {"x": 10, "y": 200}]},
		{"id": "h1", "kind": "horizontal", "points": [{"x": 0, "y": 150}], "text": "support"}
	]
}`

func TestLoadJSON(t *testing.T) {
	c, err := LoadJSON([]byte(sampleDoc))
	if err != nil {
		t.Fatal(err)
	}
	if got := len(c.Tools()); got != 2 {
		t.Fatalf("loaded %d tools, want 2", got)
	}
	if c.Tool("h1") == nil || c.Tool("h1").Kind() != tools.KindHorizontal {
		t.Error("horizontal tool not reconstructed")
	}
	if c.Tool("missing") != nil {
		t.Error("lookup of unknown id returned a tool")
	}
}

func TestLoadJSONUnknownKind(t *testing.T) {
	raw := `{"width":100,"height":100,"xDomain":{"min":0,"max":1},"yDomain":{"min":0,"max":1},
		"tools":[{"id":"z","kind":"gann-fan","points":[]}]}`
	if _, err := LoadJSON([]byte(raw)); err == nil {
		t.Error("unknown tool kind accepted")
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New(0, 600, Domain{0, 10}, Domain{0, 300}); err == nil {
		t.Error("zero width accepted")
	}
	if _, err := New(800, 600, Domain{5, 5}, Domain{0, 300}); err == nil {
		t.Error("empty x domain accepted")
	}
}

func TestRenderSVG(t *testing.T) {
	c, err := LoadJSON([]byte(sampleDoc))
	if err != nil {
		t.Fatal(err)
	}
	out := c.RenderSVG()
	for _, want := range []string{
		`<svg width="800" height="600"`,
		`fill="#141821"`,
		`class="tool tool-trendline"`,
		`class="tool tool-horizontal"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("SVG missing %q", want)
		}
	}
}

// The Y scale is inverted: the domain maximum renders at pixel zero.
func TestScalesInvertedY(t *testing.T) {
	c, err := New(800, 600, Domain{0, 10}, Domain{0, 300})
	if err != nil {
		t.Fatal(err)
	}
	s := c.Scales()
	if got := s.ScreenY(300); got != 0 {
		t.Errorf("ScreenY(max) = %v, want 0", got)
	}
	if got := s.ScreenY(0); got != 600 {
		t.Errorf("ScreenY(min) = %v, want 600", got)
	}
}

func TestSetDomainsRerenders(t *testing.T) {
	c, err := LoadJSON([]byte(sampleDoc))
	if err != nil {
		t.Fatal(err)
	}
	before := c.RenderSVG()
	if err := c.SetDomains(Domain{0, 20}, Domain{0, 300}); err != nil {
		t.Fatal(err)
	}
	after := c.RenderSVG()
	if before == after {
		t.Error("render unchanged after domain change")
	}
	if err := c.SetDomains(Domain{3, 3}, Domain{0, 300}); err == nil {
		t.Error("empty domain accepted")
	}
}

func TestAddRemove(t *testing.T) {
	c, err := New(800, 600, Domain{0, 10}, Domain{0, 300})
	if err != nil {
		t.Fatal(err)
	}
	c.Add(tools.NewVertical("v1", tools.Point{X: 5, Y: 0}))
	if !c.Remove("v1") {
		t.Error("Remove() did not find the tool")
	}
	if c.Remove("v1") {
		t.Error("Remove() succeeded twice")
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	c, err := LoadJSON([]byte(sampleDoc))
	if err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(c)
	if err != nil {
		t.Fatal(err)
	}
	c2, err := LoadJSON(data)
	if err != nil {
		t.Fatal(err)
	}
	if c2.RenderSVG() != c.RenderSVG() {
		t.Error("round-tripped chart renders differently")
	}
}
