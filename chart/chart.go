// Package chart hosts drawing tools on a concrete coordinate system: it
// loads chart documents, builds the data-to-pixel scales, and renders every
// tool into an SVG surface in document order.
package chart

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ayoubsiyari/full-talaria-log--sub003/canvas"
	"github.com/ayoubsiyari/full-talaria-log--sub003/scale"
	"github.com/ayoubsiyari/full-talaria-log--sub003/tools"
)

// Common errors
var (
	ErrEmptyDomain = errors.New("chart domain is empty")
	ErrBadSize     = errors.New("chart size must be positive")
)

// Domain is a closed data-space interval.
type Domain struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// span returns the domain width.
func (d Domain) span() float64 { return d.Max - d.Min }

// Document is the persisted form of a chart: canvas dimensions, the visible
// data window and the drawing tools.
type Document struct {
	Width      float64       `json:"width"`
	Height     float64       `json:"height"`
	Background string        `json:"background,omitempty"`
	XDomain    Domain        `json:"xDomain"`
	YDomain    Domain        `json:"yDomain"`
	Tools      []tools.State `json:"tools"`
}

// Chart is a live document: tools reconstructed from their states plus the
// scales that project them.
type Chart struct {
	width, height float64
	background    string
	xDomain       Domain
	yDomain       Domain
	tools         []tools.Tool

	log *zap.Logger
}

// New creates an empty chart with the given pixel dimensions and data
// window.
func New(width, height float64, x, y Domain) (*Chart, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadSize
	}
	if x.span() == 0 || y.span() == 0 {
		return nil, ErrEmptyDomain
	}
	return &Chart{
		width:   width,
		height:  height,
		xDomain: x,
		yDomain: y,
		log:     zap.NewNop(),
	}, nil
}

// Load reconstructs a chart from its document form.
func Load(doc Document) (*Chart, error) {
	c, err := New(doc.Width, doc.Height, doc.XDomain, doc.YDomain)
	if err != nil {
		return nil, err
	}
	c.background = doc.Background
	for i, st := range doc.Tools {
		t, err := tools.FromState(st)
		if err != nil {
			return nil, fmt.Errorf("tool %d: %w", i, err)
		}
		c.tools = append(c.tools, t)
	}
	return c, nil
}

// LoadJSON decodes and reconstructs a chart from document JSON.
func LoadJSON(data []byte) (*Chart, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode chart document: %w", err)
	}
	return Load(doc)
}

// SetLogger installs a structured logger; nil restores the no-op logger.
func (c *Chart) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	c.log = log
}

// SetBackground sets the canvas fill behind the tools.
func (c *Chart) SetBackground(color string) { c.background = color }

// Size returns the pixel dimensions.
func (c *Chart) Size() (width, height float64) { return c.width, c.height }

// Domains returns the current data window.
func (c *Chart) Domains() (x, y Domain) { return c.xDomain, c.yDomain }

// SetDomains pans or zooms the data window. Tools are untouched; the next
// render projects them through the new scales.
func (c *Chart) SetDomains(x, y Domain) error {
	if x.span() == 0 || y.span() == 0 {
		return ErrEmptyDomain
	}
	c.xDomain = x
	c.yDomain = y
	return nil
}

// Add appends a tool to the chart. Render order follows insertion order.
func (c *Chart) Add(t tools.Tool) {
	c.tools = append(c.tools, t)
	c.log.Debug("tool added",
		zap.String("id", t.ID()),
		zap.String("kind", string(t.Kind())))
}

// Remove deletes the tool with the given id. It reports whether a tool was
// removed.
func (c *Chart) Remove(id string) bool {
	for i, t := range c.tools {
		if t.ID() == id {
			c.tools = append(c.tools[:i], c.tools[i+1:]...)
			c.log.Debug("tool removed", zap.String("id", id))
			return true
		}
	}
	return false
}

// Tool returns the tool with the given id, or nil.
func (c *Chart) Tool(id string) tools.Tool {
	for _, t := range c.tools {
		if t.ID() == id {
			return t
		}
	}
	return nil
}

// Tools returns the tools in render order.
func (c *Chart) Tools() []tools.Tool {
	return append([]tools.Tool(nil), c.tools...)
}

// Scales builds the current data-to-pixel mapping. The Y range is inverted:
// the domain maximum maps to pixel zero, matching price-axis convention.
func (c *Chart) Scales() *scale.Scales {
	return &scale.Scales{
		X: scale.Linear{
			DomainMin: c.xDomain.Min, DomainMax: c.xDomain.Max,
			RangeMin: 0, RangeMax: c.width,
		},
		Y: scale.Linear{
			DomainMin: c.yDomain.Min, DomainMax: c.yDomain.Max,
			RangeMin: c.height, RangeMax: 0,
		},
	}
}

// RenderInto renders every tool into dst in insertion order.
func (c *Chart) RenderInto(dst canvas.Container) {
	s := c.Scales()
	for _, t := range c.tools {
		if g := t.Render(dst, s); g == nil {
			c.log.Debug("tool skipped",
				zap.String("id", t.ID()),
				zap.String("kind", string(t.Kind())))
		}
	}
}

// RenderSVG renders the chart into a fresh SVG document and returns the
// markup.
func (c *Chart) RenderSVG() string {
	doc := canvas.NewDocument(c.width, c.height)
	doc.Background = c.background
	c.RenderInto(doc)
	return doc.String()
}

// Document returns the persisted form of the chart.
func (c *Chart) Document() Document {
	doc := Document{
		Width:      c.width,
		Height:     c.height,
		Background: c.background,
		XDomain:    c.xDomain,
		YDomain:    c.yDomain,
	}
	for _, t := range c.tools {
		doc.Tools = append(doc.Tools, t.State())
	}
	return doc
}

// MarshalJSON encodes the chart in document form.
func (c *Chart) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Document())
}
