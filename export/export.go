// Package export converts charts to output formats: SVG markup, ASCII art
// and the JSON document form.
package export

import (
	"encoding/json"
	"fmt"

	"github.com/ayoubsiyari/full-talaria-log--sub003/canvas"
	"github.com/ayoubsiyari/full-talaria-log--sub003/chart"
	"github.com/ayoubsiyari/full-talaria-log--sub003/terminal"
)

// Format names an export format.
type Format string

// The supported export formats.
const (
	FormatSVG   Format = "svg"
	FormatASCII Format = "ascii"
	FormatJSON  Format = "json"
)

// Exporter converts a chart to one target format.
type Exporter interface {
	Export(c *chart.Chart) (string, error)
	FileExtension() string
	FormatName() string
}

// NewExporter creates an exporter for the given format.
func NewExporter(format Format) (Exporter, error) {
	switch format {
	case FormatSVG:
		return svgExporter{}, nil
	case FormatASCII:
		return asciiExporter{Cols: 100, Rows: 30}, nil
	case FormatJSON:
		return jsonExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// ParseFormat converts a user-supplied string to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "svg":
		return FormatSVG, nil
	case "ascii", "text", "txt":
		return FormatASCII, nil
	case "json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format: %s", s)
	}
}

// AvailableFormats lists every export format.
func AvailableFormats() []Format {
	return []Format{FormatSVG, FormatASCII, FormatJSON}
}

// FormatDescriptions returns a human-readable description per format.
func FormatDescriptions() map[Format]string {
	return map[Format]string{
		FormatSVG:   "SVG vector markup",
		FormatASCII: "ASCII art rendering",
		FormatJSON:  "chart document JSON",
	}
}

type svgExporter struct{}

func (svgExporter) Export(c *chart.Chart) (string, error) {
	return c.RenderSVG(), nil
}
func (svgExporter) FileExtension() string { return "svg" }
func (svgExporter) FormatName() string    { return "SVG" }

// asciiExporter rasterizes into a fixed cell grid.
type asciiExporter struct {
	Cols, Rows int
}

func (e asciiExporter) Export(c *chart.Chart) (string, error) {
	w, h := c.Size()
	doc := canvas.NewDocument(w, h)
	c.RenderInto(doc)
	out := terminal.RenderASCII(doc, e.Cols, e.Rows)
	if out == "" {
		return "", fmt.Errorf("chart area %gx%g cannot be rasterized", w, h)
	}
	return out, nil
}
func (asciiExporter) FileExtension() string { return "txt" }
func (asciiExporter) FormatName() string    { return "ASCII" }

type jsonExporter struct{}

func (jsonExporter) Export(c *chart.Chart) (string, error) {
	data, err := json.MarshalIndent(c.Document(), "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode chart document: %w", err)
	}
	return string(data), nil
}
func (jsonExporter) FileExtension() string { return "json" }
func (jsonExporter) FormatName() string    { return "JSON" }
