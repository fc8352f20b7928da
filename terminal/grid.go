// Package terminal renders charts into a terminal: a rune-grid rasterizer
// for one-shot ASCII output and an interactive tcell preview with pan and
// zoom.
package terminal

import (
	"math"
	"strconv"
	"strings"

	"github.com/ayoubsiyari/full-talaria-log--sub003/canvas"
)

// Grid is a fixed-size rune matrix. Origin is top-left, X grows rightward,
// Y downward. Writes outside the grid are dropped.
type Grid struct {
	cells  [][]rune
	width  int
	height int
}

// NewGrid creates a space-filled grid. Returns nil for non-positive
// dimensions.
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		return nil
	}
	cells := make([][]rune, height)
	for y := range cells {
		cells[y] = make([]rune, width)
		for x := range cells[y] {
			cells[y][x] = ' '
		}
	}
	return &Grid{cells: cells, width: width, height: height}
}

// Size returns the grid dimensions.
func (g *Grid) Size() (width, height int) { return g.width, g.height }

// Set places a rune, ignoring out-of-bounds positions.
func (g *Grid) Set(x, y int, r rune) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	g.cells[y][x] = r
}

// Get returns the rune at a position, or ' ' out of bounds.
func (g *Grid) Get(x, y int) rune {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return ' '
	}
	return g.cells[y][x]
}

// DrawLine rasterizes a line between two cells with Bresenham's algorithm.
func (g *Grid) DrawLine(x1, y1, x2, y2 int, ch rune) {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy
	for {
		g.Set(x1, y1, ch)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawText writes a string starting at a cell, clipping at the right edge.
func (g *Grid) DrawText(x, y int, s string) {
	for i, r := range []rune(s) {
		if r == '\u00a0' {
			r = ' '
		}
		g.Set(x+i, y, r)
	}
}

// String joins the rows, trimming trailing spaces per line.
func (g *Grid) String() string {
	var b strings.Builder
	for y, row := range g.cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strings.TrimRight(string(row), " "))
	}
	return b.String()
}

// LineChar picks the rune best matching a line's direction.
func LineChar(dx, dy float64) rune {
	adx, ady := math.Abs(dx), math.Abs(dy)
	switch {
	case ady < adx/2:
		return '-'
	case adx < ady/2:
		return '|'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Raster converts a pixel-space primitive tree into grid cells.
type Raster struct {
	grid         *Grid
	cellW, cellH float64
}

// NewRaster creates a rasterizer mapping a pixel area onto a cell grid.
// Returns nil when either area is empty.
func NewRaster(cols, rows int, pxWidth, pxHeight float64) *Raster {
	g := NewGrid(cols, rows)
	if g == nil || pxWidth <= 0 || pxHeight <= 0 {
		return nil
	}
	return &Raster{
		grid:  g,
		cellW: pxWidth / float64(cols),
		cellH: pxHeight / float64(rows),
	}
}

// Grid exposes the underlying grid.
func (r *Raster) Grid() *Grid { return r.grid }

// String returns the rasterized output.
func (r *Raster) String() string { return r.grid.String() }

func (r *Raster) cellX(px float64) int { return int(math.Round(px / r.cellW)) }
func (r *Raster) cellY(px float64) int { return int(math.Round(px / r.cellH)) }

// Draw rasterizes one primitive and its children.
func (r *Raster) Draw(el *canvas.Element) {
	switch el.Tag {
	case "g":
		for _, c := range el.Children {
			r.Draw(c)
		}
		return
	case "line":
		x1, _ := el.FloatAttr("x1")
		y1, _ := el.FloatAttr("y1")
		x2, _ := el.FloatAttr("x2")
		y2, _ := el.FloatAttr("y2")
		ch := LineChar(x2-x1, y2-y1)
		r.grid.DrawLine(r.cellX(x1), r.cellY(y1), r.cellX(x2), r.cellY(y2), ch)
	case "text":
		x, _ := el.FloatAttr("x")
		y, _ := el.FloatAttr("y")
		cy := r.cellY(y)
		if el.Text != "" {
			r.drawCentered(r.cellX(x), cy, el.Text)
		}
		for i, span := range el.Children {
			if span.Tag != "tspan" {
				continue
			}
			sx, _ := span.FloatAttr("x")
			r.drawCentered(r.cellX(sx), cy+i, span.Text)
		}
	case "rect":
		x, _ := el.FloatAttr("x")
		y, _ := el.FloatAttr("y")
		w, _ := el.FloatAttr("width")
		h, _ := el.FloatAttr("height")
		r.drawBox(r.cellX(x), r.cellY(y), r.cellX(x+w), r.cellY(y+h))
	case "polygon":
		pts := parsePoints(el.Attr("points"))
		for i := range pts {
			a := pts[i]
			b := pts[(i+1)%len(pts)]
			r.grid.DrawLine(r.cellX(a[0]), r.cellY(a[1]), r.cellX(b[0]), r.cellY(b[1]), '*')
		}
	case "circle":
		cx, _ := el.FloatAttr("cx")
		cy, _ := el.FloatAttr("cy")
		r.grid.Set(r.cellX(cx), r.cellY(cy), 'o')
	}
}

// drawCentered writes text centered on a cell column.
func (r *Raster) drawCentered(cx, cy int, s string) {
	runes := []rune(s)
	r.grid.DrawText(cx-len(runes)/2, cy, s)
}

// drawBox draws a rectangle outline.
func (r *Raster) drawBox(x1, y1, x2, y2 int) {
	r.grid.DrawLine(x1, y1, x2, y1, '-')
	r.grid.DrawLine(x1, y2, x2, y2, '-')
	r.grid.DrawLine(x1, y1, x1, y2, '|')
	r.grid.DrawLine(x2, y1, x2, y2, '|')
	r.grid.Set(x1, y1, '+')
	r.grid.Set(x2, y1, '+')
	r.grid.Set(x1, y2, '+')
	r.grid.Set(x2, y2, '+')
}

// parsePoints parses an SVG polygon points attribute.
func parsePoints(s string) [][2]float64 {
	var out [][2]float64
	for _, pair := range strings.Fields(s) {
		xy := strings.SplitN(pair, ",", 2)
		if len(xy) != 2 {
			continue
		}
		x, errX := strconv.ParseFloat(xy[0], 64)
		y, errY := strconv.ParseFloat(xy[1], 64)
		if errX != nil || errY != nil {
			continue
		}
		out = append(out, [2]float64{x, y})
	}
	return out
}

// RenderASCII rasterizes a rendered SVG document into a cols x rows rune
// grid.
func RenderASCII(doc *canvas.Document, cols, rows int) string {
	r := NewRaster(cols, rows, doc.Width, doc.Height)
	if r == nil {
		return ""
	}
	for _, el := range doc.Root() {
		r.Draw(el)
	}
	return r.String()
}
