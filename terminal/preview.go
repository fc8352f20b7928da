package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/ayoubsiyari/full-talaria-log--sub003/canvas"
	"github.com/ayoubsiyari/full-talaria-log--sub003/chart"
)

// Preview is an interactive terminal view of a chart. Arrow keys pan the
// data window, + and - zoom, r resets, q or Escape quits.
type Preview struct {
	chart *chart.Chart

	homeX, homeY chart.Domain
}

// NewPreview creates a preview over a chart. The chart's current domains
// become the reset position.
func NewPreview(c *chart.Chart) *Preview {
	x, y := c.Domains()
	return &Preview{chart: c, homeX: x, homeY: y}
}

// Run owns the terminal until the user quits.
func (p *Preview) Run() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal screen: %w", err)
	}
	defer screen.Fini()

	for {
		p.draw(screen)
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if p.handleKey(ev) {
				return nil
			}
		}
	}
}

// handleKey applies one key press; it reports whether to quit.
func (p *Preview) handleKey(ev *tcell.EventKey) bool {
	x, y := p.chart.Domains()
	stepX := (x.Max - x.Min) * 0.1
	stepY := (y.Max - y.Min) * 0.1

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyLeft:
		x.Min -= stepX
		x.Max -= stepX
	case tcell.KeyRight:
		x.Min += stepX
		x.Max += stepX
	case tcell.KeyUp:
		y.Min += stepY
		y.Max += stepY
	case tcell.KeyDown:
		y.Min -= stepY
		y.Max -= stepY
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'r':
			x, y = p.homeX, p.homeY
		case '+', '=':
			x = zoom(x, 0.8)
			y = zoom(y, 0.8)
		case '-', '_':
			x = zoom(x, 1.25)
			y = zoom(y, 1.25)
		default:
			return false
		}
	default:
		return false
	}
	// A zero-span domain is rejected; keep the previous window then.
	_ = p.chart.SetDomains(x, y)
	return false
}

// zoom scales a domain around its center.
func zoom(d chart.Domain, factor float64) chart.Domain {
	center := (d.Min + d.Max) / 2
	half := (d.Max - d.Min) / 2 * factor
	return chart.Domain{Min: center - half, Max: center + half}
}

// draw renders the chart into the current screen size.
func (p *Preview) draw(screen tcell.Screen) {
	screen.Clear()
	cols, rows := screen.Size()
	if rows > 1 {
		rows-- // bottom row is the status line
	}

	w, h := p.chart.Size()
	doc := canvas.NewDocument(w, h)
	p.chart.RenderInto(doc)
	ascii := RenderASCII(doc, cols, rows)

	style := tcell.StyleDefault
	x, y := 0, 0
	for _, r := range ascii {
		if r == '\n' {
			x, y = 0, y+1
			continue
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}

	xd, yd := p.chart.Domains()
	status := fmt.Sprintf(" x [%g, %g]  y [%g, %g]  arrows pan, +/- zoom, r reset, q quit",
		xd.Min, xd.Max, yd.Min, yd.Max)
	statusStyle := tcell.StyleDefault.Reverse(true)
	for i, r := range status {
		if i >= cols {
			break
		}
		screen.SetContent(i, rows, r, nil, statusStyle)
	}
	screen.Show()
}
