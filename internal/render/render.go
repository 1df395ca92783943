// Package render turns rune grids into styled terminal text.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridray/grid"
	"github.com/katalvlaran/gridray/internal/config"
)

// Mark classifies how a cell is drawn.
type Mark int

const (
	MarkNone Mark = iota
	MarkPath
	MarkOrigin
)

// Painter holds the styles built from a RenderConfig.
type Painter struct {
	plain     lipgloss.Style
	highlight lipgloss.Style
	origin    lipgloss.Style
	palette   []lipgloss.Style
}

// New builds a Painter on r. A nil r uses lipgloss.DefaultRenderer().
func New(r *lipgloss.Renderer, cfg config.RenderConfig) *Painter {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := &Painter{
		plain:     r.NewStyle(),
		highlight: r.NewStyle().Foreground(lipgloss.Color(cfg.Highlight)).Bold(cfg.Bold),
		origin:    r.NewStyle().Foreground(lipgloss.Color(cfg.Origin)).Bold(cfg.Bold).Underline(true),
	}
	for _, c := range cfg.Palette {
		p.palette = append(p.palette, r.NewStyle().Foreground(lipgloss.Color(c)))
	}
	return p
}

// Marked renders g with the cells in marks styled by their Mark.
func (p *Painter) Marked(g *grid.Grid[rune], marks map[grid.Position]Mark) string {
	styles := []lipgloss.Style{p.plain, p.highlight, p.origin}
	return paint(g, styles, func(pos grid.Position) int {
		return int(marks[pos])
	})
}

// Regions renders g colouring each cell by its label in labels, cycling
// through the palette. Negative labels are drawn plain.
func (p *Painter) Regions(g *grid.Grid[rune], labels *grid.Grid[int]) string {
	if len(p.palette) == 0 {
		return paint(g, []lipgloss.Style{p.plain}, func(grid.Position) int { return 0 })
	}
	styles := append([]lipgloss.Style{p.plain}, p.palette...)
	return paint(g, styles, func(pos grid.Position) int {
		l, ok := labels.Get(pos)
		if !ok || l < 0 {
			return 0
		}
		return 1 + l%len(p.palette)
	})
}

// paint groups adjacent cells that share a style so each run is rendered
// once.
func paint(g *grid.Grid[rune], styles []lipgloss.Style, styleAt func(grid.Position) int) string {
	var sb strings.Builder
	sb.Grow(g.Len()*2 + g.Height())

	for y := range g.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		row := g.Row(y)
		x := 0
		for x < len(row) {
			key := styleAt(grid.P(x, y))
			var run strings.Builder
			for x < len(row) && styleAt(grid.P(x, y)) == key {
				run.WriteRune(row[x])
				x++
			}
			if key < 0 || key >= len(styles) {
				key = 0
			}
			sb.WriteString(styles[key].Render(run.String()))
		}
	}
	return sb.String()
}
