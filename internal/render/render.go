package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Glyphs are the printable forms of a dead and a live cell.
type Glyphs struct {
	Alive string
	Dead  string
}

// DefaultGlyphs draws live cells as full blocks.
var DefaultGlyphs = Glyphs{Alive: "█", Dead: " "}

// Line converts a row of 0/1 cells into text.
func (g Glyphs) Line(cells []uint8) string {
	var b strings.Builder
	b.Grow(len(cells) * len(g.Alive))
	for _, c := range cells {
		if c != 0 {
			b.WriteString(g.Alive)
		} else {
			b.WriteString(g.Dead)
		}
	}
	return b.String()
}

// Renderer turns rows into styled lines.
type Renderer struct {
	glyphs Glyphs
	theme  Theme
	alive  lipgloss.Style
	dead   lipgloss.Style
}

func NewRenderer(glyphs Glyphs, theme Theme) *Renderer {
	if glyphs.Alive == "" {
		glyphs.Alive = DefaultGlyphs.Alive
	}
	if glyphs.Dead == "" {
		glyphs.Dead = DefaultGlyphs.Dead
	}
	r := &Renderer{glyphs: glyphs}
	r.SetTheme(theme)
	return r
}

func (r *Renderer) Theme() Theme { return r.theme }

func (r *Renderer) Glyphs() Glyphs { return r.glyphs }

func (r *Renderer) SetTheme(theme Theme) {
	r.theme = theme
	r.alive = lipgloss.NewStyle().Foreground(theme.Alive)
	r.dead = lipgloss.NewStyle().Foreground(theme.Dead)
}

// Render styles a row. Runs of equal cells share one styled span.
func (r *Renderer) Render(cells []uint8) string {
	if r.theme.Plain {
		return r.glyphs.Line(cells)
	}
	var b strings.Builder
	for start := 0; start < len(cells); {
		end := start + 1
		for end < len(cells) && cells[end] == cells[start] {
			end++
		}
		span := r.glyphs.Line(cells[start:end])
		if cells[start] != 0 {
			b.WriteString(r.alive.Render(span))
		} else {
			b.WriteString(r.dead.Render(span))
		}
		start = end
	}
	return b.String()
}
