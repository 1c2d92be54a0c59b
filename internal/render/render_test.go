package render

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/automata/internal/automaton"
)

func TestGlyphsLine(t *testing.T) {
	assert.Equal(t, "  ███  ", DefaultGlyphs.Line([]uint8{0, 0, 1, 1, 1, 0, 0}))
	assert.Equal(t, ".#.", Glyphs{Alive: "#", Dead: "."}.Line([]uint8{0, 1, 0}))
	assert.Empty(t, DefaultGlyphs.Line(nil))
}

func TestRendererPlainHasNoEscapes(t *testing.T) {
	r := NewRenderer(Glyphs{Alive: "#", Dead: "."}, GetTheme("plain"))
	out := r.Render([]uint8{1, 0, 0, 1})
	assert.Equal(t, "#..#", out)
	assert.NotContains(t, out, "\x1b")
}

func TestRendererThemedKeepsGlyphs(t *testing.T) {
	r := NewRenderer(DefaultGlyphs, ThemeOcean)
	out := r.Render([]uint8{0, 1, 1, 1, 0})
	assert.Contains(t, out, "███")
	assert.Equal(t, 3, strings.Count(out, "█"))
}

func TestRendererEmptyGlyphsFallBack(t *testing.T) {
	r := NewRenderer(Glyphs{}, ThemePlain)
	assert.Equal(t, DefaultGlyphs, r.Glyphs())
}

func TestGetTheme(t *testing.T) {
	assert.Equal(t, "retro", GetTheme("retro").Name)
	assert.Equal(t, "plain", GetTheme("nonexistent").Name)
	assert.Len(t, ThemeNames(), len(Themes))
}

func TestNextThemeCycles(t *testing.T) {
	theme := Themes[0]
	for range Themes {
		theme = NextTheme(theme)
	}
	assert.Equal(t, Themes[0].Name, theme.Name)
}

func TestWriterStreamsLines(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, NewRenderer(Glyphs{Alive: "#", Dead: "."}, ThemePlain), 0)

	ctx := context.Background()
	require.NoError(t, w.WriteRow(ctx, automaton.Row{Cells: []uint8{0, 0, 0, 1, 0, 0, 0}}))
	require.NoError(t, w.WriteRow(ctx, automaton.Row{Generation: 1, Cells: []uint8{0, 0, 1, 1, 1, 0, 0}}))

	assert.Equal(t, "...#...\n..###..\n", buf.String())
}

func TestWriterDelayHonoursCancel(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, NewRenderer(DefaultGlyphs, ThemePlain), time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := w.WriteRow(ctx, automaton.Row{Cells: []uint8{1}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, "█\n", buf.String(), "row is written before the pause")
}

func TestWriterDelayPaces(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, NewRenderer(DefaultGlyphs, ThemePlain), 20*time.Millisecond)

	start := time.Now()
	require.NoError(t, w.WriteRow(context.Background(), automaton.Row{Cells: []uint8{1}}))
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}
