package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/pursuit/internal/core"
)

func TestRenderScreenPlainText(t *testing.T) {
	r := lipgloss.NewRenderer(&strings.Builder{})
	r.SetColorProfile(termenv.Ascii)
	sr := NewScreenRenderer(r)

	s := core.NewScreen(4, 2)
	s.SetColored(0, 0, 'M', core.ColorRed)
	s.SetColored(1, 0, 'M', core.ColorRed)
	s.SetColored(2, 0, '@', core.ColorBrightYellow)
	s.Set(0, 1, '*')

	expected := "MM@ \n*   "
	if got := sr.Render(s); got != expected {
		t.Errorf("Render() = %q, expected %q", got, expected)
	}
}

func TestRenderScreenColors(t *testing.T) {
	r := lipgloss.NewRenderer(&strings.Builder{})
	r.SetColorProfile(termenv.ANSI256)
	sr := NewScreenRenderer(r)

	s := core.NewScreen(3, 1)
	s.SetColored(0, 0, 'o', core.ColorOrange)

	got := sr.Render(s)
	if !strings.Contains(got, "208") {
		t.Errorf("Render() = %q, expected an orange escape", got)
	}
	if !strings.Contains(got, "o") {
		t.Errorf("Render() = %q, expected the projectile glyph", got)
	}
}

func TestPaletteCoversColors(t *testing.T) {
	colors := []core.Color{
		core.ColorRed, core.ColorBlue, core.ColorOrange, core.ColorGray,
		core.ColorBrightGreen, core.ColorBrightYellow, core.ColorBrightMagenta,
	}
	for _, c := range colors {
		if _, ok := palette[c]; !ok {
			t.Errorf("palette missing color %v", c)
		}
	}
}
