package tui

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sweeper/internal/core"
)

// plainRenderer writes to a non-terminal, so styles carry no escapes.
func plainRenderer() *lipgloss.Renderer {
	return lipgloss.NewRenderer(io.Discard)
}

func TestNewThemeFallsBack(t *testing.T) {
	if got := NewTheme("neon", plainRenderer()).Name; got != "dark" {
		t.Errorf("unknown theme resolved to %q, expected dark", got)
	}
	for _, name := range []string{"dark", "light", "classic"} {
		if got := NewTheme(name, plainRenderer()).Name; got != name {
			t.Errorf("NewTheme(%q).Name = %q", name, got)
		}
	}
}

func TestThemeCoversColors(t *testing.T) {
	for name, p := range palettes {
		for _, c := range []core.Color{
			core.ColorHidden, core.ColorFlag, core.ColorMine, core.ColorCursor,
			core.ColorBorder, core.ColorStatus, core.ColorBlue, core.ColorGreen,
			core.ColorRed, core.ColorMagenta, core.ColorOrange, core.ColorCyan,
			core.ColorGray, core.ColorDim, core.ColorBrightGreen,
		} {
			if _, ok := p[c]; !ok {
				t.Errorf("theme %s has no entry for color %v", name, c)
			}
		}
	}
}

func TestNextTheme(t *testing.T) {
	tests := []struct{ from, want string }{
		{"dark", "light"},
		{"light", "classic"},
		{"classic", "dark"},
		{"unknown", "dark"},
	}
	for _, tc := range tests {
		if got := NextTheme(tc.from); got != tc.want {
			t.Errorf("NextTheme(%q) = %q, expected %q", tc.from, got, tc.want)
		}
	}
	if NextTileStyle("unicode") != "ascii" || NextTileStyle("ascii") != "unicode" {
		t.Error("tile styles should alternate")
	}
}

func TestRenderScreenPlainText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.DrawTextColor(2, 0, "cd", core.ColorFlag)
	s.DrawTextColor(0, 1, "xyz", core.ColorCursor)

	got := RenderScreen(s, NewTheme("dark", plainRenderer()))
	if got != s.String() {
		t.Errorf("RenderScreen() = %q, expected %q", got, s.String())
	}
}
