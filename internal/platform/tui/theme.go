package tui

import (
	"slices"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/core"
)

// Theme maps semantic screen colors to terminal styles.
type Theme struct {
	Name   string
	styles map[core.Color]lipgloss.Style
}

// palette lists foreground colors per semantic color. The cursor is drawn
// reversed on top of its palette entry.
type palette map[core.Color]lipgloss.TerminalColor

var palettes = map[string]palette{
	"dark": {
		core.ColorRed:         lipgloss.Color("1"),
		core.ColorGreen:       lipgloss.Color("2"),
		core.ColorYellow:      lipgloss.Color("3"),
		core.ColorBlue:        lipgloss.Color("4"),
		core.ColorMagenta:     lipgloss.Color("5"),
		core.ColorCyan:        lipgloss.Color("6"),
		core.ColorWhite:       lipgloss.Color("7"),
		core.ColorBrightRed:   lipgloss.Color("9"),
		core.ColorBrightGreen: lipgloss.Color("10"),
		core.ColorBrightBlue:  lipgloss.Color("12"),
		core.ColorOrange:      lipgloss.Color("208"),
		core.ColorGray:        lipgloss.Color("245"),
		core.ColorDim:         lipgloss.Color("240"),
		core.ColorHidden:      lipgloss.Color("244"),
		core.ColorFlag:        lipgloss.Color("214"),
		core.ColorMine:        lipgloss.Color("196"),
		core.ColorCursor:      lipgloss.Color("229"),
		core.ColorBorder:      lipgloss.Color("240"),
		core.ColorStatus:      lipgloss.Color("229"),
	},
	"light": {
		core.ColorRed:         lipgloss.Color("124"),
		core.ColorGreen:       lipgloss.Color("28"),
		core.ColorYellow:      lipgloss.Color("136"),
		core.ColorBlue:        lipgloss.Color("19"),
		core.ColorMagenta:     lipgloss.Color("90"),
		core.ColorCyan:        lipgloss.Color("30"),
		core.ColorWhite:       lipgloss.Color("238"),
		core.ColorBrightRed:   lipgloss.Color("160"),
		core.ColorBrightGreen: lipgloss.Color("34"),
		core.ColorBrightBlue:  lipgloss.Color("21"),
		core.ColorOrange:      lipgloss.Color("166"),
		core.ColorGray:        lipgloss.Color("242"),
		core.ColorDim:         lipgloss.Color("248"),
		core.ColorHidden:      lipgloss.Color("246"),
		core.ColorFlag:        lipgloss.Color("160"),
		core.ColorMine:        lipgloss.Color("16"),
		core.ColorCursor:      lipgloss.Color("57"),
		core.ColorBorder:      lipgloss.Color("245"),
		core.ColorStatus:      lipgloss.Color("17"),
	},
	// classic keeps to the 16 base colors, like the old Windows board.
	"classic": {
		core.ColorRed:         lipgloss.Color("1"),
		core.ColorGreen:       lipgloss.Color("2"),
		core.ColorYellow:      lipgloss.Color("3"),
		core.ColorBlue:        lipgloss.Color("4"),
		core.ColorMagenta:     lipgloss.Color("5"),
		core.ColorCyan:        lipgloss.Color("6"),
		core.ColorWhite:       lipgloss.Color("7"),
		core.ColorBrightRed:   lipgloss.Color("9"),
		core.ColorBrightGreen: lipgloss.Color("10"),
		core.ColorBrightBlue:  lipgloss.Color("12"),
		core.ColorOrange:      lipgloss.Color("3"),
		core.ColorGray:        lipgloss.Color("8"),
		core.ColorDim:         lipgloss.Color("8"),
		core.ColorHidden:      lipgloss.Color("7"),
		core.ColorFlag:        lipgloss.Color("9"),
		core.ColorMine:        lipgloss.Color("15"),
		core.ColorCursor:      lipgloss.Color("15"),
		core.ColorBorder:      lipgloss.Color("7"),
		core.ColorStatus:      lipgloss.Color("15"),
	},
}

// NewTheme builds a theme for the given renderer. A nil renderer uses the
// process default; SSH sessions pass their own so color profiles match the
// remote terminal. Unknown names fall back to dark.
func NewTheme(name string, r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p, ok := palettes[name]
	if !ok {
		name = config.Themes[0]
		p = palettes[name]
	}

	styles := make(map[core.Color]lipgloss.Style, len(p)+1)
	styles[core.ColorDefault] = r.NewStyle()
	for c, fg := range p {
		s := r.NewStyle().Foreground(fg)
		switch c {
		case core.ColorCursor:
			s = s.Reverse(true).Bold(true)
		case core.ColorMine, core.ColorStatus:
			s = s.Bold(true)
		}
		styles[c] = s
	}
	return Theme{Name: name, styles: styles}
}

// Style returns the style for a color, or the default style.
func (t Theme) Style(c core.Color) lipgloss.Style {
	if s, ok := t.styles[c]; ok {
		return s
	}
	return t.styles[core.ColorDefault]
}

// NextTheme returns the theme name after current, wrapping around.
func NextTheme(current string) string {
	i := slices.Index(config.Themes, current)
	return config.Themes[(i+1)%len(config.Themes)]
}

// NextTileStyle returns the tile style after current, wrapping around.
func NextTileStyle(current string) string {
	i := slices.Index(config.TileStyles, current)
	return config.TileStyles[(i+1)%len(config.TileStyles)]
}
