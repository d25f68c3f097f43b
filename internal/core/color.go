package core

// Color is a semantic foreground color for a screen cell.
// The platform layer resolves it to a concrete terminal color through the
// active theme, so games never deal with ANSI codes directly.
type Color uint8

// Palette entries used by the board renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightBlue
	ColorOrange
	ColorGray
	ColorDim

	// Semantic tile colors. Themes map these independently of the
	// numbered colors above.
	ColorHidden
	ColorFlag
	ColorMine
	ColorCursor
	ColorBorder
	ColorStatus
)

// NumberColor returns the conventional color for an adjacency count.
func NumberColor(n int) Color {
	switch n {
	case 1:
		return ColorBrightBlue
	case 2:
		return ColorGreen
	case 3:
		return ColorRed
	case 4:
		return ColorBlue
	case 5:
		return ColorMagenta
	case 6:
		return ColorCyan
	case 7:
		return ColorWhite
	case 8:
		return ColorGray
	default:
		return ColorDim
	}
}
