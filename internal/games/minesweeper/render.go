package minesweeper

import (
	"fmt"

	"github.com/vovakirdan/tui-sweeper/internal/core"
)

// Layout constants, in screen cells.
const (
	cellWidth    = 2 // glyph plus a gap
	hudHeight    = 2
	footerHeight = 2
)

// glyphs maps a cell display to the runes of one tile style.
type glyphs struct {
	hidden, flag, mine, exploded, wrongFlag, empty rune
}

var (
	unicodeGlyphs = glyphs{hidden: '■', flag: '⚑', mine: '●', exploded: '✱', wrongFlag: '✗', empty: '·'}
	asciiGlyphs   = glyphs{hidden: '#', flag: 'F', mine: '*', exploded: 'X', wrongFlag: 'x', empty: '.'}
)

func (g *Game) glyphs() glyphs {
	if g.tileStyle == "ascii" {
		return asciiGlyphs
	}
	return unicodeGlyphs
}

// layout returns the board frame centered below the HUD.
func (g *Game) layout(screenW int) core.Rect {
	d := g.session.Difficulty()
	w := d.Width*cellWidth + 3
	h := d.Height + 2
	x := (screenW - w) / 2
	if x < 0 {
		x = 0
	}
	return core.NewRect(x, hudHeight, w, h)
}

// Render draws the HUD, the board and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.boardRect = g.layout(dst.Width())
	g.renderHUD(dst)
	g.renderBoard(dst)
	g.renderFooter(dst)

	if g.paused {
		g.renderOverlay(dst, "PAUSED", "Press P to resume")
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorStatus)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorDim)
}

func (g *Game) renderHUD(dst *core.Screen) {
	d := g.session.Difficulty()
	hints := g.session.Hints()
	r := g.boardRect

	title := fmt.Sprintf("%s  %dx%d", g.Title(), d.Width, d.Height)
	dst.DrawTextCentered(0, title, core.ColorStatus)

	left := fmt.Sprintf("Mines %3d", g.session.Board().Remaining())
	right := fmt.Sprintf("Hints %d/%d  Time %3d", hints.Left(), hints.Max(), int(g.Elapsed().Seconds()))
	dst.DrawTextColor(r.X, 1, left, core.ColorMine)
	dst.DrawTextColor(r.Right()-len(right), 1, right, core.ColorStatus)
}

func (g *Game) renderBoard(dst *core.Screen) {
	r := g.boardRect
	dst.DrawBox(r, core.ColorBorder)

	b := g.session.Board()
	gl := g.glyphs()
	showCursor := !b.State().Over()
	for row := range b.Height() {
		for col := range b.Width() {
			p := Position{Row: row, Col: col}
			ch, c := gl.cell(b.View(p))
			if g.hinted && p == g.hint {
				c = core.ColorBrightGreen
			}
			if showCursor && p == g.cursor {
				c = core.ColorCursor
			}
			dst.SetColor(r.X+2+col*cellWidth, r.Y+1+row, ch, c)
		}
	}
}

// cell returns the glyph and color for a view.
func (gl glyphs) cell(v CellView) (rune, core.Color) {
	switch v.Display {
	case DisplayFlagged:
		return gl.flag, core.ColorFlag
	case DisplayNumber:
		if v.Count == 0 {
			return gl.empty, core.ColorDim
		}
		return rune('0' + v.Count), core.NumberColor(v.Count)
	case DisplayMine:
		return gl.mine, core.ColorMine
	case DisplayExploded:
		return gl.exploded, core.ColorBrightRed
	case DisplayWrongFlag:
		return gl.wrongFlag, core.ColorOrange
	default:
		return gl.hidden, core.ColorHidden
	}
}

func (g *Game) renderFooter(dst *core.Screen) {
	y := g.boardRect.Bottom()
	secs := int(g.Elapsed().Seconds())

	switch g.session.State() {
	case Won:
		dst.DrawTextCentered(y, fmt.Sprintf("Cleared in %ds!", secs), core.ColorBrightGreen)
		dst.DrawTextCentered(y+1, "R new board  Ctrl+R replay  B menu", core.ColorDim)
		return
	case Lost:
		dst.DrawTextCentered(y, fmt.Sprintf("Boom! %d of %d cleared", g.session.Board().RevealedSafe(), g.session.Difficulty().SafeCells()), core.ColorBrightRed)
		dst.DrawTextCentered(y+1, "R new board  Ctrl+R replay  B menu", core.ColorDim)
		return
	}

	if g.status != "" {
		dst.DrawTextCentered(y, g.status, core.ColorYellow)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len(line1), len(line2)) + 4
	box := dst.Bounds().CenteredIn(w, 5)
	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorBorder)
	dst.DrawTextColor(box.X+(w-len(line1))/2, box.Y+1, line1, core.ColorStatus)
	dst.DrawTextColor(box.X+(w-len(line2))/2, box.Y+3, line2, core.ColorDim)
}
