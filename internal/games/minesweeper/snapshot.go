package minesweeper

import "strings"

// Display is how a cell should be drawn.
type Display uint8

const (
	DisplayHidden Display = iota
	DisplayFlagged
	DisplayNumber    // revealed safe cell; see CellView.Count
	DisplayMine      // revealed mine
	DisplayExploded  // the mine that ended the game
	DisplayWrongFlag // flag on a safe cell, shown after a loss
)

// CellView is the renderer-facing state of one cell.
type CellView struct {
	Display Display
	Count   int
}

// Rune is the plain-text glyph for the view, used by snapshots and
// screenshots.
func (v CellView) Rune() rune {
	switch v.Display {
	case DisplayFlagged:
		return 'F'
	case DisplayNumber:
		if v.Count == 0 {
			return '.'
		}
		return rune('0' + v.Count)
	case DisplayMine:
		return '*'
	case DisplayExploded:
		return 'X'
	case DisplayWrongFlag:
		return 'x'
	default:
		return '#'
	}
}

// CellChange pairs a position with its new view.
type CellChange struct {
	Position Position
	View     CellView
}

// View returns how the cell at p should be displayed.
func (b *Board) View(p Position) CellView {
	c := b.Cell(p)
	switch c.State {
	case Flagged:
		if b.state == Lost && !c.Mine {
			return CellView{Display: DisplayWrongFlag}
		}
		return CellView{Display: DisplayFlagged}
	case Revealed:
		if !c.Mine {
			return CellView{Display: DisplayNumber, Count: c.Adjacent}
		}
		if b.state == Lost && p == b.exploded {
			return CellView{Display: DisplayExploded}
		}
		return CellView{Display: DisplayMine}
	default:
		return CellView{Display: DisplayHidden}
	}
}

// Rows renders the board as text, one string per row.
func (b *Board) Rows() []string {
	rows := make([]string, b.Height())
	var sb strings.Builder
	for r := range b.Height() {
		sb.Reset()
		for c := range b.Width() {
			sb.WriteRune(b.View(Position{Row: r, Col: c}).Rune())
		}
		rows[r] = sb.String()
	}
	return rows
}

// Snapshot is a point-in-time copy of a session, for the stats panel and
// for comparing runs.
type Snapshot struct {
	Difficulty Difficulty
	State      GameState
	Rows       []string
	Remaining  int
	Revealed   int
	SafeCells  int
	HintsLeft  int
	HintsUsed  int
}

// Completion is the share of safe cells revealed, in percent.
func (s Snapshot) Completion() float64 {
	if s.SafeCells == 0 {
		return 0
	}
	return float64(s.Revealed) * 100 / float64(s.SafeCells)
}

// Equal reports whether two snapshots describe the same board.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.Difficulty != o.Difficulty || s.State != o.State ||
		s.Remaining != o.Remaining || s.Revealed != o.Revealed ||
		s.HintsLeft != o.HintsLeft || len(s.Rows) != len(o.Rows) {
		return false
	}
	for i := range s.Rows {
		if s.Rows[i] != o.Rows[i] {
			return false
		}
	}
	return true
}
