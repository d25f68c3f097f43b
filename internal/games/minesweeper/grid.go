// Package minesweeper implements the Minesweeper board engine: lazy mine
// placement, flood-fill reveal, flags, hints, and the session that ties
// them to the platform. The engine never draws, plays sounds, or touches
// storage; it reports what changed and lets collaborators react.
package minesweeper

import (
	"fmt"
	"math/rand/v2"

	"github.com/zyedidia/generic/mapset"
)

// Position addresses a cell by zero-based row and column.
type Position struct {
	Row, Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// CellState is what the player sees of a cell.
type CellState uint8

const (
	Hidden CellState = iota
	Revealed
	Flagged
)

func (s CellState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Flagged:
		return "flagged"
	default:
		return "unknown"
	}
}

// Cell is one square of the board.
// Adjacent is fixed once mines are placed.
type Cell struct {
	State    CellState
	Mine     bool
	Adjacent int
}

// Board is a W×H grid stored row-major.
type Board struct {
	difficulty Difficulty
	cells      []Cell
	state      GameState
	placed     bool
	flagged    int
	revealed   int // safe cells revealed
	exploded   Position
	rng        *rand.Rand

	// reserved holds cells promised safe before placement (hints on a
	// fresh board). Placement keeps mines off them.
	reserved mapset.Set[Position]
}

// NewBoard returns a hidden, mine-free board.
// The rng drives mine placement; pass a seeded one for reproducible games.
func NewBoard(d Difficulty, rng *rand.Rand) (*Board, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Board{
		difficulty: d,
		cells:      make([]Cell, d.Cells()),
		rng:        rng,
		reserved:   mapset.New[Position](),
	}, nil
}

func (b *Board) Difficulty() Difficulty { return b.difficulty }
func (b *Board) Width() int             { return b.difficulty.Width }
func (b *Board) Height() int            { return b.difficulty.Height }
func (b *Board) Mines() int             { return b.difficulty.Mines }
func (b *Board) State() GameState       { return b.state }
func (b *Board) Placed() bool           { return b.placed }
func (b *Board) Flags() int             { return b.flagged }

// RevealedSafe returns how many safe cells have been revealed.
func (b *Board) RevealedSafe() int { return b.revealed }

// InBounds reports whether p lies on the board.
func (b *Board) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < b.difficulty.Height && p.Col >= 0 && p.Col < b.difficulty.Width
}

// Cell returns a copy of the cell at p. Out-of-bounds positions return
// the zero Cell.
func (b *Board) Cell(p Position) Cell {
	if !b.InBounds(p) {
		return Cell{}
	}
	return b.cells[b.index(p)]
}

// Exploded returns the mine that ended the game, if the board was lost.
func (b *Board) Exploded() (Position, bool) {
	return b.exploded, b.state == Lost
}

func (b *Board) index(p Position) int {
	return p.Row*b.difficulty.Width + p.Col
}

func (b *Board) position(i int) Position {
	return Position{Row: i / b.difficulty.Width, Col: i % b.difficulty.Width}
}

func (b *Board) at(p Position) *Cell {
	return &b.cells[b.index(p)]
}

// Neighbors returns the in-bounds cells around p, in row-major order.
func (b *Board) Neighbors(p Position) []Position {
	out := make([]Position, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			n := Position{Row: p.Row + dr, Col: p.Col + dc}
			if b.InBounds(n) {
				out = append(out, n)
			}
		}
	}
	return out
}

// each visits every cell in row-major order.
func (b *Board) each(fn func(p Position, c *Cell)) {
	for i := range b.cells {
		fn(b.position(i), &b.cells[i])
	}
}
