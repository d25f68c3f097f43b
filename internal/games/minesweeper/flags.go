package minesweeper

// FlagResult reports the effect of a flag toggle.
type FlagResult struct {
	Changed   bool
	State     CellState // cell state after the call
	Remaining int       // mines minus flags, may be negative
}

// ToggleFlag flips a hidden cell to flagged or back. Revealed cells and
// finished games are left alone. Flag correctness is never checked.
func (b *Board) ToggleFlag(p Position) (FlagResult, error) {
	if !b.InBounds(p) {
		return FlagResult{}, ErrOutOfBounds
	}
	c := b.at(p)
	if b.state.Over() || c.State == Revealed {
		return FlagResult{State: c.State, Remaining: b.Remaining()}, nil
	}

	if c.State == Flagged {
		c.State = Hidden
		b.flagged--
	} else {
		c.State = Flagged
		b.flagged++
	}
	return FlagResult{Changed: true, State: c.State, Remaining: b.Remaining()}, nil
}

// Remaining is the mine counter shown to the player: mines minus flags.
// It goes negative when the player over-flags.
func (b *Board) Remaining() int {
	return b.difficulty.Mines - b.flagged
}

// Rewind hides every cell and returns to NotStarted while keeping the
// mine layout, so the same board can be played again.
func (b *Board) Rewind() {
	for i := range b.cells {
		b.cells[i].State = Hidden
	}
	b.state = NotStarted
	b.flagged = 0
	b.revealed = 0
	b.exploded = Position{}
}
