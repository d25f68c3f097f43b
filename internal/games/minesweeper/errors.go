package minesweeper

import (
	"errors"
	"fmt"
)

var (
	// ErrNoHintsRemaining is returned when the hint budget is spent.
	ErrNoHintsRemaining = errors.New("minesweeper: no hints remaining")

	// ErrNoSafeCellAvailable is returned when no hidden, unflagged safe
	// cell exists, or the game is already over.
	ErrNoSafeCellAvailable = errors.New("minesweeper: no safe cell available")

	// ErrOutOfBounds is returned for positions outside the board.
	ErrOutOfBounds = errors.New("minesweeper: position out of bounds")
)

// ConfigurationError reports board parameters that cannot produce a game.
type ConfigurationError struct {
	Width  int
	Height int
	Mines  int
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("minesweeper: invalid board %dx%d with %d mines: %s",
		e.Width, e.Height, e.Mines, e.Reason)
}
