package core

import "time"

// Result describes one finished board.
type Result struct {
	Difficulty     string
	Width          int
	Height         int
	Mines          int
	ElapsedSeconds float64
	Won            bool
	HintsUsed      int
	Revealed       int // Safe cells revealed when the game ended
	SafeCells      int // Total safe cells on the board
	Player         string
	FinishedAt     time.Time
}

// ResultRecorder persists finished games.
type ResultRecorder interface {
	RecordResult(r Result) error
}

// ResultRecorderFunc adapts a function to ResultRecorder.
type ResultRecorderFunc func(r Result) error

// RecordResult calls f(r).
func (f ResultRecorderFunc) RecordResult(r Result) error {
	return f(r)
}
