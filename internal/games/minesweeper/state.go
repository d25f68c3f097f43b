package minesweeper

// GameState is the lifecycle of a single board.
// NotStarted → InProgress → Won | Lost. Won and Lost are terminal.
type GameState int

const (
	NotStarted GameState = iota
	InProgress
	Won
	Lost
)

func (s GameState) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Over reports whether the state is terminal.
func (s GameState) Over() bool {
	return s == Won || s == Lost
}
