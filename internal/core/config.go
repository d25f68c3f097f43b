package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Platform ticks per second
	Seed     int64  // RNG seed; 0 means the platform picks one from the clock
	Player   string // Name recorded with results (SSH user or local user)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 10,
		Seed:     0,
	}
}

// GameState is the platform-facing summary of a game.
type GameState struct {
	Score    int  // Elapsed whole seconds for the current board
	GameOver bool // The board reached a terminal state
	Won      bool // Only meaningful when GameOver is set
	Paused   bool
}

// StepResult is returned by Game.Step() after each tick.
type StepResult struct {
	State  GameState
	Events []Event // Events raised while processing this tick's input
	Status string  // Transient message for the status line (e.g. hint errors)
}
