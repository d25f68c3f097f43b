package minesweeper

import "fmt"

// Difficulty describes board dimensions and mine count.
type Difficulty struct {
	Name   string
	Width  int
	Height int
	Mines  int
}

// Standard presets.
var (
	Easy   = Difficulty{Name: "easy", Width: 9, Height: 9, Mines: 10}
	Medium = Difficulty{Name: "medium", Width: 16, Height: 16, Mines: 40}
	Hard   = Difficulty{Name: "hard", Width: 30, Height: 16, Mines: 99}
)

// Presets returns the built-in difficulties, easiest first.
func Presets() []Difficulty {
	return []Difficulty{Easy, Medium, Hard}
}

// DifficultyByName looks up a built-in preset.
func DifficultyByName(name string) (Difficulty, bool) {
	for _, d := range Presets() {
		if d.Name == name {
			return d, true
		}
	}
	return Difficulty{}, false
}

// Cells returns the total number of cells.
func (d Difficulty) Cells() int {
	return d.Width * d.Height
}

// SafeCells returns the number of cells without a mine.
func (d Difficulty) SafeCells() int {
	return d.Cells() - d.Mines
}

// Validate checks 1 ≤ W, 1 ≤ H and 0 < M < W·H.
func (d Difficulty) Validate() error {
	switch {
	case d.Width < 1 || d.Height < 1:
		return &ConfigurationError{Width: d.Width, Height: d.Height, Mines: d.Mines, Reason: "dimensions must be positive"}
	case d.Mines < 1:
		return &ConfigurationError{Width: d.Width, Height: d.Height, Mines: d.Mines, Reason: "at least one mine is required"}
	case d.Mines >= d.Cells():
		return &ConfigurationError{Width: d.Width, Height: d.Height, Mines: d.Mines, Reason: "mines must leave at least one safe cell"}
	}
	return nil
}

func (d Difficulty) String() string {
	return fmt.Sprintf("%s (%dx%d, %d mines)", d.Name, d.Width, d.Height, d.Mines)
}
