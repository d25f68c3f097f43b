package config

import (
	_ "embed"
)

//go:embed defaults/minesweeper.yaml
var defaultMinesweeperYAML []byte

// DefaultMinesweeperConfig returns the built-in configuration.
// It mirrors defaults/minesweeper.yaml and is used if that file fails to parse.
func DefaultMinesweeperConfig() MinesweeperConfig {
	return MinesweeperConfig{
		Difficulties: DifficultySet{
			Easy:   BoardConfig{Width: 9, Height: 9, Mines: 10},
			Medium: BoardConfig{Width: 16, Height: 16, Mines: 40},
			Hard:   BoardConfig{Width: 30, Height: 16, Mines: 99},
		},
		Custom: BoardConfig{Width: 20, Height: 20, Mines: 80},
		Hints: HintConfig{
			Max:      3,
			Strategy: "deduce",
		},
		Display: DisplayConfig{
			Theme:     "dark",
			TileStyle: "unicode",
			Sound:     true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultMinesweeperYAML
}
