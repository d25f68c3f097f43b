package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyMedium DifficultyPreset = "medium"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyCustom DifficultyPreset = "custom"
)

// Presets returns the selectable presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyCustom}
}

// ParseDifficultyPreset maps a CLI or menu name to a preset.
// "beginner", "intermediate" and "expert" are accepted as aliases.
func ParseDifficultyPreset(name string) (DifficultyPreset, error) {
	switch name {
	case "easy", "beginner":
		return DifficultyEasy, nil
	case "medium", "intermediate":
		return DifficultyMedium, nil
	case "hard", "expert":
		return DifficultyHard, nil
	case "custom":
		return DifficultyCustom, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q", name)
	}
}

// Board returns the board for a preset. An unset custom board is zero.
func (c MinesweeperConfig) Board(p DifficultyPreset) BoardConfig {
	switch p {
	case DifficultyEasy:
		return c.Difficulties.Easy
	case DifficultyMedium:
		return c.Difficulties.Medium
	case DifficultyHard:
		return c.Difficulties.Hard
	case DifficultyCustom:
		return c.Custom
	default:
		return BoardConfig{}
	}
}

// ApplyCustom overrides the custom board with non-zero values and
// validates the result.
func (c *MinesweeperConfig) ApplyCustom(width, height, mines int) error {
	b := c.Custom
	if width > 0 {
		b.Width = width
	}
	if height > 0 {
		b.Height = height
	}
	if mines > 0 {
		b.Mines = mines
	}
	if err := b.Validate(); err != nil {
		return fmt.Errorf("config: custom: %w", err)
	}
	c.Custom = b
	return nil
}
