package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "minesweeper.yaml"

// LoadMinesweeper loads the sweeper configuration.
// Search order: customPath -> ~/.sweeper/configs/minesweeper.yaml -> ./configs/minesweeper.yaml -> embedded default
//
// Files are layered over the built-in defaults, so a file only needs the
// fields it changes. An unreadable or invalid custom path is an error;
// broken files elsewhere in the search order are skipped.
func LoadMinesweeper(customPath string) (MinesweeperConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return MinesweeperConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return MinesweeperConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultMinesweeperYAML)
	if err != nil {
		return DefaultMinesweeperConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse layers YAML over the defaults and validates the result.
func parse(data []byte) (MinesweeperConfig, error) {
	cfg := DefaultMinesweeperConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return MinesweeperConfig{}, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return MinesweeperConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".sweeper", "configs", filename)
}
