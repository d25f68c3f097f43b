package tui

import (
	"errors"
	"slices"
	"strconv"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/storage"
)

// SettingsStore persists per-player preferences.
type SettingsStore interface {
	Setting(player, key string) (string, error)
	SetSetting(player, key, value string) error
}

// Prefs is the look and feel a player last chose.
type Prefs struct {
	Theme     string
	TileStyle string
	Sound     bool
}

// DefaultPrefs takes the display section of the config file.
func DefaultPrefs(d config.DisplayConfig) Prefs {
	p := Prefs{Theme: d.Theme, TileStyle: d.TileStyle, Sound: d.Sound}
	if !slices.Contains(config.Themes, p.Theme) {
		p.Theme = config.Themes[0]
	}
	if !slices.Contains(config.TileStyles, p.TileStyle) {
		p.TileStyle = config.TileStyles[0]
	}
	return p
}

// LoadPrefs overlays stored settings on the defaults. Unknown or missing
// values keep the default; a nil store returns the defaults untouched.
func LoadPrefs(s SettingsStore, player string, defaults Prefs) (Prefs, error) {
	p := defaults
	if s == nil {
		return p, nil
	}

	var errs []error
	read := func(key string) (string, bool) {
		v, err := s.Setting(player, key)
		if err != nil {
			if !errors.Is(err, storage.ErrNotFound) {
				errs = append(errs, err)
			}
			return "", false
		}
		return v, true
	}

	if v, ok := read(storage.SettingTheme); ok && slices.Contains(config.Themes, v) {
		p.Theme = v
	}
	if v, ok := read(storage.SettingTileStyle); ok && slices.Contains(config.TileStyles, v) {
		p.TileStyle = v
	}
	if v, ok := read(storage.SettingSound); ok {
		if on, err := strconv.ParseBool(v); err == nil {
			p.Sound = on
		}
	}
	return p, errors.Join(errs...)
}

// SavePrefs writes all preferences for the player.
func SavePrefs(s SettingsStore, player string, p Prefs) error {
	if s == nil {
		return nil
	}
	return errors.Join(
		s.SetSetting(player, storage.SettingTheme, p.Theme),
		s.SetSetting(player, storage.SettingTileStyle, p.TileStyle),
		s.SetSetting(player, storage.SettingSound, strconv.FormatBool(p.Sound)),
	)
}
