package storage

import (
	"database/sql"
	"errors"
	"fmt"
)

// Setting keys used by the front end.
const (
	SettingTheme      = "theme"
	SettingTileStyle  = "tile_style"
	SettingSound      = "sound"
	SettingDifficulty = "last_difficulty"
)

// Setting returns a stored value, or ErrNotFound.
func (s *Store) Setting(player, key string) (string, error) {
	var value string
	err := s.db.QueryRow(
		"SELECT value FROM settings WHERE player = ? AND key = ?",
		player, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("storage: cannot read setting %s: %w", key, err)
	}
	return value, nil
}

// SetSetting stores or replaces a value.
func (s *Store) SetSetting(player, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		`INSERT INTO settings (player, key, value, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(player, key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		player, key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save setting %s: %w", key, err)
	}
	return nil
}
