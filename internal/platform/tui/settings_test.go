package tui

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/storage"
)

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

type failingStore struct{}

func (failingStore) Setting(string, string) (string, error)  { return "", errors.New("locked") }
func (failingStore) SetSetting(string, string, string) error { return errors.New("locked") }

func TestDefaultPrefs(t *testing.T) {
	got := DefaultPrefs(config.DisplayConfig{Theme: "light", TileStyle: "ascii", Sound: true})
	if got != (Prefs{Theme: "light", TileStyle: "ascii", Sound: true}) {
		t.Errorf("DefaultPrefs() = %+v", got)
	}

	got = DefaultPrefs(config.DisplayConfig{})
	if got.Theme != "dark" || got.TileStyle != "unicode" || got.Sound {
		t.Errorf("empty display config = %+v", got)
	}
}

func TestPrefsRoundTrip(t *testing.T) {
	store := openStore(t)
	defaults := DefaultPrefs(config.DisplayConfig{})

	got, err := LoadPrefs(store, "alice", defaults)
	if err != nil || got != defaults {
		t.Fatalf("empty store: %+v, %v", got, err)
	}

	want := Prefs{Theme: "classic", TileStyle: "ascii", Sound: true}
	if err := SavePrefs(store, "alice", want); err != nil {
		t.Fatalf("SavePrefs() failed: %v", err)
	}
	if got, _ := LoadPrefs(store, "alice", defaults); got != want {
		t.Errorf("LoadPrefs() = %+v, expected %+v", got, want)
	}
	if got, _ := LoadPrefs(store, "bob", defaults); got != defaults {
		t.Errorf("another player should see defaults, got %+v", got)
	}
}

func TestLoadPrefsIgnoresBadValues(t *testing.T) {
	store := openStore(t)
	store.SetSetting("alice", storage.SettingTheme, "neon")
	store.SetSetting("alice", storage.SettingTileStyle, "emoji")
	store.SetSetting("alice", storage.SettingSound, "loud")

	defaults := DefaultPrefs(config.DisplayConfig{Sound: true})
	got, err := LoadPrefs(store, "alice", defaults)
	if err != nil {
		t.Fatalf("LoadPrefs() failed: %v", err)
	}
	if got != defaults {
		t.Errorf("bad values should keep defaults, got %+v", got)
	}
}

func TestPrefsStoreErrors(t *testing.T) {
	defaults := DefaultPrefs(config.DisplayConfig{})

	got, err := LoadPrefs(failingStore{}, "alice", defaults)
	if err == nil {
		t.Error("expected read error")
	}
	if got != defaults {
		t.Errorf("failed load should keep defaults, got %+v", got)
	}
	if err := SavePrefs(failingStore{}, "alice", defaults); err == nil {
		t.Error("expected write error")
	}

	if got, err := LoadPrefs(nil, "alice", defaults); err != nil || got != defaults {
		t.Errorf("nil store: %+v, %v", got, err)
	}
	if err := SavePrefs(nil, "alice", defaults); err != nil {
		t.Errorf("nil store save: %v", err)
	}
}
