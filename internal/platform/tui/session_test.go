package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/storage"
)

func newTestSession(t *testing.T, store *storage.Store) SessionModel {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	cfg := core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 10, Player: "tester"}
	return NewSessionModel(store, cfg, Options{Renderer: plainRenderer()})
}

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(SessionModel), cmd
}

func TestSessionFlow(t *testing.T) {
	m := newTestSession(t, nil)
	if !strings.Contains(m.View(), "Minesweeper: Easy") {
		t.Fatal("menu should list the boards")
	}

	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame || m.game == nil || cmd == nil {
		t.Fatalf("enter should start a board, screen = %v", m.screen)
	}
	m, _ = sessionUpdate(t, m, TickMsg(time.Now()))
	if !strings.Contains(m.View(), "9x9") {
		t.Error("board view expected")
	}

	m, _ = sessionUpdate(t, m, runeKey('b'))
	if m.screen != screenMenu || m.game != nil {
		t.Fatalf("b should return to the menu, screen = %v", m.screen)
	}
	// A stale tick from the closed board is dropped.
	m, cmd = sessionUpdate(t, m, TickMsg(time.Now()))
	if cmd != nil {
		t.Error("menu should not keep ticking")
	}

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores || !strings.Contains(m.View(), "BEST TIMES") {
		t.Fatalf("tab should open the scoreboard, screen = %v", m.screen)
	}
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.screen != screenMenu {
		t.Fatalf("esc should return to the menu, screen = %v", m.screen)
	}

	m, cmd = sessionUpdate(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Error("q should end the session")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestSessionQuitFromBoard(t *testing.T) {
	m := newTestSession(t, nil)
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.quitting || cmd == nil {
		t.Error("ctrl+c on a board should end the session")
	}
}

func TestMenuRemembersDifficulty(t *testing.T) {
	store := openStore(t)
	store.SetSetting("tester", storage.SettingDifficulty, "hard")
	store.RecordResult(core.Result{
		Difficulty: "hard", Width: 30, Height: 16, Mines: 99,
		ElapsedSeconds: 120, Won: true, Player: "tester",
		FinishedAt: time.Now(),
	})

	menu := NewMenuModel(store, core.RuntimeConfig{ScreenW: 100, ScreenH: 30, Player: "tester"}, plainRenderer())
	if !strings.Contains(menu.View(), "best 120.0s, 1/1 won") {
		t.Errorf("menu should show the record:\n%s", menu.View())
	}

	next, _ := menu.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, _ = next.(MenuModel).Update(tea.KeyMsg{Type: tea.KeyEnter})
	selected := next.(MenuModel).Selected()
	if selected == nil || selected.GameID != "custom" {
		t.Fatalf("selected = %+v, expected the item after hard", selected)
	}
	if last, _ := store.Setting("tester", storage.SettingDifficulty); last != "custom" {
		t.Errorf("stored difficulty = %q", last)
	}
}

func TestScoreboardShowsTimes(t *testing.T) {
	store := openStore(t)
	for _, secs := range []float64{30, 12.5} {
		store.RecordResult(core.Result{
			Difficulty: "easy", Width: 9, Height: 9, Mines: 10,
			ElapsedSeconds: secs, Won: true, HintsUsed: 1, Player: "tester",
			FinishedAt: time.Now(),
		})
	}
	store.RecordResult(core.Result{Difficulty: "easy", Player: "tester", FinishedAt: time.Now()})

	sb := NewScoreboardModel(store, "tester", 100, 30, plainRenderer())
	view := sb.View()
	for _, want := range []string{"12.5s", "30.0s", "3 played", "2 won", "1 lost"} {
		if !strings.Contains(view, want) {
			t.Errorf("scoreboard missing %q:\n%s", want, view)
		}
	}
	if strings.Index(view, "12.5s") > strings.Index(view, "30.0s") {
		t.Error("fastest time should be listed first")
	}

	next, _ := sb.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !strings.Contains(next.(ScoreboardModel).View(), "has not played this board") {
		t.Error("medium should be empty")
	}
}

func TestScoreboardRanksCustomBySize(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())
	store := openStore(t)
	for _, r := range []core.Result{
		{Difficulty: "custom", Width: 20, Height: 20, Mines: 80, ElapsedSeconds: 48, Won: true},
		{Difficulty: "custom", Width: 10, Height: 10, Mines: 10, ElapsedSeconds: 7.5, Won: true},
	} {
		r.Player = "tester"
		r.FinishedAt = time.Now()
		store.RecordResult(r)
	}

	if b := BoardOf("custom"); b != (storage.Board{Width: 20, Height: 20, Mines: 80}) {
		t.Fatalf("BoardOf(custom) = %+v, expected the default custom board", b)
	}
	if b := BoardOf("easy"); b != (storage.Board{}) {
		t.Errorf("BoardOf(easy) = %+v, presets should match every size", b)
	}

	sb := NewScoreboardModel(store, "tester", 100, 30, plainRenderer())
	var next tea.Model = sb
	for range 3 {
		next, _ = next.(ScoreboardModel).Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	view := next.(ScoreboardModel).View()
	for _, want := range []string{"20x20, 80 mines", "48.0s", "1 played"} {
		if !strings.Contains(view, want) {
			t.Errorf("custom scoreboard missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "7.5s") {
		t.Errorf("a 10x10 time should not rank on the 20x20 board:\n%s", view)
	}

	menu := NewMenuModel(store, core.RuntimeConfig{ScreenW: 100, ScreenH: 30, Player: "tester"}, plainRenderer())
	if !strings.Contains(menu.View(), "best 48.0s, 1/1 won") {
		t.Errorf("menu should show the custom record for the current size:\n%s", menu.View())
	}
}
