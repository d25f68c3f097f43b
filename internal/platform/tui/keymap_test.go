package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sweeper/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"vim down", runeKey('j'), core.ActionDown, false},
		{"wasd left", runeKey('a'), core.ActionLeft, false},
		{"vim right", runeKey('l'), core.ActionRight, false},
		{"space reveals", tea.KeyMsg{Type: tea.KeySpace}, core.ActionReveal, false},
		{"enter reveals", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionReveal, false},
		{"flag", runeKey('f'), core.ActionFlag, false},
		{"chord", runeKey('c'), core.ActionChord, false},
		{"hint", runeKey('i'), core.ActionHint, false},
		{"new board", runeKey('r'), core.ActionRestart, false},
		{"replay", tea.KeyMsg{Type: tea.KeyCtrlR}, core.ActionReplay, false},
		{"pause", runeKey('p'), core.ActionPause, false},
		{"back", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionBack, false},
		{"quit", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
		{"toggle is not an action", runeKey('t'), core.ActionNone, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey(%q) = %v, %v; expected %v, %v", tc.msg.String(), action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestMapKeyToToggle(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want Toggle
	}{
		{runeKey('t'), ToggleTheme},
		{runeKey('g'), ToggleTiles},
		{runeKey('m'), ToggleSound},
		{runeKey('?'), ToggleHelp},
		{runeKey('f'), ToggleNone},
	}
	for _, tc := range tests {
		if got := km.MapKeyToToggle(tc.msg); got != tc.want {
			t.Errorf("MapKeyToToggle(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
		}
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey('f'), &frame) {
		t.Error("f is not a quit key")
	}
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyDown}, &frame)
	if !frame.Has(core.ActionFlag) || !frame.Has(core.ActionDown) {
		t.Errorf("frame = %v", frame.Actions)
	}
	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("q should quit")
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name   string
		msg    tea.MouseMsg
		action core.Action
		ok     bool
	}{
		{"left press", tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, core.ActionReveal, true},
		{"right press", tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, core.ActionFlag, true},
		{"middle press", tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonMiddle}, core.ActionChord, true},
		{"release", tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, core.ActionNone, false},
		{"motion", tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, core.ActionNone, false},
		{"wheel", tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, core.ActionNone, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			click, ok := km.MapMouse(tc.msg)
			if ok != tc.ok {
				t.Fatalf("ok = %v, expected %v", ok, tc.ok)
			}
			if ok && (click != core.Click{X: 3, Y: 4, Action: tc.action}) {
				t.Errorf("click = %+v", click)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEscape}, MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}
	for _, tc := range tests {
		if got := km.MapKeyToMenuAction(tc.msg); got != tc.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
		}
	}
}
