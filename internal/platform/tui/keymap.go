package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sweeper/internal/core"
)

// GameKeyMap defines the key bindings used while a board is on screen.
// It doubles as the help bar content.
type GameKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Reveal  key.Binding
	Flag    key.Binding
	Chord   key.Binding
	Hint    key.Binding
	Restart key.Binding
	Replay  key.Binding
	Pause   key.Binding
	Theme   key.Binding
	Tiles   key.Binding
	Sound   key.Binding
	Help    key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reveal, k.Flag, k.Hint, k.Restart, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Reveal, k.Flag, k.Chord, k.Hint},
		{k.Restart, k.Replay, k.Pause, k.Back},
		{k.Theme, k.Tiles, k.Sound, k.Quit},
	}
}

// DefaultGameKeyMap returns default key bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "w", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "s", "j"), key.WithHelp("↓/j", "down")),
		Left:    key.NewBinding(key.WithKeys("left", "a", "h"), key.WithHelp("←/h", "left")),
		Right:   key.NewBinding(key.WithKeys("right", "d", "l"), key.WithHelp("→/l", "right")),
		Reveal:  key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "reveal")),
		Flag:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "flag")),
		Chord:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "chord")),
		Hint:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "hint")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "new board")),
		Replay:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "replay")),
		Pause:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Theme:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Tiles:   key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "tiles")),
		Sound:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "sound")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Back:    key.NewBinding(key.WithKeys("b", "esc"), key.WithHelp("esc/b", "menu")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Toggle is a platform setting switched from the keyboard.
type Toggle int

const (
	ToggleNone Toggle = iota
	ToggleTheme
	ToggleTiles
	ToggleSound
	ToggleHelp
)

// KeyMapper translates Bubble Tea key and mouse messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys GameKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultGameKeyMap()}
}

// Keys returns the bindings, for the help bar.
func (km *KeyMapper) Keys() GameKeyMap {
	return km.keys
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Up):
		return core.ActionUp, false
	case key.Matches(msg, k.Down):
		return core.ActionDown, false
	case key.Matches(msg, k.Left):
		return core.ActionLeft, false
	case key.Matches(msg, k.Right):
		return core.ActionRight, false
	case key.Matches(msg, k.Reveal):
		return core.ActionReveal, false
	case key.Matches(msg, k.Flag):
		return core.ActionFlag, false
	case key.Matches(msg, k.Chord):
		return core.ActionChord, false
	case key.Matches(msg, k.Hint):
		return core.ActionHint, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, k.Replay):
		return core.ActionReplay, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Back):
		return core.ActionBack, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapKeyToToggle reports which platform setting a key switches.
func (km *KeyMapper) MapKeyToToggle(msg tea.KeyMsg) Toggle {
	switch {
	case key.Matches(msg, km.keys.Theme):
		return ToggleTheme
	case key.Matches(msg, km.keys.Tiles):
		return ToggleTiles
	case key.Matches(msg, km.keys.Sound):
		return ToggleSound
	case key.Matches(msg, km.keys.Help):
		return ToggleHelp
	}
	return ToggleNone
}

// MapMouse turns a button press into a click on the game screen.
// Left reveals, right flags, middle chords. Motion and release are ignored.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) (core.Click, bool) {
	if msg.Action != tea.MouseActionPress {
		return core.Click{}, false
	}

	var action core.Action
	switch msg.Button {
	case tea.MouseButtonLeft:
		action = core.ActionReveal
	case tea.MouseButtonRight:
		action = core.ActionFlag
	case tea.MouseButtonMiddle:
		action = core.ActionChord
	default:
		return core.Click{}, false
	}
	return core.Click{X: msg.X, Y: msg.Y, Action: action}, true
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
