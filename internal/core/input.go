package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, K, Up arrow - cursor up
	ActionDown           // S, J, Down arrow - cursor down
	ActionLeft           // A, H, Left arrow - cursor left
	ActionRight          // D, L, Right arrow - cursor right
	ActionReveal         // Space, Enter - reveal the cell under the cursor
	ActionFlag           // F - toggle flag under the cursor
	ActionChord          // C - open neighbors of a satisfied number
	ActionHint           // ? - ask for a safe cell
	ActionRestart        // R - new board, new layout
	ActionReplay         // Ctrl+R - same layout again
	ActionConfirm        // Enter in menus
	ActionBack           // B, Escape - back to menu
	ActionQuit           // Q, Ctrl+C - exit
	ActionPause          // P - pause the clock
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionReveal:
		return "Reveal"
	case ActionFlag:
		return "Flag"
	case ActionChord:
		return "Chord"
	case ActionHint:
		return "Hint"
	case ActionRestart:
		return "Restart"
	case ActionReplay:
		return "Replay"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Click is a pointer press at screen coordinates, already mapped to the
// action its button stands for (reveal, flag, or chord).
type Click struct {
	X, Y   int
	Action Action
}

// InputFrame holds the input collected between two ticks.
// Key actions are deduplicated; clicks keep their arrival order.
type InputFrame struct {
	Actions map[Action]bool
	Clicks  []Click
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// AddClick queues a pointer press.
func (f *InputFrame) AddClick(x, y int, a Action) {
	f.Clicks = append(f.Clicks, Click{X: x, Y: y, Action: a})
}

// Empty reports whether nothing was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Clicks) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Clicks = f.Clicks[:0]
}
