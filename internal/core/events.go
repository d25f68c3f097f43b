package core

// Event is a tag emitted by a game when something audible or notable
// happens. Collaborators (sound, logging) subscribe to these.
type Event int

const (
	EventNone Event = iota
	EventReveal
	EventFlag
	EventUnflag
	EventExplosion
	EventWin
	EventHint
	EventNewGame
)

// String returns the tag name.
func (e Event) String() string {
	switch e {
	case EventReveal:
		return "reveal"
	case EventFlag:
		return "flag"
	case EventUnflag:
		return "unflag"
	case EventExplosion:
		return "explosion"
	case EventWin:
		return "win"
	case EventHint:
		return "hint"
	case EventNewGame:
		return "new_game"
	default:
		return "none"
	}
}

// EventHandler receives events synchronously, in emission order.
type EventHandler func(Event)
