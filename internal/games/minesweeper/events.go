package minesweeper

import "github.com/vovakirdan/tui-sweeper/internal/core"

// Subscribe registers a handler for session events. Handlers run
// synchronously after the board change that raised the event.
func (s *Session) Subscribe(h core.EventHandler) {
	if h == nil {
		return
	}
	s.handlers = append(s.handlers, h)
}

func (s *Session) emit(events ...core.Event) {
	for _, e := range events {
		for _, h := range s.handlers {
			h(e)
		}
	}
}
