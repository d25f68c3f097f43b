package tui

import (
	"io"

	"github.com/vovakirdan/tui-sweeper/internal/core"
)

// bell is the terminal bell. Terminals without audio usually flash instead.
const bell = "\a"

// SoundPlayer rings the terminal bell for notable game events.
type SoundPlayer struct {
	enabled bool
	flags   bool
	out     io.Writer
}

// NewSoundPlayer writes bells to out while enabled.
func NewSoundPlayer(out io.Writer, enabled bool) *SoundPlayer {
	return &SoundPlayer{enabled: enabled, out: out}
}

// Enabled reports whether bells are played.
func (p *SoundPlayer) Enabled() bool { return p.enabled }

// SetEnabled switches bells on or off.
func (p *SoundPlayer) SetEnabled(on bool) { p.enabled = on }

// SetFlagBells makes flagging and unflagging ring as well.
func (p *SoundPlayer) SetFlagBells(on bool) { p.flags = on }

// Play rings once if any of the events is audible.
func (p *SoundPlayer) Play(events []core.Event) {
	if !p.enabled || p.out == nil {
		return
	}
	for _, e := range events {
		if p.audible(e) {
			//nolint:errcheck // A missed bell is harmless
			io.WriteString(p.out, bell)
			return
		}
	}
}

func (p *SoundPlayer) audible(e core.Event) bool {
	switch e {
	case core.EventExplosion, core.EventWin, core.EventHint:
		return true
	case core.EventFlag, core.EventUnflag:
		return p.flags
	}
	return false
}
