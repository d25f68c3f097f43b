package minesweeper

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/vovakirdan/tui-sweeper/internal/core"
)

// Update is what a renderer needs after one session call.
type Update struct {
	Outcome   Outcome
	Changes   []CellChange
	State     GameState
	Remaining int
	Events    []core.Event
}

// Session owns the current board and everything that lives as long as a
// game: hint budget, RNG, subscribers and the result recorder.
// It is not safe for concurrent use; one input event maps to one call.
type Session struct {
	difficulty Difficulty
	board      *Board
	hints      HintBudget
	hintMax    int
	strategy   HintStrategy
	rng        *rand.Rand
	recorder   core.ResultRecorder
	clock      func() time.Duration
	player     string
	handlers   []core.EventHandler
	recorded   bool
}

// Option configures a Session.
type Option func(*Session)

// WithRand sets the random source for placement and hints.
func WithRand(r *rand.Rand) Option {
	return func(s *Session) { s.rng = r }
}

// WithSeed seeds a PCG source for reproducible games.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.rng = rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
	}
}

// WithHintMax sets the hints granted per board.
func WithHintMax(n int) Option {
	return func(s *Session) { s.hintMax = n }
}

// WithHintStrategy picks the hint strategy.
func WithHintStrategy(st HintStrategy) Option {
	return func(s *Session) { s.strategy = st }
}

// WithRecorder receives one Result per finished board.
func WithRecorder(r core.ResultRecorder) Option {
	return func(s *Session) { s.recorder = r }
}

// WithClock supplies elapsed play time for recorded results. The caller
// owns the timer; the session only reads it when a game ends.
func WithClock(fn func() time.Duration) Option {
	return func(s *Session) { s.clock = fn }
}

// WithPlayer tags recorded results with a player name.
func WithPlayer(name string) Option {
	return func(s *Session) { s.player = name }
}

// NewSession creates a session with a fresh board.
func NewSession(d Difficulty, opts ...Option) (*Session, error) {
	s := &Session{
		difficulty: d,
		hintMax:    DefaultHintMax,
		strategy:   StrategyDeduce,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	board, err := NewBoard(d, s.rng)
	if err != nil {
		return nil, err
	}
	s.board = board
	s.hints = NewHintBudget(s.hintMax)
	return s, nil
}

func (s *Session) Board() *Board          { return s.board }
func (s *Session) Difficulty() Difficulty { return s.difficulty }
func (s *Session) State() GameState       { return s.board.State() }
func (s *Session) Hints() HintBudget      { return s.hints }

// SetRecorder replaces the result recorder.
func (s *Session) SetRecorder(r core.ResultRecorder) {
	s.recorder = r
}

// Reveal opens the cell at p. A recorder failure is returned together
// with a valid Update; the board is already final at that point.
func (s *Session) Reveal(p Position) (Update, error) {
	return s.apply(s.board.Reveal, p)
}

// Chord opens the neighbors of a satisfied number at p.
func (s *Session) Chord(p Position) (Update, error) {
	return s.apply(s.board.Chord, p)
}

func (s *Session) apply(op func(Position) (RevealResult, error), p Position) (Update, error) {
	before := s.board.State()
	res, err := op(p)
	if err != nil {
		return s.update(OutcomeUnchanged), err
	}

	u := s.update(res.Outcome)
	u.Changes = s.changes(res.Revealed, res.Flagged, res.Wrong)
	switch res.Outcome {
	case OutcomeContinue:
		u.Events = []core.Event{core.EventReveal}
	case OutcomeWon:
		u.Events = []core.Event{core.EventReveal, core.EventWin}
	case OutcomeLost:
		u.Events = []core.Event{core.EventExplosion}
	}
	s.emit(u.Events...)

	return u, s.finish(before)
}

// ToggleFlag flags or unflags the cell at p.
func (s *Session) ToggleFlag(p Position) (Update, error) {
	res, err := s.board.ToggleFlag(p)
	if err != nil {
		return s.update(OutcomeUnchanged), err
	}

	u := s.update(OutcomeUnchanged)
	if !res.Changed {
		return u, nil
	}
	u.Changes = []CellChange{{Position: p, View: s.board.View(p)}}
	if res.State == Flagged {
		u.Events = []core.Event{core.EventFlag}
	} else {
		u.Events = []core.Event{core.EventUnflag}
	}
	s.emit(u.Events...)
	return u, nil
}

// RequestHint suggests a safe cell without revealing it.
// The budget is only spent when a cell is returned.
func (s *Session) RequestHint() (Position, error) {
	if s.hints.Left() == 0 {
		return Position{}, ErrNoHintsRemaining
	}
	p, err := s.board.SuggestSafe(s.strategy, s.rng)
	if err != nil {
		return Position{}, err
	}
	s.hints.spend()
	s.emit(core.EventHint)
	return p, nil
}

// NewGame replaces the board. On error the current board is kept.
func (s *Session) NewGame(d Difficulty) error {
	board, err := NewBoard(d, s.rng)
	if err != nil {
		return err
	}
	s.difficulty = d
	s.board = board
	s.reset()
	return nil
}

// Replay restarts the current board with the same mine layout.
func (s *Session) Replay() {
	s.board.Rewind()
	s.reset()
}

func (s *Session) reset() {
	s.hints = NewHintBudget(s.hintMax)
	s.recorded = false
	s.emit(core.EventNewGame)
}

// Snapshot copies the session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Difficulty: s.difficulty,
		State:      s.board.State(),
		Rows:       s.board.Rows(),
		Remaining:  s.board.Remaining(),
		Revealed:   s.board.RevealedSafe(),
		SafeCells:  s.difficulty.SafeCells(),
		HintsLeft:  s.hints.Left(),
		HintsUsed:  s.hints.Used(),
	}
}

func (s *Session) update(o Outcome) Update {
	return Update{
		Outcome:   o,
		State:     s.board.State(),
		Remaining: s.board.Remaining(),
	}
}

func (s *Session) changes(groups ...[]Position) []CellChange {
	var out []CellChange
	for _, g := range groups {
		for _, p := range g {
			out = append(out, CellChange{Position: p, View: s.board.View(p)})
		}
	}
	return out
}

// finish records the result once, on the transition into Won or Lost.
func (s *Session) finish(before GameState) error {
	state := s.board.State()
	if before.Over() || !state.Over() || s.recorded {
		return nil
	}
	s.recorded = true
	if s.recorder == nil {
		return nil
	}

	var elapsed time.Duration
	if s.clock != nil {
		elapsed = s.clock()
	}
	err := s.recorder.RecordResult(core.Result{
		Difficulty:     s.difficulty.Name,
		Width:          s.difficulty.Width,
		Height:         s.difficulty.Height,
		Mines:          s.difficulty.Mines,
		ElapsedSeconds: elapsed.Seconds(),
		Won:            state == Won,
		HintsUsed:      s.hints.Used(),
		Revealed:       s.board.RevealedSafe(),
		SafeCells:      s.difficulty.SafeCells(),
		Player:         s.player,
		FinishedAt:     time.Now(),
	})
	if err != nil {
		return fmt.Errorf("minesweeper: record result: %w", err)
	}
	return nil
}
