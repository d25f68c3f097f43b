package minesweeper

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
)

// statusSeconds is how long a transient status message stays up, in seconds.
const statusSeconds = 3

// Game adapts a Session to the platform: it owns the cursor, the stopwatch
// and the status line, and turns input frames into session calls.
type Game struct {
	preset   config.DifficultyPreset
	cfg      config.MinesweeperConfig
	runtime  core.RuntimeConfig
	session  *Session
	recorder core.ResultRecorder

	cursor    Position
	hint      Position
	hinted    bool
	ticks     int // ticks played on the current board
	paused    bool
	tooSmall  bool
	tileStyle string
	status    string
	statusTTL int
	events    []core.Event
	boardRect core.Rect // last drawn board frame, for mouse hit-testing
}

// Package-level overrides set from the CLI.
var (
	configPath  string
	customBoard config.BoardConfig
	hintMax     = -1
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetCustomBoard overrides the custom preset. Zero values keep the
// configured ones.
func SetCustomBoard(width, height, mines int) {
	customBoard = config.BoardConfig{Width: width, Height: height, Mines: mines}
}

// SetHintMax overrides the configured hint budget. Negative restores it.
func SetHintMax(n int) {
	hintMax = n
}

// New creates a game for a difficulty preset.
func New(preset config.DifficultyPreset) *Game {
	return &Game{preset: preset}
}

func init() {
	for _, p := range config.Presets() {
		registry.Register(string(p), func() registry.Game {
			return New(p)
		})
	}
}

// ID returns the preset name, which is also the scoreboard key.
func (g *Game) ID() string {
	return string(g.preset)
}

// Title returns the display name.
func (g *Game) Title() string {
	switch g.preset {
	case config.DifficultyEasy:
		return "Minesweeper: Easy"
	case config.DifficultyMedium:
		return "Minesweeper: Medium"
	case config.DifficultyHard:
		return "Minesweeper: Hard"
	default:
		return "Minesweeper: Custom"
	}
}

// SetRecorder receives finished games. It may be called before or after
// Reset.
func (g *Game) SetRecorder(r core.ResultRecorder) {
	g.recorder = r
	if g.session != nil {
		g.session.SetRecorder(r)
	}
}

// SetTileStyle switches between "unicode" and "ascii" glyphs.
func (g *Game) SetTileStyle(style string) {
	g.tileStyle = style
}

// TileStyle returns the glyph set in use.
func (g *Game) TileStyle() string {
	return g.tileStyle
}

// Session exposes the underlying session, mainly for tests and stats.
func (g *Game) Session() *Session {
	return g.session
}

// Reset loads the configuration and starts a fresh board.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.runtime.TickRate <= 0 {
		g.runtime.TickRate = core.DefaultConfig().TickRate
	}

	g.cfg = loadConfig()
	if g.tileStyle == "" {
		g.tileStyle = g.cfg.Display.TileStyle
	}

	g.cursor = Position{}
	g.hinted = false
	g.ticks = 0
	g.paused = false
	g.events = nil
	g.clearStatus()

	d, err := g.difficulty()
	if err != nil {
		g.setStatus(err.Error())
		d = Easy
	}
	g.session, err = NewSession(d, g.options()...)
	if err != nil {
		// Only reachable with a broken custom board; fall back to easy.
		g.setStatus(err.Error())
		g.session, err = NewSession(Easy, g.options()...)
		if err != nil {
			// Easy is a fixed valid preset and options never fail.
			panic(fmt.Sprintf("minesweeper: easy board rejected: %v", err))
		}
	}
	g.session.Subscribe(func(e core.Event) {
		g.events = append(g.events, e)
	})

	g.boardRect = g.layout(g.runtime.ScreenW)
	g.checkScreenSize()
}

func loadConfig() config.MinesweeperConfig {
	cfg, err := config.LoadMinesweeper(configPath)
	if err != nil {
		return config.DefaultMinesweeperConfig()
	}
	return cfg
}

// BoardSize reports the custom board a new game would use, so its times
// are only ranked against the same size. Presets report zeros.
func (g *Game) BoardSize() (width, height, mines int) {
	if g.preset != config.DifficultyCustom {
		return 0, 0, 0
	}
	cfg := loadConfig()
	if err := cfg.ApplyCustom(customBoard.Width, customBoard.Height, customBoard.Mines); err != nil {
		return 0, 0, 0
	}
	return cfg.Custom.Width, cfg.Custom.Height, cfg.Custom.Mines
}

// difficulty resolves the preset against the loaded configuration.
func (g *Game) difficulty() (Difficulty, error) {
	board := g.cfg.Board(g.preset)
	if g.preset == config.DifficultyCustom {
		if err := g.cfg.ApplyCustom(customBoard.Width, customBoard.Height, customBoard.Mines); err != nil {
			return Difficulty{}, err
		}
		board = g.cfg.Custom
	}
	if board == (config.BoardConfig{}) {
		return Difficulty{}, fmt.Errorf("minesweeper: no board configured for %q", g.preset)
	}
	return Difficulty{
		Name:   string(g.preset),
		Width:  board.Width,
		Height: board.Height,
		Mines:  board.Mines,
	}, nil
}

func (g *Game) options() []Option {
	limit := g.cfg.Hints.Max
	if hintMax >= 0 {
		limit = hintMax
	}
	strategy, err := ParseHintStrategy(g.cfg.Hints.Strategy)
	if err != nil {
		strategy = StrategyDeduce
	}

	opts := []Option{
		WithHintMax(limit),
		WithHintStrategy(strategy),
		WithRecorder(g.recorder),
		WithClock(g.Elapsed),
		WithPlayer(g.runtime.Player),
	}
	if g.runtime.Seed != 0 {
		opts = append(opts, WithSeed(g.runtime.Seed))
	}
	return opts
}

// Resize keeps the board and moves it to fit a new window.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.boardRect = g.layout(w)
	g.checkScreenSize()
}

// checkScreenSize checks that the board frame and HUD fit.
func (g *Game) checkScreenSize() {
	d := g.session.Difficulty()
	minW := d.Width*cellWidth + 3
	minH := d.Height + hudHeight + footerHeight + 2
	g.tooSmall = g.runtime.ScreenW < minW || g.runtime.ScreenH < minH
}

// Elapsed is the play time on the current board. The clock runs only
// while the board is in progress and the game is not paused.
func (g *Game) Elapsed() time.Duration {
	return time.Duration(g.ticks) * time.Second / time.Duration(g.runtime.TickRate)
}

// Step applies one tick of input.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return g.result()
	}

	if in.Has(core.ActionPause) && g.session.State() == InProgress {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	switch {
	case in.Has(core.ActionRestart):
		g.restart()
	case in.Has(core.ActionReplay):
		g.replay()
	}

	g.moveCursor(in)

	for _, a := range []core.Action{core.ActionReveal, core.ActionFlag, core.ActionChord, core.ActionHint} {
		if in.Has(a) {
			g.apply(a, g.cursor)
		}
	}
	for _, c := range in.Clicks {
		p, ok := g.CellAt(c.X, c.Y)
		if !ok {
			continue
		}
		g.cursor = p
		g.apply(c.Action, p)
	}

	if g.session.State() == InProgress {
		g.ticks++
	}
	if g.statusTTL > 0 {
		g.statusTTL--
		if g.statusTTL == 0 {
			g.status = ""
		}
	}

	return g.result()
}

func (g *Game) result() core.StepResult {
	res := core.StepResult{State: g.State(), Events: g.events, Status: g.status}
	g.events = nil
	return res
}

func (g *Game) moveCursor(in core.InputFrame) {
	d := g.session.Difficulty()
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row--
	case in.Has(core.ActionDown):
		g.cursor.Row++
	}
	switch {
	case in.Has(core.ActionLeft):
		g.cursor.Col--
	case in.Has(core.ActionRight):
		g.cursor.Col++
	}
	g.cursor.Row = core.Clamp(g.cursor.Row, 0, d.Height-1)
	g.cursor.Col = core.Clamp(g.cursor.Col, 0, d.Width-1)
}

// apply runs one board action at p.
func (g *Game) apply(a core.Action, p Position) {
	var err error
	switch a {
	case core.ActionReveal:
		_, err = g.session.Reveal(p)
	case core.ActionFlag:
		_, err = g.session.ToggleFlag(p)
	case core.ActionChord:
		_, err = g.session.Chord(p)
	case core.ActionHint:
		var hint Position
		hint, err = g.session.RequestHint()
		if err == nil {
			g.hint, g.hinted = hint, true
			g.cursor = hint
			g.setStatus(fmt.Sprintf("Try %d,%d (%d hints left)", hint.Row+1, hint.Col+1, g.session.Hints().Left()))
		}
	default:
		return
	}

	if g.hinted && g.session.Board().Cell(g.hint).State != Hidden {
		g.hinted = false
	}

	switch {
	case err == nil:
	case errors.Is(err, ErrNoHintsRemaining):
		g.setStatus("No hints remaining")
	case errors.Is(err, ErrNoSafeCellAvailable):
		g.setStatus("No safe cell to suggest")
	default:
		g.setStatus(err.Error())
	}
}

// restart deals a new layout on the same difficulty.
func (g *Game) restart() {
	if err := g.session.NewGame(g.session.Difficulty()); err != nil {
		g.setStatus(err.Error())
		return
	}
	g.afterNewBoard()
}

// replay restarts the current layout.
func (g *Game) replay() {
	if !g.session.Board().Placed() {
		return
	}
	g.session.Replay()
	g.afterNewBoard()
	g.setStatus("Same board, again")
}

func (g *Game) afterNewBoard() {
	g.ticks = 0
	g.hinted = false
	g.paused = false
	g.clearStatus()
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusTTL = statusSeconds * g.runtime.TickRate
}

func (g *Game) clearStatus() {
	g.status = ""
	g.statusTTL = 0
}

// CellAt maps screen coordinates to a board position using the last
// rendered frame.
func (g *Game) CellAt(x, y int) (Position, bool) {
	if g.boardRect.W == 0 || !g.boardRect.Inset(1).Contains(x, y) {
		return Position{}, false
	}
	dx := x - (g.boardRect.X + 2)
	if dx < 0 {
		return Position{}, false
	}
	p := Position{Row: y - g.boardRect.Y - 1, Col: dx / cellWidth}
	if !g.session.Board().InBounds(p) {
		return Position{}, false
	}
	return p, true
}

// Cursor returns the highlighted cell.
func (g *Game) Cursor() Position {
	return g.cursor
}

// Snapshot returns the session snapshot for determinism checks.
func (g *Game) Snapshot() Snapshot {
	return g.session.Snapshot()
}

// State returns the platform-facing summary.
func (g *Game) State() core.GameState {
	st := g.session.State()
	return core.GameState{
		Score:    int(g.Elapsed() / time.Second),
		GameOver: st.Over(),
		Won:      st == Won,
		Paused:   g.paused,
	}
}
