package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
	"github.com/vovakirdan/tui-sweeper/internal/storage"
)

// helpRows is the height of the help bar below the board.
const helpRows = 1

// Options configures a Model beyond the runtime config.
type Options struct {
	Renderer *lipgloss.Renderer // nil uses the local terminal
	Logger   *log.Logger        // nil discards log output
	Bell     io.Writer          // receives the terminal bell; nil is silent
	Display  config.DisplayConfig
	Embedded bool // Back is reported to a parent model instead of quitting
}

// Model is the Bubble Tea model for running a board.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	settings   SettingsStore
	config     core.RuntimeConfig
	keys       *KeyMapper
	help       help.Model
	renderer   *lipgloss.Renderer
	theme      Theme
	prefs      Prefs
	sound      *SoundPlayer
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	showHelp   bool
	embedded   bool
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given game and starts
// a fresh board.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, gameHeight(cfg.ScreenH)),
		store:      store,
		config:     cfg,
		keys:       NewKeyMapper(),
		help:       help.New(),
		renderer:   renderer,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		embedded:   opts.Embedded,
	}
	m.help.Width = cfg.ScreenW

	// A nil *Store must not end up inside a non-nil interface.
	if store != nil {
		m.settings = store
	}
	prefs, err := LoadPrefs(m.settings, cfg.Player, DefaultPrefs(opts.Display))
	if err != nil {
		logger.Warn("could not load settings", "player", cfg.Player, "error", err)
	}
	m.prefs = prefs
	m.theme = NewTheme(prefs.Theme, renderer)
	m.sound = NewSoundPlayer(opts.Bell, prefs.Sound)
	m.sound.SetFlagBells(opts.Display.SoundFlags)

	if styled, ok := game.(registry.Styled); ok {
		styled.SetTileStyle(prefs.TileStyle)
	}
	game.SetRecorder(m.recorder())

	game.Reset(m.gameConfig())
	m.gameState = game.State()
	logger.Debug("board started", "game", game.ID(), "seed", cfg.Seed, "player", cfg.Player)
	return m
}

// gameHeight leaves room for the help bar.
func gameHeight(screenH int) int {
	return max(screenH-helpRows, 0)
}

func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = gameHeight(cfg.ScreenH)
	return cfg
}

// recorder logs every finished board and stores it when a store is open.
func (m Model) recorder() core.ResultRecorder {
	store, logger := m.store, m.logger
	return core.ResultRecorderFunc(func(r core.Result) error {
		logger.Info("board finished",
			"difficulty", r.Difficulty,
			"won", r.Won,
			"seconds", r.ElapsedSeconds,
			"hints", r.HintsUsed,
			"revealed", fmt.Sprintf("%d/%d", r.Revealed, r.SafeCells),
			"player", r.Player,
		)
		if store == nil {
			return nil
		}
		if err := store.RecordResult(r); err != nil {
			logger.Error("could not save result", "error", err)
			return err
		}
		return nil
	})
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if click, ok := m.keys.MapMouse(msg); ok && !m.showHelp {
			m.inputFrame.AddClick(click.X, click.Y, click.Action)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch m.keys.MapKeyToToggle(msg) {
	case ToggleTheme:
		m.prefs.Theme = NextTheme(m.prefs.Theme)
		m.theme = NewTheme(m.prefs.Theme, m.renderer)
		m.savePrefs()
		return m, nil
	case ToggleTiles:
		if styled, ok := m.game.(registry.Styled); ok {
			m.prefs.TileStyle = NextTileStyle(m.prefs.TileStyle)
			styled.SetTileStyle(m.prefs.TileStyle)
			m.savePrefs()
		}
		return m, nil
	case ToggleSound:
		m.prefs.Sound = !m.prefs.Sound
		m.sound.SetEnabled(m.prefs.Sound)
		m.savePrefs()
		return m, nil
	case ToggleHelp:
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		// Hold the clock while the help covers the board.
		if m.showHelp != m.gameState.Paused && !m.gameState.GameOver {
			m.inputFrame.Set(core.ActionPause)
		}
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit
	case action == core.ActionBack:
		m.backToMenu = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit
	case action != core.ActionNone && !m.showHelp:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize keeps the board when the game supports it.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameHeight(msg.Height))
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizable); ok {
		r.Resize(msg.Width, gameHeight(msg.Height))
	} else if !m.gameState.GameOver {
		m.game.Reset(m.gameConfig())
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.sound.Play(result.Events)
	for _, e := range result.Events {
		m.logger.Debug("event", "game", m.game.ID(), "event", e)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

func (m Model) savePrefs() {
	if err := SavePrefs(m.settings, m.config.Player, m.prefs); err != nil {
		m.logger.Warn("could not save settings", "player", m.config.Player, "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".sweeper", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpStyle := m.renderer.NewStyle().Foreground(lipgloss.Color("241"))
	if m.showHelp {
		box := m.renderer.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2).
			Render(m.help.View(m.keys.Keys()))
		page := m.renderer.Place(m.config.ScreenW, gameHeight(m.config.ScreenH),
			lipgloss.Center, lipgloss.Center, box)
		return page + "\n" + helpStyle.Render("press ? to close help")
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen, m.theme) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// BackToMenu reports that the player asked for the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting reports that the player asked to leave.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Prefs returns the look and feel currently in use.
func (m Model) Prefs() Prefs {
	return m.prefs
}

// Config returns the runtime config, updated by resizes.
func (m Model) Config() core.RuntimeConfig {
	return m.config
}

// Run starts the Bubble Tea program for one game. It reports whether the
// player went back to the menu rather than quitting.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	if opts.Bell == nil {
		opts.Bell = os.Stdout
	}
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	return ok && m.BackToMenu(), nil
}
