package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper"
	"github.com/vovakirdan/tui-sweeper/internal/platform/tui"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
	"github.com/vovakirdan/tui-sweeper/internal/storage"
)

var (
	flagWidth  int
	flagHeight int
	flagMines  int
	flagHints  int
)

var playCmd = &cobra.Command{
	Use:   "play [difficulty]",
	Short: "Play a board",
	Long: `Start playing a board of the given difficulty (default: easy).

Controls:
  Arrows/hjkl/wasd  - Move the cursor
  Space/Enter       - Reveal
  F                 - Flag or unflag
  C                 - Chord: open the neighbors of a satisfied number
  I                 - Hint: point at a safe cell
  R / Ctrl+R        - New board / replay this layout
  P                 - Pause
  T / G / M         - Cycle theme / tile style / toggle bell
  ?                 - Full help
  Q/Ctrl+C          - Quit

Mouse: left click reveals, right click flags, middle click chords.

Difficulties:
  easy   (beginner)      9x9, 10 mines
  medium (intermediate)  16x16, 40 mines
  hard   (expert)        30x16, 99 mines
  custom                 from the config file or --width/--height/--mines

Examples:
  sweeper play
  sweeper play expert
  sweeper play custom --width 40 --height 20 --mines 150
  sweeper play easy --hints 0
  sweeper play medium --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Custom board width")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Custom board height")
	playCmd.Flags().IntVar(&flagMines, "mines", 0, "Custom mine count")
	playCmd.Flags().IntVar(&flagHints, "hints", -1, "Hints per board (-1 = from config)")
}

func runPlay(_ *cobra.Command, args []string) {
	name := "easy"
	if len(args) == 1 {
		name = args[0]
	}
	customFlags := flagWidth > 0 || flagHeight > 0 || flagMines > 0
	if len(args) == 0 && customFlags {
		name = string(config.DifficultyCustom)
	}

	preset, err := config.ParseDifficultyPreset(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'sweeper list' to see available boards.")
		os.Exit(1)
	}
	if customFlags && preset != config.DifficultyCustom {
		fmt.Fprintln(os.Stderr, "Error: --width, --height and --mines only apply to the custom board")
		os.Exit(1)
	}

	cfg, err := config.LoadMinesweeper(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if preset == config.DifficultyCustom {
		// Validate up front; the board would otherwise fall back to easy.
		if err := cfg.ApplyCustom(flagWidth, flagHeight, flagMines); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		minesweeper.SetCustomBoard(flagWidth, flagHeight, flagMines)
	}
	minesweeper.SetHintMax(flagHints)

	game, err := registry.Create(string(preset))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(io.Discard, "sweeper")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	opts := tui.Options{Logger: logger, Display: cfg.Display}
	if _, err := tui.Run(game, store, runtimeConfig(), opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// runtimeConfig sizes boards to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Player:   flagPlayer,
	}
}

// openStore opens the results database. Games still run without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		return nil
	}
	return store
}
