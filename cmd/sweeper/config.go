package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/config"
)

var flagCheck bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration as YAML. Save it to
~/.sweeper/configs/minesweeper.yaml or ./configs/minesweeper.yaml and edit
only the fields you want to change.

With --check, validate the file given by --config (or the one found in the
search order) instead.

Examples:
  sweeper config > ~/.sweeper/configs/minesweeper.yaml
  sweeper config --check --config ./my-board.yaml`,
	Run: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagCheck, "check", false, "Validate the configuration instead of printing defaults")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagCheck {
		//nolint:errcheck // Nothing to report if stdout is gone
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := config.LoadMinesweeper(flagConfig)
	if err != nil {
		colorLoss.Printf("invalid: %v\n", err)
		os.Exit(1)
	}
	colorWin.Println("ok")
	for _, p := range config.Presets() {
		b := cfg.Board(p)
		fmt.Printf("  %-7s %dx%d, %d mines\n", p, b.Width, b.Height, b.Mines)
	}
	fmt.Printf("  hints   %d (%s)\n", cfg.Hints.Max, cfg.Hints.Strategy)
	fmt.Printf("  display %s, %s, sound %v, flag bells %v\n",
		cfg.Display.Theme, cfg.Display.TileStyle, cfg.Display.Sound, cfg.Display.SoundFlags)
}
