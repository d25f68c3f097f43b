package main

import (
	"fmt"
	"os"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
)

var (
	colorHeader = color.Style{color.FgCyan, color.OpBold}
	colorID     = color.Style{color.FgGreen, color.OpBold}
	colorSubtle = color.Style{color.FgGray}
	colorWin    = color.Style{color.FgGreen}
	colorLoss   = color.Style{color.FgRed}
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the board presets",
	Long:  `Shows every board preset with its size and mine count, as configured.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No boards available.")
		return
	}

	cfg, err := config.LoadMinesweeper(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, showing defaults\n", err)
		cfg = config.DefaultMinesweeperConfig()
	}

	colorHeader.Println("Available boards:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %-7s  %-5s  %s\n", maxIDLen, "ID", "Size", "Mines", "Density")
	colorSubtle.Printf("  %-*s  %-7s  %-5s  %s\n", maxIDLen, "--", "----", "-----", "-------")

	for _, g := range games {
		b := cfg.Board(config.DifficultyPreset(g.ID))
		size := fmt.Sprintf("%dx%d", b.Width, b.Height)
		density := 0.0
		if cells := b.Width * b.Height; cells > 0 {
			density = float64(b.Mines) * 100 / float64(cells)
		}
		fmt.Printf("  %s  %-7s  %-5d  %.1f%%\n", colorID.Sprintf("%-*s", maxIDLen, g.ID), size, b.Mines, density)
	}

	fmt.Println()
	colorSubtle.Printf("Hints per board: %d (%s)\n", cfg.Hints.Max, cfg.Hints.Strategy)
	fmt.Println("Run 'sweeper play <id>' to play a board.")
}
