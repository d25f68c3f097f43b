// sweeper is a terminal Minesweeper with hints, stats and SSH play.
//
// Usage:
//
//	sweeper list                 - List board presets
//	sweeper play [difficulty]    - Play a board
//	sweeper menu                 - Pick boards interactively
//	sweeper serve                - Start SSH server for remote play
//	sweeper scores [difficulty]  - Show best times and records
//	sweeper config               - Print the default configuration
//
// Global flags:
//
//	--fps <rate>      - Clock ticks per second (default: 10)
//	--seed <value>    - RNG seed for reproducible boards
//	--db <path>       - Results database (default: ~/.sweeper/scores.db)
//	--config <path>   - Configuration file
//	--player <name>   - Name results are stored under
package main

import (
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/games/minesweeper"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagPlayer   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sweeper",
	Short: "Minesweeper in your terminal",
	Long: `Sweeper is a terminal Minesweeper. The first cell you open is always
safe, a limited number of hints point at cells that are safe to open, and
every finished board is recorded for the scoreboard.

Available commands:
  list     - Show the board presets
  play     - Play a board directly
  menu     - Interactive board picker
  serve    - Start SSH server for remote play
  scores   - View best times and records
  config   - Print the default configuration

Examples:
  sweeper list
  sweeper play medium
  sweeper play custom --width 24 --height 20 --mines 90
  sweeper menu
  sweeper serve --ssh :2222
  sweeper scores hard`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		minesweeper.SetConfigPath(flagConfig)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 10, "Clock ticks per second")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sweeper/scores.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to configuration YAML")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", defaultPlayer(), "Name results and settings are stored under")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (serve logs to stderr by default)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// defaultPlayer is the login name, or "player" if it cannot be found.
func defaultPlayer() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return "player"
}
