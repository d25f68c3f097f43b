package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/platform/tui"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
	"github.com/vovakirdan/tui-sweeper/internal/storage"
)

var (
	flagClear bool
	flagLimit int
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show best times and records",
	Long: `Without arguments, show the player's record on every board.
With a difficulty, list the fastest wins on that board.

Examples:
  sweeper scores
  sweeper scores hard
  sweeper scores easy --limit 20
  sweeper scores easy --clear
  sweeper scores --player alice`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the player's results for the board")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of times to list")
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagClear {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a difficulty")
			os.Exit(1)
		}
		printRecords(store)
		return
	}

	preset, err := config.ParseDifficultyPreset(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'sweeper list' to see available boards.")
		os.Exit(1)
	}
	difficulty := string(preset)

	if flagClear {
		if err := store.ClearResults(difficulty, flagPlayer); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared %s results for %s.\n", difficulty, flagPlayer)
		return
	}

	printTimes(store, difficulty)
}

func printTimes(store *storage.Store, difficulty string) {
	title := difficulty
	if game, err := registry.Create(difficulty); err == nil {
		title = game.Title()
	}

	board := tui.BoardOf(difficulty)
	if label := tui.BoardLabel(board); label != "" {
		title += " [" + label + "]"
	}

	times, err := store.BoardTimes(difficulty, flagPlayer, board, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving times: %v\n", err)
		os.Exit(1)
	}

	colorHeader.Printf("Best Times - %s (%s)\n", title, flagPlayer)
	fmt.Println()

	if len(times) == 0 {
		fmt.Println("No wins recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'sweeper play %s' to set the first time!\n", difficulty)
		return
	}

	fmt.Printf("  %-4s  %-9s  %-5s  %s\n", "Rank", "Time", "Hints", "Date")
	colorSubtle.Printf("  %-4s  %-9s  %-5s  %s\n", "----", "----", "-----", "----")
	for i, e := range times {
		fmt.Printf("  %-4d  %-9s  %-5d  %s\n",
			i+1, fmt.Sprintf("%.1fs", e.Elapsed), e.HintsUsed, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if rec, err := store.BoardRecord(difficulty, flagPlayer, board); err == nil {
		printRecordLine(rec)
	}
}

func printRecords(store *storage.Store) {
	records, err := store.Records(flagPlayer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving records: %v\n", err)
		os.Exit(1)
	}

	colorHeader.Printf("Records - %s\n", flagPlayer)
	fmt.Println()
	if len(records) == 0 {
		fmt.Println("No games recorded yet.")
		return
	}

	for _, g := range registry.List() {
		rec, ok := records[g.ID]
		if !ok {
			continue
		}
		if b := tui.BoardOf(g.ID); b != (storage.Board{}) {
			if rec, err = store.BoardRecord(g.ID, flagPlayer, b); err != nil || rec.Played == 0 {
				continue
			}
		}
		colorID.Printf("  %-8s ", g.ID)
		printRecordLine(rec)
	}
}

func printRecordLine(r storage.Record) {
	fmt.Printf("%d played, %s, %s, %.0f%% won",
		r.Played, colorWin.Sprintf("%d won", r.Wins), colorLoss.Sprintf("%d lost", r.Losses()), r.WinRate())
	if r.Wins > 0 {
		fmt.Printf(", best %.1fs, avg %.1fs", r.BestTime, r.AvgWinTime)
	}
	fmt.Printf(", %d hints\n", r.HintsUsed)
}
