package storage

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-sweeper/internal/core"
)

// Ensure Store can be handed to a game session as its recorder.
var _ core.ResultRecorder = (*Store)(nil)

const timeLayout = "2006-01-02 15:04:05"

// Entry is one finished game, as listed on the scoreboard.
type Entry struct {
	ID         int64
	Difficulty string
	Elapsed    float64 // seconds
	Won        bool
	HintsUsed  int
	Player     string
	CreatedAt  time.Time
}

// Record aggregates a player's games on one difficulty.
type Record struct {
	Difficulty string
	Played     int
	Wins       int
	BestTime   float64 // fastest win in seconds, 0 if never won
	AvgWinTime float64
	HintsUsed  int
	LastPlayed time.Time
}

// Losses returns the number of games lost.
func (r Record) Losses() int {
	return r.Played - r.Wins
}

// WinRate returns wins as a percentage of games played.
func (r Record) WinRate() float64 {
	if r.Played == 0 {
		return 0
	}
	return float64(r.Wins) * 100 / float64(r.Played)
}

// RecordResult stores a finished game. It implements core.ResultRecorder.
func (s *Store) RecordResult(r core.Result) error {
	finished := r.FinishedAt
	if finished.IsZero() {
		finished = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		`INSERT INTO results
		 (difficulty, width, height, mines, elapsed_secs, won, hints_used, revealed, safe_cells, player, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Difficulty, r.Width, r.Height, r.Mines, r.ElapsedSeconds,
		boolToInt(r.Won), r.HintsUsed, r.Revealed, r.SafeCells, r.Player,
		finished.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record result: %w", err)
	}
	return nil
}

// Board narrows a query to one board size. The zero Board matches every
// size, which is what the fixed presets use.
type Board struct {
	Width  int
	Height int
	Mines  int
}

// boardClause matches rows of board b, or every row for the zero Board.
const boardClause = `(? = 0 OR (width = ? AND height = ? AND mines = ?))`

func (b Board) args() []any {
	filter := 0
	if b != (Board{}) {
		filter = 1
	}
	return []any{filter, b.Width, b.Height, b.Mines}
}

// TopTimes returns the fastest wins for a difficulty and player.
// Ties go to the earlier game.
func (s *Store) TopTimes(difficulty, player string, limit int) ([]Entry, error) {
	return s.BoardTimes(difficulty, player, Board{}, limit)
}

// BoardTimes is TopTimes restricted to one board size, so custom boards
// of different sizes are never ranked together.
func (s *Store) BoardTimes(difficulty, player string, b Board, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 5
	}

	args := append([]any{difficulty, player}, b.args()...)
	rows, err := s.db.Query(
		`SELECT id, difficulty, elapsed_secs, won, hints_used, player, created_at
		 FROM results
		 WHERE difficulty = ? AND player = ? AND won = 1 AND `+boardClause+`
		 ORDER BY elapsed_secs ASC, id ASC
		 LIMIT ?`,
		append(args, limit)...,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query times: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var won int
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Difficulty, &e.Elapsed, &won, &e.HintsUsed, &e.Player, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Won = won == 1
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Record returns aggregated statistics for a difficulty and player.
// A difficulty that was never played yields a zero Record.
func (s *Store) Record(difficulty, player string) (Record, error) {
	return s.BoardRecord(difficulty, player, Board{})
}

// BoardRecord is Record restricted to one board size.
func (s *Store) BoardRecord(difficulty, player string, b Board) (Record, error) {
	rec := Record{Difficulty: difficulty}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(won), 0),
		        COALESCE(MIN(CASE WHEN won = 1 THEN elapsed_secs END), 0),
		        COALESCE(AVG(CASE WHEN won = 1 THEN elapsed_secs END), 0),
		        COALESCE(SUM(hints_used), 0),
		        MAX(created_at)
		 FROM results WHERE difficulty = ? AND player = ? AND `+boardClause,
		append([]any{difficulty, player}, b.args()...)...,
	).Scan(&rec.Played, &rec.Wins, &rec.BestTime, &rec.AvgWinTime, &rec.HintsUsed, &lastPlayed)
	if err != nil {
		return Record{}, fmt.Errorf("storage: cannot get record: %w", err)
	}
	rec.LastPlayed = parseTime(lastPlayed)

	return rec, nil
}

// Records returns statistics for every difficulty the player has played.
func (s *Store) Records(player string) (map[string]Record, error) {
	rows, err := s.db.Query(
		`SELECT DISTINCT difficulty FROM results WHERE player = ? ORDER BY difficulty`,
		player,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot list difficulties: %w", err)
	}

	var difficulties []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			rows.Close()
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		difficulties = append(difficulties, d)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	records := make(map[string]Record, len(difficulties))
	for _, d := range difficulties {
		rec, err := s.Record(d, player)
		if err != nil {
			return nil, err
		}
		records[d] = rec
	}
	return records, nil
}

// ClearResults deletes a player's results for one difficulty.
func (s *Store) ClearResults(difficulty, player string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM results WHERE difficulty = ? AND player = ?", difficulty, player)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
