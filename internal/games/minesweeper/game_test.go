package minesweeper

import (
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-sweeper/internal/config"
	"github.com/vovakirdan/tui-sweeper/internal/core"
	"github.com/vovakirdan/tui-sweeper/internal/registry"
)

// newTestGame isolates the game from any config on the machine.
func newTestGame(t *testing.T, id string, seed int64) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	g, err := registry.Create(id)
	if err != nil {
		t.Fatalf("registry.Create(%q) failed: %v", id, err)
	}
	game := g.(*Game)
	game.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: seed, Player: "tester"})
	return game
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestPresetsRegistered(t *testing.T) {
	for _, id := range []string{"easy", "medium", "hard", "custom"} {
		if !registry.Exists(id) {
			t.Errorf("preset %q not registered", id)
		}
	}
}

func TestGameResetUsesConfig(t *testing.T) {
	tests := []struct {
		id   string
		want Difficulty
	}{
		{"easy", Difficulty{Name: "easy", Width: 9, Height: 9, Mines: 10}},
		{"medium", Difficulty{Name: "medium", Width: 16, Height: 16, Mines: 40}},
		{"hard", Difficulty{Name: "hard", Width: 30, Height: 16, Mines: 99}},
		{"custom", Difficulty{Name: "custom", Width: 20, Height: 20, Mines: 80}},
	}
	for _, tc := range tests {
		t.Run(tc.id, func(t *testing.T) {
			g := newTestGame(t, tc.id, 1)
			if got := g.Session().Difficulty(); got != tc.want {
				t.Errorf("difficulty = %v, expected %v", got, tc.want)
			}
			if g.Session().Hints().Max() != 3 {
				t.Errorf("hint max = %d", g.Session().Hints().Max())
			}
		})
	}
}

func TestGameCustomOverrides(t *testing.T) {
	SetCustomBoard(12, 10, 15)
	SetHintMax(1)
	t.Cleanup(func() {
		SetCustomBoard(0, 0, 0)
		SetHintMax(-1)
	})

	g := newTestGame(t, "custom", 1)
	d := g.Session().Difficulty()
	if d.Width != 12 || d.Height != 10 || d.Mines != 15 {
		t.Errorf("custom board = %v", d)
	}
	if g.Session().Hints().Max() != 1 {
		t.Errorf("hint max = %d, expected override 1", g.Session().Hints().Max())
	}
}

func TestGameBadCustomFallsBackToEasy(t *testing.T) {
	if err := Easy.Validate(); err != nil {
		t.Fatalf("Easy.Validate() = %v", err)
	}
	SetCustomBoard(3, 3, 9)
	t.Cleanup(func() { SetCustomBoard(0, 0, 0) })

	g := newTestGame(t, "custom", 1)
	if d := g.Session().Difficulty(); d != Easy {
		t.Errorf("difficulty = %v, expected easy", d)
	}
	if g.status == "" {
		t.Error("expected a status explaining the rejected board")
	}
}

func TestGameBoardSize(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	if w, h, m := New(config.DifficultyEasy).BoardSize(); w != 0 || h != 0 || m != 0 {
		t.Errorf("easy BoardSize() = %d, %d, %d, expected zeros", w, h, m)
	}
	if w, h, m := New(config.DifficultyCustom).BoardSize(); w != 20 || h != 20 || m != 80 {
		t.Errorf("custom BoardSize() = %d, %d, %d, expected 20, 20, 80", w, h, m)
	}

	SetCustomBoard(12, 10, 15)
	t.Cleanup(func() { SetCustomBoard(0, 0, 0) })
	if w, h, m := New(config.DifficultyCustom).BoardSize(); w != 12 || h != 10 || m != 15 {
		t.Errorf("overridden BoardSize() = %d, %d, %d", w, h, m)
	}
}

func TestGameCursor(t *testing.T) {
	g := newTestGame(t, "easy", 1)

	g.Step(frame(core.ActionUp, core.ActionLeft))
	if g.Cursor() != (Position{0, 0}) {
		t.Errorf("cursor should clamp at origin, got %v", g.Cursor())
	}
	for range 12 {
		g.Step(frame(core.ActionDown, core.ActionRight))
	}
	if g.Cursor() != (Position{8, 8}) {
		t.Errorf("cursor should clamp at far corner, got %v", g.Cursor())
	}
}

func TestGameRevealAndClock(t *testing.T) {
	g := newTestGame(t, "easy", 7)

	for range 5 {
		g.Step(frame(core.ActionDown, core.ActionRight))
	}
	g.Step(core.NewInputFrame())
	if g.Elapsed() != 0 {
		t.Error("clock should not run before the first reveal")
	}

	res := g.Step(frame(core.ActionReveal))
	if !slices.Contains(res.Events, core.EventReveal) {
		t.Errorf("events = %v", res.Events)
	}
	if g.Session().State() != InProgress {
		t.Fatalf("state = %v", g.Session().State())
	}

	for range 19 {
		g.Step(core.NewInputFrame())
	}
	if got := g.State().Score; got != 2 {
		t.Errorf("Score = %d seconds after 20 ticks at 10 tps, expected 2", got)
	}

	g.Step(frame(core.ActionPause))
	for range 30 {
		g.Step(core.NewInputFrame())
	}
	if !g.State().Paused || g.State().Score != 2 {
		t.Errorf("paused clock moved: %+v", g.State())
	}
}

func TestGameMouse(t *testing.T) {
	g := newTestGame(t, "easy", 3)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	// The board frame is 21 wide, centered; cells start two columns in.
	x := (80-21)/2 + 2 + 3*cellWidth
	y := hudHeight + 1 + 4
	in := core.NewInputFrame()
	in.AddClick(x, y, core.ActionFlag)
	g.Step(in)

	if g.Cursor() != (Position{4, 3}) {
		t.Errorf("click moved cursor to %v, expected (4,3)", g.Cursor())
	}
	if g.Session().Board().Cell(Position{4, 3}).State != Flagged {
		t.Error("right click should flag the cell")
	}

	in = core.NewInputFrame()
	in.AddClick(0, 0, core.ActionReveal)
	g.Step(in)
	if g.Session().Board().Placed() {
		t.Error("click outside the board should be ignored")
	}
}

func TestGameHintStatus(t *testing.T) {
	SetHintMax(0)
	t.Cleanup(func() { SetHintMax(-1) })

	g := newTestGame(t, "easy", 1)
	res := g.Step(frame(core.ActionHint))
	if res.Status != "No hints remaining" {
		t.Errorf("status = %q", res.Status)
	}

	// Status clears after a few seconds.
	for range statusSeconds * 10 {
		res = g.Step(core.NewInputFrame())
	}
	if res.Status != "" {
		t.Errorf("status should expire, got %q", res.Status)
	}
}

func TestGameHintMovesCursor(t *testing.T) {
	g := newTestGame(t, "easy", 1)
	res := g.Step(frame(core.ActionHint))
	if !slices.Contains(res.Events, core.EventHint) {
		t.Fatalf("events = %v, status = %q", res.Events, res.Status)
	}
	if !g.hinted || g.Cursor() != g.hint {
		t.Error("cursor should jump to the hinted cell")
	}

	g.Step(frame(core.ActionReveal))
	if g.hinted {
		t.Error("hint highlight should clear once the cell is opened")
	}
}

func TestGameRecordsLoss(t *testing.T) {
	var results []core.Result
	g := newTestGame(t, "easy", 5)
	g.SetRecorder(core.ResultRecorderFunc(func(r core.Result) error {
		results = append(results, r)
		return nil
	}))

	g.Step(frame(core.ActionReveal))
	mine := g.Session().Board().MinePositions()[0]
	g.cursor = mine
	res := g.Step(frame(core.ActionReveal))

	if !slices.Contains(res.Events, core.EventExplosion) || !res.State.GameOver || res.State.Won {
		t.Fatalf("step result = %+v", res)
	}
	if len(results) != 1 {
		t.Fatalf("recorded %d results", len(results))
	}
	if results[0].Difficulty != "easy" || results[0].Player != "tester" || results[0].Won {
		t.Errorf("result = %+v", results[0])
	}

	// Replay the same layout, then deal a fresh one.
	g.Step(frame(core.ActionReplay))
	if g.Session().State() != NotStarted || !slices.Contains(g.Session().Board().MinePositions(), mine) {
		t.Error("replay should keep the layout")
	}
	g.Step(frame(core.ActionRestart))
	if g.Session().Board().Placed() || g.Elapsed() != 0 {
		t.Error("restart should deal a fresh board")
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := []core.InputFrame{
		frame(core.ActionDown, core.ActionRight),
		frame(core.ActionReveal),
		frame(core.ActionHint),
		frame(core.ActionReveal),
		frame(core.ActionRight),
		frame(core.ActionFlag),
	}

	run := func() Snapshot {
		g := newTestGame(t, "medium", 99)
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Snapshot()
	}

	if a, b := run(), run(); !a.Equal(b) {
		t.Errorf("same seed and input diverged:\n%s\n---\n%s",
			strings.Join(a.Rows, "\n"), strings.Join(b.Rows, "\n"))
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, "easy", 1)
	g.SetTileStyle("ascii")
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "Minesweeper: Easy") {
		t.Errorf("title row = %q", screen.Row(0))
	}
	if !strings.Contains(screen.Row(1), "Mines  10") {
		t.Errorf("HUD row = %q", screen.Row(1))
	}
	board := screen.Row(hudHeight + 1)
	if strings.Count(board, "#") != 9 {
		t.Errorf("first board row = %q, expected 9 hidden cells", board)
	}
	if cell := screen.GetCell(g.boardRect.X+2, hudHeight+1); cell.Color != core.ColorCursor {
		t.Errorf("cursor cell color = %v", cell.Color)
	}
}

func TestGameTooSmall(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	g := New("hard")
	g.Reset(core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 10})
	g.Step(frame(core.ActionReveal))
	if g.Session().Board().Placed() {
		t.Error("input should be ignored while the window is too small")
	}

	screen := core.NewScreen(40, 12)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected resize message")
	}
}

func TestGameResizeKeepsBoard(t *testing.T) {
	g := newTestGame(t, "easy", 4)
	g.Step(frame(core.ActionReveal))
	before := g.Snapshot()

	g.Resize(20, 10)
	if !g.tooSmall {
		t.Error("20x10 should be too small for easy")
	}
	g.Resize(120, 40)
	if g.tooSmall {
		t.Error("120x40 should fit")
	}
	if g.boardRect.X != (120-21)/2 {
		t.Errorf("board x = %d after resize", g.boardRect.X)
	}
	if !g.Snapshot().Equal(before) {
		t.Error("resize should keep the board")
	}
}
