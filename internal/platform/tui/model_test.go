package tui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/leaderboard"
)

// scriptedGame ends after endAt steps with a fixed score.
type scriptedGame struct {
	endAt     int
	score     int
	steps     int
	resets    int
	over      bool
	paused    bool
	lastInput core.InputFrame
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.steps = 0
	g.over = false
	g.paused = false
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.lastInput = in.Clone()
	if g.over {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}
	g.steps++
	if g.steps == g.endAt {
		g.over = true
		return core.StepResult{State: g.State(), Ended: true}
	}
	return core.StepResult{State: g.State()}
}

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "scripted")
}

func (g *scriptedGame) State() core.GameState {
	return core.GameState{Score: g.score, GameOver: g.over, Paused: g.paused}
}

// recordingBoard is a leaderboard.Board that keeps entries in memory.
type recordingBoard struct {
	mu      sync.Mutex
	entries []leaderboard.Entry
	err     error
}

func (b *recordingBoard) Submit(_ context.Context, e leaderboard.Entry) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil {
		return b.err
	}
	b.entries = append(b.entries, e)
	return nil
}

func (b *recordingBoard) Top(_ context.Context, n int) ([]leaderboard.Entry, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return leaderboard.Rank(b.entries, n), b.err
}

func (b *recordingBoard) submissions() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.entries)
}

var testStart = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestModel(game *scriptedGame, board leaderboard.Board) GameModel {
	opts := DefaultOptions()
	opts.Runtime.Seed = 1
	opts.Runtime.TickRate = 1000
	opts.Runtime.PlayerName = "ann"
	opts.HoldWindow = 100 * time.Millisecond

	m := NewGameModel(game, board, opts)
	m.now = func() time.Time { return testStart }
	m.Init()
	return m
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm, cmd
}

func tick(t *testing.T, m GameModel, at time.Duration) (GameModel, tea.Cmd) {
	t.Helper()
	return update(t, m, TickMsg{At: testStart.Add(at), Gen: m.tickGen})
}

// collect runs a command and any batched commands it expands to.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func findSubmit(msgs []tea.Msg) (SubmitResultMsg, bool) {
	for _, msg := range msgs {
		if res, ok := msg.(SubmitResultMsg); ok {
			return res, true
		}
	}
	return SubmitResultMsg{}, false
}

func TestGameModelHeldKeys(t *testing.T) {
	game := &scriptedGame{endAt: 1000}
	m := newTestModel(game, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})

	m, _ = tick(t, m, 50*time.Millisecond)
	if !game.lastInput.Has(core.ActionRight) {
		t.Error("right should be held within the window")
	}
	if game.lastInput.Has(core.ActionLeft) {
		t.Error("left was never pressed")
	}

	m, _ = tick(t, m, 250*time.Millisecond)
	if game.lastInput.Has(core.ActionRight) {
		t.Error("right should lapse after the window")
	}

	m, _ = update(t, m, runeKey('a'))
	m, _ = update(t, m, runeKey('d'))
	_, _ = tick(t, m, 10*time.Millisecond)
	if !game.lastInput.Has(core.ActionLeft) || !game.lastInput.Has(core.ActionRight) {
		t.Error("both directions should be held together")
	}
}

func TestGameModelPauseIsOneShot(t *testing.T) {
	game := &scriptedGame{endAt: 1000}
	m := newTestModel(game, nil)

	m, _ = update(t, m, runeKey('p'))
	m, _ = tick(t, m, 0)
	if !game.lastInput.Has(core.ActionPause) {
		t.Fatal("pause should reach the game")
	}
	_, _ = tick(t, m, 10*time.Millisecond)
	if game.lastInput.Has(core.ActionPause) {
		t.Error("pause should be cleared after one tick")
	}
}

func TestGameModelSubmitsOnce(t *testing.T) {
	game := &scriptedGame{endAt: 3, score: 5}
	board := &recordingBoard{}
	m := newTestModel(game, board)

	var submits []SubmitResultMsg
	for i := 0; i < 6; i++ {
		var cmd tea.Cmd
		m, cmd = tick(t, m, time.Duration(i)*time.Millisecond)
		if res, ok := findSubmit(collect(cmd)); ok {
			submits = append(submits, res)
			m, _ = update(t, m, res)
		}
	}

	if len(submits) != 1 {
		t.Fatalf("submissions = %d, want 1", len(submits))
	}
	if board.submissions() != 1 {
		t.Fatalf("board got %d entries, want 1", board.submissions())
	}
	e := board.entries[0]
	if e.PlayerName != "ann" || e.Score != 5 {
		t.Errorf("entry = %+v", e)
	}
	if !strings.Contains(m.Status(), "saved") {
		t.Errorf("status = %q", m.Status())
	}
}

func TestGameModelSkipsZeroScore(t *testing.T) {
	game := &scriptedGame{endAt: 2, score: 0}
	board := &recordingBoard{}
	m := newTestModel(game, board)

	for i := 0; i < 4; i++ {
		var cmd tea.Cmd
		m, cmd = tick(t, m, 0)
		if _, ok := findSubmit(collect(cmd)); ok {
			t.Fatal("zero score should not be submitted")
		}
	}
	if !m.State().GameOver {
		t.Error("game should be over")
	}
}

func TestGameModelSubmitFailure(t *testing.T) {
	m := newTestModel(&scriptedGame{endAt: 1, score: 2}, &recordingBoard{})

	m, _ = update(t, m, SubmitResultMsg{Entry: leaderboard.Entry{PlayerName: "ann", Score: 2}, Err: errors.New("down")})
	if !strings.Contains(m.Status(), "could not") {
		t.Errorf("status = %q", m.Status())
	}
}

func TestGameModelRestart(t *testing.T) {
	game := &scriptedGame{endAt: 2, score: 1}
	board := &recordingBoard{}
	m := newTestModel(game, board)

	// Restart is ignored while running
	m, _ = update(t, m, runeKey('r'))
	m, _ = tick(t, m, 0)
	if game.resets != 1 {
		t.Fatalf("resets = %d, want 1", game.resets)
	}

	var cmd tea.Cmd
	m, cmd = tick(t, m, 0)
	if !m.State().GameOver {
		t.Fatal("game should be over")
	}
	collect(cmd)

	m, _ = update(t, m, runeKey('r'))
	m, _ = tick(t, m, 0)
	if game.resets != 2 {
		t.Errorf("resets = %d, want 2", game.resets)
	}
	if m.State().GameOver {
		t.Error("restart should clear game over")
	}
	if m.Status() != "" {
		t.Errorf("status should clear on restart, got %q", m.Status())
	}

	// The new run submits again
	m, _ = tick(t, m, 0)
	m, cmd = tick(t, m, 0)
	if _, ok := findSubmit(collect(cmd)); !ok {
		t.Error("second run should submit")
	}
	if board.submissions() != 2 {
		t.Errorf("board got %d entries, want 2", board.submissions())
	}
}

func TestGameModelIgnoresStaleTicks(t *testing.T) {
	game := &scriptedGame{endAt: 1000}
	m := newTestModel(game, nil)

	m, cmd := update(t, m, TickMsg{At: testStart, Gen: m.tickGen + 1})
	if cmd != nil || game.steps != 0 {
		t.Errorf("stale tick advanced the game: steps=%d", game.steps)
	}

	_, cmd = tick(t, m, 0)
	if cmd == nil || game.steps != 1 {
		t.Errorf("current tick should advance and reschedule: steps=%d", game.steps)
	}
}

func TestGameModelQuit(t *testing.T) {
	m := newTestModel(&scriptedGame{endAt: 1000}, nil)

	m, cmd := update(t, m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestGameModelBack(t *testing.T) {
	tests := []struct {
		name      string
		allowBack bool
		want      bool
	}{
		{"standalone", false, false},
		{"in session", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(&scriptedGame{endAt: 1}, nil)
			m.opts.AllowBack = tt.allowBack

			m, _ = tick(t, m, 0)
			m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
			if m.BackToMenu() != tt.want {
				t.Errorf("BackToMenu() = %v, want %v", m.BackToMenu(), tt.want)
			}
		})
	}
}

func TestGameModelScoreboard(t *testing.T) {
	board := &recordingBoard{entries: []leaderboard.Entry{
		{PlayerName: "bob", Score: 9},
		{PlayerName: "ann", Score: 4},
	}}
	m := newTestModel(&scriptedGame{endAt: 1}, board)

	// Not available while running
	m, _ = update(t, m, runeKey('s'))
	if m.view != viewGame {
		t.Fatal("scoreboard should open only after game over")
	}

	m, _ = tick(t, m, 0)
	m, cmd := update(t, m, runeKey('s'))
	if m.view != viewScoreboard {
		t.Fatal("scoreboard should open after game over")
	}

	for _, msg := range collect(cmd) {
		m, _ = update(t, m, msg)
	}
	if got := m.scoreboard.Entries(); len(got) != 2 || got[0].PlayerName != "bob" {
		t.Fatalf("entries = %+v", got)
	}
	if view := m.View(); !strings.Contains(view, "bob") || !strings.Contains(view, "* ann") {
		t.Errorf("scoreboard view missing rows:\n%s", view)
	}

	m, _ = update(t, m, runeKey('b'))
	if m.view != viewGame {
		t.Error("b should return to the game view")
	}
}

func TestGameModelView(t *testing.T) {
	m := newTestModel(&scriptedGame{endAt: 1000}, nil)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})

	view := m.View()
	if !strings.Contains(view, "scripted") {
		t.Errorf("view = %q", view)
	}
	if lines := strings.Count(view, "\n") + 1; lines != 10 {
		t.Errorf("view has %d lines, want 10", lines)
	}
}
