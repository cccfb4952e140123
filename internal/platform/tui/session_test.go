package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-jumper/internal/leaderboard"
	"github.com/vovakirdan/tui-jumper/internal/registry"
)

const sessionTestGame = "session-test"

func init() {
	registry.Register(sessionTestGame, func() registry.Game {
		return &scriptedGame{endAt: 1, score: 3}
	})
}

func newTestSession(board leaderboard.Board) SessionModel {
	opts := DefaultOptions()
	opts.Runtime.PlayerName = "ann"
	opts.Runtime.TickRate = 1000
	return NewSessionModel(sessionTestGame, board, opts)
}

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm, cmd
}

func TestSessionMenuView(t *testing.T) {
	m := newTestSession(&recordingBoard{})
	view := m.View()
	for _, want := range []string{"S K Y", "Welcome, ann", "> Play", "High Scores", "Quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("menu missing %q:\n%s", want, view)
		}
	}
}

func TestSessionPlayAndBack(t *testing.T) {
	m := newTestSession(&recordingBoard{})

	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != sessionGame {
		t.Fatal("enter on Play should start the game")
	}
	if cmd == nil {
		t.Fatal("starting a game should schedule a tick")
	}
	if !m.gameModel.opts.AllowBack {
		t.Error("session games should allow going back")
	}
	if m.gameModel.opts.Runtime.PlayerName != "ann" {
		t.Errorf("player = %q", m.gameModel.opts.Runtime.PlayerName)
	}

	m, _ = sessionUpdate(t, m, TickMsg{Gen: m.gameModel.tickGen})
	if !m.gameModel.State().GameOver {
		t.Fatal("scripted game should be over after one tick")
	}

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != sessionMenu {
		t.Error("esc after game over should return to the menu")
	}
}

func TestSessionScores(t *testing.T) {
	board := &recordingBoard{entries: []leaderboard.Entry{{PlayerName: "bob", Score: 4}}}
	m := newTestSession(board)

	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.view != sessionScores {
		t.Fatal("tab should open the scoreboard")
	}
	m, _ = sessionUpdate(t, m, cmd())
	if !strings.Contains(m.View(), "bob") {
		t.Errorf("scoreboard missing entry:\n%s", m.View())
	}

	m, _ = sessionUpdate(t, m, runeKey('b'))
	if m.view != sessionMenu {
		t.Error("b should return to the menu")
	}
}

func TestSessionQuit(t *testing.T) {
	m := newTestSession(&recordingBoard{})

	// Move to Quit and select it
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.quitting || cmd == nil {
		t.Error("selecting Quit should end the session")
	}
}

func TestSessionUnknownGame(t *testing.T) {
	m := NewSessionModel("missing", &recordingBoard{}, DefaultOptions())

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != sessionMenu {
		t.Error("unknown game should keep the menu")
	}
	if !strings.Contains(m.View(), "Error") {
		t.Errorf("menu should show the error:\n%s", m.View())
	}
}

func TestSessionPlayerName(t *testing.T) {
	long := strings.Repeat("x", leaderboard.MaxNameLength+5)

	tests := []struct {
		user, fallback, want string
	}{
		{"ann", "Player", "ann"},
		{"  ", "Player", "Player"},
		{"", "Player", "Player"},
		{long, "Player", long[:leaderboard.MaxNameLength]},
	}

	for _, tt := range tests {
		if got := sessionPlayerName(tt.user, tt.fallback); got != tt.want {
			t.Errorf("sessionPlayerName(%q) = %q, want %q", tt.user, got, tt.want)
		}
	}
}

var _ registry.Game = (*scriptedGame)(nil)
