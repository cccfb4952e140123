package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-jumper/internal/leaderboard"
	"github.com/vovakirdan/tui-jumper/internal/registry"
)

type sessionView int

const (
	sessionMenu sessionView = iota
	sessionGame
	sessionScores
)

// SessionModel manages the full session flow: menu -> game or scores -> menu.
// It is the top-level model for SSH sessions and the local menu command.
type SessionModel struct {
	gameID     string
	board      leaderboard.Board
	opts       Options
	view       sessionView
	menu       MenuModel
	gameModel  GameModel
	scoreboard ScoreboardModel
	err        error
	quitting   bool
}

// NewSessionModel creates a session that plays gameID.
func NewSessionModel(gameID string, board leaderboard.Board, opts Options) SessionModel {
	opts.AllowBack = true
	return SessionModel{
		gameID: gameID,
		board:  board,
		opts:   opts,
		menu:   NewMenuModel(opts.Runtime.PlayerName, opts.Runtime.ScreenW, opts.Runtime.ScreenH),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	switch m.view {
	case sessionGame:
		return m.updateGame(msg)
	case sessionScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	switch *selected {
	case MenuPlay:
		game, err := registry.Create(m.gameID)
		if err != nil {
			m.err = err
			m.menu = NewMenuModel(m.opts.Runtime.PlayerName, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
			return m, nil
		}
		m.gameModel = NewGameModel(game, m.board, m.opts)
		m.view = sessionGame
		return m, m.gameModel.Init()

	case MenuScores:
		m.scoreboard = NewScoreboardModel(m.board, m.opts.TopN, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH).
			Highlight(m.opts.Runtime.PlayerName)
		m.view = sessionScores
		return m, m.scoreboard.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gm, ok := newModel.(GameModel); ok {
		m.gameModel = gm
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		m.backToMenu()
		return m, nil
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is open from the menu.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.scoreboard, cmd = m.scoreboard.Update(msg)

	switch {
	case m.scoreboard.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scoreboard.IsGoingBack():
		m.backToMenu()
		return m, nil
	}
	return m, cmd
}

func (m *SessionModel) backToMenu() {
	m.view = sessionMenu
	m.menu = NewMenuModel(m.opts.Runtime.PlayerName, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.view {
	case sessionGame:
		return m.gameModel.View()
	case sessionScores:
		return m.scoreboard.View()
	}

	view := m.menu.View()
	if m.err != nil {
		view += "\n" + centerText(fmt.Sprintf("Error: %v", m.err), m.opts.Runtime.ScreenW)
	}
	return view
}

// RunSession starts the menu-driven session in the local terminal.
func RunSession(gameID string, board leaderboard.Board, opts Options) error {
	p := tea.NewProgram(
		NewSessionModel(gameID, board, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
