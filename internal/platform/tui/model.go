package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/leaderboard"
	"github.com/vovakirdan/tui-jumper/internal/registry"
)

// Options configures a game session.
type Options struct {
	Runtime       core.RuntimeConfig
	HoldWindow    time.Duration // How long a direction stays held after a key press
	SubmitTimeout time.Duration // Bound on a leaderboard submission
	TopN          int           // Entries shown on the scoreboard
	AllowBack     bool          // B/Esc on game over or pause returns to the caller
}

// DefaultOptions returns options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Runtime:       core.DefaultConfig(),
		HoldWindow:    DefaultHoldWindow,
		SubmitTimeout: 3 * time.Second,
		TopN:          leaderboard.DefaultTopN,
	}
}

// SubmitResultMsg reports the outcome of a leaderboard submission.
type SubmitResultMsg struct {
	Entry leaderboard.Entry
	Err   error
}

// submitCmd submits the entry off the update loop.
func submitCmd(board leaderboard.Board, e leaderboard.Entry, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return SubmitResultMsg{Entry: e, Err: board.Submit(ctx, e)}
	}
}

type gameView int

const (
	viewGame gameView = iota
	viewScoreboard
)

// GameModel is the Bubble Tea model for one game: fixed-rate ticks, held
// movement keys, leaderboard submission on game over and the scoreboard.
type GameModel struct {
	game       registry.Game
	board      leaderboard.Board
	screen     *core.Screen
	opts       Options
	keyMapper  *KeyMapper
	hold       HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	view       gameView
	scoreboard ScoreboardModel
	submitted  bool   // Score already submitted for this run
	status     string // Submission status shown on the game-over screen
	now        func() time.Time
	tickGen    uint64
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for game. board may be nil to disable the
// leaderboard.
func NewGameModel(game registry.Game, board leaderboard.Board, opts Options) GameModel {
	// Use time-based seed if not specified
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.SubmitTimeout <= 0 {
		opts.SubmitTimeout = DefaultOptions().SubmitTimeout
	}

	return GameModel{
		game:       game,
		board:      board,
		screen:     core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		opts:       opts,
		keyMapper:  NewKeyMapper(),
		hold:       NewHoldTracker(opts.HoldWindow),
		inputFrame: core.NewInputFrame(),
		now:        time.Now,
		tickGen:    nextTickGen(),
	}
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.opts.Runtime)
	return tickCmd(m.opts.Runtime.TickInterval(), m.tickGen)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.view == viewScoreboard {
			return m.updateScoreboard(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		if m.view == viewScoreboard {
			return m.updateScoreboard(msg)
		}
		return m, nil

	case TickMsg:
		if msg.Gen != m.tickGen {
			return m, nil
		}
		return m.handleTick(msg.At)

	case SubmitResultMsg:
		if msg.Err != nil {
			m.status = "Score could not be saved"
		} else {
			m.status = fmt.Sprintf("Score %d saved for %s", msg.Entry.Score, msg.Entry.PlayerName)
		}
		return m, nil

	case ScoresLoadedMsg:
		return m.updateScoreboard(msg)
	}

	return m, nil
}

// handleKey processes keyboard input during play.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionLeft, core.ActionRight:
		m.hold.Press(action, m.now())
	case core.ActionPause:
		m.inputFrame.Set(core.ActionPause)
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(core.ActionRestart)
		}
	case core.ActionScoreboard:
		if m.gameState.GameOver && m.board != nil {
			return m.openScoreboard()
		}
	case core.ActionBack:
		if m.opts.AllowBack && (m.gameState.GameOver || m.gameState.Paused) {
			m.backToMenu = true
		}
	}

	return m, nil
}

func (m GameModel) openScoreboard() (tea.Model, tea.Cmd) {
	m.view = viewScoreboard
	m.scoreboard = NewScoreboardModel(m.board, m.opts.TopN, m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH).
		Highlight(m.opts.Runtime.PlayerName)
	return m, m.scoreboard.Init()
}

func (m GameModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.view != viewScoreboard {
		return m, nil
	}

	var cmd tea.Cmd
	m.scoreboard, cmd = m.scoreboard.Update(msg)

	switch {
	case m.scoreboard.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scoreboard.IsGoingBack():
		m.view = viewGame
	}
	return m, cmd
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	next := tickCmd(m.opts.Runtime.TickInterval(), m.tickGen)

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.restart()
		return m, next
	}

	m.hold.Apply(&m.inputFrame, now)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if result.Ended && !m.submitted && m.gameState.Score > 0 && m.board != nil {
		m.submitted = true
		m.status = "Submitting score..."
		entry := leaderboard.Entry{
			PlayerName: m.opts.Runtime.PlayerName,
			Score:      m.gameState.Score,
		}
		return m, tea.Batch(next, submitCmd(m.board, entry, m.opts.SubmitTimeout))
	}

	return m, next
}

// restart begins a new run with a fresh seed.
func (m *GameModel) restart() {
	m.opts.Runtime.Seed = time.Now().UnixNano()
	m.game.Reset(m.opts.Runtime)
	m.gameState = m.game.State()
	m.submitted = false
	m.status = ""
	m.hold.Release()
	m.inputFrame.Clear()
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	if m.view == viewScoreboard {
		return m.scoreboard.View()
	}

	m.game.Render(m.screen)
	if m.status != "" && m.gameState.GameOver {
		m.screen.DrawTextColored(1, m.screen.Height()-1, m.status, core.ColorYellow)
	}
	return RenderScreen(m.screen)
}

// State returns the last game state seen by the model.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Status returns the submission status line.
func (m GameModel) Status() string {
	return m.status
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a Bubble Tea program for a single game.
func Run(game registry.Game, board leaderboard.Board, opts Options) error {
	p := tea.NewProgram(
		NewGameModel(game, board, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
