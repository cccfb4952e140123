package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuChoice is an entry of the main menu.
type MenuChoice int

const (
	MenuPlay MenuChoice = iota
	MenuScores
	MenuQuit
)

// String returns the label shown in the menu.
func (c MenuChoice) String() string {
	switch c {
	case MenuPlay:
		return "Play"
	case MenuScores:
		return "High Scores"
	case MenuQuit:
		return "Quit"
	default:
		return "?"
	}
}

var menuChoices = []MenuChoice{MenuPlay, MenuScores, MenuQuit}

// MenuModel is the main menu shown at the start of a session.
type MenuModel struct {
	cursor    int
	width     int
	height    int
	player    string
	keyMapper *KeyMapper
	quitting  bool
	selected  *MenuChoice // Set when user picks an entry
}

// NewMenuModel creates a new menu model.
func NewMenuModel(player string, width, height int) MenuModel {
	return MenuModel{
		width:     width,
		height:    height,
		player:    player,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (MenuModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (MenuModel, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuChoices)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		choice := menuChoices[m.cursor]
		if choice == MenuQuit {
			m.quitting = true
			break
		}
		m.selected = &choice

	case MenuActionScoreboard:
		choice := MenuScores
		m.selected = &choice
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  S K Y   J U M P E R  "), m.width))
	b.WriteString("\n\n")

	if m.player != "" {
		b.WriteString(centerText("Welcome, "+m.player, m.width))
		b.WriteString("\n\n")
	}

	for i, choice := range menuChoices {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(cursor+choice.String(), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen entry, or nil.
func (m MenuModel) Selected() *MenuChoice {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
