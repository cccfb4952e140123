// Package tui provides the Bubble Tea integration for the jumper platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Gen identifies the
// game model that scheduled it, so ticks left over from a finished game are
// dropped instead of doubling the rate of the next one.
type TickMsg struct {
	At  time.Time
	Gen uint64
}

var tickGen atomic.Uint64

// nextTickGen returns a fresh tick generation.
func nextTickGen() uint64 {
	return tickGen.Add(1)
}

// tickCmd returns a Bubble Tea command that sends a tick message after interval.
func tickCmd(interval time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Gen: gen}
	})
}
