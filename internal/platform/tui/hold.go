package tui

import (
	"time"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

// DefaultHoldWindow is how long a direction stays held after its last press.
const DefaultHoldWindow = 150 * time.Millisecond

// HoldTracker turns key presses into held directions. Terminals report
// presses and auto-repeats but never releases, so a direction counts as held
// until the window passes without another press. Left and right are tracked
// independently and may both be held.
type HoldTracker struct {
	window     time.Duration
	leftUntil  time.Time
	rightUntil time.Time
}

// NewHoldTracker creates a tracker. A non-positive window uses DefaultHoldWindow.
func NewHoldTracker(window time.Duration) HoldTracker {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return HoldTracker{window: window}
}

// Press records a press of a direction key at now. Other actions are ignored.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		h.leftUntil = now.Add(h.window)
	case core.ActionRight:
		h.rightUntil = now.Add(h.window)
	}
}

// Held reports whether the direction is held at now.
func (h HoldTracker) Held(a core.Action, now time.Time) bool {
	switch a {
	case core.ActionLeft:
		return now.Before(h.leftUntil)
	case core.ActionRight:
		return now.Before(h.rightUntil)
	}
	return false
}

// Apply sets the held directions on the frame.
func (h HoldTracker) Apply(frame *core.InputFrame, now time.Time) {
	if h.Held(core.ActionLeft, now) {
		frame.Set(core.ActionLeft)
	}
	if h.Held(core.ActionRight, now) {
		frame.Set(core.ActionRight)
	}
}

// Release drops both directions.
func (h *HoldTracker) Release() {
	h.leftUntil = time.Time{}
	h.rightUntil = time.Time{}
}
