package tui

import (
	"time"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// HeldKeys turns key presses into held movement input.
//
// Terminals deliver presses and auto-repeats but never releases, so a
// movement action counts as held until hold has passed since its most
// recent press. Auto-repeat keeps refreshing the deadline while the key is
// down. Other actions fire once on the next frame.
type HeldKeys struct {
	hold    time.Duration
	until   map[core.Action]time.Time
	pending []core.Action
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(hold time.Duration) *HeldKeys {
	return &HeldKeys{
		hold:  hold,
		until: make(map[core.Action]time.Time),
	}
}

// isMovement reports whether an action is level-triggered.
func isMovement(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionJump:
		return true
	default:
		return false
	}
}

// Press records a key press at now.
func (h *HeldKeys) Press(a core.Action, now time.Time) {
	switch {
	case a == core.ActionNone:
		return
	case isMovement(a):
		h.until[a] = now.Add(h.hold)
		// Reversing direction releases the opposite key at once
		switch a {
		case core.ActionLeft:
			delete(h.until, core.ActionRight)
		case core.ActionRight:
			delete(h.until, core.ActionLeft)
		}
	default:
		h.pending = append(h.pending, a)
	}
}

// Frame returns the input for a tick at now and consumes one-shot actions.
func (h *HeldKeys) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for a, deadline := range h.until {
		if now.Before(deadline) {
			frame.Set(a)
		} else {
			delete(h.until, a)
		}
	}
	for _, a := range h.pending {
		frame.Set(a)
	}
	h.pending = h.pending[:0]
	return frame
}

// Release drops all held and pending input.
func (h *HeldKeys) Release() {
	clear(h.until)
	h.pending = h.pending[:0]
}
