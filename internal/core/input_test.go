package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionJump) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionJump)
	f.Set(ActionLeft)
	if !f.Has(ActionJump) || !f.Has(ActionLeft) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRight) {
		t.Error("Has(Right) = true, expected false")
	}

	f.Clear()
	if len(f.Actions) != 0 {
		t.Errorf("Clear() left %d actions", len(f.Actions))
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a        Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionLeft, "Left"},
		{ActionRight, "Right"},
		{ActionJump, "Jump"},
		{ActionPause, "Pause"},
		{ActionRestart, "Restart"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.a.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.a, got, tc.expected)
		}
	}
}

func TestStepResultHas(t *testing.T) {
	r := StepResult{Events: []Event{EventEnemyStomped, EventRoundWon}}
	if !r.Has(EventRoundWon) {
		t.Error("Has(RoundWon) = false, expected true")
	}
	if r.Has(EventRoundLost) {
		t.Error("Has(RoundLost) = true, expected false")
	}
	if (StepResult{}).Has(EventNone) {
		t.Error("empty result should have no events")
	}
}
