package core

import "testing"

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionMoveUp, "MoveUp"},
		{ActionMoveDown, "MoveDown"},
		{ActionMoveLeft, "MoveLeft"},
		{ActionMoveRight, "MoveRight"},
		{ActionSweep, "Sweep"},
		{ActionToggleFlag, "ToggleFlag"},
		{ActionQuit, "Quit"},
		{ActionRestart, "Restart"},
		{ActionHelp, "Help"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}

func TestActionIsMove(t *testing.T) {
	moves := []Action{ActionMoveUp, ActionMoveDown, ActionMoveLeft, ActionMoveRight}
	for _, a := range moves {
		if !a.IsMove() {
			t.Errorf("%s should be a move", a)
		}
	}

	others := []Action{ActionNone, ActionSweep, ActionToggleFlag, ActionQuit, ActionRestart, ActionHelp}
	for _, a := range others {
		if a.IsMove() {
			t.Errorf("%s should not be a move", a)
		}
	}
}

func TestParseColor(t *testing.T) {
	if c, ok := ParseColor("bright_red"); !ok || c != ColorBrightRed {
		t.Errorf("ParseColor(bright_red) = %v, %v", c, ok)
	}
	if _, ok := ParseColor("chartreuse"); ok {
		t.Error("ParseColor should reject unknown names")
	}
}
