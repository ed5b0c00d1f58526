package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionMoveUp            // k, w, Up arrow
	ActionMoveDown          // j, s, Down arrow
	ActionMoveLeft          // h, a, Left arrow
	ActionMoveRight         // l, d, Right arrow
	ActionSweep             // Space, Enter - uncover the cell under the cursor
	ActionToggleFlag        // f - place or remove a flag
	ActionQuit              // q, Ctrl+C - exit the program
	ActionRestart           // r - new board after a win or loss
	ActionHelp              // ? - toggle the full help view
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveUp:
		return "MoveUp"
	case ActionMoveDown:
		return "MoveDown"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionSweep:
		return "Sweep"
	case ActionToggleFlag:
		return "ToggleFlag"
	case ActionQuit:
		return "Quit"
	case ActionRestart:
		return "Restart"
	case ActionHelp:
		return "Help"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action moves the cursor.
func (a Action) IsMove() bool {
	return a >= ActionMoveUp && a <= ActionMoveRight
}
