package minesweeper

import (
	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/random"
)

// State is the session outcome so far.
type State int

const (
	StatePlaying State = iota
	StateLost
	StateWon
)

func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateLost:
		return "lost"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// Direction is a cursor movement.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// delta returns the cursor offset for a direction.
func (d Direction) delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Session drives one game: cursor, flag budget, and the Playing/Lost/Won
// state machine on top of a Board. Lost and Won accept only Quit.
type Session struct {
	board      *Board
	cursorX    int
	cursorY    int
	flagBudget int
	state      State
	quitting   bool
	moves      int    // Accepted sweep and flag actions
	exploded   *Point // Mine that ended the game, if any
}

// NewSession creates a session on a fresh board with the cursor centred.
func NewSession(params Params, rng random.Source) (*Session, error) {
	board, err := NewBoard(params, rng)
	if err != nil {
		return nil, err
	}

	return &Session{
		board:      board,
		cursorX:    params.Width / 2,
		cursorY:    params.Height / 2,
		flagBudget: params.MineCount,
		state:      StatePlaying,
	}, nil
}

// Apply translates an input action into a session operation.
// Returns false when the action was ignored or rejected.
func (s *Session) Apply(a core.Action) bool {
	switch a {
	case core.ActionMoveUp:
		return s.MoveCursor(DirUp)
	case core.ActionMoveDown:
		return s.MoveCursor(DirDown)
	case core.ActionMoveLeft:
		return s.MoveCursor(DirLeft)
	case core.ActionMoveRight:
		return s.MoveCursor(DirRight)
	case core.ActionSweep:
		return s.SweepAt()
	case core.ActionToggleFlag:
		return s.ToggleFlagAt()
	case core.ActionQuit:
		s.Quit()
		return true
	default:
		return false
	}
}

// MoveCursor moves the cursor one cell, clamped to the board edges.
// Returns true if the cursor moved.
func (s *Session) MoveCursor(dir Direction) bool {
	if s.state != StatePlaying {
		return false
	}

	dx, dy := dir.delta()
	nx := core.Clamp(s.cursorX+dx, 0, s.board.Width()-1)
	ny := core.Clamp(s.cursorY+dy, 0, s.board.Height()-1)
	if nx == s.cursorX && ny == s.cursorY {
		return false
	}
	s.cursorX, s.cursorY = nx, ny
	return true
}

// SweepAt sweeps the cell under the cursor and updates the state.
// Returns true if any cell was uncovered. A first sweep where the mines
// cannot fit around the safe zone is refused.
func (s *Session) SweepAt() bool {
	if s.state != StatePlaying {
		return false
	}
	if !s.board.Ready() && !s.board.CanInitialize(s.cursorX, s.cursorY) {
		return false
	}

	result := s.board.Sweep(s.cursorX, s.cursorY)
	if result.Revealed == 0 {
		return false
	}
	s.moves++

	if result.HitMine {
		s.state = StateLost
		s.exploded = &Point{X: s.cursorX, Y: s.cursorY}
		return true
	}
	if s.board.CheckWin() {
		s.state = StateWon
	}
	return true
}

// ToggleFlagAt flags or unflags the cell under the cursor.
func (s *Session) ToggleFlagAt() bool {
	if s.state != StatePlaying {
		return false
	}

	if !s.board.ToggleFlag(s.cursorX, s.cursorY, &s.flagBudget) {
		return false
	}
	s.moves++
	return true
}

// Quit ends the session. Valid in any state.
func (s *Session) Quit() {
	s.quitting = true
}

// Board returns the underlying board for read access.
func (s *Session) Board() *Board {
	return s.board
}

// Cursor returns the cursor position.
func (s *Session) Cursor() (x, y int) {
	return s.cursorX, s.cursorY
}

// FlagBudget returns how many flags can still be placed.
func (s *Session) FlagBudget() int {
	return s.flagBudget
}

// State returns the current session state.
func (s *Session) State() State {
	return s.state
}

// Initialized reports whether the first sweep has happened.
func (s *Session) Initialized() bool {
	return s.board.Ready()
}

// GameOver reports whether a mine was hit.
func (s *Session) GameOver() bool {
	return s.state == StateLost
}

// Won reports whether every safe cell was uncovered.
func (s *Session) Won() bool {
	return s.state == StateWon
}

// Finished reports whether the session is in a terminal state.
func (s *Session) Finished() bool {
	return s.state != StatePlaying
}

// Quitting reports whether Quit was requested.
func (s *Session) Quitting() bool {
	return s.quitting
}

// Moves returns the number of accepted sweep and flag actions.
func (s *Session) Moves() int {
	return s.moves
}

// Exploded returns the mine that ended the game, if any.
func (s *Session) Exploded() (Point, bool) {
	if s.exploded == nil {
		return Point{}, false
	}
	return *s.exploded, true
}
