// Package minesweeper implements the board model and session state machine
// for single-player Minesweeper. It has no terminal dependencies; the
// platform layer feeds it actions and reads its grids for rendering.
package minesweeper

import "strconv"

// CellContent is what a cell holds: a mine or the number of mined
// neighbours (0-8).
type CellContent int8

const (
	// Mine marks a mined cell.
	Mine CellContent = -1
	// Blank is a non-mine cell with no mined neighbours. Revealing it
	// cascades to its neighbours.
	Blank CellContent = 0
)

// IsMine reports whether the cell holds a mine.
func (c CellContent) IsMine() bool {
	return c == Mine
}

// IsBlank reports whether the cell is a non-mine cell with zero adjacent mines.
func (c CellContent) IsBlank() bool {
	return c == Blank
}

// Count returns the adjacency count, or -1 for a mine.
func (c CellContent) Count() int {
	return int(c)
}

func (c CellContent) String() string {
	switch {
	case c == Mine:
		return "*"
	case c == Blank:
		return "."
	default:
		return strconv.Itoa(int(c))
	}
}

// CoverState is what the player currently sees at a cell.
type CoverState uint8

const (
	Covered CoverState = iota
	Flagged
	Uncovered
)

func (s CoverState) String() string {
	switch s {
	case Covered:
		return "covered"
	case Flagged:
		return "flagged"
	case Uncovered:
		return "uncovered"
	default:
		return "unknown"
	}
}

// Point is a board coordinate.
type Point struct {
	X, Y int
}

// CellView is the renderer's view of one cell.
// Content is only meaningful when Known is true.
type CellView struct {
	Cover   CoverState
	Content CellContent
	Known   bool
}
