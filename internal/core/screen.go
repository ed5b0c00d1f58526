package core

import (
	"strings"
)

// Cell is a single character position on the screen.
type Cell struct {
	Rune  rune
	Color Color
	Attr  Attr
}

// blankCell is what Clear writes everywhere.
var blankCell = Cell{Rune: ' '}

// Screen is a 2D character buffer for rendering the game.
// It decouples drawing from the terminal, allowing the board view to draw
// using simple rune operations while the platform handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	// Copy old content
	copyW := Min(oldW, width)
	copyH := Min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills the entire screen with unstyled spaces.
func (s *Screen) Clear() {
	s.fillCell(blankCell)
}

// Fill fills the entire screen with the given rune.
func (s *Screen) Fill(r rune) {
	s.fillCell(Cell{Rune: r})
}

func (s *Screen) fillCell(c Cell) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = c
		}
	}
}

func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// Set places an unstyled rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetStyled(x, y, r, ColorDefault, 0)
}

// SetStyled places a rune with color and attributes at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) SetStyled(x, y int, r rune, color Color, attr Attr) {
	if !s.inBounds(x, y) {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: color, Attr: attr}
}

// Get returns the rune at the given position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the full cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if !s.inBounds(x, y) {
		return blankCell
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextStyled(x, y, text, ColorDefault, 0)
}

// DrawTextStyled writes a colored string horizontally starting at (x, y).
func (s *Screen) DrawTextStyled(x, y int, text string, color Color, attr Attr) {
	i := 0
	for _, r := range text {
		s.SetStyled(x+i, y, r, color, attr)
		i++
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawText(x, y, text)
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect) {
	s.DrawBoxStyled(r, ColorDefault)
}

// DrawBoxStyled draws a colored box outline.
func (s *Screen) DrawBoxStyled(r Rect, color Color) {
	// Corners
	s.SetStyled(r.X, r.Y, '┌', color, 0)
	s.SetStyled(r.Right()-1, r.Y, '┐', color, 0)
	s.SetStyled(r.X, r.Bottom()-1, '└', color, 0)
	s.SetStyled(r.Right()-1, r.Bottom()-1, '┘', color, 0)

	// Horizontal edges
	for x := r.X + 1; x < r.Right()-1; x++ {
		s.SetStyled(x, r.Y, '─', color, 0)
		s.SetStyled(x, r.Bottom()-1, '─', color, 0)
	}

	// Vertical edges
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.SetStyled(r.X, y, '│', color, 0)
		s.SetStyled(r.Right()-1, y, '│', color, 0)
	}
}

// String converts the screen buffer to plain text without styling.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns a copy of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	runes := make([]rune, s.width)
	for x, c := range s.cells[y] {
		runes[x] = c.Rune
	}
	return string(runes)
}
