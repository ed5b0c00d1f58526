package minesweeper

import (
	"fmt"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/random"
)

// Phase is the board lifecycle stage.
type Phase int

const (
	// PhaseUninitialized: dimensions and mine count are known, contents are not.
	PhaseUninitialized Phase = iota
	// PhaseReady: mines are placed and adjacency counts computed.
	PhaseReady
)

func (p Phase) String() string {
	if p == PhaseReady {
		return "ready"
	}
	return "uninitialized"
}

// SweepResult reports what a sweep did.
type SweepResult struct {
	HitMine  bool // A mine was uncovered
	Revealed int  // Cells uncovered by this sweep, including cascades
}

// Board owns the content grid and the cover grid.
// Both grids are row-major: index = y*width + x.
type Board struct {
	params  Params
	rng     random.Source
	phase   Phase
	content []CellContent // nil until PhaseReady
	cover   []CoverState
}

// NewBoard creates an uninitialized board with every cell covered.
// Mines are placed on the first sweep.
func NewBoard(params Params, rng random.Source) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("minesweeper: nil random source")
	}

	return &Board{
		params: params,
		rng:    rng,
		phase:  PhaseUninitialized,
		cover:  make([]CoverState, params.Cells()), // zero value is Covered
	}, nil
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.params.Width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.params.Height
}

// Params returns the parameters the board was built with.
func (b *Board) Params() Params {
	return b.params
}

// Phase returns the lifecycle stage.
func (b *Board) Phase() Phase {
	return b.phase
}

// Ready reports whether mines have been placed.
func (b *Board) Ready() bool {
	return b.phase == PhaseReady
}

// MineCount returns the configured number of mines.
func (b *Board) MineCount() int {
	return b.params.MineCount
}

// InBounds reports whether (x, y) lies on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.params.Width && y >= 0 && y < b.params.Height
}

// index converts a coordinate to a grid index. Out-of-bounds access is a
// caller bug, so it panics instead of being ignored.
func (b *Board) index(x, y int) int {
	if !b.InBounds(x, y) {
		panic(fmt.Sprintf("minesweeper: (%d, %d) out of bounds for %dx%d board",
			x, y, b.params.Width, b.params.Height))
	}
	return y*b.params.Width + x
}

// Neighbors returns the in-bounds cells around (x, y), excluding (x, y).
func (b *Board) Neighbors(x, y int) []Point {
	points := make([]Point, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if b.InBounds(x+dx, y+dy) {
				points = append(points, Point{X: x + dx, Y: y + dy})
			}
		}
	}
	return points
}

// Initialize places mines and computes adjacency counts, keeping every
// cell within SafeRadius (Chebyshev distance) of (excludeX, excludeY)
// mine-free. It must be called exactly once; Sweep calls it on first use.
// It panics if the mines do not fit outside that zone.
func (b *Board) Initialize(excludeX, excludeY int) {
	if b.phase != PhaseUninitialized {
		panic("minesweeper: board already initialized")
	}
	b.index(excludeX, excludeY) // bounds check
	if !b.CanInitialize(excludeX, excludeY) {
		panic(fmt.Sprintf("minesweeper: %d mines do not fit outside the safe zone around (%d, %d)",
			b.params.MineCount, excludeX, excludeY))
	}

	b.content = make([]CellContent, b.params.Cells()) // all Blank

	// Rejection sampling over the full grid.
	w, h, r := b.params.Width, b.params.Height, b.params.SafeRadius
	for placed := 0; placed < b.params.MineCount; {
		x := b.rng.Uniform(0, w-1)
		y := b.rng.Uniform(0, h-1)

		if core.Abs(x-excludeX) <= r && core.Abs(y-excludeY) <= r {
			continue
		}
		i := y*w + x
		if b.content[i].IsMine() {
			continue
		}
		b.content[i] = Mine
		placed++
	}

	b.computeCounts()
	b.phase = PhaseReady
}

// CanInitialize reports whether the mines fit outside the safe zone
// around (x, y), so that a first sweep there can place them all.
func (b *Board) CanInitialize(x, y int) bool {
	b.index(x, y) // bounds check
	return b.params.MineCount <= b.params.freeCells(x, y)
}

// computeCounts stores the mined-neighbour count in every non-mine cell.
func (b *Board) computeCounts() {
	for y := 0; y < b.params.Height; y++ {
		for x := 0; x < b.params.Width; x++ {
			i := b.index(x, y)
			if b.content[i].IsMine() {
				continue
			}
			count := 0
			for _, n := range b.Neighbors(x, y) {
				if b.content[b.index(n.X, n.Y)].IsMine() {
					count++
				}
			}
			b.content[i] = CellContent(count)
		}
	}
}

// Sweep uncovers (x, y), initializing the board first if needed.
// Flagged and already uncovered cells are left alone.
func (b *Board) Sweep(x, y int) SweepResult {
	i := b.index(x, y)

	if b.phase == PhaseUninitialized {
		b.Initialize(x, y)
	}

	if b.cover[i] != Covered {
		return SweepResult{}
	}
	return b.reveal(x, y)
}

// reveal flood-fills from (x, y) using an explicit stack. Every popped
// cell is re-checked, so flagged or already uncovered cells are skipped
// and each cell is uncovered at most once.
func (b *Board) reveal(x, y int) SweepResult {
	var result SweepResult

	stack := []Point{{X: x, Y: y}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		i := b.index(p.X, p.Y)
		if b.cover[i] != Covered {
			continue
		}
		b.cover[i] = Uncovered
		result.Revealed++

		switch c := b.content[i]; {
		case c.IsMine():
			result.HitMine = true
		case c.IsBlank():
			for _, n := range b.Neighbors(p.X, p.Y) {
				if b.cover[b.index(n.X, n.Y)] == Covered {
					stack = append(stack, n)
				}
			}
		}
	}

	return result
}

// ToggleFlag flags a covered cell when budget allows, or unflags a
// flagged one. The caller owns the budget. Returns true if the cover changed.
func (b *Board) ToggleFlag(x, y int, budget *int) bool {
	i := b.index(x, y)

	switch b.cover[i] {
	case Covered:
		if *budget <= 0 {
			return false
		}
		b.cover[i] = Flagged
		*budget--
		return true
	case Flagged:
		b.cover[i] = Covered
		*budget++
		return true
	default:
		return false
	}
}

// CheckWin reports whether every non-mine cell has been uncovered.
// Covered or flagged mines never block a win.
func (b *Board) CheckWin() bool {
	if b.phase != PhaseReady {
		return false
	}
	for i, c := range b.content {
		if !c.IsMine() && b.cover[i] != Uncovered {
			return false
		}
	}
	return true
}

// Cover returns the cover state at (x, y).
func (b *Board) Cover(x, y int) CoverState {
	return b.cover[b.index(x, y)]
}

// Content returns the content at (x, y). Panics before initialization.
func (b *Board) Content(x, y int) CellContent {
	i := b.index(x, y)
	if b.phase != PhaseReady {
		panic("minesweeper: content read before initialization")
	}
	return b.content[i]
}

// Cell returns the renderer's view of (x, y).
func (b *Board) Cell(x, y int) CellView {
	i := b.index(x, y)
	v := CellView{Cover: b.cover[i]}
	if b.phase == PhaseReady {
		v.Content = b.content[i]
		v.Known = true
	}
	return v
}

// Mines returns the positions of every mine in row-major order.
// Empty before initialization.
func (b *Board) Mines() []Point {
	if b.phase != PhaseReady {
		return nil
	}
	mines := make([]Point, 0, b.params.MineCount)
	for i, c := range b.content {
		if c.IsMine() {
			mines = append(mines, Point{X: i % b.params.Width, Y: i / b.params.Width})
		}
	}
	return mines
}

// FlagCount returns the number of flagged cells.
func (b *Board) FlagCount() int {
	return b.countCover(Flagged)
}

// UncoveredCount returns the number of uncovered cells.
func (b *Board) UncoveredCount() int {
	return b.countCover(Uncovered)
}

func (b *Board) countCover(state CoverState) int {
	n := 0
	for _, s := range b.cover {
		if s == state {
			n++
		}
	}
	return n
}
