package minesweeper

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
)

// Default board parameters: a 30x20 board with 20% mine density and a
// 5x5 mine-free zone around the first sweep.
const (
	DefaultWidth      = 30
	DefaultHeight     = 20
	DefaultMineCount  = 120
	DefaultSafeRadius = 2
)

// Params describes a board before it is initialized.
type Params struct {
	Width      int
	Height     int
	MineCount  int
	SafeRadius int // Chebyshev radius kept mine-free around the first sweep
}

// DefaultParams returns the standard board configuration.
func DefaultParams() Params {
	return Params{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		MineCount:  DefaultMineCount,
		SafeRadius: DefaultSafeRadius,
	}
}

// ErrInvalidParams is wrapped by every Validate failure.
var ErrInvalidParams = errors.New("invalid board parameters")

// Validate checks that a board with these parameters can be initialized
// by at least one first sweep. A corner sweep clips the safe zone the most,
// so it bounds the mine count; sweeps nearer the middle may leave less room
// (see Board.CanInitialize).
func (p Params) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d must be positive", ErrInvalidParams, p.Width, p.Height)
	}
	if p.MineCount < 0 {
		return fmt.Errorf("%w: mine count %d is negative", ErrInvalidParams, p.MineCount)
	}
	if p.SafeRadius < 0 {
		return fmt.Errorf("%w: safe radius %d is negative", ErrInvalidParams, p.SafeRadius)
	}
	if p.MineCount > p.maxMines() {
		return fmt.Errorf("%w: %d mines do not fit on %dx%d outside a radius-%d safe zone (max %d)",
			ErrInvalidParams, p.MineCount, p.Width, p.Height, p.SafeRadius, p.maxMines())
	}
	return nil
}

// maxMines is the number of cells left after the smallest safe zone, the
// one clipped by a corner.
func (p Params) maxMines() int {
	side := p.SafeRadius + 1
	safe := core.Min(side, p.Width) * core.Min(side, p.Height)
	return p.Width*p.Height - safe
}

// freeCells counts the cells outside the safe zone around (x, y).
func (p Params) freeCells(x, y int) int {
	r := p.SafeRadius
	zoneW := core.Min(x+r, p.Width-1) - core.Max(x-r, 0) + 1
	zoneH := core.Min(y+r, p.Height-1) - core.Max(y-r, 0) + 1
	return p.Width*p.Height - zoneW*zoneH
}

// Cells returns the total number of cells.
func (p Params) Cells() int {
	return p.Width * p.Height
}
