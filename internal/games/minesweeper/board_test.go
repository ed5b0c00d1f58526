package minesweeper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/random"
)

// seqSource replays a fixed list of values, cycling when exhausted.
type seqSource struct {
	vals []int
	i    int
}

func (s *seqSource) Uniform(min, max int) int {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	if v < min || v > max {
		panic("seqSource: scripted value out of range")
	}
	return v
}

// boardFromLayout builds a Ready board from rows where '*' is a mine.
func boardFromLayout(t *testing.T, rows ...string) *Board {
	t.Helper()

	mines := 0
	for _, row := range rows {
		for _, r := range row {
			if r == '*' {
				mines++
			}
		}
	}

	params := Params{Width: len(rows[0]), Height: len(rows), MineCount: mines}
	b, err := NewBoard(params, random.New(1))
	require.NoError(t, err)

	b.content = make([]CellContent, params.Cells())
	for y, row := range rows {
		require.Len(t, row, params.Width, "ragged layout row %d", y)
		for x, r := range row {
			if r == '*' {
				b.content[y*params.Width+x] = Mine
			}
		}
	}
	b.computeCounts()
	b.phase = PhaseReady
	return b
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr bool
	}{
		{"default", DefaultParams(), false},
		{"no mines", Params{Width: 3, Height: 3, MineCount: 0, SafeRadius: 1}, false},
		{"exactly full", Params{Width: 5, Height: 5, MineCount: 16, SafeRadius: 1}, false},
		{"fits from a corner", Params{Width: 5, Height: 5, MineCount: 21, SafeRadius: 1}, false},
		{"too many mines", Params{Width: 5, Height: 5, MineCount: 22, SafeRadius: 1}, true},
		{"radius-2 zone on 5x5", Params{Width: 5, Height: 5, MineCount: 1, SafeRadius: 2}, false},
		{"safe zone wider than board", Params{Width: 3, Height: 3, MineCount: 1, SafeRadius: 2}, true},
		{"zero width", Params{Width: 0, Height: 5, MineCount: 0}, true},
		{"negative height", Params{Width: 5, Height: -1, MineCount: 0}, true},
		{"negative mines", Params{Width: 5, Height: 5, MineCount: -1}, true},
		{"negative radius", Params{Width: 5, Height: 5, MineCount: 1, SafeRadius: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidParams)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestNewBoard(t *testing.T) {
	b, err := NewBoard(DefaultParams(), random.New(1))
	require.NoError(t, err)

	assert.Equal(t, PhaseUninitialized, b.Phase())
	assert.False(t, b.Ready())
	assert.Equal(t, 30, b.Width())
	assert.Equal(t, 20, b.Height())
	assert.Equal(t, 120, b.MineCount())
	assert.Empty(t, b.Mines())

	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			require.Equal(t, Covered, b.Cover(x, y))
			require.False(t, b.Cell(x, y).Known)
		}
	}

	_, err = NewBoard(Params{Width: 0, Height: 1}, random.New(1))
	require.ErrorIs(t, err, ErrInvalidParams)

	_, err = NewBoard(DefaultParams(), nil)
	require.Error(t, err)
}

func TestInitializePlacement(t *testing.T) {
	clicks := []Point{
		{X: 0, Y: 0}, {X: 29, Y: 19}, {X: 15, Y: 10}, {X: 0, Y: 19}, {X: 1, Y: 1},
	}

	for seed := int64(1); seed <= 20; seed++ {
		for _, click := range clicks {
			b, err := NewBoard(DefaultParams(), random.New(seed))
			require.NoError(t, err)
			b.Initialize(click.X, click.Y)

			require.True(t, b.Ready())
			require.Len(t, b.Mines(), DefaultMineCount, "seed %d", seed)

			for _, m := range b.Mines() {
				inZone := core.Abs(m.X-click.X) <= DefaultSafeRadius &&
					core.Abs(m.Y-click.Y) <= DefaultSafeRadius
				require.False(t, inZone, "seed %d: mine at %v inside safe zone of %v", seed, m, click)
			}

			// Every non-mine count equals its mined-neighbour count.
			for y := 0; y < b.Height(); y++ {
				for x := 0; x < b.Width(); x++ {
					c := b.Content(x, y)
					if c.IsMine() {
						continue
					}
					want := 0
					for _, n := range b.Neighbors(x, y) {
						if b.Content(n.X, n.Y).IsMine() {
							want++
						}
					}
					require.Equal(t, want, c.Count(), "seed %d cell (%d,%d)", seed, x, y)
				}
			}
		}
	}
}

func TestInitializeDeterministic(t *testing.T) {
	b1, err := NewBoard(DefaultParams(), random.New(42))
	require.NoError(t, err)
	b2, err := NewBoard(DefaultParams(), random.New(42))
	require.NoError(t, err)

	b1.Initialize(10, 10)
	b2.Initialize(10, 10)
	assert.Equal(t, b1.Mines(), b2.Mines())
}

func TestInitializeFullBoard(t *testing.T) {
	// Every cell outside the safe zone must become a mine.
	params := Params{Width: 5, Height: 5, MineCount: 16, SafeRadius: 1}
	b, err := NewBoard(params, random.New(3))
	require.NoError(t, err)

	b.Initialize(2, 2)
	assert.Len(t, b.Mines(), 16)
	for y := 1; y <= 3; y++ {
		for x := 1; x <= 3; x++ {
			assert.False(t, b.Content(x, y).IsMine())
		}
	}
	assert.Equal(t, Blank, b.Content(2, 2))
	assert.Equal(t, CellContent(5), b.Content(1, 1))
}

func TestInitializeTwicePanics(t *testing.T) {
	b, err := NewBoard(DefaultParams(), random.New(1))
	require.NoError(t, err)
	b.Initialize(0, 0)

	assert.Panics(t, func() { b.Initialize(0, 0) })
}

func TestOutOfBoundsPanics(t *testing.T) {
	b, err := NewBoard(Params{Width: 4, Height: 3, MineCount: 1}, random.New(1))
	require.NoError(t, err)
	budget := 1

	assert.Panics(t, func() { b.Sweep(-1, 0) })
	assert.Panics(t, func() { b.Sweep(4, 0) })
	assert.Panics(t, func() { b.Sweep(0, 3) })
	assert.Panics(t, func() { b.ToggleFlag(0, -1, &budget) })
	assert.Panics(t, func() { b.Cover(10, 10) })
	assert.Panics(t, func() { b.Initialize(4, 3) })

	// A failed sweep must not have initialized the board.
	assert.False(t, b.Ready())
}

func TestContentBeforeReadyPanics(t *testing.T) {
	b, err := NewBoard(DefaultParams(), random.New(1))
	require.NoError(t, err)

	assert.Panics(t, func() { b.Content(0, 0) })
}

func TestNeighbors(t *testing.T) {
	b, err := NewBoard(Params{Width: 3, Height: 3}, random.New(1))
	require.NoError(t, err)

	assert.Len(t, b.Neighbors(0, 0), 3)
	assert.Len(t, b.Neighbors(1, 0), 5)
	assert.Len(t, b.Neighbors(1, 1), 8)
	assert.Len(t, b.Neighbors(2, 2), 3)
}

func TestLayoutCounts(t *testing.T) {
	b := boardFromLayout(t,
		"*..",
		".*.",
		"...",
	)

	want := [][]int{
		{-1, 2, 1},
		{2, -1, 1},
		{1, 1, 1},
	}
	for y, row := range want {
		for x, c := range row {
			assert.Equal(t, c, b.Content(x, y).Count(), "cell (%d,%d)", x, y)
		}
	}
}

func TestSweepFloodStopsAtNumbers(t *testing.T) {
	b := boardFromLayout(t,
		"..*..",
		"..*..",
		"..*..",
	)

	result := b.Sweep(0, 0)
	assert.False(t, result.HitMine)
	assert.Equal(t, 6, result.Revealed)

	for y := 0; y < 3; y++ {
		assert.Equal(t, Uncovered, b.Cover(0, y))
		assert.Equal(t, Uncovered, b.Cover(1, y))
		assert.Equal(t, Covered, b.Cover(2, y))
		assert.Equal(t, Covered, b.Cover(3, y))
		assert.Equal(t, Covered, b.Cover(4, y))
	}
	assert.Equal(t, 6, b.UncoveredCount())
}

func TestSweepNumberRevealsOneCell(t *testing.T) {
	b := boardFromLayout(t,
		"*..",
		"...",
		"...",
	)

	result := b.Sweep(1, 1)
	assert.Equal(t, SweepResult{Revealed: 1}, result)
	assert.Equal(t, 1, b.UncoveredCount())
}

func TestSweepIdempotent(t *testing.T) {
	b := boardFromLayout(t,
		"..*..",
		"..*..",
		"..*..",
	)

	first := b.Sweep(0, 0)
	require.Equal(t, 6, first.Revealed)

	second := b.Sweep(0, 0)
	assert.Equal(t, SweepResult{}, second)
	second = b.Sweep(1, 1)
	assert.Equal(t, SweepResult{}, second)
	assert.Equal(t, 6, b.UncoveredCount())
}

func TestSweepFlaggedIsNoop(t *testing.T) {
	b := boardFromLayout(t,
		"*..",
		"...",
		"...",
	)
	budget := 1

	require.True(t, b.ToggleFlag(0, 0, &budget))
	assert.Equal(t, SweepResult{}, b.Sweep(0, 0))
	assert.Equal(t, Flagged, b.Cover(0, 0))
}

func TestFloodSkipsFlaggedCells(t *testing.T) {
	b := boardFromLayout(t,
		"....",
		"....",
		"...*",
	)
	budget := 1
	require.True(t, b.ToggleFlag(0, 1, &budget))

	result := b.Sweep(0, 0)
	assert.False(t, result.HitMine)
	assert.Equal(t, Flagged, b.Cover(0, 1))
	// 12 cells, one mine, one flagged.
	assert.Equal(t, 10, result.Revealed)
	assert.False(t, b.CheckWin())
}

func TestSweepMine(t *testing.T) {
	b := boardFromLayout(t,
		"*..",
		"...",
		"...",
	)

	result := b.Sweep(0, 0)
	assert.True(t, result.HitMine)
	assert.Equal(t, 1, result.Revealed)
	assert.Equal(t, Uncovered, b.Cover(0, 0))
}

func TestFirstSweepInitializesAroundClick(t *testing.T) {
	// A 5x5 board with one mine scripted at (4,4), first sweep at (0,0).
	params := Params{Width: 5, Height: 5, MineCount: 1, SafeRadius: 2}
	b, err := NewBoard(params, &seqSource{vals: []int{4, 4}})
	require.NoError(t, err)

	result := b.Sweep(0, 0)
	require.True(t, b.Ready())
	assert.False(t, result.HitMine)
	assert.Equal(t, 24, result.Revealed)
	assert.Equal(t, []Point{{X: 4, Y: 4}}, b.Mines())
	assert.Equal(t, CellContent(1), b.Content(3, 3))
	assert.Equal(t, Covered, b.Cover(4, 4))
	assert.True(t, b.CheckWin())
}

func TestCanInitialize(t *testing.T) {
	// 21 mines fit around a clipped corner zone but not a full 3x3 one.
	params := Params{Width: 5, Height: 5, MineCount: 21, SafeRadius: 1}
	b, err := NewBoard(params, random.New(5))
	require.NoError(t, err)

	assert.True(t, b.CanInitialize(0, 0))
	assert.True(t, b.CanInitialize(4, 4))
	assert.False(t, b.CanInitialize(2, 2))
	assert.False(t, b.CanInitialize(0, 2)) // edge zone is 2x3
	assert.Panics(t, func() { b.CanInitialize(5, 0) })

	assert.Panics(t, func() { b.Initialize(2, 2) })
	assert.False(t, b.Ready())

	b.Initialize(4, 0)
	assert.Len(t, b.Mines(), 21)
	for _, p := range []Point{{X: 3, Y: 0}, {X: 4, Y: 0}, {X: 3, Y: 1}, {X: 4, Y: 1}} {
		assert.False(t, b.Content(p.X, p.Y).IsMine(), "mine at %v", p)
	}
}

func TestRejectionSamplingSkipsSafeZoneAndDuplicates(t *testing.T) {
	// Scripted draws: (0,0) is inside the safe zone, (3,3) is accepted,
	// (3,3) again is a duplicate, (0,3) is accepted.
	params := Params{Width: 4, Height: 4, MineCount: 2, SafeRadius: 1}
	b, err := NewBoard(params, &seqSource{vals: []int{0, 0, 3, 3, 3, 3, 0, 3}})
	require.NoError(t, err)

	b.Initialize(1, 1)
	assert.Equal(t, []Point{{X: 0, Y: 3}, {X: 3, Y: 3}}, b.Mines())
}

func TestToggleFlag(t *testing.T) {
	b := boardFromLayout(t,
		"*..",
		"...",
		"...",
	)
	budget := 1

	require.True(t, b.ToggleFlag(2, 2, &budget))
	assert.Equal(t, Flagged, b.Cover(2, 2))
	assert.Equal(t, 0, budget)

	// Budget exhausted.
	assert.False(t, b.ToggleFlag(1, 1, &budget))
	assert.Equal(t, Covered, b.Cover(1, 1))
	assert.Equal(t, 0, budget)

	// Unflag returns the flag.
	require.True(t, b.ToggleFlag(2, 2, &budget))
	assert.Equal(t, Covered, b.Cover(2, 2))
	assert.Equal(t, 1, budget)

	// Uncovered cells cannot be flagged.
	b.Sweep(1, 1)
	assert.False(t, b.ToggleFlag(1, 1, &budget))
	assert.Equal(t, Uncovered, b.Cover(1, 1))
	assert.Equal(t, 1, budget)
}

func TestToggleFlagBeforeInitialize(t *testing.T) {
	b, err := NewBoard(DefaultParams(), random.New(5))
	require.NoError(t, err)
	budget := DefaultMineCount

	require.True(t, b.ToggleFlag(3, 3, &budget))
	assert.False(t, b.Ready())
	assert.Equal(t, 1, b.FlagCount())
	assert.False(t, b.Cell(3, 3).Known)
}

func TestCheckWin(t *testing.T) {
	t.Run("uninitialized", func(t *testing.T) {
		b, err := NewBoard(Params{Width: 2, Height: 2}, random.New(1))
		require.NoError(t, err)
		assert.False(t, b.CheckWin())
	})

	t.Run("mines covered", func(t *testing.T) {
		b := boardFromLayout(t, "*..", "...", "...")
		b.Sweep(2, 2)
		assert.True(t, b.CheckWin())
	})

	t.Run("mines flagged", func(t *testing.T) {
		b := boardFromLayout(t, "*..", "...", "...")
		budget := 1
		b.ToggleFlag(0, 0, &budget)
		b.Sweep(2, 2)
		assert.True(t, b.CheckWin())
	})

	t.Run("safe cell flagged", func(t *testing.T) {
		b := boardFromLayout(t, "*..", "...", "...")
		budget := 1
		b.ToggleFlag(1, 1, &budget)
		b.Sweep(2, 2)
		assert.False(t, b.CheckWin())
	})

	t.Run("safe cell covered", func(t *testing.T) {
		b := boardFromLayout(t, "*..", "...", "...")
		b.Sweep(1, 1)
		assert.False(t, b.CheckWin())
	})
}

func TestCellView(t *testing.T) {
	b := boardFromLayout(t, "*.", "..")

	v := b.Cell(1, 1)
	assert.True(t, v.Known)
	assert.Equal(t, Covered, v.Cover)
	assert.Equal(t, CellContent(1), v.Content)

	b.Sweep(1, 1)
	assert.Equal(t, Uncovered, b.Cell(1, 1).Cover)
}

func TestCellContentString(t *testing.T) {
	assert.Equal(t, "*", Mine.String())
	assert.Equal(t, ".", Blank.String())
	assert.Equal(t, "3", CellContent(3).String())
	assert.True(t, Blank.IsBlank())
	assert.False(t, Mine.IsBlank())
	assert.Equal(t, "flagged", Flagged.String())
}
