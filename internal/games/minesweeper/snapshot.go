package minesweeper

// Snapshot contains the complete session state for determinism tests.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Width      int
	Height     int
	MineCount  int
	State      string
	Ready      bool
	CursorX    int
	CursorY    int
	FlagBudget int
	Moves      int

	// Grids are row-major (y*Width + x).
	// Content is empty until the board is initialized.
	Cover   []int
	Content []int
}

// Snapshot returns a value copy of the session state.
func (s *Session) Snapshot() Snapshot {
	b := s.board
	snap := Snapshot{
		Width:      b.Width(),
		Height:     b.Height(),
		MineCount:  b.MineCount(),
		State:      s.state.String(),
		Ready:      b.Ready(),
		CursorX:    s.cursorX,
		CursorY:    s.cursorY,
		FlagBudget: s.flagBudget,
		Moves:      s.moves,
		Cover:      make([]int, len(b.cover)),
	}

	for i, c := range b.cover {
		snap.Cover[i] = int(c)
	}
	if b.Ready() {
		snap.Content = make([]int, len(b.content))
		for i, c := range b.content {
			snap.Content[i] = int(c)
		}
	}

	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Width)
	h = h*31 + uint64(snap.Height)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.MineCount)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CursorX)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.CursorY)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FlagBudget) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Moves)      //#nosec G115 -- hash computation

	for _, r := range snap.State {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	for _, v := range snap.Cover {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.Content {
		h = h*31 + uint64(v+1) //#nosec G115 -- hash computation
	}

	return h
}
