package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/games/minesweeper"
)

// Board view layout constants
const (
	hudRow      = 0 // HUD line above the board box
	boxTop      = 1 // First row of the board box
	cellColumns = 2 // Each cell is a glyph plus a gap
)

// BoardView draws a session into a core.Screen.
type BoardView struct {
	theme Theme
}

// NewBoardView creates a board view with the given theme.
func NewBoardView(theme Theme) BoardView {
	return BoardView{theme: theme}
}

// boxSize returns the outer size of the board box.
func boxSize(b *minesweeper.Board) (w, h int) {
	return b.Width()*cellColumns + 2, b.Height() + 2
}

// hudGap separates the HUD counters from the state label.
const hudGap = 2

// widestLabel is the longest state label.
var widestLabel = len("PLAYING")

// hudCounters formats the mine, flag and move counters.
func hudCounters(mines, flags, moves int) string {
	return fmt.Sprintf("Mines: %d  Flags left: %d  Moves: %d", mines, flags, moves)
}

// hudWidth returns the widest HUD the board can produce. Flags never
// exceed the mine count and every move uncovers at least one safe cell.
func hudWidth(b *minesweeper.Board) int {
	safe := b.Width()*b.Height() - b.MineCount()
	return len(hudCounters(b.MineCount(), b.MineCount(), safe)) + hudGap + widestLabel
}

// MinSize returns the smallest screen that fits the HUD, the board box
// and the status line.
func (v BoardView) MinSize(b *minesweeper.Board) (w, h int) {
	w, h = boxSize(b)
	return core.Max(w, hudWidth(b)), h + 2
}

// Fits reports whether the screen is large enough for the board.
func (v BoardView) Fits(s *core.Screen, b *minesweeper.Board) bool {
	w, h := v.MinSize(b)
	return s.Width() >= w && s.Height() >= h
}

// Frame describes what the model wants drawn around the board.
type Frame struct {
	Status  string   // Line under the board
	HelpBar string   // Optional line under the status, drawn only if it fits
	Overlay []string // Replaces the board contents when non-empty
}

// Draw renders the whole frame. The screen is cleared first.
func (v BoardView) Draw(s *core.Screen, sess *minesweeper.Session, f Frame) {
	s.Clear()
	b := sess.Board()

	if !v.Fits(s, b) {
		v.drawTooSmall(s, b)
		return
	}

	boxW, boxH := boxSize(b)
	left := (s.Width() - boxW) / 2
	box := core.NewRect(left, boxTop, boxW, boxH)

	v.drawHUD(s, sess, box.X, boxW)
	s.DrawBoxStyled(box, v.theme.BorderColor)

	if len(f.Overlay) > 0 {
		v.drawOverlay(s, box, f.Overlay)
	} else {
		v.drawCells(s, sess, box)
	}

	statusY := box.Bottom()
	s.DrawTextStyled(left, statusY, clip(f.Status, s.Width()-left), statusColor(sess.State()), core.AttrBold)

	if f.HelpBar != "" && statusY+1 < s.Height() {
		s.DrawTextStyled(left, statusY+1, clip(f.HelpBar, s.Width()-left), core.ColorGray, 0)
	}
}

// drawHUD writes the counters on the left and the session state on the
// right, spanning the box or the HUD text, whichever is wider.
func (v BoardView) drawHUD(s *core.Screen, sess *minesweeper.Session, boxX, boxW int) {
	counters := hudCounters(sess.Board().MineCount(), sess.FlagBudget(), sess.Moves())
	label := stateLabel(sess)

	width := core.Max(boxW, len(counters)+hudGap+len(label))
	x := boxX
	if width > boxW {
		x = core.Max(0, (s.Width()-width)/2)
	}

	s.DrawText(x, hudRow, counters)
	s.DrawTextStyled(x+width-len(label), hudRow, label, statusColor(sess.State()), core.AttrBold)
}

// drawCells draws every cell, highlighting the cursor row and column.
func (v BoardView) drawCells(s *core.Screen, sess *minesweeper.Session, box core.Rect) {
	b := sess.Board()
	cx, cy := sess.Cursor()

	for y := 0; y < b.Height(); y++ {
		sy := box.Y + 1 + y
		for x := 0; x < b.Width(); x++ {
			sx := box.X + 1 + x*cellColumns

			r, color := v.glyph(sess, x, y)
			var attr core.Attr
			if v.theme.Crosshair && (x == cx || y == cy) {
				attr = core.AttrReverse
			}
			if x == cx && y == cy {
				attr = core.AttrReverse | core.AttrBold
			}
			s.SetStyled(sx, sy, r, color, attr)

			// The gap stays highlighted along the cursor row.
			var gapAttr core.Attr
			if v.theme.Crosshair && y == cy {
				gapAttr = core.AttrReverse
			}
			s.SetStyled(sx+1, sy, ' ', core.ColorDefault, gapAttr)
		}
	}
}

// glyph chooses what to show for one cell. Before the board is ready
// every cell reads as covered. After a loss covered mines are shown;
// after a win they are shown flagged.
func (v BoardView) glyph(sess *minesweeper.Session, x, y int) (rune, core.Color) {
	cell := sess.Board().Cell(x, y)
	t := v.theme

	switch cell.Cover {
	case minesweeper.Flagged:
		return t.Flagged, t.FlagColor
	case minesweeper.Covered:
		if cell.Known && cell.Content.IsMine() {
			switch sess.State() {
			case minesweeper.StateLost:
				return t.Mine, t.MineColor
			case minesweeper.StateWon:
				return t.Flagged, t.FlagColor
			}
		}
		return t.Covered, t.CoveredColor
	default:
		switch {
		case cell.Content.IsMine():
			return t.Exploded, t.MineColor
		case cell.Content.IsBlank():
			return t.Blank, core.ColorDefault
		default:
			n := cell.Content.Count()
			return rune('0' + n), t.Numbers[n]
		}
	}
}

// drawOverlay writes lines centered inside the box, clipped to its interior.
func (v BoardView) drawOverlay(s *core.Screen, box core.Rect, lines []string) {
	innerW := box.W - 2
	innerH := box.H - 2
	top := box.Y + 1 + core.Max(0, (innerH-len(lines))/2)

	for i, line := range lines {
		if i >= innerH {
			break
		}
		line = clip(strings.TrimRight(line, " "), innerW)
		x := box.X + 1 + (innerW-len([]rune(line)))/2
		s.DrawText(x, top+i, line)
	}
}

// drawTooSmall replaces the frame with a resize hint.
func (v BoardView) drawTooSmall(s *core.Screen, b *minesweeper.Board) {
	w, h := v.MinSize(b)
	y := s.Height()/2 - 1
	s.DrawTextCentered(y, "Terminal too small")
	s.DrawTextCentered(y+1, fmt.Sprintf("need %dx%d, have %dx%d", w, h, s.Width(), s.Height()))
}

func stateLabel(sess *minesweeper.Session) string {
	switch sess.State() {
	case minesweeper.StateLost:
		return "BOOM"
	case minesweeper.StateWon:
		return "CLEARED"
	default:
		if !sess.Initialized() {
			return "READY"
		}
		return "PLAYING"
	}
}

func statusColor(state minesweeper.State) core.Color {
	switch state {
	case minesweeper.StateLost:
		return core.ColorBrightRed
	case minesweeper.StateWon:
		return core.ColorBrightGreen
	default:
		return core.ColorDefault
	}
}

// clip truncates text to at most n runes.
func clip(text string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}
