package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
	"github.com/vovakirdan/tui-minesweeper/internal/core"
)

// Theme contains the resolved glyphs and colors for the board view.
type Theme struct {
	// Cell glyphs
	Covered  rune
	Flagged  rune
	Blank    rune
	Mine     rune
	Exploded rune

	// Cell colors; Numbers is indexed by adjacency count (0 unused)
	CoveredColor core.Color
	FlagColor    core.Color
	MineColor    core.Color
	BorderColor  core.Color
	Numbers      [9]core.Color

	Crosshair bool // Highlight the cursor row and column
	HelpBar   bool // Show the short help line when there is room
}

// NewTheme resolves a validated config into a Theme.
func NewTheme(cfg config.Config) Theme {
	t := Theme{
		Covered:  config.Glyph(cfg.Glyphs.Covered),
		Flagged:  config.Glyph(cfg.Glyphs.Flagged),
		Blank:    config.Glyph(cfg.Glyphs.Blank),
		Mine:     config.Glyph(cfg.Glyphs.Mine),
		Exploded: config.Glyph(cfg.Glyphs.Exploded),

		CoveredColor: config.ColorOf(cfg.Colors.Covered),
		FlagColor:    config.ColorOf(cfg.Colors.Flag),
		MineColor:    config.ColorOf(cfg.Colors.Mine),
		BorderColor:  config.ColorOf(cfg.Colors.Border),

		Crosshair: cfg.Display.Crosshair,
		HelpBar:   cfg.Display.HelpBar,
	}
	for n := 1; n <= 8; n++ {
		t.Numbers[n] = cfg.NumberColor(n)
	}
	return t
}

// DefaultTheme returns the theme for the built-in config.
func DefaultTheme() Theme {
	return NewTheme(config.Default())
}

// newHelp returns a help model that renders plain text, since its output
// is drawn into the screen buffer cell by cell.
func newHelp() help.Model {
	plain := lipgloss.NewStyle()
	h := help.New()
	h.ShowAll = false
	h.Styles = help.Styles{
		Ellipsis:       plain,
		ShortKey:       plain,
		ShortDesc:      plain,
		ShortSeparator: plain,
		FullKey:        plain,
		FullDesc:       plain,
		FullSeparator:  plain,
	}
	return h
}
