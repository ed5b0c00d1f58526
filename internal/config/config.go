// Package config provides YAML-based configuration loading for the
// minesweeper front end: key bindings, glyphs, colors and logging.
package config

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
)

// Config contains all user-tunable settings. Board size and mine count
// are fixed and deliberately absent.
type Config struct {
	Keys    KeysConfig    `yaml:"keys"`
	Glyphs  GlyphsConfig  `yaml:"glyphs"`
	Colors  ColorsConfig  `yaml:"colors"`
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
}

// KeysConfig maps each action to the key names that trigger it.
// Names follow bubbletea's KeyMsg.String() form ("up", "ctrl+c", " ").
type KeysConfig struct {
	Up      []string `yaml:"up"`
	Down    []string `yaml:"down"`
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Sweep   []string `yaml:"sweep"`
	Flag    []string `yaml:"flag"`
	Quit    []string `yaml:"quit"`
	Restart []string `yaml:"restart"`
	Help    []string `yaml:"help"`
}

// GlyphsConfig defines the single-character glyph for each cell kind.
type GlyphsConfig struct {
	Covered  string `yaml:"covered"`
	Flagged  string `yaml:"flagged"`
	Blank    string `yaml:"blank"`
	Mine     string `yaml:"mine"`
	Exploded string `yaml:"exploded"`
}

// ColorsConfig defines color names for board elements.
// Numbers holds colors for counts 1..8 in order.
type ColorsConfig struct {
	Numbers []string `yaml:"numbers"`
	Covered string   `yaml:"covered"`
	Flag    string   `yaml:"flag"`
	Mine    string   `yaml:"mine"`
	Border  string   `yaml:"border"`
}

// DisplayConfig toggles optional rendering features.
type DisplayConfig struct {
	Crosshair bool `yaml:"crosshair"` // Highlight the cursor row and column
	HelpBar   bool `yaml:"help_bar"`  // Show the short help line under the board
}

// LogConfig configures the file logger. An empty File disables logging.
type LogConfig struct {
	File       string `yaml:"file"`
	Level      string `yaml:"level"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Glyph returns the first rune of a glyph string.
func Glyph(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

// Validate checks that every binding is non-empty and bound to a single
// action, every glyph is a single rune and every color name is known.
func (c Config) Validate() error {
	bindings := []struct {
		name string
		keys []string
	}{
		{"up", c.Keys.Up},
		{"down", c.Keys.Down},
		{"left", c.Keys.Left},
		{"right", c.Keys.Right},
		{"sweep", c.Keys.Sweep},
		{"flag", c.Keys.Flag},
		{"quit", c.Keys.Quit},
		{"restart", c.Keys.Restart},
		{"help", c.Keys.Help},
	}
	owner := make(map[string]string)
	for _, b := range bindings {
		if len(b.keys) == 0 {
			return fmt.Errorf("config: keys.%s has no bindings", b.name)
		}
		for _, k := range b.keys {
			if k == "" {
				return fmt.Errorf("config: keys.%s contains an empty key", b.name)
			}
			if k == " " {
				k = "space"
			}
			if prev, ok := owner[k]; ok && prev != b.name {
				return fmt.Errorf("config: key %q is bound to both keys.%s and keys.%s", k, prev, b.name)
			}
			owner[k] = b.name
		}
	}

	glyphs := map[string]string{
		"covered":  c.Glyphs.Covered,
		"flagged":  c.Glyphs.Flagged,
		"blank":    c.Glyphs.Blank,
		"mine":     c.Glyphs.Mine,
		"exploded": c.Glyphs.Exploded,
	}
	for name, g := range glyphs {
		if utf8.RuneCountInString(g) != 1 {
			return fmt.Errorf("config: glyphs.%s must be a single character, got %q", name, g)
		}
	}

	if len(c.Colors.Numbers) != 8 {
		return fmt.Errorf("config: colors.numbers needs 8 entries, got %d", len(c.Colors.Numbers))
	}
	colors := append([]string{c.Colors.Covered, c.Colors.Flag, c.Colors.Mine, c.Colors.Border}, c.Colors.Numbers...)
	for _, name := range colors {
		if _, ok := core.ParseColor(name); !ok {
			return fmt.Errorf("config: unknown color %q", name)
		}
	}

	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 || c.Log.MaxAgeDays < 0 {
		return fmt.Errorf("config: log rotation limits must not be negative")
	}

	return nil
}

// NumberColor returns the color for an adjacency count in 1..8.
// Unknown names and out-of-range counts fall back to the default color.
func (c Config) NumberColor(count int) core.Color {
	if count < 1 || count > len(c.Colors.Numbers) {
		return core.ColorDefault
	}
	color, _ := core.ParseColor(c.Colors.Numbers[count-1])
	return color
}

// ColorOf resolves a color name, falling back to the default color.
func ColorOf(name string) core.Color {
	color, _ := core.ParseColor(name)
	return color
}
