package config

import (
	_ "embed"
)

//go:embed defaults/minesweeper.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches
// defaults/minesweeper.yaml and is used when that cannot be decoded.
func Default() Config {
	return Config{
		Keys: KeysConfig{
			Up:      []string{"k", "up"},
			Down:    []string{"j", "down"},
			Left:    []string{"h", "left"},
			Right:   []string{"l", "right"},
			Sweep:   []string{" ", "enter"},
			Flag:    []string{"f"},
			Quit:    []string{"q", "ctrl+c"},
			Restart: []string{"r"},
			Help:    []string{"?"},
		},
		Glyphs: GlyphsConfig{
			Covered:  "-",
			Flagged:  "F",
			Blank:    " ",
			Mine:     "X",
			Exploded: "*",
		},
		Colors: ColorsConfig{
			Numbers: []string{
				"bright_blue",
				"green",
				"bright_red",
				"blue",
				"red",
				"cyan",
				"magenta",
				"gray",
			},
			Covered: "gray",
			Flag:    "bright_yellow",
			Mine:    "bright_red",
			Border:  "white",
		},
		Display: DisplayConfig{
			Crosshair: true,
			HelpBar:   true,
		},
		Log: LogConfig{
			File:       "",
			Level:      "info",
			MaxSizeMB:  5,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}
