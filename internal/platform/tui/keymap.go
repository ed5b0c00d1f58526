package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-minesweeper/internal/config"
	"github.com/vovakirdan/tui-minesweeper/internal/core"
)

// KeyMap defines the key bindings for the game screen.
// It translates Bubble Tea key messages to game actions.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Sweep   key.Binding
	Flag    key.Binding
	Quit    key.Binding
	Restart key.Binding
	Help    key.Binding
}

// NewKeyMap builds bindings from the configured key names.
func NewKeyMap(keys config.KeysConfig) KeyMap {
	return KeyMap{
		Up:      binding(keys.Up, "up"),
		Down:    binding(keys.Down, "down"),
		Left:    binding(keys.Left, "left"),
		Right:   binding(keys.Right, "right"),
		Sweep:   binding(keys.Sweep, "sweep"),
		Flag:    binding(keys.Flag, "flag"),
		Quit:    binding(keys.Quit, "quit"),
		Restart: binding(keys.Restart, "new game"),
		Help:    binding(keys.Help, "help"),
	}
}

// DefaultKeyMap returns the built-in bindings.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.Default().Keys)
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(withAliases(keys)...),
		key.WithHelp(helpLabel(keys), desc),
	)
}

// withAliases accepts both spellings of the space bar.
func withAliases(keys []string) []string {
	out := make([]string, 0, len(keys)+1)
	for _, k := range keys {
		out = append(out, k)
		switch k {
		case " ":
			out = append(out, "space")
		case "space":
			out = append(out, " ")
		}
	}
	return out
}

// helpLabel joins key names for display, e.g. "k/up".
func helpLabel(keys []string) string {
	labels := make([]string, 0, len(keys))
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k == " " {
			k = "space"
		}
		if seen[k] {
			continue
		}
		seen[k] = true
		labels = append(labels, k)
	}
	return strings.Join(labels, "/")
}

// MapKey translates a key message to an action.
// Quit is checked first so it can never be shadowed by another binding.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionMoveUp
	case key.Matches(msg, k.Down):
		return core.ActionMoveDown
	case key.Matches(msg, k.Left):
		return core.ActionMoveLeft
	case key.Matches(msg, k.Right):
		return core.ActionMoveRight
	case key.Matches(msg, k.Sweep):
		return core.ActionSweep
	case key.Matches(msg, k.Flag):
		return core.ActionToggleFlag
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Help):
		return core.ActionHelp
	}
	return core.ActionNone
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Sweep, k.Flag, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Sweep, k.Flag},
		{k.Restart, k.Help, k.Quit},
	}
}

// Describe lists every binding as "keys  description" lines.
func (k KeyMap) Describe() []string {
	var lines []string
	for _, column := range k.FullHelp() {
		for _, b := range column {
			h := b.Help()
			lines = append(lines, h.Key+"  "+h.Desc)
		}
	}
	return lines
}
