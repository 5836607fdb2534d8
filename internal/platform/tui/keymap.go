package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/spider-dash/internal/core"
)

// KeyMap defines the key bindings for a terminal session.
type KeyMap struct {
	Jump       key.Binding
	Leaders    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Leaders, k.Screenshot, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump},
		{k.Leaders, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns the bindings with jump on the configured key
// (a name such as "space") plus the up arrow.
func DefaultKeyMap(jump string) KeyMap {
	name := strings.ToLower(jump)
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(teaKey(name), "up"),
			key.WithHelp(name+"/↑", "jump"),
		),
		Leaders: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "leaderboard"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action maps a key message to a game action.
// Leaderboard toggling is handled by the model and maps to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Screenshot):
		return core.ActionScreenshot
	case key.Matches(msg, k.Jump):
		return core.ActionJump
	}
	return core.ActionNone
}

// teaKey converts a key name to the string Bubble Tea reports for it.
func teaKey(name string) string {
	if name == "space" {
		return " "
	}
	return name
}
