package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/spider-dash/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap("space")

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"space jumps", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionJump},
		{"up jumps", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{"q quits", runeKey('q'), core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"ctrl+s screenshots", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionScreenshot},
		{"tab is not a game action", tea.KeyMsg{Type: tea.KeyTab}, core.ActionNone},
		{"x does nothing", runeKey('x'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Action(tc.msg); got != tc.want {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestKeyMapCustomJump(t *testing.T) {
	keys := DefaultKeyMap("W")

	if got := keys.Action(runeKey('w')); got != core.ActionJump {
		t.Errorf("w should jump, got %v", got)
	}
	if got := keys.Action(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}); got != core.ActionNone {
		t.Errorf("space should not jump when rebound, got %v", got)
	}
	if keys.Jump.Help().Key != "w/↑" {
		t.Errorf("help key = %q", keys.Jump.Help().Key)
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap("space")
	if len(keys.ShortHelp()) != 4 {
		t.Errorf("ShortHelp() has %d bindings", len(keys.ShortHelp()))
	}
	if len(keys.FullHelp()) != 2 {
		t.Errorf("FullHelp() has %d groups", len(keys.FullHelp()))
	}
}
