package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hangart/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		letter rune
	}{
		{"letter", runeKey('a'), core.ActionGuess, 'a'},
		{"uppercase", runeKey('Q'), core.ActionGuess, 'Q'},
		{"non-latin", runeKey('ж'), core.ActionGuess, 'ж'},
		{"digit", runeKey('7'), core.ActionNone, 0},
		{"alt letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}, Alt: true}, core.ActionNone, 0},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, 0},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, 0},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, 0},
		{"ctrl+r", tea.KeyMsg{Type: tea.KeyCtrlR}, core.ActionRestart, 0},
		{"arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionNone, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, letter := km.MapKey(tt.msg)
			if action != tt.action || letter != tt.letter {
				t.Errorf("MapKey() = %v, %q, expected %v, %q", action, letter, tt.action, tt.letter)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(runeKey('x'), &frame)
	km.MapKeyToFrame(runeKey('y'), &frame)
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyEnter}, &frame)

	if !frame.Has(core.ActionGuess) || !frame.Has(core.ActionConfirm) {
		t.Errorf("expected guess and confirm, got %v", frame.Actions)
	}
	if string(frame.Letters) != "xy" {
		t.Errorf("Letters = %q, expected %q", string(frame.Letters), "xy")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey('q'), MenuActionQuit},
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionHistory},
		{runeKey('z'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}
