package tui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hangart/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Letter keys map to ActionGuess and return the typed letter.
// Every letter is a guess, so only ctrl+c quits while playing.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, letter rune) {
	if msg.Type == tea.KeyRunes && !msg.Alt && len(msg.Runes) == 1 && unicode.IsLetter(msg.Runes[0]) {
		return core.ActionGuess, msg.Runes[0]
	}

	switch msg.String() {
	case "ctrl+c":
		return core.ActionQuit, 0
	case "enter":
		return core.ActionConfirm, 0
	case "ctrl+r":
		return core.ActionRestart, 0
	case "esc":
		return core.ActionBack, 0
	}

	return core.ActionNone, 0
}

// MapKeyToFrame updates an input frame based on a key message and returns
// the mapped action.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) core.Action {
	action, letter := km.MapKey(msg)
	switch action {
	case core.ActionNone:
	case core.ActionGuess:
		frame.Guess(letter)
	default:
		frame.Set(action)
	}
	return action
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionHistory
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionHistory
	}

	return MenuActionNone
}
