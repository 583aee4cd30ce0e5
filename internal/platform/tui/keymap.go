package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyMapper translates Bubble Tea key messages to UI actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
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
	}

	return MenuActionNone
}

// BoardAction represents a board-screen action derived from input.
// The keyboard drives a cursor over the grid as a fallback for mouse play.
type BoardAction int

const (
	BoardActionNone BoardAction = iota
	BoardActionCursorUp
	BoardActionCursorDown
	BoardActionCursorLeft
	BoardActionCursorRight
	BoardActionSelect
	BoardActionReset
	BoardActionQuit
	BoardActionForceQuit
)

// MapKeyToBoardAction translates a key to a board action.
func (km *KeyMapper) MapKeyToBoardAction(msg tea.KeyMsg) BoardAction {
	switch msg.String() {
	case "ctrl+c":
		return BoardActionForceQuit
	case "q", "esc":
		return BoardActionQuit
	case "w", "up", "k":
		return BoardActionCursorUp
	case "s", "down", "j":
		return BoardActionCursorDown
	case "a", "left", "h":
		return BoardActionCursorLeft
	case "d", "right", "l":
		return BoardActionCursorRight
	case "enter", " ":
		return BoardActionSelect
	case "r":
		return BoardActionReset
	}

	return BoardActionNone
}
