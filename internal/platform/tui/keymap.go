package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// EditorAction represents a semantic editor command, abstracted from
// physical key presses.
type EditorAction int

const (
	EditorActionNone EditorAction = iota
	EditorActionQuit
	EditorActionSave
	EditorActionSelectTool // Tool ID carried alongside
	EditorActionToggleBoundary
	EditorActionClear
)

// KeyMapper translates Bubble Tea key messages to editor actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an editor action. For
// EditorActionSelectTool the second return value is the tool ID.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (EditorAction, string) {
	switch msg.String() {
	case "ctrl+c", "q":
		return EditorActionQuit, ""
	case "ctrl+s", "s":
		return EditorActionSave, ""
	case "b":
		return EditorActionToggleBoundary, ""
	case "c":
		return EditorActionClear, ""
	case "p", "1":
		return EditorActionSelectTool, "pen"
	case "r", "2":
		return EditorActionSelectTool, "rect"
	case "l", "3":
		return EditorActionSelectTool, "line"
	case "m", "4":
		return EditorActionSelectTool, "move"
	case "e", "5":
		return EditorActionSelectTool, "erase"
	}

	return EditorActionNone, ""
}
