package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		want     EditorAction
		wantTool string
	}{
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, EditorActionQuit, ""},
		{"q quits", runeKey('q'), EditorActionQuit, ""},
		{"ctrl+s saves", tea.KeyMsg{Type: tea.KeyCtrlS}, EditorActionSave, ""},
		{"s saves", runeKey('s'), EditorActionSave, ""},
		{"b toggles boundary", runeKey('b'), EditorActionToggleBoundary, ""},
		{"c clears", runeKey('c'), EditorActionClear, ""},
		{"p selects pen", runeKey('p'), EditorActionSelectTool, "pen"},
		{"1 selects pen", runeKey('1'), EditorActionSelectTool, "pen"},
		{"r selects rect", runeKey('r'), EditorActionSelectTool, "rect"},
		{"l selects line", runeKey('l'), EditorActionSelectTool, "line"},
		{"m selects move", runeKey('m'), EditorActionSelectTool, "move"},
		{"e selects eraser", runeKey('e'), EditorActionSelectTool, "erase"},
		{"unbound key", runeKey('x'), EditorActionNone, ""},
		{"arrow key", tea.KeyMsg{Type: tea.KeyUp}, EditorActionNone, ""},
	}

	km := NewKeyMapper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, tool := km.MapKey(tt.msg)
			if action != tt.want {
				t.Errorf("action = %v, want %v", action, tt.want)
			}
			if tool != tt.wantTool {
				t.Errorf("tool = %q, want %q", tool, tt.wantTool)
			}
		})
	}
}
