package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pursuit/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name       string
		msg        tea.KeyMsg
		wantAction core.Action
		wantDir    core.Direction
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionMove, core.DirUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionMove, core.DirDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionMove, core.DirLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionMove, core.DirRight},
		{"w", runeKey('w'), core.ActionMove, core.DirUp},
		{"a", runeKey('a'), core.ActionMove, core.DirLeft},
		{"s", runeKey('s'), core.ActionMove, core.DirDown},
		{"d", runeKey('d'), core.ActionMove, core.DirRight},
		{"K", runeKey('K'), core.ActionHold, core.DirUp},
		{"J", runeKey('J'), core.ActionHold, core.DirDown},
		{"H", runeKey('H'), core.ActionHold, core.DirLeft},
		{"L", runeKey('L'), core.ActionHold, core.DirRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionStop, core.DirNone},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionAcknowledge, core.DirNone},
		{"r", runeKey('r'), core.ActionRestart, core.DirNone},
		{"q", runeKey('q'), core.ActionQuit, core.DirNone},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, core.DirNone},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionScreenshot, core.DirNone},
		{"unbound", runeKey('x'), core.ActionNone, core.DirNone},
		{"lowercase h is not hold", runeKey('h'), core.ActionNone, core.DirNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, dir := km.MapKey(tt.msg)
			if action != tt.wantAction {
				t.Errorf("MapKey(%q) action = %v, expected %v", tt.msg.String(), action, tt.wantAction)
			}
			if dir != tt.wantDir {
				t.Errorf("MapKey(%q) dir = %v, expected %v", tt.msg.String(), dir, tt.wantDir)
			}
		})
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionQuit},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.expected {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
		}
	}
}

func TestFrameInterval(t *testing.T) {
	tests := []struct {
		rate     int
		expected time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / 60},
		{-5, time.Second / 60},
	}
	for _, tt := range tests {
		if got := frameInterval(tt.rate); got != tt.expected {
			t.Errorf("frameInterval(%d) = %v, expected %v", tt.rate, got, tt.expected)
		}
	}
}
