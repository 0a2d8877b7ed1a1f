package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pursuit/internal/core"
)

// KeyMap defines the key bindings for a pursuit session.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	HoldUp     key.Binding
	HoldDown   key.Binding
	HoldLeft   key.Binding
	HoldRight  key.Binding
	Stop       key.Binding
	Ack        key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.HoldUp, k.Stop, k.Ack, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.HoldUp, k.HoldDown, k.HoldLeft, k.HoldRight, k.Stop},
		{k.Ack, k.Restart, k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "step up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "step down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "step left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "step right"),
		),
		HoldUp: key.NewBinding(
			key.WithKeys("K"),
			key.WithHelp("K", "run up"),
		),
		HoldDown: key.NewBinding(
			key.WithKeys("J"),
			key.WithHelp("J", "run down"),
		),
		HoldLeft: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "run left"),
		),
		HoldRight: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "run right"),
		),
		Stop: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "stop"),
		),
		Ack: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "continue"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings the mapper matches against.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action. Move and hold actions carry
// the direction; every other action returns core.DirNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.Action, core.Direction) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, core.DirNone
	case key.Matches(msg, k.Screenshot):
		return core.ActionScreenshot, core.DirNone
	case key.Matches(msg, k.Up):
		return core.ActionMove, core.DirUp
	case key.Matches(msg, k.Down):
		return core.ActionMove, core.DirDown
	case key.Matches(msg, k.Left):
		return core.ActionMove, core.DirLeft
	case key.Matches(msg, k.Right):
		return core.ActionMove, core.DirRight
	case key.Matches(msg, k.HoldUp):
		return core.ActionHold, core.DirUp
	case key.Matches(msg, k.HoldDown):
		return core.ActionHold, core.DirDown
	case key.Matches(msg, k.HoldLeft):
		return core.ActionHold, core.DirLeft
	case key.Matches(msg, k.HoldRight):
		return core.ActionHold, core.DirRight
	case key.Matches(msg, k.Stop):
		return core.ActionStop, core.DirNone
	case key.Matches(msg, k.Ack):
		return core.ActionAcknowledge, core.DirNone
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, core.DirNone
	}
	return core.ActionNone, core.DirNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	}
	return MenuActionNone
}
