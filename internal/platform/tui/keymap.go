package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-worms/internal/core"
)

// KeyMap defines the in-game key bindings. It implements help.KeyMap so the
// footer can list them.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	AimUp      key.Binding
	AimDown    key.Binding
	Jump       key.Binding
	Fire       key.Binding
	EndTurn    key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Back       key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default game bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "walk left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "walk right"),
		),
		AimUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "aim up"),
		),
		AimDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "aim down"),
		),
		Jump: key.NewBinding(
			key.WithKeys("w", "enter"),
			key.WithHelp("w", "jump"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "f"),
			key.WithHelp("space", "fire"),
		),
		EndTurn: key.NewBinding(
			key.WithKeys("e", "tab"),
			key.WithHelp("e", "end turn"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "menu"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("^s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.AimUp, k.Jump, k.Fire, k.EndTurn, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump},
		{k.AimUp, k.AimDown, k.Fire},
		{k.EndTurn, k.Pause, k.Restart},
		{k.Back, k.Screenshot, k.Quit},
	}
}

// Action translates a key message to a game action. Quit, Back, Help and
// Screenshot are platform keys and map to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.AimUp):
		return core.ActionUp
	case key.Matches(msg, k.AimDown):
		return core.ActionDown
	case key.Matches(msg, k.Jump):
		return core.ActionJump
	case key.Matches(msg, k.Fire):
		return core.ActionFire
	case key.Matches(msg, k.EndTurn):
		return core.ActionEndTurn
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}
	return MenuActionNone
}
