package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Action is what a key press asks the front end to do.
type Action int

const (
	ActionNone Action = iota
	ActionThrust
	ActionCutThrust
	ActionRotateLeft
	ActionRotateRight
	ActionFire
	ActionEscape
	ActionQuit
	ActionScreenshot
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Thrust     key.Binding
	CutThrust  key.Binding
	Left       key.Binding
	Right      key.Binding
	Fire       key.Binding
	Escape     key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Thrust, k.Left, k.Right, k.Fire, k.Escape}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Thrust, k.CutThrust, k.Left, k.Right, k.Fire},
		{k.Screenshot, k.Escape, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Thrust: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("↑/w", "thrust"),
		),
		CutThrust: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "cut thrust"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "rotate left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "rotate right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "fire"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "leave"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// Action translates a key message to an action.
func (k KeyMap) Action(msg tea.KeyMsg) Action {
	switch {
	case key.Matches(msg, k.Quit):
		return ActionQuit
	case key.Matches(msg, k.Screenshot):
		return ActionScreenshot
	case key.Matches(msg, k.Escape):
		return ActionEscape
	case key.Matches(msg, k.Thrust):
		return ActionThrust
	case key.Matches(msg, k.CutThrust):
		return ActionCutThrust
	case key.Matches(msg, k.Left):
		return ActionRotateLeft
	case key.Matches(msg, k.Right):
		return ActionRotateRight
	case key.Matches(msg, k.Fire):
		return ActionFire
	}
	return ActionNone
}
