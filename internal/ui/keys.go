package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard bindings for the selector.
type KeyMap struct {
	// Session
	Confirm key.Binding
	Toggle  key.Binding
	Cancel  key.Binding
	Quit    key.Binding

	// Navigation
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding

	// Columns
	NextColumn key.Binding
	PrevColumn key.Binding
	NavMode    key.Binding
	QuickKey   key.Binding

	// Global
	CycleTheme key.Binding
	Help       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Session
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Confirm"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("Space", "Toggle row"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Cancel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),

		// Navigation
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "Move down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "Page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdown", "Page down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "First row"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "Last row"),
		),

		// Columns
		NextColumn: key.NewBinding(
			key.WithKeys("tab", "right"),
			key.WithHelp("tab/→", "Next column"),
		),
		PrevColumn: key.NewBinding(
			key.WithKeys("shift+tab", "left"),
			key.WithHelp("shift+tab/←", "Previous column"),
		),
		NavMode: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Navigate by category"),
		),
		QuickKey: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("a-z 0-9", "Jump to row"),
		),

		// Global
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Confirm, k.Cancel, k.Help}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		// Session
		{k.Confirm, k.Toggle, k.Cancel, k.Quit},
		// Navigation
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		// Columns
		{k.NextColumn, k.PrevColumn, k.NavMode, k.QuickKey},
		// General
		{k.CycleTheme, k.Help},
	}
}
