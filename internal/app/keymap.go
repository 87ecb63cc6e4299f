package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the dashboard key bindings.
type KeyMap struct {
	Quit          key.Binding
	CycleFilter   key.Binding
	FilterAll     key.Binding
	FilterEmerg   key.Binding
	FilterUrgent  key.Binding
	FilterNonEmer key.Binding
	ToggleLang    key.Binding
	Refresh       key.Binding
	Up            key.Binding
	Down          key.Binding
	Help          key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "Q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		CycleFilter: key.NewBinding(
			key.WithKeys("f", "F"),
			key.WithHelp("f", "filter"),
		),
		FilterAll: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "all"),
		),
		FilterEmerg: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "emergency"),
		),
		FilterUrgent: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "urgent"),
		),
		FilterNonEmer: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "non-emergency"),
		),
		ToggleLang: key.NewBinding(
			key.WithKeys("l", "L"),
			key.WithHelp("l", "language"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r", "R"),
			key.WithHelp("r", "refresh"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.CycleFilter, k.ToggleLang, k.Refresh, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.CycleFilter, k.FilterAll, k.FilterEmerg, k.FilterUrgent, k.FilterNonEmer},
		{k.Up, k.Down, k.ToggleLang, k.Refresh},
		{k.Help, k.Quit},
	}
}
