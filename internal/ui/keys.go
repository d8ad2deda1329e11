package ui

import "github.com/charmbracelet/bubbles/key"

// AppKeyMap defines the key bindings for the main screen.
type AppKeyMap struct {
	Filter      key.Binding
	GroupFilter key.Binding
	ToggleDirty key.Binding
	CloseTab    key.Binding
	Quit        key.Binding
}

// DefaultAppKeyMap returns the default main screen bindings.
func DefaultAppKeyMap() AppKeyMap {
	return AppKeyMap{
		Filter: key.NewBinding(
			key.WithKeys("p", "ctrl+p"),
			key.WithHelp("p", "filter tabs"),
		),
		GroupFilter: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "filter active group"),
		),
		ToggleDirty: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "toggle dirty"),
		),
		CloseTab: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close tab"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PanelKeyMap defines the key bindings inside the quick panel.
type PanelKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultPanelKeyMap returns the default panel bindings.
func DefaultPanelKeyMap() PanelKeyMap {
	return PanelKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+k"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+j"),
			key.WithHelp("↓", "down"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "go to tab"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}
