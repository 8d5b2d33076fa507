package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the viewer key bindings.
type keyMap struct {
	Up          key.Binding
	Down        key.Binding
	Reload      key.Binding
	Help        key.Binding
	Quit        key.Binding
	FilterLow   key.Binding
	FilterMed   key.Binding
	FilterHigh  key.Binding
	ClearFilter key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r", "f5"),
			key.WithHelp("r, F5", "reload file"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h, ?", "toggle this help screen"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q, ctrl+c", "quit"),
		),
		FilterLow: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "show Low priority"),
		),
		FilterMed: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "show Medium priority"),
		),
		FilterHigh: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "show High priority"),
		),
		ClearFilter: key.NewBinding(
			key.WithKeys("0"),
			key.WithHelp("0", "clear filter"),
		),
	}
}

func (k keyMap) all() []key.Binding {
	return []key.Binding{k.Quit, k.Reload, k.Help, k.Up, k.Down, k.FilterLow, k.FilterMed, k.FilterHigh, k.ClearFilter}
}
