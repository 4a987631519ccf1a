package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	NextQuadrant key.Binding
	PrevQuadrant key.Binding
	Quadrant1    key.Binding
	Quadrant2    key.Binding
	Quadrant3    key.Binding
	Quadrant4    key.Binding
	Toggle       key.Binding
	Delete       key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextQuadrant: key.NewBinding(
			key.WithKeys("tab", "l"),
			key.WithHelp("tab", "next quadrant"),
		),
		PrevQuadrant: key.NewBinding(
			key.WithKeys("shift+tab", "h"),
			key.WithHelp("shift+tab", "prev quadrant"),
		),
		Quadrant1: key.NewBinding(key.WithKeys("1")),
		Quadrant2: key.NewBinding(key.WithKeys("2")),
		Quadrant3: key.NewBinding(key.WithKeys("3")),
		Quadrant4: key.NewBinding(key.WithKeys("4")),
		Toggle: key.NewBinding(
			key.WithKeys("t", " "),
			key.WithHelp("t", "toggle done"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
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

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextQuadrant, k.Toggle, k.Delete, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextQuadrant, k.PrevQuadrant},
		{k.Toggle, k.Delete},
		{k.Help, k.Quit},
	}
}
