package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Toggle      key.Binding
	Reset       key.Binding
	Ambient     key.Binding
	AmbientBack key.Binding
	Longer      key.Binding
	Shorter     key.Binding
	BellLonger  key.Binding
	BellShorter key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Toggle:      key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "start/pause")),
		Reset:       key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Ambient:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a/A", "ambient")),
		AmbientBack: key.NewBinding(key.WithKeys("A"), key.WithHelp("a/A", "ambient")),
		Longer:      key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "duration")),
		Shorter:     key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("+/-", "duration")),
		BellLonger:  key.NewBinding(key.WithKeys("]"), key.WithHelp("[/]", "bell interval")),
		BellShorter: key.NewBinding(key.WithKeys("["), key.WithHelp("[/]", "bell interval")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Reset, k.Ambient, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Reset},
		{k.Longer, k.BellLonger, k.Ambient},
		{k.Help, k.Quit},
	}
}
