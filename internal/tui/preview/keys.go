package preview

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Prev     key.Binding
	Next     key.Binding
	Base     key.Binding
	Override key.Binding
	Populate key.Binding
	Reset    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "feature up")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "feature down")),
		Prev:     key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("←/h", "prev state")),
		Next:     key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("→/l", "next state")),
		Base:     key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "toggle base")),
		Override: key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "override text")),
		Populate: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "populate")),
		Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Prev, k.Next, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Prev, k.Next},
		{k.Base, k.Override, k.Populate, k.Reset},
		{k.Help, k.Quit},
	}
}
