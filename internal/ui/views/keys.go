package views

import "github.com/charmbracelet/bubbles/key"

// keyMap lists the bindings surfaced in the bottom help line
type keyMap struct {
	Navigate key.Binding
	Toggle   key.Binding
	Add      key.Binding
	Delete   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Navigate, k.Toggle, k.Add, k.Delete, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Navigate, k.Toggle, k.Add},
		{k.Delete, k.Help, k.Quit},
	}
}

var defaultKeyMap = keyMap{
	Navigate: key.NewBinding(key.WithKeys("j", "k"), key.WithHelp("j/k", "move")),
	Toggle:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select")),
	Add:      key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "add")),
	Delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
}
