package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Users key.Binding
	Posts key.Binding
	Todos key.Binding
	Next  key.Binding
	Prev  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Users: key.NewBinding(key.WithKeys("1", "u"), key.WithHelp("1/u", "users")),
		Posts: key.NewBinding(key.WithKeys("2", "p"), key.WithHelp("2/p", "posts")),
		Todos: key.NewBinding(key.WithKeys("3", "t"), key.WithHelp("3/t", "todos")),
		Next:  key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next tab")),
		Prev:  key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab/←", "previous tab")),
		Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:  key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Users, k.Posts, k.Todos},
		{k.Next, k.Prev},
		{k.Help, k.Quit},
	}
}
