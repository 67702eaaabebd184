package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	SortCount key.Binding
	SortWord  key.Binding
	SortFreq  key.Binding
	PrevPage  key.Binding
	NextPage  key.Binding
	Grow      key.Binding
	Shrink    key.Binding
	Language  key.Binding
	Toggle    key.Binding
	Examples  key.Binding
	Back      key.Binding
	NewDeck   key.Binding
	AddToDeck key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		SortCount: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "sort count"),
		),
		SortWord: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "sort word"),
		),
		SortFreq: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "sort rank"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "prev page"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next page"),
		),
		Grow: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "bigger page"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "smaller page"),
		),
		Language: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "language"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "select"),
		),
		Examples: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "examples"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		NewDeck: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new deck"),
		),
		AddToDeck: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add to deck"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Examples, k.NewDeck, k.AddToDeck, k.PrevPage, k.NextPage, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SortCount, k.SortWord, k.SortFreq},
		{k.PrevPage, k.NextPage, k.Grow, k.Shrink, k.Language},
		{k.Toggle, k.Examples, k.Back},
		{k.NewDeck, k.AddToDeck, k.Quit},
	}
}
