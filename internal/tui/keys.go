package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit           key.Binding
	Tab            key.Binding
	Approve        key.Binding
	Reject         key.Binding
	RequestChanges key.Binding
	Comment        key.Binding
	Search         key.Binding
	Refresh        key.Binding
	Escape         key.Binding
}

var keys = keyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch tab"),
	),
	Approve: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "approve"),
	),
	Reject: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "reject"),
	),
	RequestChanges: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "request changes"),
	),
	Comment: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "comment"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Tab, k.Approve, k.Reject, k.RequestChanges, k.Search}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Quit, k.Tab, k.Search, k.Refresh},
		{k.Approve, k.Reject, k.RequestChanges, k.Comment},
	}
}
