package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	back     key.Binding
	bookmark key.Binding
	remove   key.Binding
	sort     key.Binding
	tab      key.Binding
	search   key.Binding
	library  key.Binding
	quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		bookmark: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "bookmark")),
		remove:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove")),
		sort:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		search:   key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "search")),
		library:  key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "bookmarks")),
		quit:     key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter},
		{k.back, k.bookmark, k.remove},
		{k.sort, k.search, k.library},
		{k.tab, k.quit},
	}
}
