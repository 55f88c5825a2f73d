package watch

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit        key.Binding
	Close       key.Binding
	Refresh     key.Binding
	Up          key.Binding
	Down        key.Binding
	Top         key.Binding
	Bottom      key.Binding
	Detail      key.Binding
	Filter      key.Binding
	ClearFilter key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Close:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Refresh:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Up:          key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "up")),
		Down:        key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "down")),
		Top:         key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom:      key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		Detail:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "detail")),
		Filter:      key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "filter")),
		ClearFilter: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear filter")),
	}
}

func (k keyMap) short(drawerOpen bool) []key.Binding {
	if drawerOpen {
		return []key.Binding{k.Close, k.Up, k.Down, k.Refresh, k.Quit}
	}
	return []key.Binding{k.Quit, k.Refresh, k.Down, k.Up, k.Detail, k.Filter, k.ClearFilter}
}
