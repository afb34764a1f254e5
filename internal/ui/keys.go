package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Down     key.Binding
	Up       key.Binding
	PageDown key.Binding
	PageUp   key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Jump     key.Binding
	ZoomIn   key.Binding
	ZoomOut  key.Binding
	Fit      key.Binding
	Actual   key.Binding
	Mode     key.Binding
	Sidebar  key.Binding
	Search   key.Binding
	Next     key.Binding
	Prev     key.Binding
	Open     key.Binding
	Close    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "scroll down")),
		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "scroll up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", " ", "ctrl+d"), key.WithHelp("pgdn", "page down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		Jump:     key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "go to page")),
		ZoomIn:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
		ZoomOut:  key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "zoom out")),
		Fit:      key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "fit width")),
		Actual:   key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "100%")),
		Mode:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "image/text")),
		Sidebar:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sidebar")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "find annotation")),
		Next:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n/p", "next/prev annotation")),
		Prev:     key.NewBinding(key.WithKeys("p")),
		Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "show annotation")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.Up, k.Jump, k.ZoomIn, k.ZoomOut, k.Mode, k.Sidebar, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Down, k.Up, k.PageDown, k.PageUp, k.Top, k.Bottom, k.Jump},
		{k.ZoomIn, k.ZoomOut, k.Fit, k.Actual, k.Mode},
		{k.Sidebar, k.Search, k.Next, k.Open, k.Close},
		{k.Help, k.Quit},
	}
}
