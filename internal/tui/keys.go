package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding

	newEntry   key.Binding
	scan       key.Binding
	search     key.Binding
	typeFilter key.Binding
	rangeTog   key.Binding
	edit       key.Binding
	delete     key.Binding
	deleteVeh  key.Binding
	copy       key.Binding

	capture key.Binding
	retry   key.Binding
	yes     key.Binding
	no      key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),

	newEntry:   key.NewBinding(key.WithKeys("n")),
	scan:       key.NewBinding(key.WithKeys("s")),
	search:     key.NewBinding(key.WithKeys("/")),
	typeFilter: key.NewBinding(key.WithKeys("t")),
	rangeTog:   key.NewBinding(key.WithKeys("r")),
	edit:       key.NewBinding(key.WithKeys("e")),
	delete:     key.NewBinding(key.WithKeys("d")),
	deleteVeh:  key.NewBinding(key.WithKeys("D")),
	copy:       key.NewBinding(key.WithKeys("c")),

	capture: key.NewBinding(key.WithKeys(" ", "enter")),
	retry:   key.NewBinding(key.WithKeys("r")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n")),
}
