package main

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/icco/filler"
)

type keyMap struct {
	Colors key.Binding
	Digits key.Binding
	New    key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Colors, k.New, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Colors, k.Digits},
		{k.New, k.Help, k.Quit},
	}
}

var keys = keyMap{
	Colors: key.NewBinding(
		key.WithKeys("r", "y", "g", "b", "p", "k"),
		key.WithHelp("r/y/g/b/p/k", "play color"),
	),
	Digits: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6"),
		key.WithHelp("1-6", "play nth color"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new match"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "more help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// colorForKey maps a color key or a one-based palette position to a color.
func colorForKey(s string) (filler.Color, bool) {
	if n, err := strconv.Atoi(s); err == nil {
		colors := filler.Colors()
		if n < 1 || n > len(colors) {
			return 0, false
		}
		return colors[n-1], true
	}

	c, err := filler.ParseColor(s)
	if err != nil || len(s) != 1 {
		return 0, false
	}
	return c, true
}
