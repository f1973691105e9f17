package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap binds terminal keys to the device buttons plus simulator
// controls.
type keyMap struct {
	ButtonA key.Binding
	ButtonB key.Binding
	ButtonC key.Binding
	ButtonD key.Binding
	Debug   key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		ButtonA: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "set/next field"),
		),
		ButtonB: key.NewBinding(
			key.WithKeys("b", "up"),
			key.WithHelp("b/↑", "increment"),
		),
		ButtonC: key.NewBinding(
			key.WithKeys("c", "down"),
			key.WithHelp("c/↓", "decrement"),
		),
		ButtonD: key.NewBinding(
			key.WithKeys("d", "enter"),
			key.WithHelp("d/⏎", "save"),
		),
		Debug: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "events"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ButtonA, k.ButtonB, k.ButtonC, k.ButtonD, k.Debug, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ButtonA, k.ButtonB, k.ButtonC, k.ButtonD},
		{k.Debug, k.Quit},
	}
}
