package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// Bindings only use non-printable keys so every rune can go to the search
// query or the selected placeholder.
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Open      key.Binding
	Copy      key.Binding
	Back      key.Binding
	Exit      key.Binding
	Backspace key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+k"),
			key.WithHelp("↑/ctrl+k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+j"),
			key.WithHelp("↓/ctrl+j", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Copy: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "copy"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Exit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "delete"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// bindingHelp adapts a list of bindings to help.KeyMap.
type bindingHelp []key.Binding

func (b bindingHelp) ShortHelp() []key.Binding { return b }

func (b bindingHelp) FullHelp() [][]key.Binding { return [][]key.Binding{b} }

func (k keyMap) browsingHelp() help.KeyMap {
	return bindingHelp{k.Up, k.Down, k.Open, k.Backspace, k.Exit}
}

func (k keyMap) editingHelp() help.KeyMap {
	return bindingHelp{k.Up, k.Down, k.Copy, k.Backspace, k.Back, k.Quit}
}
