package field

import (
	"github.com/charmbracelet/bubbles/key"

	"fapicker/internal/ui"
)

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Pick  key.Binding
	Clear key.Binding
	Copy  key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑/ctrl+p", "previous suggestion"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓/ctrl+n", "next suggestion"),
		),
		Pick: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "pick icon"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear search"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy value"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "f1"),
			key.WithHelp("?/f1", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pick, k.Clear, k.Copy, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Pick, k.Clear},
		{k.Copy, k.Help, k.Quit},
	}
}

func (k keyMap) sections() []ui.HelpSection {
	return []ui.HelpSection{
		{Title: "Search", Bindings: []key.Binding{k.Up, k.Down, k.Pick, k.Clear}},
		{Title: "Other", Bindings: []key.Binding{k.Copy, k.Help, k.Quit}},
	}
}
