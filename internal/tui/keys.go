package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	Generate  key.Binding
	Up        key.Binding
	Down      key.Binding
	Isolate   key.Binding
	Clear     key.Binding
	Reset     key.Binding
	Legend    key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Generate: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "generate"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Isolate: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "isolate"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "show all"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "new text"),
		),
		Legend: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "legend"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// inputHelp and resultsHelp list the bindings shown in each view's footer.
func (k KeyMap) inputHelp() []key.Binding {
	return []key.Binding{k.Generate, k.ForceQuit}
}

func (k KeyMap) resultsHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Isolate, k.Clear, k.Reset, k.Legend, k.Quit}
}
