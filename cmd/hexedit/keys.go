package main

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts. Printable keys not listed here edit
// the byte under the cursor.
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Tab      key.Binding

	// Editing
	Revert  key.Binding
	Save    key.Binding
	Abandon key.Binding
	Insert  key.Binding
	Delete  key.Binding

	// Commands
	Goto key.Binding
	Copy key.Binding
	Help key.Binding
	Quit key.Binding

	// Prompts
	Enter key.Binding
	Esc   key.Binding
	Yes   key.Binding
	No    key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Navigation
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous nibble/byte"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next nibble/byte"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "start of file"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "end of file"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch hex/text pane"),
		),

		// Editing
		Revert: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "step back and revert byte"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save edits"),
		),
		Abandon: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "discard edits"),
		),
		Insert: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "insert bytes at cursor"),
		),
		Delete: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "delete bytes at cursor"),
		),

		// Commands
		Goto: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "go to offset"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy row as hex"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help (hex pane)"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),

		// Prompts
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "yes"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n", "no"),
		),
	}
}

// sections groups bindings for the help screen.
func (k KeyMap) sections() []helpSection {
	return []helpSection{
		{"Navigation", []key.Binding{k.Up, k.Down, k.Left, k.Right, k.PageUp, k.PageDown, k.Home, k.End, k.Tab}},
		{"Editing", []key.Binding{k.Revert, k.Save, k.Abandon, k.Insert, k.Delete}},
		{"Other", []key.Binding{k.Goto, k.Copy, k.Help, k.Quit}},
	}
}

type helpSection struct {
	title    string
	bindings []key.Binding
}
