package listfield

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the field key bindings.
type KeyMap struct {
	Left, Right         key.Binding
	WordLeft, WordRight key.Binding
	Home, End           key.Binding

	Backspace, Delete  key.Binding
	DeleteWordBackward key.Binding
	DeleteToStart      key.Binding

	// Commit settles the field instead of submitting the enclosing form.
	Commit key.Binding

	Undo, Redo key.Binding
	Paste      key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left", "ctrl+b"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right", "ctrl+f"), key.WithHelp("→", "right")),

		// Terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:  key.NewBinding(key.WithKeys("alt+left", "ctrl+left", "alt+b"), key.WithHelp("alt+←", "token left")),
		WordRight: key.NewBinding(key.WithKeys("alt+right", "ctrl+right", "alt+f"), key.WithHelp("alt+→", "token right")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "end")),

		Backspace:          key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:             key.NewBinding(key.WithKeys("delete", "ctrl+d"), key.WithHelp("del", "delete right")),
		DeleteWordBackward: key.NewBinding(key.WithKeys("alt+backspace", "ctrl+w"), key.WithHelp("ctrl+w", "delete word")),
		DeleteToStart:      key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "delete to start")),

		Commit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "commit")),

		Undo: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo: key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "redo")),

		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
	}
}

func (km KeyMap) isZero() bool {
	for _, b := range km.bindings() {
		if len(b.Keys()) > 0 {
			return false
		}
	}
	return true
}

func (km KeyMap) bindings() []key.Binding {
	return []key.Binding{
		km.Left, km.Right, km.WordLeft, km.WordRight, km.Home, km.End,
		km.Backspace, km.Delete, km.DeleteWordBackward, km.DeleteToStart,
		km.Commit, km.Undo, km.Redo, km.Paste,
	}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Commit, km.WordLeft, km.WordRight, km.Undo}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Left, km.Right, km.WordLeft, km.WordRight, km.Home, km.End},
		{km.Backspace, km.Delete, km.DeleteWordBackward, km.DeleteToStart},
		{km.Commit, km.Undo, km.Redo, km.Paste},
	}
}
