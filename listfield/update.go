package listfield

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/tokenfield/buffer"
)

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	// Paste events insert literal text and never trigger bindings.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.insert(string(msg.Runes))
		return m, nil
	}

	km := m.cfg.KeyMap
	e := m.engine

	switch {
	case key.Matches(msg, km.Commit):
		ts := e.Commit()
		m.followCursor()
		field := e.Field()
		return m, func() tea.Msg { return CommitMsg{Field: field, Tokens: ts} }

	case key.Matches(msg, km.Left):
		m.move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		m.move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight})
	case key.Matches(msg, km.WordLeft):
		m.move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft})
	case key.Matches(msg, km.WordRight):
		m.move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight})
	case key.Matches(msg, km.Home):
		m.move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		m.move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})

	case key.Matches(msg, km.Backspace):
		e.Edit((*buffer.Buffer).DeleteBackward)
	case key.Matches(msg, km.Delete):
		e.Edit((*buffer.Buffer).DeleteForward)
	case key.Matches(msg, km.DeleteWordBackward):
		e.Edit((*buffer.Buffer).DeleteWordBackward)
	case key.Matches(msg, km.DeleteToStart):
		e.Edit((*buffer.Buffer).DeleteToStart)

	case key.Matches(msg, km.Undo):
		e.Edit(func(b *buffer.Buffer) { b.Undo() })
	case key.Matches(msg, km.Redo):
		e.Edit(func(b *buffer.Buffer) { b.Redo() })

	case key.Matches(msg, km.Paste):
		m.pasteClipboard()

	default:
		switch {
		case msg.Type == tea.KeySpace:
			m.insert(" ")
		case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
			m.insert(string(msg.Runes))
		}
	}

	m.followCursor()
	return m, nil
}

func (m Model) move(mv buffer.Move) {
	m.engine.Edit(func(b *buffer.Buffer) { b.Move(mv) })
}

func (m Model) insert(s string) {
	m.engine.Edit(func(b *buffer.Buffer) { b.InsertText(s) })
}

func (m Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return
	}
	m.insert(s)
}
