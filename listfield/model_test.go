package listfield

import (
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/tokenfield/form"
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

type stubClipboard struct {
	text string
	err  error
}

func (c stubClipboard) ReadText() (string, error) { return c.text, c.err }

func newField(t *testing.T, s *form.Store) Model {
	t.Helper()
	return New(Config{Field: "tags", Placeholder: "add tags", Form: s})
}

func TestConfig_Validate(t *testing.T) {
	err := Config{}.Validate()
	for _, want := range []error{ErrMissingField, ErrMissingPlaceholder, ErrMissingForm} {
		if !errors.Is(err, want) {
			t.Fatalf("Validate: got %v, want it to include %v", err, want)
		}
	}
	if err := (Config{Field: "tags", Placeholder: "p", Form: newStore(t, `{}`)}).Validate(); err != nil {
		t.Fatalf("Validate: got %v, want nil", err)
	}
}

func TestNew_PanicsWithoutField(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrMissingField) {
			t.Fatalf("recover: got %v, want %v", r, ErrMissingField)
		}
	}()
	New(Config{Placeholder: "p", Form: newStore(t, `{}`)})
}

func TestModel_Label(t *testing.T) {
	s := newStore(t, `{}`)
	if got, want := newField(t, s).Label(), "Tags"; got != want {
		t.Fatalf("default label: got %q, want %q", got, want)
	}
	m := New(Config{Field: "tags", Placeholder: "p", Label: "Keywords", Form: s})
	if got, want := m.Label(), "Keywords"; got != want {
		t.Fatalf("explicit label: got %q, want %q", got, want)
	}
}

func TestDefaultLabel(t *testing.T) {
	cases := map[string]string{
		"":            "",
		"tags":        "Tags",
		"Tags":        "Tags",
		"ärger":       "Ärger",
		"meta.labels": "Meta.labels",
	}
	for in, want := range cases {
		if got := DefaultLabel(in); got != want {
			t.Fatalf("DefaultLabel(%q): got %q, want %q", in, got, want)
		}
	}
}

func TestUpdate_TypingThenBlur(t *testing.T) {
	s := newStore(t, `{}`)
	m := newField(t, s).Focus()

	for _, k := range []string{"x", ",", "y"} {
		m, _ = m.Update(runes(k))
	}
	if got, want := m.Raw(), "x,y"; got != want {
		t.Fatalf("raw while typing: got %q, want %q", got, want)
	}

	m = m.Blur()
	m, _ = m.Update(nil)

	if got := s.Values("tags"); fmt.Sprint(got) != "[x y]" {
		t.Fatalf("values: got %q, want %q", got, []string{"x", "y"})
	}
	if got, want := m.Raw(), "x, y"; got != want {
		t.Fatalf("raw after blur: got %q, want %q", got, want)
	}
	if m.Focused() {
		t.Fatalf("expected unfocused after Blur")
	}
}

func TestUpdate_EnterCommitsLikeBlur(t *testing.T) {
	type result struct {
		values string
		raw    string
	}
	commit := func(useEnter bool) (result, tea.Cmd) {
		s := newStore(t, `{}`)
		m := newField(t, s).Focus()
		m, _ = m.Update(runes("a, b, "))

		var cmd tea.Cmd
		if useEnter {
			m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		} else {
			m = m.Blur()
		}
		return result{values: fmt.Sprint(s.Values("tags")), raw: m.Raw()}, cmd
	}

	viaEnter, cmd := commit(true)
	viaBlur, _ := commit(false)
	if viaEnter != viaBlur {
		t.Fatalf("enter vs blur: got %+v, want %+v", viaEnter, viaBlur)
	}
	if viaEnter.values != "[a b]" || viaEnter.raw != "a, b" {
		t.Fatalf("commit result: got %+v", viaEnter)
	}

	if cmd == nil {
		t.Fatalf("expected a command from enter")
	}
	msg, ok := cmd().(CommitMsg)
	if !ok {
		t.Fatalf("command result: got %T, want CommitMsg", cmd())
	}
	if msg.Field != "tags" || fmt.Sprint(msg.Tokens) != "[a b]" {
		t.Fatalf("commit msg: got %+v", msg)
	}
}

func TestUpdate_EnterKeepsFocus(t *testing.T) {
	m := newField(t, newStore(t, `{}`)).Focus()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !m.Focused() {
		t.Fatalf("enter must not blur the field")
	}
}

func TestUpdate_UnfocusedIgnoresKeys(t *testing.T) {
	s := newStore(t, `{"tags":["a"]}`)
	m := newField(t, s)

	m, cmd := m.Update(runes("z"))
	if cmd != nil {
		t.Fatalf("expected nil command")
	}
	if got, want := m.Raw(), "a"; got != want {
		t.Fatalf("raw: got %q, want %q", got, want)
	}
	if got := s.Revision("tags"); got != 0 {
		t.Fatalf("revision: got %d, want %d", got, 0)
	}
}

func TestUpdate_BlurWithoutFocusDoesNotCommit(t *testing.T) {
	s := newStore(t, `{"tags":["a"]}`)
	newField(t, s).Blur()
	if got := s.Revision("tags"); got != 0 {
		t.Fatalf("revision: got %d, want %d", got, 0)
	}
}

func TestUpdate_EditingKeys(t *testing.T) {
	s := newStore(t, `{"tags":["alpha","beta"]}`)
	m := newField(t, s).Focus()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got, want := m.Raw(), "alpha, bet"; got != want {
		t.Fatalf("raw after backspace: got %q, want %q", got, want)
	}
	if got := s.Values("tags"); fmt.Sprint(got) != "[alpha bet]" {
		t.Fatalf("values after backspace: got %q", got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlW})
	if got, want := m.Raw(), "alpha, "; got != want {
		t.Fatalf("raw after ctrl+w: got %q, want %q", got, want)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m, _ = m.Update(runes("g"))
	if got, want := m.Raw(), "alpha,  g"; got != want {
		t.Fatalf("raw after typing: got %q, want %q", got, want)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	if got, want := m.Raw(), "alpha,  "; got != want {
		t.Fatalf("raw after undo: got %q, want %q", got, want)
	}
	if got := s.Values("tags"); fmt.Sprint(got) != "[alpha]" {
		t.Fatalf("values after undo: got %q", got)
	}
}

func TestUpdate_CursorMovesDoNotWrite(t *testing.T) {
	s := newStore(t, `{"tags":["a","b"]}`)
	m := newField(t, s).Focus()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyHome})
	if got := m.Engine().Buffer().Cursor(); got != 0 {
		t.Fatalf("cursor: got %d, want %d", got, 0)
	}
	if got := s.Revision("tags"); got != 0 {
		t.Fatalf("revision: got %d, want %d", got, 0)
	}

	m, _ = m.Update(runes("z, "))
	if got := s.Values("tags"); fmt.Sprint(got) != "[z a b]" {
		t.Fatalf("values after insert at start: got %q", got)
	}
}

func TestUpdate_PasteFromClipboard(t *testing.T) {
	s := newStore(t, `{}`)
	m := New(Config{
		Field:       "tags",
		Placeholder: "p",
		Form:        s,
		Clipboard:   stubClipboard{text: "a\nb"},
	}).Focus()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	if got, want := m.Raw(), "a,b"; got != want {
		t.Fatalf("raw after paste: got %q, want %q", got, want)
	}

	m = New(Config{
		Field:       "other",
		Placeholder: "p",
		Form:        s,
		Clipboard:   stubClipboard{err: errors.New("no clipboard")},
	}).Focus()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	if got := m.Raw(); got != "" {
		t.Fatalf("raw after failed paste: got %q, want empty", got)
	}
}

func TestUpdate_BracketedPasteInsertsLiterally(t *testing.T) {
	s := newStore(t, `{}`)
	m := newField(t, s).Focus()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x, y"), Paste: true})
	if got := s.Values("tags"); fmt.Sprint(got) != "[x y]" {
		t.Fatalf("values: got %q", got)
	}
}

func TestUpdate_ExternalChangeSyncsOnNextMessage(t *testing.T) {
	s := newStore(t, `{"tags":["a"]}`)
	m := newField(t, s)

	s.SetValues("tags", []string{"b", "c"}, false)
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if got, want := m.Raw(), "b, c"; got != want {
		t.Fatalf("raw: got %q, want %q", got, want)
	}
}

func TestUpdate_OnChangeEvents(t *testing.T) {
	var events []ChangeEvent
	s := newStore(t, `{}`)
	m := New(Config{
		Field:       "tags",
		Placeholder: "p",
		Form:        s,
		OnChange:    func(ev ChangeEvent) { events = append(events, ev) },
	}).Focus()

	m, _ = m.Update(runes("a"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if len(events) != 2 {
		t.Fatalf("events: got %d, want %d", len(events), 2)
	}
	if events[0].Source != SourceKeystroke || events[1].Source != SourceCommit {
		t.Fatalf("event sources: got %v, %v", events[0].Source, events[1].Source)
	}
}

func TestUpdate_ExternalChangeAfterKeystrokeIsNotSwallowed(t *testing.T) {
	s := newStore(t, `{}`)
	m := newField(t, s).Focus()

	m, _ = m.Update(runes("draft"))
	s.SetValues("tags", []string{"server", "side"}, false)
	m, _ = m.Update(nil)

	if got, want := m.Raw(), "server, side"; got != want {
		t.Fatalf("raw: got %q, want %q", got, want)
	}
}

func TestModel_CommitKeepsFocus(t *testing.T) {
	s := newStore(t, `{"tags":["a"]}`)
	m := newField(t, s).Focus()

	m, _ = m.Update(runes(" ,b,"))
	m = m.Commit()
	if !m.Focused() {
		t.Fatalf("commit must not blur")
	}
	if got, want := m.Raw(), "a, b"; got != want {
		t.Fatalf("raw: got %q, want %q", got, want)
	}
	if got := m.Engine().Phase(); got != PhaseClean {
		t.Fatalf("phase: got %v, want %v", got, PhaseClean)
	}
}
