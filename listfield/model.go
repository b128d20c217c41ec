package listfield

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

// Model is a Bubble Tea component rendering one list field.
//
// Copies of a Model share the same Engine.
type Model struct {
	cfg    Config
	engine *Engine
	label  string

	focused bool

	// first visible grapheme when the text is wider than cfg.Width
	offset int
}

// New builds a field. It panics when Field or Form is missing; use
// Config.Validate to check configs built at runtime.
func New(cfg Config) Model {
	if err := cfg.Validate(); errors.Is(err, ErrMissingField) || errors.Is(err, ErrMissingForm) {
		panic(err)
	}
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Width < 0 {
		cfg.Width = 0
	}

	label := cfg.Label
	if label == "" {
		label = DefaultLabel(cfg.Field)
	}

	m := Model{
		cfg:   cfg,
		label: label,
		engine: NewEngine(EngineConfig{
			Form:         cfg.Form,
			Field:        cfg.Field,
			HistoryLimit: cfg.HistoryLimit,
			OnChange:     cfg.OnChange,
			Logger:       cfg.Logger,
		}),
	}
	m.followCursor()
	return m
}

func (m Model) Engine() *Engine { return m.engine }

func (m Model) Label() string { return m.label }

func (m Model) Field() string { return m.engine.Field() }

func (m Model) Raw() string { return m.engine.Raw() }

func (m Model) Tokens() []string { return m.engine.Tokens() }

func (m Model) ShowError() bool { return m.engine.ShowError() }

func (m Model) KeyMap() KeyMap { return m.cfg.KeyMap }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetWidth(width int) Model {
	if width < 0 {
		width = 0
	}
	m.cfg.Width = width
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	m.focused = true
	return m
}

// Blur unfocuses the field and commits it.
func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m = m.Commit()
	}
	return m
}

// Commit settles the field without changing focus.
func (m Model) Commit() Model {
	m.engine.Commit()
	m.followCursor()
	return m.Sync()
}

func (m Model) Focused() bool { return m.focused }

// Sync runs the external-sync reconciliation. Update does this on every
// message; hosts call it directly after changing the form outside the event
// loop.
func (m Model) Sync() Model {
	if m.engine.Sync() {
		m.followCursor()
	}
	return m
}

// Update reconciles with the form, handles msg, then reconciles again so the
// field observes its own write-through before the next event arrives.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	m = m.Sync()

	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	}
	return m.Sync(), cmd
}

func (m *Model) followCursor() {
	m.offset = m.visibleStart()
}
