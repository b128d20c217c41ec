package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/tokenfield/form"
	"github.com/iw2rmb/tokenfield/internal/formfile"
	"github.com/iw2rmb/tokenfield/listfield"
)

type appKeys struct {
	Next, Prev key.Binding
	Reset      key.Binding
	Submit     key.Binding
	Quit       key.Binding
}

func defaultAppKeys() appKeys {
	return appKeys{
		Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous field")),
		Reset:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reload values")),
		Submit: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "submit")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

type app struct {
	def    *formfile.File
	store  *form.Store
	fields []listfield.Model
	focus  int

	keys appKeys
	help help.Model

	title  lipgloss.Style
	status string

	submitted bool
	logger    *slog.Logger
}

func newApp(def *formfile.File, width int, logger *slog.Logger) (app, error) {
	store, err := def.NewStore(form.WithLogger(logger))
	if err != nil {
		return app{}, err
	}

	a := app{
		def:    def,
		store:  store,
		keys:   defaultAppKeys(),
		help:   help.New(),
		title:  lipgloss.NewStyle().Bold(true).Underline(true).MarginBottom(1),
		logger: logger,
	}
	for _, fd := range def.Fields {
		cfg := listfield.Config{
			Field:       fd.Field,
			Placeholder: fd.Placeholder,
			Label:       fd.Label,
			Form:        store,
			Width:       width,
			Style:       listfield.DefaultStyle(),
			Clipboard:   listfield.SystemClipboard{},
			Logger:      logger,
		}
		if err := cfg.Validate(); err != nil {
			return app{}, err
		}
		a.fields = append(a.fields, listfield.New(cfg))
	}
	a.fields[0] = a.fields[0].Focus()
	return a, nil
}

func (a app) Init() tea.Cmd { return nil }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.help.Width = msg.Width
	case listfield.CommitMsg:
		a.status = fmt.Sprintf("%s: %d value(s)", msg.Field, len(msg.Tokens))
		return a.moveFocus(1), nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Next):
			return a.moveFocus(1), nil
		case key.Matches(msg, a.keys.Prev):
			return a.moveFocus(-1), nil
		case key.Matches(msg, a.keys.Reset):
			return a.reset(), nil
		case key.Matches(msg, a.keys.Submit):
			return a.submit()
		}
	}

	var cmds []tea.Cmd
	for i := range a.fields {
		var cmd tea.Cmd
		a.fields[i], cmd = a.fields[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return a, tea.Batch(cmds...)
}

// moveFocus blurs the current field, which commits it, and focuses the next.
func (a app) moveFocus(delta int) app {
	n := len(a.fields)
	a.fields[a.focus] = a.fields[a.focus].Blur()
	a.focus = ((a.focus+delta)%n + n) % n
	a.fields[a.focus] = a.fields[a.focus].Focus()
	return a
}

func (a app) reset() app {
	values, err := a.def.InitialValues()
	if err == nil {
		err = a.store.Reset(values)
	}
	if err != nil {
		a.logger.Error("reset form", "error", err)
		a.status = "reset failed: " + err.Error()
		return a
	}
	for i := range a.fields {
		a.fields[i] = a.fields[i].Sync()
	}
	a.status = "values reloaded"
	return a
}

func (a app) submit() (tea.Model, tea.Cmd) {
	a.fields[a.focus] = a.fields[a.focus].Blur()
	for i := range a.fields {
		a.fields[i] = a.fields[i].Commit()
	}
	if !a.store.Valid() {
		a.fields[a.focus] = a.fields[a.focus].Focus()
		a.status = "fix the highlighted fields"
		return a, nil
	}
	a.submitted = true
	return a, tea.Quit
}

func (a app) View() string {
	var sb strings.Builder
	sb.WriteString(a.title.Render(a.def.Title))
	sb.WriteByte('\n')
	for _, f := range a.fields {
		sb.WriteString(f.View())
		sb.WriteString("\n\n")
	}
	if a.status != "" {
		sb.WriteString(a.status)
		sb.WriteString("\n")
	}
	sb.WriteString(a.help.ShortHelpView([]key.Binding{a.keys.Next, a.keys.Reset, a.keys.Submit, a.keys.Quit}))
	sb.WriteString("\n")
	sb.WriteString(a.help.View(a.fields[a.focus].KeyMap()))
	return sb.String()
}
