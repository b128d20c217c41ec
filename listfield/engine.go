package listfield

import (
	"log/slog"

	"github.com/iw2rmb/tokenfield/buffer"
	"github.com/iw2rmb/tokenfield/form"
	"github.com/iw2rmb/tokenfield/tokens"
)

// EngineConfig configures an Engine.
type EngineConfig struct {
	// Form holds the committed value. Required.
	Form form.Form
	// Field is the path of the list inside Form. Required.
	Field string

	// Forwarded to buffer.Options.
	HistoryLimit int

	OnChange func(ChangeEvent)
	Logger   *slog.Logger
}

// Engine synchronizes the raw text of one field with its committed list.
type Engine struct {
	form  form.Form
	field string
	buf   *buffer.Buffer

	gate    syncGate
	lastRev uint64
	phase   Phase

	onChange func(ChangeEvent)
	logger   *slog.Logger
}

// NewEngine returns an engine whose raw text starts as the joined committed
// value. It panics when Form or Field is missing.
func NewEngine(cfg EngineConfig) *Engine {
	if cfg.Form == nil {
		panic(ErrMissingForm)
	}
	if cfg.Field == "" {
		panic(ErrMissingField)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	e := &Engine{
		form:     cfg.Form,
		field:    cfg.Field,
		onChange: cfg.OnChange,
		logger:   logger.With("field", cfg.Field),
	}
	e.lastRev = e.form.Revision(e.field)
	e.buf = buffer.New(tokens.Join(e.form.Values(e.field)), buffer.Options{HistoryLimit: cfg.HistoryLimit})
	return e
}

func (e *Engine) Field() string { return e.field }

// Raw returns the raw text.
func (e *Engine) Raw() string { return e.buf.Text() }

// Tokens parses the raw text.
func (e *Engine) Tokens() []string { return tokens.Parse(e.buf.Text()) }

// Buffer exposes the raw buffer for cursor queries. Edits must go through
// Edit or Change so they are written through.
func (e *Engine) Buffer() *buffer.Buffer { return e.buf }

func (e *Engine) Phase() Phase { return e.phase }

// Sync is the external-sync reconciliation step. It acts only when the
// committed value has a new revision since the last call. A change caused by
// the engine's own write-through is consumed without touching the raw text;
// any other change re-derives the raw text unless it ends in a pending
// delimiter. It reports whether the raw text changed.
func (e *Engine) Sync() bool {
	rev := e.form.Revision(e.field)
	if rev == e.lastRev {
		return false
	}
	e.lastRev = rev

	if e.gate.consume() {
		if e.phase == PhaseCommitting {
			e.phase = PhaseClean
		}
		e.logger.Debug("listfield sync skipped", "revision", rev)
		return false
	}

	values := e.form.Values(e.field)
	joined := tokens.Join(values)
	raw := e.buf.Text()
	if tokens.PendingDelimiter(raw) {
		e.logger.Debug("listfield sync kept pending delimiter", "revision", rev, "raw", raw)
		return false
	}
	e.phase = PhaseClean
	if joined == raw {
		return false
	}

	e.buf.SetText(joined, buffer.ChangeSourceRemote)
	e.logger.Debug("listfield sync reconciled", "revision", rev, "raw", joined)
	e.emit(SourceSync, values)
	return true
}

// Change is the keystroke handler: it sets the raw text to text and writes
// the parsed tokens through.
func (e *Engine) Change(text string) {
	if text == e.buf.Text() {
		return
	}
	e.buf.SetText(text, buffer.ChangeSourceLocal)
	e.writeKeystroke()
}

// Edit applies a key-level edit to the raw buffer. If the text changed, the
// parsed tokens are written through as for Change. Cursor-only edits write
// nothing.
func (e *Engine) Edit(fn func(b *buffer.Buffer)) bool {
	before := e.buf.Text()
	fn(e.buf)
	if e.buf.Text() == before {
		return false
	}
	e.writeKeystroke()
	return true
}

func (e *Engine) writeKeystroke() {
	ts := tokens.Parse(e.buf.Text())

	e.gate.arm()
	e.form.SetValues(e.field, ts, true)
	e.form.SetTouched(e.field, true, false)
	if len(ts) > 0 {
		e.form.SetError(e.field, "")
	}

	e.phase = PhaseEditing
	e.emit(SourceKeystroke, ts)
}

// Commit settles the field: it writes the parsed tokens through, marks the
// field touched with validation, and rewrites the raw text in canonical form
// (so "a, b, " becomes "a, b"). It returns the committed tokens.
func (e *Engine) Commit() []string {
	ts := tokens.Parse(e.buf.Text())

	e.gate.arm()
	e.form.SetValues(e.field, ts, true)
	e.form.SetTouched(e.field, true, true)

	e.buf.SetText(tokens.Join(ts), buffer.ChangeSourceRemote)
	e.phase = PhaseCommitting
	e.logger.Debug("listfield committed", "tokens", len(ts))
	e.emit(SourceCommit, ts)
	return ts
}

// ShowError reports whether the field has an error and has been touched.
func (e *Engine) ShowError() bool {
	return form.Truthy(form.GetIn(e.form.Errors(), e.field)) &&
		form.Truthy(form.GetIn(e.form.Touched(), e.field))
}

// ErrorMessage returns the error to display, or "" when ShowError is false.
// List-shaped errors show their first message.
func (e *Engine) ErrorMessage() string {
	if !e.ShowError() {
		return ""
	}
	r := form.GetIn(e.form.Errors(), e.field)
	if r.IsArray() {
		for _, it := range r.Array() {
			if s := it.String(); s != "" {
				return s
			}
		}
	}
	if r.IsObject() {
		return r.Raw
	}
	return r.String()
}

func (e *Engine) emit(src EventSource, ts []string) {
	if e.onChange == nil {
		return
	}
	e.onChange(ChangeEvent{
		Field:  e.field,
		Source: src,
		Phase:  e.phase,
		Raw:    e.buf.Text(),
		Tokens: append([]string(nil), ts...),
	})
}
