package listfield

import (
	"errors"
	"log/slog"

	"github.com/iw2rmb/tokenfield/form"
)

var (
	ErrMissingField       = errors.New("listfield: field is required")
	ErrMissingPlaceholder = errors.New("listfield: placeholder is required")
	ErrMissingForm        = errors.New("listfield: form is required")
)

// Config configures the field Model.
type Config struct {
	// Field is the path of the list inside Form. Required.
	Field string
	// Placeholder is shown while the raw text is empty. Required.
	Placeholder string
	// Label overrides the default label (Field with its first letter upper-cased).
	Label string

	Form form.Form

	// Width is the input width in cells; 0 renders the whole text.
	Width int

	KeyMap KeyMap
	Style  Style

	// Clipboard backs the paste binding. Nil disables paste.
	Clipboard Clipboard

	// Forwarded to buffer.Options.
	HistoryLimit int

	OnChange func(ChangeEvent)
	Logger   *slog.Logger
}

// Validate reports missing required options.
func (c Config) Validate() error {
	var errs []error
	if c.Field == "" {
		errs = append(errs, ErrMissingField)
	}
	if c.Placeholder == "" {
		errs = append(errs, ErrMissingPlaceholder)
	}
	if c.Form == nil {
		errs = append(errs, ErrMissingForm)
	}
	return errors.Join(errs...)
}
