// Package formfile loads demo form definitions from YAML.
package formfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/tokenfield/form"
	"github.com/iw2rmb/tokenfield/listfield"
)

// Field describes one list field.
type Field struct {
	Field       string `yaml:"field"`
	Placeholder string `yaml:"placeholder"`
	Label       string `yaml:"label,omitempty"`

	Required        bool   `yaml:"required,omitempty"`
	RequiredMessage string `yaml:"required_message,omitempty"`
	MaxItems        int    `yaml:"max_items,omitempty"`
	Unique          bool   `yaml:"unique,omitempty"`
}

// File is a form definition: the fields to render and their initial values.
type File struct {
	Title  string         `yaml:"title"`
	Fields []Field        `yaml:"fields"`
	Values map[string]any `yaml:"values"`
}

var ErrNoFields = errors.New("formfile: no fields")

// Load reads and parses the definition at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("formfile: read %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a definition, rejecting unknown keys.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("formfile: decode: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks every field the way listfield.Config.Validate would,
// without a form attached.
func (f *File) Validate() error {
	if len(f.Fields) == 0 {
		return ErrNoFields
	}
	seen := make(map[string]bool, len(f.Fields))
	for i, fd := range f.Fields {
		if fd.Field == "" {
			return fmt.Errorf("formfile: fields[%d]: %w", i, listfield.ErrMissingField)
		}
		if fd.Placeholder == "" {
			return fmt.Errorf("formfile: fields[%d] (%s): %w", i, fd.Field, listfield.ErrMissingPlaceholder)
		}
		if seen[fd.Field] {
			return fmt.Errorf("formfile: fields[%d]: duplicate field %q", i, fd.Field)
		}
		if fd.MaxItems < 0 {
			return fmt.Errorf("formfile: fields[%d] (%s): max_items must not be negative", i, fd.Field)
		}
		seen[fd.Field] = true
	}
	return nil
}

// InitialValues renders Values as a form document.
func (f *File) InitialValues() (form.Doc, error) {
	if len(f.Values) == 0 {
		return form.EmptyDoc, nil
	}
	data, err := json.Marshal(f.Values)
	if err != nil {
		return "", fmt.Errorf("formfile: encode values: %w", err)
	}
	return form.ParseDoc(string(data))
}

// Rules returns the validation rules declared on the fields.
func (f *File) Rules() []form.Rule {
	var rules []form.Rule
	for _, fd := range f.Fields {
		if fd.Required {
			msg := fd.RequiredMessage
			if msg == "" {
				msg = "at least one value is required"
			}
			rules = append(rules, form.Required(fd.Field, msg))
		}
		if fd.MaxItems > 0 {
			rules = append(rules, form.MaxItems(fd.Field, fd.MaxItems, fmt.Sprintf("at most %d values", fd.MaxItems)))
		}
		if fd.Unique {
			rules = append(rules, form.UniqueItems(fd.Field, "values must be unique"))
		}
	}
	return rules
}

// NewStore builds a store holding the initial values and rules.
func (f *File) NewStore(opts ...form.Option) (*form.Store, error) {
	values, err := f.InitialValues()
	if err != nil {
		return nil, err
	}
	opts = append([]form.Option{form.WithRules(f.Rules()...)}, opts...)
	return form.New(values, opts...)
}
