package form

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// ErrInvalidDoc is returned when a document is not valid JSON.
var ErrInvalidDoc = errors.New("form: invalid JSON document")

// Doc is a JSON object document.
type Doc string

// EmptyDoc is the empty object.
const EmptyDoc Doc = "{}"

// ParseDoc validates s and returns it as a Doc. Blank input yields EmptyDoc.
func ParseDoc(s string) (Doc, error) {
	if s == "" {
		return EmptyDoc, nil
	}
	if !gjson.Valid(s) {
		return EmptyDoc, ErrInvalidDoc
	}
	if r := gjson.Parse(s); !r.IsObject() {
		return EmptyDoc, fmt.Errorf("%w: top level must be an object", ErrInvalidDoc)
	}
	return Doc(s), nil
}

func (d Doc) orEmpty() string {
	if d == "" {
		return string(EmptyDoc)
	}
	return string(d)
}

// Get returns the value at path.
func (d Doc) Get(path string) gjson.Result {
	return gjson.Get(d.orEmpty(), path)
}

// Set returns a copy of d with v stored at path.
func (d Doc) Set(path string, v any) (Doc, error) {
	out, err := sjson.Set(d.orEmpty(), path, v)
	if err != nil {
		return d, fmt.Errorf("form: set %q: %w", path, err)
	}
	return Doc(out), nil
}

// Delete returns a copy of d without path. Deleting a missing path is a no-op.
func (d Doc) Delete(path string) (Doc, error) {
	out, err := sjson.Delete(d.orEmpty(), path)
	if err != nil {
		return d, fmt.Errorf("form: delete %q: %w", path, err)
	}
	return Doc(out), nil
}

func (d Doc) String() string { return d.orEmpty() }

// GetIn looks up a possibly nested path in d.
func GetIn(d Doc, path string) gjson.Result { return d.Get(path) }

// Truthy reports whether r holds a value that counts as set: non-empty
// strings, true, non-zero numbers, and any array or object.
func Truthy(r gjson.Result) bool {
	switch r.Type {
	case gjson.String:
		return r.Str != ""
	case gjson.True:
		return true
	case gjson.Number:
		return r.Num != 0
	case gjson.JSON:
		return true
	default:
		return false
	}
}

// Strings converts an array result into its string elements. Anything else
// yields an empty slice.
func Strings(r gjson.Result) []string {
	if !r.IsArray() {
		return []string{}
	}
	items := r.Array()
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.String())
	}
	return out
}
