package listfield

import (
	"fmt"
	"testing"

	"github.com/iw2rmb/tokenfield/form"
)

// recordingForm is a form.Form double that logs every mutating call.
type recordingForm struct {
	values  map[string][]string
	revs    map[string]uint64
	errors  form.Doc
	touched form.Doc

	calls []string

	beforeSetValues func()
}

var _ form.Form = (*recordingForm)(nil)

func newRecordingForm(values map[string][]string) *recordingForm {
	if values == nil {
		values = map[string][]string{}
	}
	return &recordingForm{
		values:  values,
		revs:    map[string]uint64{},
		errors:  form.EmptyDoc,
		touched: form.EmptyDoc,
	}
}

func (f *recordingForm) Values(field string) []string { return append([]string{}, f.values[field]...) }

func (f *recordingForm) Revision(field string) uint64 { return f.revs[field] }

func (f *recordingForm) SetValues(field string, values []string, validate bool) {
	if f.beforeSetValues != nil {
		f.beforeSetValues()
	}
	f.calls = append(f.calls, fmt.Sprintf("values %s=%q validate=%v", field, values, validate))
	f.values[field] = append([]string{}, values...)
	f.revs[field]++
}

func (f *recordingForm) SetTouched(field string, touched bool, validate bool) {
	f.calls = append(f.calls, fmt.Sprintf("touched %s=%v validate=%v", field, touched, validate))
	f.touched, _ = f.touched.Set(field, touched)
}

func (f *recordingForm) SetError(field string, message string) {
	f.calls = append(f.calls, fmt.Sprintf("error %s=%q", field, message))
	if message == "" {
		f.errors, _ = f.errors.Delete(field)
		return
	}
	f.errors, _ = f.errors.Set(field, message)
}

func (f *recordingForm) Errors() form.Doc { return f.errors }

func (f *recordingForm) Touched() form.Doc { return f.touched }

// external simulates a write by someone other than the engine.
func (f *recordingForm) external(field string, values []string) {
	f.values[field] = values
	f.revs[field]++
}

func newStore(t *testing.T, initial form.Doc, opts ...form.Option) *form.Store {
	t.Helper()
	s, err := form.New(initial, opts...)
	if err != nil {
		t.Fatalf("form.New: %v", err)
	}
	return s
}
