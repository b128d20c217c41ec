package form

// Form is the form-state container seen by a list field.
//
// Revision must advance on every SetValues call for a path (or any path
// nested in or above it), including writes of equal contents: the field uses
// it to observe that the committed value was replaced.
type Form interface {
	// Values returns the committed token list stored at field.
	Values(field string) []string
	// Revision returns the write counter for field.
	Revision(field string) uint64
	// SetValues replaces the list at field, validating the form when validate is set.
	SetValues(field string, values []string, validate bool)
	// SetTouched marks field, validating the form when validate is set.
	SetTouched(field string, touched bool, validate bool)
	// SetError sets the error message for field; an empty message clears it.
	SetError(field string, message string)
	// Errors returns the full error document.
	Errors() Doc
	// Touched returns the full touched document.
	Touched() Doc
}
