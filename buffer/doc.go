// Package buffer implements the single-line raw text model behind a list
// field.
//
// The cursor is a 0-based grapheme column in [0, Len()]. Every effective
// mutation bumps Version and records a Change whose Source tells local edits
// apart from text replaced by form synchronization.
package buffer
