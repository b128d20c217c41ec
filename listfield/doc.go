// Package listfield provides a Bubble Tea form field that edits a list of
// tokens as free-form comma-separated text.
//
// The Engine reconciles the raw text being typed with the token list
// committed to a form.Form. Keystrokes write the parsed tokens through
// immediately while leaving the raw text alone; commits (Enter, blur)
// additionally force validation and normalize the text. When the committed
// value changes for any other reason, Sync re-derives the raw text unless the
// user is in the middle of typing a new token after a comma.
//
// Model is the presentation shell around an Engine: label, input line,
// placeholder and error message.
package listfield
