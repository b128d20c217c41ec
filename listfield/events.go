package listfield

// EventSource tells what produced a ChangeEvent.
type EventSource uint8

const (
	SourceKeystroke EventSource = iota
	SourceCommit
	SourceSync
)

func (s EventSource) String() string {
	switch s {
	case SourceKeystroke:
		return "keystroke"
	case SourceCommit:
		return "commit"
	case SourceSync:
		return "sync"
	default:
		return "unknown"
	}
}

// ChangeEvent reports an effective change of the raw text or a write-through.
type ChangeEvent struct {
	Field  string
	Source EventSource
	Phase  Phase

	Raw    string
	Tokens []string
}

// CommitMsg is returned as a command result after Enter commits the field,
// so hosts can move focus without the key reaching an enclosing form.
type CommitMsg struct {
	Field  string
	Tokens []string
}
