package listfield

// Phase is the engine's synchronization state.
type Phase uint8

const (
	// PhaseClean: the raw text agrees with the last observed committed value.
	PhaseClean Phase = iota
	// PhaseEditing: keystrokes have been written through since the last commit.
	PhaseEditing
	// PhaseCommitting: a commit was written and has not been observed yet.
	PhaseCommitting
)

func (p Phase) String() string {
	switch p {
	case PhaseClean:
		return "clean"
	case PhaseEditing:
		return "editing"
	case PhaseCommitting:
		return "committing"
	default:
		return "unknown"
	}
}
