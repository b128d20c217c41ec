package buffer

import (
	"strings"

	"github.com/iw2rmb/tokenfield/internal/grapheme"
)

type Options struct {
	HistoryLimit int // default: 100; negative disables history
}

// Buffer is the raw edit text and its cursor.
type Buffer struct {
	clusters []string
	version  uint64
	cursor   int

	opt  Options
	hist historyState

	lastChange    Change
	hasLastChange bool
}

// New returns a buffer holding text with the cursor at its end.
func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 100
	}
	clusters := grapheme.Split(sanitize(text))
	return &Buffer{
		clusters: clusters,
		cursor:   len(clusters),
		opt:      opt,
	}
}

func (b *Buffer) Text() string { return grapheme.Join(b.clusters) }

// Len returns the number of grapheme clusters.
func (b *Buffer) Len() int { return len(b.clusters) }

// Clusters returns a copy of the grapheme clusters.
func (b *Buffer) Clusters() []string { return append([]string(nil), b.clusters...) }

func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) Cursor() int { return b.cursor }

func (b *Buffer) SetCursor(col int) {
	next := clampInt(col, 0, len(b.clusters))
	if next == b.cursor {
		return
	}
	change := b.beginChange(ChangeSourceLocal)
	b.cursor = next
	b.version++
	b.commitChange(change)
}

// SetText replaces the whole text.
//
// Local replacements are undoable and put the cursor at the end. Remote
// replacements keep the cursor column (clamped) and drop history, since
// earlier snapshots no longer describe the committed value.
func (b *Buffer) SetText(text string, source ChangeSource) {
	next := grapheme.Split(sanitize(text))
	if grapheme.Join(next) == b.Text() {
		return
	}

	prev := b.snapshot()
	change := b.beginChange(source)

	atEnd := b.cursor == len(b.clusters)
	b.clusters = next
	switch {
	case source == ChangeSourceLocal || atEnd:
		b.cursor = len(next)
	default:
		b.cursor = clampInt(b.cursor, 0, len(next))
	}
	b.version++

	if source == ChangeSourceLocal {
		b.recordUndo(prev)
	} else {
		b.hist = historyState{}
	}
	b.commitChange(change)
}

// sanitize keeps the text on one line: each line break becomes a delimiter so
// pasted newline-separated lists still tokenize.
func sanitize(s string) string {
	if !strings.ContainsAny(s, "\r\n") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.ReplaceAll(s, "\n", ",")
}
