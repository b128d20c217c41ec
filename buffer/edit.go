package buffer

import "github.com/iw2rmb/tokenfield/internal/grapheme"

// InsertText inserts text at the cursor.
func (b *Buffer) InsertText(s string) {
	ins := grapheme.Split(sanitize(s))
	if len(ins) == 0 {
		return
	}

	prev := b.snapshot()
	change := b.beginChange(ChangeSourceLocal)

	next := make([]string, 0, len(b.clusters)+len(ins))
	next = append(next, b.clusters[:b.cursor]...)
	next = append(next, ins...)
	next = append(next, b.clusters[b.cursor:]...)

	b.clusters = next
	b.cursor += len(ins)
	b.version++
	b.recordUndo(prev)
	b.commitChange(change)
}

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() {
	if b.cursor == 0 {
		return
	}
	b.deleteRange(b.cursor-1, b.cursor)
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if b.cursor >= len(b.clusters) {
		return
	}
	b.deleteRange(b.cursor, b.cursor+1)
}

// DeleteWordBackward removes from the previous word boundary to the cursor.
func (b *Buffer) DeleteWordBackward() {
	start := prevWordBoundary(b.clusters, b.cursor)
	if start == b.cursor {
		return
	}
	b.deleteRange(start, b.cursor)
}

// DeleteToStart removes everything before the cursor.
func (b *Buffer) DeleteToStart() {
	if b.cursor == 0 {
		return
	}
	b.deleteRange(0, b.cursor)
}

func (b *Buffer) deleteRange(start, end int) {
	start = clampInt(start, 0, len(b.clusters))
	end = clampInt(end, start, len(b.clusters))
	if start == end {
		return
	}

	prev := b.snapshot()
	change := b.beginChange(ChangeSourceLocal)

	next := make([]string, 0, len(b.clusters)-(end-start))
	next = append(next, b.clusters[:start]...)
	next = append(next, b.clusters[end:]...)

	b.clusters = next
	b.cursor = start
	b.version++
	b.recordUndo(prev)
	b.commitChange(change)
}
