package buffer

import "github.com/iw2rmb/tokenfield/internal/grapheme"

func (b *Buffer) Move(m Move) {
	next := clampInt(b.moveCursor(b.cursor, m), 0, len(b.clusters))
	if next == b.cursor {
		return
	}
	change := b.beginChange(ChangeSourceLocal)
	b.cursor = next
	b.version++
	b.commitChange(change)
}

func (b *Buffer) moveCursor(col int, m Move) int {
	switch m.Unit {
	case MoveGrapheme:
		switch m.Dir {
		case DirLeft:
			return col - 1
		case DirRight:
			return col + 1
		}
	case MoveWord:
		switch m.Dir {
		case DirLeft:
			return prevWordBoundary(b.clusters, col)
		case DirRight:
			return nextWordBoundary(b.clusters, col)
		}
	}
	switch m.Dir {
	case DirHome:
		return 0
	case DirEnd:
		return len(b.clusters)
	}
	return col
}

// Word boundary rules: skip breaks (whitespace and ','), then skip the word.
func prevWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i > 0 && grapheme.IsBreak(line[i-1]) {
		i--
	}
	for i > 0 && !grapheme.IsBreak(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i < len(line) && grapheme.IsBreak(line[i]) {
		i++
	}
	for i < len(line) && !grapheme.IsBreak(line[i]) {
		i++
	}
	return i
}
