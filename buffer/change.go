package buffer

// Change is a versioned mutation payload.
type Change struct {
	Source        ChangeSource
	VersionBefore uint64
	VersionAfter  uint64
	CursorBefore  int
	CursorAfter   int
	TextBefore    string
	TextAfter     string
}

// TextChanged reports whether the change altered the text, as opposed to
// only moving the cursor.
func (c Change) TextChanged() bool { return c.TextBefore != c.TextAfter }

type changeBuilder struct {
	source        ChangeSource
	versionBefore uint64
	cursorBefore  int
	textBefore    string
}

// LastChange returns the most recent effective change.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	return b.lastChange, true
}

func (b *Buffer) beginChange(source ChangeSource) changeBuilder {
	return changeBuilder{
		source:        source,
		versionBefore: b.version,
		cursorBefore:  b.cursor,
		textBefore:    b.Text(),
	}
}

func (b *Buffer) commitChange(cb changeBuilder) {
	if b.version == cb.versionBefore {
		return
	}
	b.lastChange = Change{
		Source:        cb.source,
		VersionBefore: cb.versionBefore,
		VersionAfter:  b.version,
		CursorBefore:  cb.cursorBefore,
		CursorAfter:   b.cursor,
		TextBefore:    cb.textBefore,
		TextAfter:     b.Text(),
	}
	b.hasLastChange = true
}
