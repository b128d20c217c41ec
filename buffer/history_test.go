package buffer

import "testing"

func TestBuffer_UndoRedo_BasicTyping(t *testing.T) {
	b := New("", Options{})
	if b.CanUndo() {
		t.Fatalf("expected CanUndo=false")
	}
	if b.CanRedo() {
		t.Fatalf("expected CanRedo=false")
	}

	b.InsertText("a")
	if !b.CanUndo() {
		t.Fatalf("expected CanUndo=true")
	}

	v := b.Version()
	if ok := b.Undo(); !ok {
		t.Fatalf("expected Undo=true")
	}
	if got, want := b.Text(), ""; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), 0; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}
	if got := b.Version(); got != v+1 {
		t.Fatalf("version=%d, want %d", got, v+1)
	}
	if !b.CanRedo() {
		t.Fatalf("expected CanRedo=true")
	}

	if ok := b.Redo(); !ok {
		t.Fatalf("expected Redo=true")
	}
	if got, want := b.Text(), "a"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), 1; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}
}

func TestBuffer_UndoRedo_EmptyStacks_NoMutation(t *testing.T) {
	b := New("hi", Options{})
	v := b.Version()

	if b.Undo() {
		t.Fatalf("expected Undo=false")
	}
	if b.Redo() {
		t.Fatalf("expected Redo=false")
	}
	if got := b.Version(); got != v {
		t.Fatalf("version=%d, want %d", got, v)
	}
}

func TestBuffer_NewEditClearsRedo(t *testing.T) {
	b := New("", Options{})
	b.InsertText("a")
	b.Undo()
	b.InsertText("b")
	if b.CanRedo() {
		t.Fatalf("expected CanRedo=false after new edit")
	}
}

func TestBuffer_HistoryLimit(t *testing.T) {
	b := New("", Options{HistoryLimit: 2})
	b.InsertText("a")
	b.InsertText("b")
	b.InsertText("c")

	b.Undo()
	b.Undo()
	if b.Undo() {
		t.Fatalf("expected third Undo=false with limit 2")
	}
	if got, want := b.Text(), "a"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestBuffer_HistoryDisabled(t *testing.T) {
	b := New("", Options{HistoryLimit: -1})
	b.InsertText("a")
	if b.CanUndo() {
		t.Fatalf("expected CanUndo=false with history disabled")
	}
}
