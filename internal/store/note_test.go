package store

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/dormmate/dormmate/internal/model"
)

func TestNoteAdd(t *testing.T) {
	slots := setupSlots(t)
	s := NewNoteStore(slots, slog.Default())

	n := s.Add("u1", "whoever keeps finishing the milk, own up", "pink", "")
	if n == nil {
		t.Fatal("expected note, got nil")
	}
	if n.AuthorID != "u1" {
		t.Errorf("author = %s, want u1", n.AuthorID)
	}
	if n.RecipientID != "" {
		t.Errorf("recipient = %q, want broadcast", n.RecipientID)
	}
	if !n.IsAnonymous {
		t.Error("notes always post anonymously")
	}
	if n.ColorTag != "pink" {
		t.Errorf("color = %s, want pink", n.ColorTag)
	}
}

func TestNoteAddPrepends(t *testing.T) {
	slots := setupSlots(t)
	s := NewNoteStore(slots, slog.Default())

	s.Add("u1", "first", "yellow", "")
	s.Add("u2", "second", "green", "")

	all := s.List()
	if len(all) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(all))
	}
	if all[0].Content != "second" {
		t.Errorf("all[0].Content = %q, want %q", all[0].Content, "second")
	}
}

func TestNoteAddEmptyContentNoOp(t *testing.T) {
	slots := setupSlots(t)
	s := NewNoteStore(slots, slog.Default())

	if n := s.Add("u1", "", "yellow", ""); n != nil {
		t.Error("empty content should no-op")
	}
	if n := s.Add("u1", "  \n\t ", "yellow", ""); n != nil {
		t.Error("whitespace-only content should no-op")
	}
	if got := len(s.List()); got != 0 {
		t.Errorf("expected empty board, got %d notes", got)
	}
}

func TestNoteAddStoresTrimmedContent(t *testing.T) {
	slots := setupSlots(t)
	s := NewNoteStore(slots, slog.Default())

	n := s.Add("u1", "  dishes don't wash themselves \n", "yellow", "")
	if n == nil {
		t.Fatal("expected note, got nil")
	}
	if n.Content != "dishes don't wash themselves" {
		t.Errorf("content = %q, want trimmed", n.Content)
	}
	if got := s.List()[0].Content; got != "dishes don't wash themselves" {
		t.Errorf("stored content = %q, want trimmed", got)
	}
}

func TestNoteDefaultColor(t *testing.T) {
	slots := setupSlots(t)
	s := NewNoteStore(slots, slog.Default())

	n := s.Add("u1", "hello", "", "")
	if n.ColorTag != model.NoteColorTags[0] {
		t.Errorf("color = %s, want default %s", n.ColorTag, model.NoteColorTags[0])
	}
}

func TestNoteRemoveAuthorOnly(t *testing.T) {
	slots := setupSlots(t)
	s := NewNoteStore(slots, slog.Default())

	n := s.Add("u1", "secret grievance", "yellow", "u2")

	err := s.Remove(n.ID, "u3")
	if !errors.Is(err, ErrNotAuthor) {
		t.Fatalf("expected ErrNotAuthor, got %v", err)
	}
	if got := len(s.List()); got != 1 {
		t.Fatalf("note should survive a non-author delete, got %d notes", got)
	}

	// Even the recipient cannot delete it.
	if err := s.Remove(n.ID, "u2"); !errors.Is(err, ErrNotAuthor) {
		t.Fatalf("expected ErrNotAuthor for recipient, got %v", err)
	}

	if err := s.Remove(n.ID, "u1"); err != nil {
		t.Fatalf("author delete: %v", err)
	}
	if got := len(s.List()); got != 0 {
		t.Errorf("expected empty board after author delete, got %d notes", got)
	}
}

func TestNoteRemoveUnknownIDNoOp(t *testing.T) {
	slots := setupSlots(t)
	s := NewNoteStore(slots, slog.Default())

	if err := s.Remove("missing", "u1"); err != nil {
		t.Errorf("unknown id should no-op, got %v", err)
	}
}

func TestNoteRoundTrip(t *testing.T) {
	slots := setupSlots(t)
	s := NewNoteStore(slots, slog.Default())

	s.Add("u1", "movie night friday?", "blue", "")
	s.Add("u2", "you left the stove on", "orange", "u3")
	want := s.List()

	reloaded := NewNoteStore(slots, slog.Default())
	got := reloaded.List()
	if len(got) != len(want) {
		t.Fatalf("reloaded %d notes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID != want[i].ID ||
			got[i].AuthorID != want[i].AuthorID ||
			got[i].RecipientID != want[i].RecipientID ||
			got[i].Content != want[i].Content ||
			got[i].ColorTag != want[i].ColorTag ||
			!got[i].Date.Equal(want[i].Date) {
			t.Errorf("note[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}
