package store

import (
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dormmate/dormmate/internal/model"
	"github.com/dormmate/dormmate/internal/storage"
)

// ErrNotAuthor is returned when someone other than a note's author tries to
// remove it. The check lives here rather than in the handlers so no caller
// can bypass it.
var ErrNotAuthor = errors.New("only the author can remove a note")

type NoteStore struct {
	mu     sync.Mutex
	slots  *storage.SlotStore
	logger *slog.Logger
	notes  []model.StickyNote
	now    func() time.Time
}

func NewNoteStore(slots *storage.SlotStore, logger *slog.Logger) *NoteStore {
	return &NoteStore{
		slots:  slots,
		logger: logger,
		notes:  loadSlice[model.StickyNote](slots, logger, storage.SlotNotes),
		now:    time.Now,
	}
}

// List returns all notes newest first, regardless of visibility. Callers
// rendering for a user must apply the visibility filter.
func (s *NoteStore) List() []model.StickyNote {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.StickyNote, len(s.notes))
	copy(out, s.notes)
	return out
}

// Add prepends a note authored by authorID. Empty or whitespace-only
// content is a silent no-op (nil). An empty recipient means the note is
// broadcast to everyone; notes always post anonymously.
func (s *NoteStore) Add(authorID, content, colorTag, recipientID string) *model.StickyNote {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}
	if colorTag == "" {
		colorTag = model.NoteColorTags[0]
	}

	n := model.StickyNote{
		ID:          uuid.New().String(),
		AuthorID:    authorID,
		RecipientID: recipientID,
		Content:     content,
		IsAnonymous: true,
		ColorTag:    colorTag,
		Date:        s.now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes = append([]model.StickyNote{n}, s.notes...)
	saveSlice(s.slots, s.logger, storage.SlotNotes, s.notes)
	return &n
}

// Remove deletes the note with the given id on behalf of actingUserID.
// Unknown ids are a no-op; a non-author actor gets ErrNotAuthor and the
// note stays.
func (s *NoteStore) Remove(id, actingUserID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notes {
		if s.notes[i].ID == id {
			if s.notes[i].AuthorID != actingUserID {
				return ErrNotAuthor
			}
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			saveSlice(s.slots, s.logger, storage.SlotNotes, s.notes)
			return nil
		}
	}
	return nil
}
