package store

import (
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dormmate/dormmate/internal/model"
	"github.com/dormmate/dormmate/internal/storage"
)

type DutyStore struct {
	mu     sync.Mutex
	slots  *storage.SlotStore
	logger *slog.Logger
	duties []model.Duty
}

func NewDutyStore(slots *storage.SlotStore, logger *slog.Logger) *DutyStore {
	return &DutyStore{
		slots:  slots,
		logger: logger,
		duties: loadSlice[model.Duty](slots, logger, storage.SlotDuties),
	}
}

func (s *DutyStore) List() []model.Duty {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Duty, len(s.duties))
	copy(out, s.duties)
	return out
}

// Add appends a new uncompleted duty and re-sorts the roster ascending by
// date. An empty task or an unparseable date is a silent no-op (nil).
// Multiple duties on the same day are allowed.
func (s *DutyStore) Add(date, roommateID, task string) *model.Duty {
	task = strings.TrimSpace(task)
	if task == "" {
		return nil
	}
	if _, err := time.Parse(model.DateLayout, date); err != nil {
		return nil
	}

	d := model.Duty{
		ID:          uuid.New().String(),
		Date:        date,
		RoommateID:  roommateID,
		Task:        task,
		IsCompleted: false,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.duties = append(s.duties, d)
	// YYYY-MM-DD sorts chronologically as text.
	sort.SliceStable(s.duties, func(i, j int) bool {
		return s.duties[i].Date < s.duties[j].Date
	})
	saveSlice(s.slots, s.logger, storage.SlotDuties, s.duties)
	return &d
}

// ToggleComplete flips the completion flag. Unknown ids are a no-op (nil).
func (s *DutyStore) ToggleComplete(id string) *model.Duty {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.duties {
		if s.duties[i].ID == id {
			s.duties[i].IsCompleted = !s.duties[i].IsCompleted
			saveSlice(s.slots, s.logger, storage.SlotDuties, s.duties)
			d := s.duties[i]
			return &d
		}
	}
	return nil
}

// Remove deletes the duty with the given id, reporting whether it existed.
func (s *DutyStore) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.duties {
		if s.duties[i].ID == id {
			s.duties = append(s.duties[:i], s.duties[i+1:]...)
			saveSlice(s.slots, s.logger, storage.SlotDuties, s.duties)
			return true
		}
	}
	return false
}
