// Package session models the transient per-process state: who is looking at
// the app and which view is active. Nothing here is persisted; every start
// resets to the first roommate on the dashboard.
package session

import (
	"sync"

	"github.com/dormmate/dormmate/internal/model"
	"github.com/dormmate/dormmate/internal/store"
)

// View names one of the app's surfaces, selected by the bottom navigation.
type View string

const (
	ViewDashboard View = "dashboard"
	ViewDuty      View = "duty"
	ViewMoney     View = "money"
	ViewNotes     View = "notes"
	ViewGames     View = "games"
	ViewAssistant View = "assistant"
)

// ParseView maps a string onto a view, falling back to the dashboard for
// anything unrecognized.
func ParseView(s string) View {
	switch View(s) {
	case ViewDuty, ViewMoney, ViewNotes, ViewGames, ViewAssistant:
		return View(s)
	default:
		return ViewDashboard
	}
}

type Session struct {
	mu        sync.Mutex
	roommates *store.RoommateStore
	current   model.Roommate
	view      View
}

func New(roommates *store.RoommateStore) *Session {
	return &Session{
		roommates: roommates,
		current:   roommates.First(),
		view:      ViewDashboard,
	}
}

// Current returns the roommate whose perspective the app renders.
func (s *Session) Current() model.Roommate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// SetUser switches the active perspective. Unknown ids are rejected.
func (s *Session) SetUser(id string) (model.Roommate, bool) {
	r := s.roommates.GetByID(id)
	if r == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.current, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = *r
	return s.current, true
}

// CycleUser advances to the next roommate in seed order, wrapping around.
func (s *Session) CycleUser() model.Roommate {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = s.roommates.Next(s.current.ID)
	return s.current
}

// View returns the active view.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// SetView switches the active view.
func (s *Session) SetView(v View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = v
}
