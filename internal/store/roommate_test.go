package store

import "testing"

func TestRoommateSeed(t *testing.T) {
	s := NewRoommateStore()

	roommates := s.List()
	if len(roommates) != 4 {
		t.Fatalf("expected 4 seeded roommates, got %d", len(roommates))
	}
	if roommates[0].ID != "u1" {
		t.Errorf("first roommate id = %s, want u1", roommates[0].ID)
	}
	if s.First().ID != "u1" {
		t.Errorf("First() = %s, want u1", s.First().ID)
	}
}

func TestRoommateGetByID(t *testing.T) {
	s := NewRoommateStore()

	if r := s.GetByID("u2"); r == nil || r.Name != "Xiaoming" {
		t.Errorf("GetByID(u2) = %+v, want Xiaoming", r)
	}
	if r := s.GetByID("nobody"); r != nil {
		t.Errorf("expected nil for unknown id, got %+v", r)
	}
}

func TestRoommateNextWrapsAround(t *testing.T) {
	s := NewRoommateStore()

	if got := s.Next("u1").ID; got != "u2" {
		t.Errorf("Next(u1) = %s, want u2", got)
	}
	if got := s.Next("u4").ID; got != "u1" {
		t.Errorf("Next(u4) = %s, want u1", got)
	}
	// Unknown ids restart at the head of the list.
	if got := s.Next("nobody").ID; got != "u1" {
		t.Errorf("Next(unknown) = %s, want u1", got)
	}
}
