package store

import "github.com/dormmate/dormmate/internal/model"

// seedRoommates is the static household. Roommates are never persisted or
// mutated; every start reseeds the same list.
var seedRoommates = []model.Roommate{
	{ID: "u1", Name: "Aqiang", AvatarTag: "blue"},
	{ID: "u2", Name: "Xiaoming", AvatarTag: "green"},
	{ID: "u3", Name: "Laozhang", AvatarTag: "purple"},
	{ID: "u4", Name: "Dali", AvatarTag: "orange"},
}

type RoommateStore struct {
	roommates []model.Roommate
}

func NewRoommateStore() *RoommateStore {
	rs := make([]model.Roommate, len(seedRoommates))
	copy(rs, seedRoommates)
	return &RoommateStore{roommates: rs}
}

func (s *RoommateStore) List() []model.Roommate {
	out := make([]model.Roommate, len(s.roommates))
	copy(out, s.roommates)
	return out
}

func (s *RoommateStore) GetByID(id string) *model.Roommate {
	for i := range s.roommates {
		if s.roommates[i].ID == id {
			r := s.roommates[i]
			return &r
		}
	}
	return nil
}

// First returns the default roommate for a fresh session.
func (s *RoommateStore) First() model.Roommate {
	return s.roommates[0]
}

// Next returns the roommate after the given one, wrapping around. Unknown
// ids restart at the first roommate.
func (s *RoommateStore) Next(id string) model.Roommate {
	for i := range s.roommates {
		if s.roommates[i].ID == id {
			return s.roommates[(i+1)%len(s.roommates)]
		}
	}
	return s.roommates[0]
}
