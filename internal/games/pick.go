// Package games holds the party-game utilities: a uniform random pick over
// the household and the rolling animation layered on top of it.
package games

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/dormmate/dormmate/internal/model"
)

// Kind selects which prompt the assistant generates for a game.
type Kind string

const (
	KindTruthDare Kind = "truth_dare"
	KindWhoIsSpy  Kind = "who_is_spy"
	KindAdventure Kind = "adventure"
)

// ParseKind maps a request string onto a game kind, defaulting to the
// adventure prompt for anything unrecognized.
func ParseKind(s string) Kind {
	switch Kind(s) {
	case KindTruthDare, KindWhoIsSpy:
		return Kind(s)
	default:
		return KindAdventure
	}
}

// ErrNoRoommates is returned when there is nobody to pick from.
var ErrNoRoommates = errors.New("no roommates to pick from")

// Picker draws roommates uniformly at random.
type Picker struct {
	intN func(n int) int
}

func NewPicker() *Picker {
	return &Picker{intN: rand.IntN}
}

// NewSeededPicker returns a deterministic picker for tests.
func NewSeededPicker(seed uint64) *Picker {
	rng := rand.New(rand.NewPCG(seed, 0))
	return &Picker{intN: rng.IntN}
}

// Pick selects one roommate uniformly at random.
func (p *Picker) Pick(roommates []model.Roommate) (model.Roommate, error) {
	if len(roommates) == 0 {
		return model.Roommate{}, ErrNoRoommates
	}
	return roommates[p.intN(len(roommates))], nil
}

// Roll is the animated pick: it resamples a fixed number of times on a
// timer, reporting each intermediate draw to onTick, then settles on an
// independent uniform pick. The animation is cosmetic and has no influence
// on the final result; once started it runs all steps to the end.
func (p *Picker) Roll(roommates []model.Roommate, steps int, interval time.Duration, onTick func(model.Roommate)) (model.Roommate, error) {
	if len(roommates) == 0 {
		return model.Roommate{}, ErrNoRoommates
	}
	for i := 0; i < steps; i++ {
		draw, _ := p.Pick(roommates)
		if onTick != nil {
			onTick(draw)
		}
		if interval > 0 {
			time.Sleep(interval)
		}
	}
	return p.Pick(roommates)
}
