// Package duty computes roster display state. Nothing here is persisted;
// overdue and "my turn" are recomputed from the collection on every read.
package duty

import (
	"time"

	"github.com/dormmate/dormmate/internal/model"
)

// IsOverdue reports whether a duty's day has fully passed without the task
// being completed. Duties with malformed dates are never overdue.
func IsOverdue(d model.Duty, now time.Time) bool {
	if d.IsCompleted {
		return false
	}
	day, err := time.ParseInLocation(model.DateLayout, d.Date, now.Location())
	if err != nil {
		return false
	}
	return day.Before(startOfDay(now))
}

// TodaysDuty returns the first duty scheduled for the current calendar day,
// or nil when nothing is planned.
func TodaysDuty(duties []model.Duty, now time.Time) *model.Duty {
	today := now.Format(model.DateLayout)
	for i := range duties {
		if duties[i].Date == today {
			d := duties[i]
			return &d
		}
	}
	return nil
}

// IsMyTurn reports whether today's duty is assigned to the given user.
func IsMyTurn(d *model.Duty, userID string) bool {
	return d != nil && d.RoommateID == userID
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
