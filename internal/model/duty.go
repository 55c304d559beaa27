package model

// DateLayout is the calendar-day format used for duty dates.
const DateLayout = "2006-01-02"

// TaskSuggestions is the fixed list offered by the duty form. Tasks are
// still free text; the list only seeds the picker.
var TaskSuggestions = []string{
	"take out the trash",
	"sweep and mop",
	"clean the bathroom",
	"order drinking water",
	"tidy the common desk",
}

type Duty struct {
	ID          string `json:"id"`
	Date        string `json:"date"` // YYYY-MM-DD
	RoommateID  string `json:"roommate_id"`
	Task        string `json:"task"`
	IsCompleted bool   `json:"is_completed"`
}
