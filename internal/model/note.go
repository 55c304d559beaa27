package model

import "time"

type StickyNote struct {
	ID          string    `json:"id"`
	AuthorID    string    `json:"author_id"`
	RecipientID string    `json:"recipient_id,omitempty"` // empty = visible to everyone
	Content     string    `json:"content"`
	IsAnonymous bool      `json:"is_anonymous"` // always true; kept for slot compatibility
	ColorTag    string    `json:"color_tag"`
	Date        time.Time `json:"date"`
}

// NoteColorTags is the fixed palette offered by the notes board.
var NoteColorTags = []string{"yellow", "pink", "green", "blue", "orange"}
