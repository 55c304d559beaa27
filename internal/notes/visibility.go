// Package notes holds the board's visibility rule. A directed note is a
// secret between its author and recipient; everything else is broadcast.
package notes

import "github.com/dormmate/dormmate/internal/model"

// Visible filters the full collection down to what userID may see: a note
// with no recipient, or one the user authored, or one addressed to them.
// The rule must hold in every rendering context.
func Visible(all []model.StickyNote, userID string) []model.StickyNote {
	out := make([]model.StickyNote, 0, len(all))
	for _, n := range all {
		if n.RecipientID == "" || n.AuthorID == userID || n.RecipientID == userID {
			out = append(out, n)
		}
	}
	return out
}

// PrivateCount counts notes addressed directly to userID.
func PrivateCount(all []model.StickyNote, userID string) int {
	count := 0
	for _, n := range all {
		if n.RecipientID == userID {
			count++
		}
	}
	return count
}
