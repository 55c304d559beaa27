// Package handler implements the JSON API, one handler per app surface.
// Validation failures that the data layer swallows (empty input, bad
// amounts) come back as 204 No Content: nothing happened, nothing to show.
package handler

import (
	"encoding/json"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeNoOp reports a silently refused mutation.
func writeNoOp(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
