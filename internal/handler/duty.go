package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/dormmate/dormmate/internal/duty"
	"github.com/dormmate/dormmate/internal/model"
	"github.com/dormmate/dormmate/internal/store"
	"github.com/dormmate/dormmate/internal/websocket"
)

type DutyHandler struct {
	store  *store.DutyStore
	hub    *websocket.Hub
	logger *slog.Logger
}

func NewDutyHandler(s *store.DutyStore, hub *websocket.Hub, logger *slog.Logger) *DutyHandler {
	return &DutyHandler{store: s, hub: hub, logger: logger}
}

type dutyResponse struct {
	model.Duty
	IsOverdue bool `json:"is_overdue"`
}

// List returns the roster ascending by date, each entry annotated with the
// overdue flag, plus the task suggestions the duty form offers.
func (h *DutyHandler) List(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	duties := h.store.List()
	out := make([]dutyResponse, 0, len(duties))
	for _, d := range duties {
		out = append(out, dutyResponse{Duty: d, IsOverdue: duty.IsOverdue(d, now)})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"duties":           out,
		"task_suggestions": model.TaskSuggestions,
	})
}

func (h *DutyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Date       string `json:"date"`
		RoommateID string `json:"roommate_id"`
		Task       string `json:"task"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	d := h.store.Add(req.Date, req.RoommateID, req.Task)
	if d == nil {
		writeNoOp(w)
		return
	}

	h.hub.Broadcast(websocket.NewMessage("duty", "created", d.ID, nil))
	writeJSON(w, http.StatusCreated, d)
}

func (h *DutyHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	d := h.store.ToggleComplete(id)
	if d == nil {
		writeNoOp(w)
		return
	}

	h.hub.Broadcast(websocket.NewMessage("duty", "toggled", d.ID, nil))
	writeJSON(w, http.StatusOK, d)
}

func (h *DutyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if h.store.Remove(id) {
		h.hub.Broadcast(websocket.NewMessage("duty", "deleted", id, nil))
	}
	w.WriteHeader(http.StatusNoContent)
}
