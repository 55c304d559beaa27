package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/dormmate/dormmate/internal/assistant"
	"github.com/dormmate/dormmate/internal/games"
	"github.com/dormmate/dormmate/internal/model"
	"github.com/dormmate/dormmate/internal/store"
	"github.com/dormmate/dormmate/internal/websocket"
)

// rollSteps and rollInterval shape the pick animation: intermediate draws
// are broadcast over the hub so every view can show the shuffle before the
// result settles.
const (
	rollSteps    = 10
	rollInterval = 100 * time.Millisecond
)

type GameHandler struct {
	roommates *store.RoommateStore
	picker    *games.Picker
	assistant *assistant.Client
	hub       *websocket.Hub
	logger    *slog.Logger
}

func NewGameHandler(rs *store.RoommateStore, picker *games.Picker, ai *assistant.Client, hub *websocket.Hub, logger *slog.Logger) *GameHandler {
	return &GameHandler{roommates: rs, picker: picker, assistant: ai, hub: hub, logger: logger}
}

// Pick draws one roommate uniformly at random. With "animate" set, the
// request plays the shuffle first; the settled pick is still an independent
// uniform draw over the whole household.
func (h *GameHandler) Pick(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Animate bool `json:"animate"`
	}
	// An empty body means a plain, unanimated pick.
	json.NewDecoder(r.Body).Decode(&req)

	roommates := h.roommates.List()

	var picked model.Roommate
	var err error
	if req.Animate {
		picked, err = h.picker.Roll(roommates, rollSteps, rollInterval, func(draw model.Roommate) {
			h.hub.Broadcast(websocket.NewMessage("pick", "rolling", draw.ID, map[string]any{"name": draw.Name}))
		})
	} else {
		picked, err = h.picker.Pick(roommates)
	}
	if err != nil {
		writeJSON(w, http.StatusConflict, map[string]string{"error": "no roommates to pick from"})
		return
	}

	h.hub.Broadcast(websocket.NewMessage("pick", "settled", picked.ID, map[string]any{"name": picked.Name}))
	writeJSON(w, http.StatusOK, picked)
}

// Prompt fetches AI-generated game content for the requested kind. The
// response is always plain text: real content or the fixed fallback.
func (h *GameHandler) Prompt(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Kind string `json:"kind"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	kind := games.ParseKind(req.Kind)
	text := h.assistant.GamePrompt(r.Context(), kind)
	writeJSON(w, http.StatusOK, map[string]string{"kind": string(kind), "text": text})
}
