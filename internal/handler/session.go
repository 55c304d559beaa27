package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dormmate/dormmate/internal/session"
	"github.com/dormmate/dormmate/internal/websocket"
)

type SessionHandler struct {
	session *session.Session
	hub     *websocket.Hub
}

func NewSessionHandler(sess *session.Session, hub *websocket.Hub) *SessionHandler {
	return &SessionHandler{session: sess, hub: hub}
}

func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"current_user": h.session.Current(),
		"active_view":  h.session.View(),
	})
}

// SetView switches the active view; unknown names land on the dashboard.
func (h *SessionHandler) SetView(w http.ResponseWriter, r *http.Request) {
	var req struct {
		View string `json:"view"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	v := session.ParseView(req.View)
	h.session.SetView(v)
	h.hub.Broadcast(websocket.NewMessage("session", "view_changed", "", map[string]any{"view": string(v)}))
	writeJSON(w, http.StatusOK, map[string]string{"active_view": string(v)})
}

func (h *SessionHandler) SetUser(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	user, ok := h.session.SetUser(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "roommate not found"})
		return
	}

	h.hub.Broadcast(websocket.NewMessage("session", "user_changed", user.ID, nil))
	writeJSON(w, http.StatusOK, user)
}

// CycleUser advances the perspective to the next roommate, the demo
// affordance for looking at the app as someone else.
func (h *SessionHandler) CycleUser(w http.ResponseWriter, r *http.Request) {
	user := h.session.CycleUser()
	h.hub.Broadcast(websocket.NewMessage("session", "user_changed", user.ID, nil))
	writeJSON(w, http.StatusOK, user)
}
