package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dormmate/dormmate/internal/model"
	"github.com/dormmate/dormmate/internal/notes"
	"github.com/dormmate/dormmate/internal/session"
	"github.com/dormmate/dormmate/internal/store"
	"github.com/dormmate/dormmate/internal/websocket"
)

type NoteHandler struct {
	store   *store.NoteStore
	session *session.Session
	hub     *websocket.Hub
	logger  *slog.Logger
}

func NewNoteHandler(s *store.NoteStore, sess *session.Session, hub *websocket.Hub, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{store: s, session: sess, hub: hub, logger: logger}
}

// noteResponse hides the author. Notes always render anonymously; the author
// id never leaves the server. OwnedByViewer lets the client show its delete
// control without learning anyone else's identity.
type noteResponse struct {
	ID            string `json:"id"`
	RecipientID   string `json:"recipient_id,omitempty"`
	Content       string `json:"content"`
	ColorTag      string `json:"color_tag"`
	Date          string `json:"date"`
	ToViewer      bool   `json:"to_viewer"`
	OwnedByViewer bool   `json:"owned_by_viewer"`
}

func renderNote(n model.StickyNote, viewerID string) noteResponse {
	return noteResponse{
		ID:            n.ID,
		RecipientID:   n.RecipientID,
		Content:       n.Content,
		ColorTag:      n.ColorTag,
		Date:          n.Date.Format(time.RFC3339),
		ToViewer:      n.RecipientID == viewerID,
		OwnedByViewer: n.AuthorID == viewerID,
	}
}

// List returns the notes the current user may see, newest first.
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	viewer := h.session.Current()
	visible := notes.Visible(h.store.List(), viewer.ID)
	out := make([]noteResponse, 0, len(visible))
	for _, n := range visible {
		out = append(out, renderNote(n, viewer.ID))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Content     string `json:"content"`
		ColorTag    string `json:"color_tag"`
		RecipientID string `json:"recipient_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	viewer := h.session.Current()
	n := h.store.Add(viewer.ID, req.Content, req.ColorTag, req.RecipientID)
	if n == nil {
		writeNoOp(w)
		return
	}

	h.hub.Broadcast(websocket.NewMessage("note", "created", n.ID, nil))
	writeJSON(w, http.StatusCreated, renderNote(*n, viewer.ID))
}

// Delete removes a note on behalf of the current user. Only the author may
// delete; the store enforces it.
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	viewer := h.session.Current()

	if err := h.store.Remove(id, viewer.ID); err != nil {
		if errors.Is(err, store.ErrNotAuthor) {
			writeJSON(w, http.StatusForbidden, map[string]string{"error": "only the author can delete a note"})
			return
		}
		h.logger.Error("delete note", "id", id, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to delete note"})
		return
	}

	h.hub.Broadcast(websocket.NewMessage("note", "deleted", id, nil))
	w.WriteHeader(http.StatusNoContent)
}
