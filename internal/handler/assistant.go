package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dormmate/dormmate/internal/assistant"
	"github.com/dormmate/dormmate/internal/model"
)

type AssistantHandler struct {
	client *assistant.Client
	logger *slog.Logger
}

func NewAssistantHandler(client *assistant.Client, logger *slog.Logger) *AssistantHandler {
	return &AssistantHandler{client: client, logger: logger}
}

// Chat relays one turn to the hosted assistant. The caller owns the
// transcript and sends the prior turns with each request; the reply is
// always text, a fallback string standing in on any failure.
func (h *AssistantHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		History []model.ChatMessage `json:"history"`
		Message string              `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if req.Message == "" {
		writeNoOp(w)
		return
	}

	reply := h.client.Chat(r.Context(), req.History, req.Message)
	writeJSON(w, http.StatusOK, model.ChatMessage{Role: model.RoleModel, Text: reply})
}
