package handler

import (
	"net/http"

	"github.com/dormmate/dormmate/internal/store"
)

type RoommateHandler struct {
	store *store.RoommateStore
}

func NewRoommateHandler(s *store.RoommateStore) *RoommateHandler {
	return &RoommateHandler{store: s}
}

func (h *RoommateHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.List())
}
