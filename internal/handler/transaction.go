package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dormmate/dormmate/internal/ledger"
	"github.com/dormmate/dormmate/internal/model"
	"github.com/dormmate/dormmate/internal/store"
	"github.com/dormmate/dormmate/internal/websocket"
)

type TransactionHandler struct {
	store     *store.TransactionStore
	roommates *store.RoommateStore
	hub       *websocket.Hub
	logger    *slog.Logger
}

func NewTransactionHandler(s *store.TransactionStore, rs *store.RoommateStore, hub *websocket.Hub, logger *slog.Logger) *TransactionHandler {
	return &TransactionHandler{store: s, roommates: rs, hub: hub, logger: logger}
}

// List returns the ledger newest first.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	txs := h.store.List()
	if txs == nil {
		txs = []model.Transaction{}
	}
	writeJSON(w, http.StatusOK, txs)
}

func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount      string `json:"amount"`
		Description string `json:"description"`
		Kind        string `json:"kind"`
		PayerID     string `json:"payer_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	tx := h.store.Add(req.Amount, req.Description, model.TransactionKind(req.Kind), req.PayerID)
	if tx == nil {
		writeNoOp(w)
		return
	}

	h.hub.Broadcast(websocket.NewMessage("transaction", "created", tx.ID, nil))
	writeJSON(w, http.StatusCreated, tx)
}

func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if h.store.Remove(id) {
		h.hub.Broadcast(websocket.NewMessage("transaction", "deleted", id, nil))
	}
	w.WriteHeader(http.StatusNoContent)
}

// Summary returns the derived pool balance and per-payer expense totals.
// Both are recomputed from the full collection on every call.
func (h *TransactionHandler) Summary(w http.ResponseWriter, r *http.Request) {
	txs := h.store.List()
	byPayer := ledger.ExpenseByPayer(txs, h.roommates.List())
	if byPayer == nil {
		byPayer = []ledger.PayerTotal{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"balance":          ledger.Balance(txs),
		"expense_by_payer": byPayer,
	})
}
