package store

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dormmate/dormmate/internal/model"
	"github.com/dormmate/dormmate/internal/storage"
)

type TransactionStore struct {
	mu     sync.Mutex
	slots  *storage.SlotStore
	logger *slog.Logger
	txs    []model.Transaction
	now    func() time.Time
}

func NewTransactionStore(slots *storage.SlotStore, logger *slog.Logger) *TransactionStore {
	return &TransactionStore{
		slots:  slots,
		logger: logger,
		txs:    loadSlice[model.Transaction](slots, logger, storage.SlotTransactions),
		now:    time.Now,
	}
}

// List returns the transactions newest first.
func (s *TransactionStore) List() []model.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Transaction, len(s.txs))
	copy(out, s.txs)
	return out
}

// Add prepends a transaction stamped with the current time. An empty or
// unparseable amount, an empty description, or an unknown kind is a silent
// no-op (nil). Amounts beyond that are not range-checked.
func (s *TransactionStore) Add(amount, description string, kind model.TransactionKind, payerID string) *model.Transaction {
	description = strings.TrimSpace(description)
	if amount == "" || description == "" {
		return nil
	}
	if kind != model.KindExpense && kind != model.KindContribution {
		return nil
	}
	amt, err := decimal.NewFromString(amount)
	if err != nil {
		return nil
	}

	tx := model.Transaction{
		ID:          uuid.New().String(),
		PayerID:     payerID,
		Amount:      amt,
		Description: description,
		Date:        s.now().UTC(),
		Kind:        kind,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.txs = append([]model.Transaction{tx}, s.txs...)
	saveSlice(s.slots, s.logger, storage.SlotTransactions, s.txs)
	return &tx
}

// Remove deletes the transaction with the given id, reporting whether it
// existed. Transactions are never mutated otherwise.
func (s *TransactionStore) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.txs {
		if s.txs[i].ID == id {
			s.txs = append(s.txs[:i], s.txs[i+1:]...)
			saveSlice(s.slots, s.logger, storage.SlotTransactions, s.txs)
			return true
		}
	}
	return false
}
