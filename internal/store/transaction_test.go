package store

import (
	"log/slog"
	"testing"

	"github.com/dormmate/dormmate/internal/model"
)

func TestTransactionAddPrepends(t *testing.T) {
	slots := setupSlots(t)
	s := NewTransactionStore(slots, slog.Default())

	s.Add("30", "late-night barbecue", model.KindExpense, "u1")
	s.Add("50", "pool top-up", model.KindContribution, "u2")

	txs := s.List()
	if len(txs) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txs))
	}
	// Newest first
	if txs[0].Description != "pool top-up" {
		t.Errorf("txs[0].Description = %q, want %q", txs[0].Description, "pool top-up")
	}
	if txs[1].Description != "late-night barbecue" {
		t.Errorf("txs[1].Description = %q, want %q", txs[1].Description, "late-night barbecue")
	}
}

func TestTransactionAddFields(t *testing.T) {
	slots := setupSlots(t)
	s := NewTransactionStore(slots, slog.Default())

	tx := s.Add("12.50", "toilet paper", model.KindExpense, "u3")
	if tx == nil {
		t.Fatal("expected transaction, got nil")
	}
	if tx.Amount.String() != "12.5" {
		t.Errorf("amount = %s, want 12.5", tx.Amount)
	}
	if tx.Kind != model.KindExpense {
		t.Errorf("kind = %s, want expense", tx.Kind)
	}
	if tx.PayerID != "u3" {
		t.Errorf("payer = %s, want u3", tx.PayerID)
	}
	if tx.Date.IsZero() {
		t.Error("expected date stamp")
	}
}

func TestTransactionValidationNoOps(t *testing.T) {
	slots := setupSlots(t)
	s := NewTransactionStore(slots, slog.Default())

	cases := []struct {
		name         string
		amount, desc string
		kind         model.TransactionKind
	}{
		{"empty amount", "", "snacks", model.KindExpense},
		{"empty description", "10", "", model.KindExpense},
		{"whitespace description", "10", "   ", model.KindExpense},
		{"unparseable amount", "ten", "snacks", model.KindExpense},
		{"unknown kind", "10", "snacks", model.TransactionKind("loan")},
	}
	for _, tc := range cases {
		if tx := s.Add(tc.amount, tc.desc, tc.kind, "u1"); tx != nil {
			t.Errorf("%s: expected no-op, got %+v", tc.name, tx)
		}
	}
	if got := len(s.List()); got != 0 {
		t.Errorf("collection length changed by rejected adds: %d", got)
	}
}

func TestTransactionRemove(t *testing.T) {
	slots := setupSlots(t)
	s := NewTransactionStore(slots, slog.Default())

	tx := s.Add("30", "snacks", model.KindExpense, "u1")

	if !s.Remove(tx.ID) {
		t.Error("expected remove to report true")
	}
	if s.Remove(tx.ID) {
		t.Error("second remove should be a no-op")
	}
	if got := len(s.List()); got != 0 {
		t.Errorf("expected empty ledger, got %d entries", got)
	}
}

func TestTransactionRoundTrip(t *testing.T) {
	slots := setupSlots(t)
	s := NewTransactionStore(slots, slog.Default())

	s.Add("50", "pool top-up", model.KindContribution, "u1")
	s.Add("19.99", "drinking water", model.KindExpense, "u2")
	want := s.List()

	reloaded := NewTransactionStore(slots, slog.Default())
	got := reloaded.List()
	if len(got) != len(want) {
		t.Fatalf("reloaded %d transactions, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ID != want[i].ID ||
			!got[i].Amount.Equal(want[i].Amount) ||
			got[i].Description != want[i].Description ||
			got[i].Kind != want[i].Kind ||
			got[i].PayerID != want[i].PayerID ||
			!got[i].Date.Equal(want[i].Date) {
			t.Errorf("transaction[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}
