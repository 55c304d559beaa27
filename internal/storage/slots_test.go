package storage

import (
	"testing"

	"github.com/dormmate/dormmate/internal/database"
)

func setupSlotStore(t *testing.T) *SlotStore {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewSlotStore(db)
}

func TestSlotAbsent(t *testing.T) {
	s := setupSlotStore(t)

	data, err := s.Load("never-written")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if data != nil {
		t.Errorf("expected nil for absent slot, got %q", data)
	}
}

func TestSlotRoundTrip(t *testing.T) {
	s := setupSlotStore(t)

	want := `[{"id":"a"},{"id":"b"}]`
	if err := s.Save(SlotDuties, []byte(want)); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.Load(SlotDuties)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != want {
		t.Errorf("load = %q, want %q", got, want)
	}
}

func TestSlotOverwrite(t *testing.T) {
	s := setupSlotStore(t)

	if err := s.Save(SlotNotes, []byte(`["old"]`)); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Save(SlotNotes, []byte(`["new"]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	got, err := s.Load(SlotNotes)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(got) != `["new"]` {
		t.Errorf("load = %q, want %q", got, `["new"]`)
	}
}

func TestSlotsIndependent(t *testing.T) {
	s := setupSlotStore(t)

	if err := s.Save(SlotDuties, []byte(`["d"]`)); err != nil {
		t.Fatalf("save duties: %v", err)
	}
	if err := s.Save(SlotTransactions, []byte(`["t"]`)); err != nil {
		t.Fatalf("save transactions: %v", err)
	}

	duties, _ := s.Load(SlotDuties)
	txs, _ := s.Load(SlotTransactions)
	if string(duties) != `["d"]` || string(txs) != `["t"]` {
		t.Errorf("slots bled into each other: duties=%q txs=%q", duties, txs)
	}
}
