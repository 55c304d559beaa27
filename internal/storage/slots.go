// Package storage persists each collection as an independent keyed slot
// holding one serialized JSON array. Slots are written wholesale on every
// change; there is no transaction spanning two slots.
package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// Slot keys, one per persisted collection. Roommates are reseeded at
// startup and never persisted.
const (
	SlotDuties       = "duties"
	SlotTransactions = "transactions"
	SlotNotes        = "notes"
)

type SlotStore struct {
	db *sql.DB
}

func NewSlotStore(db *sql.DB) *SlotStore {
	return &SlotStore{db: db}
}

// Load returns the raw bytes stored under key, or (nil, nil) if the slot
// has never been written.
func (s *SlotStore) Load(key string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT data FROM slots WHERE key = ?`, key).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load slot %q: %w", key, err)
	}
	return data, nil
}

// Save replaces the entire contents of the slot under key.
func (s *SlotStore) Save(key string, data []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO slots (key, data, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		key, data, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save slot %q: %w", key, err)
	}
	return nil
}
