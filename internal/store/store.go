// Package store holds the in-memory collections and their write-through
// persistence. Each store loads its slot once at construction, mutates under
// a mutex, and saves the whole collection back after every change.
package store

import (
	"encoding/json"
	"log/slog"

	"github.com/dormmate/dormmate/internal/storage"
)

// loadSlice reads and parses a slot. Absent or corrupt data is treated as
// "no data": the store starts empty and the session continues.
func loadSlice[T any](slots *storage.SlotStore, logger *slog.Logger, key string) []T {
	data, err := slots.Load(key)
	if err != nil {
		logger.Warn("load slot failed, starting empty", "key", key, "error", err)
		return nil
	}
	if data == nil {
		return nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		logger.Warn("corrupt slot, starting empty", "key", key, "error", err)
		return nil
	}
	return items
}

// saveSlice writes the whole collection back to its slot. A write failure is
// logged and otherwise ignored: the in-memory state stays authoritative and
// the next mutation rewrites the full slot anyway.
func saveSlice[T any](slots *storage.SlotStore, logger *slog.Logger, key string, items []T) {
	data, err := json.Marshal(items)
	if err != nil {
		logger.Error("marshal collection", "key", key, "error", err)
		return
	}
	if err := slots.Save(key, data); err != nil {
		logger.Error("save slot", "key", key, "error", err)
	}
}
