// Copyright (c) 2025 Lorcania.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Lorcania11/presstracker/models"
)

// CollectionKey is the single key the whole match collection lives under.
const CollectionKey = "matches"

// Store persists the match collection as one JSON array in one row. Every
// write replaces the whole payload; every read loads it back. This mirrors
// the client's storage contract: no per-match rows, no partial updates, no
// versioning. Concurrent writers can overwrite each other; accepted under
// the single-user, single-device assumption.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// LoadAll returns every stored match. Absent, unreadable, or corrupt data
// is logged and treated as an empty collection, never an error.
func (s *Store) LoadAll() []models.Match {
	var payload []byte
	err := s.db.QueryRow(`
		SELECT payload FROM collection WHERE key = $1
	`, CollectionKey).Scan(&payload)

	if err == sql.ErrNoRows {
		return []models.Match{}
	}
	if err != nil {
		slog.Error("failed to read match collection", "error", err)
		return []models.Match{}
	}

	var matches []models.Match
	if err := json.Unmarshal(payload, &matches); err != nil {
		slog.Error("failed to decode match collection", "error", err)
		return []models.Match{}
	}
	if matches == nil {
		matches = []models.Match{}
	}
	return matches
}

// SaveAll replaces the entire stored collection.
func (s *Store) SaveAll(matches []models.Match) error {
	payload, err := json.Marshal(matches)
	if err != nil {
		return fmt.Errorf("failed to encode match collection: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO collection (key, payload, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET payload = $2, updated_at = $3
	`, CollectionKey, string(payload), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to write match collection: %w", err)
	}
	return nil
}

// GetByID returns the match with the given ID, if stored.
func (s *Store) GetByID(id string) (models.Match, bool) {
	for _, match := range s.LoadAll() {
		if match.ID == id {
			return match, true
		}
	}
	return models.Match{}, false
}

// Put inserts or replaces one match via read-modify-write of the
// collection.
func (s *Store) Put(match models.Match) error {
	matches := s.LoadAll()
	for i := range matches {
		if matches[i].ID == match.ID {
			matches[i] = match
			return s.SaveAll(matches)
		}
	}
	return s.SaveAll(append(matches, match))
}

// Remove deletes one match by ID. Removing an absent match is a no-op.
func (s *Store) Remove(id string) error {
	matches := s.LoadAll()
	kept := matches[:0]
	for _, match := range matches {
		if match.ID != id {
			kept = append(kept, match)
		}
	}
	return s.SaveAll(kept)
}

// ClearAll drops the whole collection.
func (s *Store) ClearAll() error {
	_, err := s.db.Exec(`DELETE FROM collection WHERE key = $1`, CollectionKey)
	if err != nil {
		return fmt.Errorf("failed to clear match collection: %w", err)
	}
	return nil
}
