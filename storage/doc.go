// Copyright (c) 2025 Lorcania.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package storage persists the match collection as a single JSON document.

# Storage Model

The entire collection lives as one JSON array in one row, keyed by
"matches":

	store := storage.New(db)
	matches := store.LoadAll()
	err := store.SaveAll(matches)

Every write replaces the whole payload; every read loads it back. There
are no per-match rows and no partial updates. Concurrent writers can
overwrite each other; accepted under the single-user, single-device
assumption.

# Convenience Operations

Read-modify-write wrappers over the collection:

	match, ok := store.GetByID(id)
	err := store.Put(match)
	err := store.Remove(id)
	err := store.ClearAll()

# Degraded Reads

Absent, unreadable, or corrupt stored data is logged and treated as an
empty collection. Reads never fail; a fresh scorecard beats a stuck app.
*/
package storage
