// Copyright (c) 2025 Lorcania.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes the required table:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS.

# Tables

The schema is a single key/value table:

  - collection: key, JSON payload, updated_at

The match collection is stored as one JSON array under one key. The same
DDL runs on both sqlite and PostgreSQL.
*/
package db
