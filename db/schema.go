// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the archive.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The same statements run on SQLite and PostgreSQL.
const schema = `
-- Result Snapshots
CREATE TABLE IF NOT EXISTS result_snapshot (
    id TEXT PRIMARY KEY,
    method TEXT NOT NULL,
    computed_at TIMESTAMP NOT NULL,
    candidates INTEGER NOT NULL,
    voters INTEGER NOT NULL,
    payload TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_result_snapshot_computed_at ON result_snapshot(computed_at);
CREATE INDEX IF NOT EXISTS idx_result_snapshot_method ON result_snapshot(method);
`
