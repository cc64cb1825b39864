// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db archives computed results.

Only result snapshots are stored; ballots never leave memory.

# Schema Creation

CreateSchema initializes the archive table:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for the table and indexes.
The statements and the $n placeholders work with both modernc.org/sqlite
(driver "sqlite") and github.com/lib/pq (driver "postgres").

# Tables

  - result_snapshot: one row per computed result; the full
    models.ResultSnapshot is kept as JSON in payload

# Indexes

  - result_snapshot.computed_at
  - result_snapshot.method

# Access

	err := db.SaveSnapshot(ctx, conn, snap)
	snap, err := db.GetSnapshot(ctx, conn, id)   // ErrNotFound when missing
	recent, err := db.ListSnapshots(ctx, conn, 20)
*/
package db
