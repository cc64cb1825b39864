// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/danielhkuo/quickly-tally/models"
)

var ErrNotFound = errors.New("snapshot not found")

// SaveSnapshot archives a computed result.
func SaveSnapshot(ctx context.Context, db *sql.DB, snap models.ResultSnapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	_, err = db.ExecContext(ctx, `
		INSERT INTO result_snapshot (id, method, computed_at, candidates, voters, payload)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, snap.ID, snap.Method, snap.ComputedAt, len(snap.Candidates), snap.Voters, string(payload))
	if err != nil {
		return fmt.Errorf("failed to insert snapshot: %w", err)
	}
	return nil
}

// GetSnapshot loads one archived result.
func GetSnapshot(ctx context.Context, db *sql.DB, id string) (models.ResultSnapshot, error) {
	var payload string
	err := db.QueryRowContext(ctx, `
		SELECT payload FROM result_snapshot WHERE id = $1
	`, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ResultSnapshot{}, ErrNotFound
	}
	if err != nil {
		return models.ResultSnapshot{}, fmt.Errorf("failed to query snapshot: %w", err)
	}

	return decode(payload)
}

// ListSnapshots returns the most recent results first.
func ListSnapshots(ctx context.Context, db *sql.DB, limit int) ([]models.ResultSnapshot, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT payload FROM result_snapshot
		ORDER BY computed_at DESC, id
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshots: %w", err)
	}
	defer rows.Close()

	snaps := []models.ResultSnapshot{}
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		snap, err := decode(payload)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, snap)
	}

	return snaps, rows.Err()
}

func decode(payload string) (models.ResultSnapshot, error) {
	var snap models.ResultSnapshot
	if err := json.Unmarshal([]byte(payload), &snap); err != nil {
		return models.ResultSnapshot{}, fmt.Errorf("failed to parse snapshot payload: %w", err)
	}
	return snap, nil
}
