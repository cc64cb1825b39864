// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db_test

import (
	"errors"
	"testing"
	"time"

	"github.com/danielhkuo/quickly-tally/db"
	"github.com/danielhkuo/quickly-tally/models"
	"github.com/danielhkuo/quickly-tally/testutil"
)

func snapshot(id, method string, at time.Time) models.ResultSnapshot {
	return models.ResultSnapshot{
		ID:         id,
		Method:     method,
		ComputedAt: at,
		Candidates: []string{"A", "B", "C"},
		Voters:     9,
		Winners:    []models.Winner{{Name: "A", Score: 2}},
		Duel:       [][]int{{0, 5, 6}, {4, 0, 5}, {3, 4, 0}},
	}
}

func TestCreateSchema_Idempotent(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("second CreateSchema failed: %v", err)
	}
}

func TestSaveAndGetSnapshot(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	want := snapshot("snap-1", models.MethodSchulze, at)
	want.Condorcet = true

	testutil.SaveTestSnapshot(t, conn, want)

	got, err := db.GetSnapshot(t.Context(), conn, "snap-1")
	if err != nil {
		t.Fatalf("GetSnapshot failed: %v", err)
	}

	if got.ID != want.ID || got.Method != want.Method || !got.Condorcet {
		t.Errorf("unexpected snapshot header: %+v", got)
	}
	if !got.ComputedAt.Equal(at) {
		t.Errorf("expected computed_at %v, got %v", at, got.ComputedAt)
	}
	if len(got.Winners) != 1 || got.Winners[0].Name != "A" || got.Winners[0].Score != 2 {
		t.Errorf("unexpected winners: %+v", got.Winners)
	}
	if len(got.Duel) != 3 || got.Duel[0][2] != 6 {
		t.Errorf("duel matrix not preserved: %v", got.Duel)
	}
}

func TestGetSnapshot_NotFound(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	_, err := db.GetSnapshot(t.Context(), conn, "missing")
	if !errors.Is(err, db.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSaveSnapshot_DuplicateID(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	snap := snapshot("dup", models.MethodMinimax, time.Now().UTC())

	testutil.SaveTestSnapshot(t, conn, snap)
	if err := db.SaveSnapshot(t.Context(), conn, snap); err == nil {
		t.Error("expected error for duplicate snapshot ID")
	}
}

func TestListSnapshots(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	testutil.SaveTestSnapshot(t, conn, snapshot("old", models.MethodPlurality, base))
	testutil.SaveTestSnapshot(t, conn, snapshot("new", models.MethodSchulze, base.Add(2*time.Hour)))
	testutil.SaveTestSnapshot(t, conn, snapshot("mid", models.MethodMinimax, base.Add(time.Hour)))

	snaps, err := db.ListSnapshots(t.Context(), conn, 10)
	if err != nil {
		t.Fatalf("ListSnapshots failed: %v", err)
	}

	if len(snaps) != 3 {
		t.Fatalf("expected 3 snapshots, got %d", len(snaps))
	}
	order := []string{"new", "mid", "old"}
	for i, id := range order {
		if snaps[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, snaps[i].ID)
		}
	}

	limited, err := db.ListSnapshots(t.Context(), conn, 1)
	if err != nil {
		t.Fatalf("ListSnapshots failed: %v", err)
	}
	if len(limited) != 1 || limited[0].ID != "new" {
		t.Errorf("expected only the newest snapshot, got %+v", limited)
	}
}

func TestListSnapshots_Empty(t *testing.T) {
	conn := testutil.SetupTestDB(t)

	snaps, err := db.ListSnapshots(t.Context(), conn, 5)
	if err != nil {
		t.Fatalf("ListSnapshots failed: %v", err)
	}
	if snaps == nil || len(snaps) != 0 {
		t.Errorf("expected empty non-nil list, got %v", snaps)
	}
}
