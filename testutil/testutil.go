// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/quickly-tally/cliparse"
	"github.com/danielhkuo/quickly-tally/db"
	"github.com/danielhkuo/quickly-tally/models"
	_ "modernc.org/sqlite"
)

// SetupTestDB opens a private in-memory SQLite archive with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// Every connection to :memory: is a new database.
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Serve:        true,
		Port:         3318,
		DatabaseURL:  ":memory:",
		DatabaseType: cliparse.DatabaseSQLite,
		InputKind:    cliparse.KindBallot,
		Method:       "all",
	}
}

// Rank returns a pointer to r for building JSON ballots
func Rank(r int) *int {
	return &r
}

// CycleRequest is a rock-paper-scissors election with no Condorcet winner
func CycleRequest(method string) models.ComputeRequest {
	return models.ComputeRequest{
		Method: method,
		Labels: []string{"A", "B", "C"},
		Duel: [][]int{
			{0, 5, 3},
			{3, 0, 5},
			{5, 3, 0},
		},
	}
}

// BallotRequest is a three-voter ranked election that A wins outright
func BallotRequest(method string) models.ComputeRequest {
	return models.ComputeRequest{
		Method: method,
		Labels: []string{"A", "B", "C"},
		Ballots: [][]*int{
			{Rank(0), Rank(1), Rank(2)},
			{Rank(0), Rank(2), Rank(1)},
			{Rank(1), Rank(0), nil},
		},
	}
}

// SaveTestSnapshot archives a snapshot and fails the test on error
func SaveTestSnapshot(t *testing.T, conn *sql.DB, snap models.ResultSnapshot) {
	t.Helper()

	if err := db.SaveSnapshot(t.Context(), conn, snap); err != nil {
		t.Fatalf("Failed to save test snapshot: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
