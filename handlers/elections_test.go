// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/quickly-tally/models"
	"github.com/danielhkuo/quickly-tally/testutil"
)

func TestCompute(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewElectionHandler(db, testutil.GetTestConfig())

	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
		checkResponse  func(t *testing.T, snap *models.ResultSnapshot)
	}{
		{
			name:           "condorcet winner from ballots",
			body:           testutil.BallotRequest(models.MethodSchulze),
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, snap *models.ResultSnapshot) {
				if !snap.Condorcet {
					t.Error("Expected Condorcet flag")
				}
				if len(snap.Winners) != 1 || snap.Winners[0].Name != "A" || snap.Winners[0].Score != 2 {
					t.Errorf("Expected [A 2], got %+v", snap.Winners)
				}
				if snap.Voters != 3 {
					t.Errorf("Expected 3 voters, got %d", snap.Voters)
				}
				// A beats B 2-1 and B beats C 2-1; the blank counts against C.
				if snap.Duel[0][1] != 2 || snap.Duel[1][0] != 1 || snap.Duel[1][2] != 2 || snap.Duel[2][1] != 1 {
					t.Errorf("Unexpected duel matrix %v", snap.Duel)
				}
			},
		},
		{
			name:           "cycle from duel matrix",
			body:           testutil.CycleRequest(models.MethodMinimax),
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, snap *models.ResultSnapshot) {
				if snap.Condorcet {
					t.Error("Cycle must not report a Condorcet winner")
				}
				if len(snap.Winners) != 3 {
					t.Errorf("Expected three-way tie, got %+v", snap.Winners)
				}
				if snap.ID == "" {
					t.Error("Expected snapshot ID")
				}
			},
		},
		{
			name:           "plurality from ballots",
			body:           testutil.BallotRequest(models.MethodPlurality),
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, snap *models.ResultSnapshot) {
				if len(snap.Winners) != 1 || snap.Winners[0].Name != "A" {
					t.Errorf("Expected A, got %+v", snap.Winners)
				}
			},
		},
		{
			name:           "ballot method on duel input",
			body:           testutil.CycleRequest(models.MethodPlurality),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "unknown method",
			body:           testutil.CycleRequest("borda"),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing input",
			body:           models.ComputeRequest{Method: models.MethodSchulze, Labels: []string{"A"}},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "both ballots and duel",
			body: func() models.ComputeRequest {
				req := testutil.BallotRequest(models.MethodSchulze)
				req.Duel = [][]int{{0, 1, 1}, {0, 0, 1}, {0, 0, 0}}
				return req
			}(),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "ragged ballot",
			body: models.ComputeRequest{
				Method:  models.MethodSchulze,
				Labels:  []string{"A", "B"},
				Ballots: [][]*int{{testutil.Rank(0)}},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "negative rank",
			body: models.ComputeRequest{
				Method:  models.MethodSchulze,
				Labels:  []string{"A", "B"},
				Ballots: [][]*int{{testutil.Rank(-2), testutil.Rank(0)}},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "negative duel count",
			body: models.ComputeRequest{
				Method: models.MethodSchulze,
				Labels: []string{"A", "B"},
				Duel:   [][]int{{0, -1}, {1, 0}},
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "empty label",
			body: models.ComputeRequest{
				Method: models.MethodSchulze,
				Labels: []string{"A", ""},
				Duel:   [][]int{{0, 1}, {1, 0}},
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/elections", tt.body, nil)
			w := httptest.NewRecorder()

			handler.Compute(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.checkResponse != nil && w.Code == http.StatusCreated {
				var snap models.ResultSnapshot
				testutil.AssertJSON(t, w, &snap)
				tt.checkResponse(t, &snap)
			}
		})
	}
}

func TestCompute_InvalidJSON(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewElectionHandler(db, testutil.GetTestConfig())

	req := httptest.NewRequest("POST", "/elections", bytes.NewBufferString("{not json"))
	w := httptest.NewRecorder()

	handler.Compute(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != "Invalid JSON" {
		t.Errorf("Expected 'Invalid JSON', got %q", resp.Message)
	}
}

func TestCompute_ArchivesResult(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewElectionHandler(db, testutil.GetTestConfig())

	w := httptest.NewRecorder()
	handler.Compute(w, testutil.MakeRequest("POST", "/elections", testutil.CycleRequest(models.MethodRankedPairs), nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	var created models.ResultSnapshot
	testutil.AssertJSON(t, w, &created)

	req := httptest.NewRequest("GET", "/elections/"+created.ID, nil)
	req.SetPathValue("id", created.ID)
	w = httptest.NewRecorder()
	handler.GetResult(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var fetched models.ResultSnapshot
	testutil.AssertJSON(t, w, &fetched)
	if fetched.ID != created.ID || fetched.Method != models.MethodRankedPairs {
		t.Errorf("Fetched snapshot does not match: %+v", fetched)
	}
	if len(fetched.Winners) != len(created.Winners) {
		t.Errorf("Expected %d winners, got %d", len(created.Winners), len(fetched.Winners))
	}
}

func TestGetResult_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewElectionHandler(db, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/elections/missing", nil)
	req.SetPathValue("id", "missing")
	w := httptest.NewRecorder()

	handler.GetResult(w, req)

	testutil.AssertStatus(t, w, http.StatusNotFound)
}

func TestListResults(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := NewElectionHandler(db, testutil.GetTestConfig())

	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	for i, id := range []string{"first", "second", "third"} {
		testutil.SaveTestSnapshot(t, db, models.ResultSnapshot{
			ID:         id,
			Method:     models.MethodSchulze,
			ComputedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}

	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expectedIDs    []string
	}{
		{"default limit", "", http.StatusOK, []string{"third", "second", "first"}},
		{"limit one", "?limit=1", http.StatusOK, []string{"third"}},
		{"zero limit", "?limit=0", http.StatusBadRequest, nil},
		{"too large", "?limit=1000", http.StatusBadRequest, nil},
		{"not a number", "?limit=ten", http.StatusBadRequest, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/elections"+tt.query, nil)
			w := httptest.NewRecorder()

			handler.ListResults(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus != http.StatusOK {
				return
			}
			var resp models.HistoryResponse
			testutil.AssertJSON(t, w, &resp)
			if len(resp.Results) != len(tt.expectedIDs) {
				t.Fatalf("Expected %d results, got %d", len(tt.expectedIDs), len(resp.Results))
			}
			for i, id := range tt.expectedIDs {
				if resp.Results[i].ID != id {
					t.Errorf("Position %d: expected %s, got %s", i, id, resp.Results[i].ID)
				}
			}
		})
	}
}

func TestListMethods(t *testing.T) {
	handler := NewElectionHandler(nil, testutil.GetTestConfig())

	w := httptest.NewRecorder()
	handler.ListMethods(w, httptest.NewRequest("GET", "/methods", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.MethodsResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Methods) != 6 {
		t.Errorf("Expected 6 methods, got %v", resp.Methods)
	}
}
