// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/danielhkuo/quickly-tally/ballot"
	"github.com/danielhkuo/quickly-tally/cliparse"
	"github.com/danielhkuo/quickly-tally/db"
	"github.com/danielhkuo/quickly-tally/duel"
	"github.com/danielhkuo/quickly-tally/election"
	"github.com/danielhkuo/quickly-tally/middleware"
	"github.com/danielhkuo/quickly-tally/models"
)

// History page sizes for GET /elections
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

type ElectionHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewElectionHandler(db *sql.DB, cfg cliparse.Config) *ElectionHandler {
	return &ElectionHandler{db: db, cfg: cfg}
}

// Compute handles POST /elections
func (h *ElectionHandler) Compute(w http.ResponseWriter, r *http.Request) {
	var req models.ComputeRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := req.Validate(); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	in, err := buildInput(req)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	snap, err := election.Run(req.Method, in)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := db.SaveSnapshot(r.Context(), h.db, snap); err != nil {
		slog.Error("failed to archive result", "error", err, "method", snap.Method)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to archive result")
		return
	}

	slog.Info("election computed",
		"snapshot_id", snap.ID,
		"method", snap.Method,
		"candidates", len(snap.Candidates),
		"voters", snap.Voters,
		"winners", len(snap.Winners),
	)

	middleware.JSONResponse(w, http.StatusCreated, snap)
}

// GetResult handles GET /elections/{id}
func (h *ElectionHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return
	}

	snap, err := db.GetSnapshot(r.Context(), h.db, id)
	if errors.Is(err, db.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Result not found")
		return
	}
	if err != nil {
		slog.Error("failed to load result", "error", err, "snapshot_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, snap)
}

// ListResults handles GET /elections?limit=N
func (h *ElectionHandler) ListResults(w http.ResponseWriter, r *http.Request) {
	limit := DefaultListLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > MaxListLimit {
			middleware.ErrorResponse(w, http.StatusBadRequest,
				fmt.Sprintf("limit must be between 1 and %d", MaxListLimit))
			return
		}
		limit = n
	}

	snaps, err := db.ListSnapshots(r.Context(), h.db, limit)
	if err != nil {
		slog.Error("failed to list results", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.HistoryResponse{Results: snaps})
}

// ListMethods handles GET /methods
func (h *ElectionHandler) ListMethods(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.MethodsResponse{Methods: election.Methods()})
}

// buildInput turns a request into a ballot or a duel matrix.
func buildInput(req models.ComputeRequest) (election.Input, error) {
	if req.Ballots == nil {
		d, err := duel.New(req.Labels, req.Duel)
		if err != nil {
			return election.Input{}, err
		}
		return election.Input{Duel: d}, nil
	}

	b, err := ballot.New(req.Labels, len(req.Ballots))
	if err != nil {
		return election.Input{}, err
	}
	for v, row := range req.Ballots {
		if len(row) != len(req.Labels) {
			return election.Input{}, fmt.Errorf("ballot %d has %d ranks for %d candidates: %w",
				v, len(row), len(req.Labels), ballot.ErrDimensionMismatch)
		}
		for c, rank := range row {
			if rank == nil {
				continue
			}
			if err := b.Set(v, c, *rank); err != nil {
				return election.Input{}, fmt.Errorf("ballot %d: %w", v, err)
			}
		}
	}
	return election.Input{Ballot: b}, nil
}

// validationMessage names the first failing field.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required", "required_without":
		return fmt.Sprintf("%s is required", fe.Field())
	case "excluded_with":
		return "give ballots or duel, not both"
	case "oneof":
		return fmt.Sprintf("unknown method %q", fe.Value())
	case "max":
		return fmt.Sprintf("%s is longer than %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
