// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/quickly-tally/cliparse"
	"github.com/danielhkuo/quickly-tally/handlers"
	"github.com/danielhkuo/quickly-tally/middleware"
)

// NewRouter registers every endpoint and wraps the mux with CORS and panic
// recovery.
func NewRouter(db *sql.DB, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()

	// Initialize handlers
	electionHandler := handlers.NewElectionHandler(db, cfg)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Database unavailable")
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Elections
	mux.HandleFunc("POST /elections", middleware.WithLogging(electionHandler.Compute))
	mux.HandleFunc("GET /elections", middleware.WithLogging(electionHandler.ListResults))
	mux.HandleFunc("GET /elections/{id}", middleware.WithLogging(electionHandler.GetResult))
	mux.HandleFunc("GET /methods", middleware.WithLogging(electionHandler.ListMethods))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quickly-tally API v1"))
	})

	return middleware.Recover(middleware.CORS(mux))
}
