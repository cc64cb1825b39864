// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs one line per request with method, path, client IP, status and
duration_ms.

# Panic Recovery

Recover answers 500 when a handler panics:

	server := http.Server{
		Handler: middleware.Recover(middleware.CORS(mux)),
	}

# CORS Middleware

CORS allows GET, POST and OPTIONS with a Content-Type header from any origin.
Preflight requests are answered with 204 and never reach the handler.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies (strict: unknown fields and oversized bodies fail):

	var req models.ComputeRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

	ip := middleware.GetClientIP(r)

Checks X-Forwarded-For, then X-Real-IP, then RemoteAddr.
*/
package middleware
