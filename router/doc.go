// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the quickly-tally API.

# Route Registration

NewRouter returns the full handler, already wrapped with CORS and panic
recovery:

	handler := router.NewRouter(db, cfg)

# Endpoints

	GET  /                - Banner
	GET  /health          - 200 when the archive database answers a ping
	POST /elections       - Compute and archive a result
	GET  /elections       - Recent results, newest first
	GET  /elections/{id}  - One archived result
	GET  /methods         - Supported voting methods

The root pattern matches "/" only; other unknown paths are 404.
*/
package router
