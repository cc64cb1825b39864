// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for quickly-tally.

quickly-tally computes election winners from a static set of ranked ballots
or from a pre-tallied duel matrix. It supports plurality (one and two
rounds), the Condorcet methods Minimax, Ranked Pairs and Schulze, and
Majority Judgment.

# Computing an Election

	go run . -i ballots.csv -s 2          # every method, two metadata columns
	go run . -i duel.csv -k duel -m schulze

Results are printed to stdout. When a database URL is configured they are
also archived.

# Serving the API

	go run . -serve                       # SQLite archive in quickly-tally.db
	go run . -serve -t postgres -d "postgres://..."

# Other Modes

	go run . -history 10 -d quickly-tally.db
	go run . -issue 100 > keys.csv
	TALLY_RECEIPT_KEY=... go run . -i ballots.csv -s 1 -check-col 0

# Configuration

Flags fall back to environment variables, which may come from a .env file.
See package cliparse for the full list.

# Architecture

  - ballot, duel: ballot grid and pairwise duel matrix
  - condorcet: Condorcet check, Minimax, Ranked Pairs, Schulze
  - plurality, judgment: plurality rounds and Majority Judgment
  - election: method dispatch and result snapshots
  - csvload, receipt, report: CSV input, receipt checks, terminal output
  - db: result archive (SQLite or PostgreSQL)
  - handlers, router, middleware: HTTP API
  - models: shared request, response and result types
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
