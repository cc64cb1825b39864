// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the quickly-tally API.

# Handler Types

ElectionHandler computes elections and serves the result archive. It is
created with the archive database and the server config:

	electionHandler := handlers.NewElectionHandler(db, cfg)

# Endpoints

	POST /elections       → Compute (201 + result snapshot)
	GET  /elections       → ListResults (?limit=1..100, newest first)
	GET  /elections/{id}  → GetResult (404 when unknown)
	GET  /methods         → ListMethods

# Compute Requests

A request names one method, the candidate labels, and either individual
ballots or a pre-tallied duel matrix:

	{
	  "method": "schulze",
	  "labels": ["A", "B", "C"],
	  "ballots": [[0, 1, 2], [1, 0, null]]
	}

Ballot cells are ranks, lower is preferred, and null means no opinion.
Duel cell [i][j] is the number of voters preferring i to j. Plurality,
two-round and majority-judgment need ballots; the Condorcet methods accept
either. Requests are validated with go-playground/validator before the
engine runs; shape and range errors from the engine are reported as 400.

Every computed result is archived before it is returned. Ballots themselves
are never stored.
*/
package handlers
