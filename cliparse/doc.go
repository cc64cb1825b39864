// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Modes

  - -serve: run the HTTP API (archive defaults to quickly-tally.db)
  - -history N: print the N most recent archived results
  - -check KEY: look a voter key up in the ballot file's receipt column
  - -issue N: print N new receipt keys and the digests to store
  - otherwise: compute the election in -i and print the result

# CLI Flags

	-p          Server port (default 3318)
	-d          Database URL
	-t          Database type: sqlite or postgres (default sqlite)
	-i          Ballot or duel CSV file
	-k          Input kind: ballot or duel (default ballot)
	-s          Leading metadata columns in a ballot file
	-m          Voting method, or all (default all)
	-check      Voter key for the receipt check
	-check-col  Metadata column holding receipt digests
	-env        Env file to load (default .env when present)

# Environment Variables

Flags fall back to environment variables:

	PORT              → -p
	DATABASE_URL      → -d
	DATABASE_TYPE     → -t
	TALLY_INPUT       → -i
	TALLY_INPUT_KIND  → -k
	TALLY_SKIP        → -s
	TALLY_METHOD      → -m
	TALLY_RECEIPT_KEY → -check

CLI flags take precedence over environment variables, and variables already
set in the process take precedence over the env file.

# Example

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open(cfg.DriverName(), cfg.DatabaseURL)
	// ...
	mux := router.NewRouter(db, cfg)
*/
package cliparse
