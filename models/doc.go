// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types shared by the
engine, the CLI and the API.

# Request Types

  - ComputeRequest: method, labels, and either ballots or a duel matrix

ComputeRequest carries go-playground/validator tags; call Validate before
handing it to the engine.

# Response Types

  - MethodsResponse: supported method names
  - HistoryResponse: archived result snapshots
  - ErrorResponse: error, message

# Domain Types

  - Winner: name and score, used uniformly by every method
  - ResultSnapshot: one computed result, as archived and returned

# Constants

Voting methods:

	MethodPlurality        = "plurality"
	MethodTwoRound         = "two-round"
	MethodMinimax          = "minimax"
	MethodRankedPairs      = "ranked-pairs"
	MethodSchulze          = "schulze"
	MethodMajorityJudgment = "majority-judgment"
*/
package models
