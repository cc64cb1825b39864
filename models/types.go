// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Voting method constants
const (
	MethodPlurality        = "plurality"
	MethodTwoRound         = "two-round"
	MethodMinimax          = "minimax"
	MethodRankedPairs      = "ranked-pairs"
	MethodSchulze          = "schulze"
	MethodMajorityJudgment = "majority-judgment"
)

var validate = validator.New()

// Winner is one entry of a result. The meaning of Score depends on the
// method: pairwise wins, worst pairwise loss, locked out-degree, path
// dominance count, share of voters or majority grade.
type Winner struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// Request types

// A nil rank means the voter expressed no opinion on that candidate.
type ComputeRequest struct {
	Method  string   `json:"method" validate:"required,oneof=plurality two-round minimax ranked-pairs schulze majority-judgment"`
	Labels  []string `json:"labels" validate:"dive,required,max=64"`
	Ballots [][]*int `json:"ballots,omitempty" validate:"required_without=Duel,excluded_with=Duel"`
	Duel    [][]int  `json:"duel,omitempty" validate:"required_without=Ballots"`
}

// Validate checks the request against its struct tags.
func (r *ComputeRequest) Validate() error { return validate.Struct(r) }

// Response types

type MethodsResponse struct {
	Methods []string `json:"methods"`
}

type HistoryResponse struct {
	Results []ResultSnapshot `json:"results"`
}

// Domain types

type ResultSnapshot struct {
	ID         string     `json:"id"`
	Method     string     `json:"method"`
	ComputedAt time.Time  `json:"computed_at"`
	Candidates []string   `json:"candidates"`
	Voters     int        `json:"voters"`
	Condorcet  bool       `json:"condorcet"` // decided by a Condorcet winner
	Winners    []Winner   `json:"winners"`
	Rounds     [][]Winner `json:"rounds,omitempty"` // two-round only
	Duel       [][]int    `json:"duel,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
