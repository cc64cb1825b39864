// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/quickly-tally/ballot"
	"github.com/danielhkuo/quickly-tally/condorcet"
	"github.com/danielhkuo/quickly-tally/duel"
	"github.com/danielhkuo/quickly-tally/judgment"
	"github.com/danielhkuo/quickly-tally/models"
	"github.com/danielhkuo/quickly-tally/plurality"
)

// MethodAll asks RunAll for every method the input supports.
const MethodAll = "all"

var (
	ErrUnknownMethod  = errors.New("unknown voting method")
	ErrBallotRequired = errors.New("method needs individual ballots")
	ErrNoInput        = errors.New("no ballot or duel matrix given")
)

// Input is what an election is computed from. When both are set, Duel must
// be the tally of Ballot.
type Input struct {
	Ballot *ballot.Ballot
	Duel   *duel.Matrix
}

var condorcetMethods = map[string]func(*duel.Matrix) []models.Winner{
	models.MethodMinimax:     condorcet.Minimax,
	models.MethodRankedPairs: condorcet.RankedPairs,
	models.MethodSchulze:     condorcet.Schulze,
}

// Methods lists every supported method in display order.
func Methods() []string {
	return []string{
		models.MethodPlurality,
		models.MethodTwoRound,
		models.MethodMinimax,
		models.MethodRankedPairs,
		models.MethodSchulze,
		models.MethodMajorityJudgment,
	}
}

// NeedsBallot reports whether method cannot work from a duel matrix alone.
func NeedsBallot(method string) bool {
	_, ok := condorcetMethods[method]
	return !ok
}

// Run computes one method and wraps the result in a new snapshot.
func Run(method string, in Input) (models.ResultSnapshot, error) {
	if in.Ballot == nil && in.Duel == nil {
		return models.ResultSnapshot{}, ErrNoInput
	}

	snap := models.ResultSnapshot{
		ID:         uuid.NewString(),
		Method:     method,
		ComputedAt: time.Now().UTC(),
	}
	if in.Ballot != nil {
		snap.Candidates = in.Ballot.Labels()
		snap.Voters = in.Ballot.Voters()
	} else {
		snap.Candidates = in.Duel.Labels()
	}

	if resolve, ok := condorcetMethods[method]; ok {
		d := in.Duel
		if d == nil {
			d = duel.FromBallot(in.Ballot)
		}
		_, snap.Condorcet = condorcet.Winner(d)
		snap.Winners = resolve(d)
		snap.Duel = d.Rows()
		return snap, nil
	}

	switch method {
	case models.MethodPlurality, models.MethodTwoRound, models.MethodMajorityJudgment:
	default:
		return models.ResultSnapshot{}, fmt.Errorf("%q: %w", method, ErrUnknownMethod)
	}
	if in.Ballot == nil {
		return models.ResultSnapshot{}, fmt.Errorf("%s: %w", method, ErrBallotRequired)
	}

	switch method {
	case models.MethodPlurality:
		snap.Winners = plurality.OneRound(in.Ballot)
	case models.MethodTwoRound:
		out := plurality.TwoRounds(in.Ballot)
		snap.Winners = out.Winners
		snap.Rounds = [][]models.Winner{out.First}
		if out.Second != nil {
			snap.Rounds = append(snap.Rounds, out.Second)
		}
	case models.MethodMajorityJudgment:
		snap.Winners = judgment.Winners(in.Ballot)
	}
	return snap, nil
}

// RunAll computes every method the input supports. The duel matrix is
// tallied once and shared.
func RunAll(in Input) ([]models.ResultSnapshot, error) {
	if in.Ballot != nil && in.Duel == nil {
		in.Duel = duel.FromBallot(in.Ballot)
	}

	var snaps []models.ResultSnapshot
	for _, m := range Methods() {
		if in.Ballot == nil && NeedsBallot(m) {
			continue
		}
		snap, err := Run(m, in)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, snap)
	}
	return snaps, nil
}
