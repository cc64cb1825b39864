// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package plurality

import (
	"github.com/danielhkuo/quickly-tally/ballot"
	"github.com/danielhkuo/quickly-tally/models"
)

// Outcome is the result of a two-round election. Second is nil when the
// first round was decisive.
type Outcome struct {
	First     []models.Winner
	Finalists []string
	Second    []models.Winner
	Winners   []models.Winner
}

// FirstPreference returns the candidate voter v ranks strictly above every
// other allowed candidate, or -1. A nil allowed means every candidate.
func FirstPreference(b *ballot.Ballot, v int, allowed []bool) int {
	best, bestRank, tied := -1, ballot.NoOpinion, false
	for c := 0; c < b.Candidates(); c++ {
		if allowed != nil && !allowed[c] {
			continue
		}
		r := b.Rank(v, c)
		switch {
		case r == ballot.NoOpinion:
		case best == -1 || r < bestRank:
			best, bestRank, tied = c, r, false
		case r == bestRank:
			tied = true
		}
	}
	if tied {
		return -1
	}
	return best
}

// Tally counts first preferences among the allowed candidates.
func Tally(b *ballot.Ballot, allowed []bool) []int {
	tally := make([]int, b.Candidates())
	for v := 0; v < b.Voters(); v++ {
		if c := FirstPreference(b, v, allowed); c >= 0 {
			tally[c]++
		}
	}
	return tally
}

// OneRound returns the candidates with the most first preferences, scored
// as a percentage of all voters. It is empty when no ballot names a single
// first preference.
func OneRound(b *ballot.Ballot) []models.Winner {
	return top(b, Tally(b, nil), nil)
}

// TwoRounds runs a first round and, unless it produced a strict majority or
// several winners, a runoff between every candidate holding one of the two
// highest distinct tallies.
func TwoRounds(b *ballot.Ballot) Outcome {
	tally := Tally(b, nil)
	first := top(b, tally, nil)
	out := Outcome{First: first, Winners: first}

	if len(first) != 1 {
		return out
	}

	highest, second := -1, -1
	for _, t := range tally {
		switch {
		case t > highest:
			highest, second = t, highest
		case t < highest && t > second:
			second = t
		}
	}
	if 2*highest > b.Voters() {
		return out
	}

	advancing := make([]bool, b.Candidates())
	for c, t := range tally {
		if t > 0 && (t == highest || t == second) {
			advancing[c] = true
			out.Finalists = append(out.Finalists, b.Label(c))
		}
	}

	out.Second = top(b, Tally(b, advancing), advancing)
	out.Winners = out.Second
	return out
}

func top(b *ballot.Ballot, tally []int, allowed []bool) []models.Winner {
	winners := []models.Winner{}
	best := 0
	for _, t := range tally {
		best = max(best, t)
	}
	if best == 0 {
		return winners
	}

	for c, t := range tally {
		if t == best && (allowed == nil || allowed[c]) {
			winners = append(winners, models.Winner{
				Name:  b.Label(c),
				Score: 100 * float64(t) / float64(b.Voters()),
			})
		}
	}
	return winners
}
