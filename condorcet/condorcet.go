// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package condorcet

import (
	"github.com/danielhkuo/quickly-tally/duel"
	"github.com/danielhkuo/quickly-tally/models"
)

// Wins returns, per candidate, the number of opponents it strictly beats.
func Wins(d *duel.Matrix) []int {
	n := d.Size()
	wins := make([]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && d.Beats(i, j) {
				wins[i]++
			}
		}
	}
	return wins
}

// Winner returns the candidate whose pairwise win count is strictly above
// everyone else's. The boolean is false when no such candidate exists,
// which is an ordinary outcome and not an error.
func Winner(d *duel.Matrix) (models.Winner, bool) {
	wins := Wins(d)
	if len(wins) == 0 {
		return models.Winner{}, false
	}

	best, unique := 0, true
	for i := 1; i < len(wins); i++ {
		switch {
		case wins[i] > wins[best]:
			best, unique = i, true
		case wins[i] == wins[best]:
			unique = false
		}
	}
	if !unique {
		return models.Winner{}, false
	}
	return models.Winner{Name: d.Label(best), Score: float64(wins[best])}, true
}

// resolve short-circuits on a Condorcet winner before running fallback.
func resolve(d *duel.Matrix, fallback func(*duel.Matrix) []models.Winner) []models.Winner {
	if d.Size() == 0 {
		return []models.Winner{}
	}
	if w, ok := Winner(d); ok {
		return []models.Winner{w}
	}
	return fallback(d)
}

// selectWinners returns every candidate whose score equals the best one
// under better, in candidate order.
func selectWinners(d *duel.Matrix, scores []int, better func(a, b int) bool) []models.Winner {
	winners := []models.Winner{}
	if len(scores) == 0 {
		return winners
	}

	best := scores[0]
	for _, s := range scores[1:] {
		if better(s, best) {
			best = s
		}
	}
	for i, s := range scores {
		if s == best {
			winners = append(winners, models.Winner{Name: d.Label(i), Score: float64(s)})
		}
	}
	return winners
}

func greater(a, b int) bool { return a > b }
func less(a, b int) bool    { return a < b }
