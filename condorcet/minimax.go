// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package condorcet

import (
	"github.com/danielhkuo/quickly-tally/duel"
	"github.com/danielhkuo/quickly-tally/models"
)

// Minimax returns the Condorcet winner when there is one. Otherwise every
// candidate with the smallest worst defeat wins, the defeat being scored by
// the opponent's raw votes rather than a margin.
func Minimax(d *duel.Matrix) []models.Winner {
	return resolve(d, func(d *duel.Matrix) []models.Winner {
		return selectWinners(d, WorstDefeats(d), less)
	})
}

// WorstDefeats returns max over j of Votes(j, i) for every candidate i.
// A candidate without opponents scores 0.
func WorstDefeats(d *duel.Matrix) []int {
	n := d.Size()
	worst := make([]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j && d.Votes(j, i) > worst[i] {
				worst[i] = d.Votes(j, i)
			}
		}
	}
	return worst
}
