// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Schulze

Steps:
 1. Seed strength(i,j) with Votes(i,j) when i beats j, 0 otherwise.
 2. Widen every path through each intermediate k:
    strength(i,j) = max(strength(i,j), min(strength(i,k), strength(k,j))).
    With k outermost one pass reaches the fixed point.
 3. Read the strengths as a new duel matrix and count, for every i, the
    opponents j with strength(i,j) >= strength(j,i).
 4. The highest counts win.

Complexity: O(n³) time, O(n²) memory.
*/

package condorcet

import (
	"github.com/danielhkuo/quickly-tally/duel"
	"github.com/danielhkuo/quickly-tally/models"
)

// Schulze returns the Condorcet winner when there is one, otherwise the
// candidates that weakly dominate the most opponents on path strength.
func Schulze(d *duel.Matrix) []models.Winner {
	return resolve(d, func(d *duel.Matrix) []models.Winner {
		strengths, err := duel.New(d.Labels(), PathStrengths(d))
		if err != nil {
			// Strengths are square and non-negative by construction.
			panic(err)
		}

		n := strengths.Size()
		counts := make([]int, n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j && strengths.Votes(i, j) >= strengths.Votes(j, i) {
					counts[i]++
				}
			}
		}
		return selectWinners(d, counts, greater)
	})
}

// PathStrengths returns the strongest path strength for every ordered pair.
// The diagonal is 0.
func PathStrengths(d *duel.Matrix) [][]int {
	n := d.Size()
	p := make([][]int, n)
	for i := range p {
		p[i] = make([]int, n)
		for j := 0; j < n; j++ {
			if i != j && d.Beats(i, j) {
				p[i][j] = d.Votes(i, j)
			}
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if i == k {
				continue
			}
			for j := 0; j < n; j++ {
				if j == i || j == k {
					continue
				}
				if via := min(p[i][k], p[k][j]); via > p[i][j] {
					p[i][j] = via
				}
			}
		}
	}
	return p
}
