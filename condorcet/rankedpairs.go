// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Ranked Pairs

Steps:
 1. Build one arc per decided pair, winner -> loser, weighted by the
    winner's votes (see Arcs).
 2. Sort by weight descending; equal weights keep (From, To) index order.
 3. Lock each arc into an empty Graph unless its head already reaches its
    tail, which would close a cycle.
 4. Candidates with the highest out-degree in the locked graph win.

Complexity: O(n² log n) for the sort, O(n²) reachability per arc.
*/

package condorcet

import (
	"errors"

	"github.com/danielhkuo/quickly-tally/duel"
	"github.com/danielhkuo/quickly-tally/models"
)

// RankedPairs returns the Condorcet winner when there is one, otherwise the
// candidates with the highest out-degree in the locked graph.
func RankedPairs(d *duel.Matrix) []models.Winner {
	return resolve(d, func(d *duel.Matrix) []models.Winner {
		g := LockedGraph(d)
		degrees := make([]int, g.Size())
		for v := range degrees {
			degrees[v] = g.OutDegree(v)
		}
		return selectWinners(d, degrees, greater)
	})
}

// LockedGraph builds the acyclic preference graph of d.
func LockedGraph(d *duel.Matrix) *Graph {
	g := NewGraph(d.Size())
	for _, a := range Arcs(d) {
		if err := g.AddArc(a); err != nil && !errors.Is(err, ErrCycle) {
			// Arcs only yields indices inside d.
			panic(err)
		}
	}
	return g
}
