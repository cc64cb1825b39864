// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package condorcet

import (
	"sort"

	"github.com/danielhkuo/quickly-tally/duel"
)

// Arc is a directed edge between two candidate indices.
type Arc struct {
	From   int `json:"from"`
	To     int `json:"to"`
	Weight int `json:"weight"`
}

// Arcs returns one arc per decided pair, from the pairwise winner to the
// loser, weighted by the winner's votes. Tied pairs yield nothing.
// Arcs are ordered by weight descending, then by From and To ascending.
func Arcs(d *duel.Matrix) []Arc {
	n := d.Size()
	var arcs []Arc
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			vij, vji := d.Votes(i, j), d.Votes(j, i)
			switch {
			case vij > vji:
				arcs = append(arcs, Arc{From: i, To: j, Weight: vij})
			case vji > vij:
				arcs = append(arcs, Arc{From: j, To: i, Weight: vji})
			}
		}
	}

	sort.Slice(arcs, func(a, b int) bool {
		x, y := arcs[a], arcs[b]
		if x.Weight != y.Weight {
			return x.Weight > y.Weight
		}
		if x.From != y.From {
			return x.From < y.From
		}
		return x.To < y.To
	})
	return arcs
}
