// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package condorcet resolves an election from its duel matrix.

# Condorcet Winner

Winner looks for the candidate with strictly more pairwise victories than
any other. Its absence is reported with ok == false:

	if w, ok := condorcet.Winner(d); ok {
		fmt.Println(w.Name, w.Score)
	}

# Resolvers

Minimax, RankedPairs and Schulze all return the Condorcet winner when there
is one, and only fall back to their own rule otherwise:

  - Minimax: smallest worst defeat (opponent's raw votes); score = that defeat
  - RankedPairs: highest out-degree in the locked Graph; score = out-degree
  - Schulze: most weak path-strength victories; score = that count

Each returns a non-nil list ordered by candidate index. Ties produce several
entries with the same score; an empty matrix yields an empty list.

# Determinism

Ranked Pairs sorts equal-weight arcs by (From, To). Schulze widens paths
with the intermediate candidate outermost, which reaches the fixed point in
one pass.

The matrix is only read, so one duel.Matrix may be shared by every resolver.
*/
package condorcet
