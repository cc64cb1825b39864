// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ballot holds the cast ballots of one election.

A Ballot is a fixed voters × candidates table. Each cell holds a rank
(lower is preferred) or NoOpinion. Cells are write-once: setting a cell a
second time returns ErrCellAlreadySet.

	b, err := ballot.New([]string{"Alice", "Bob"}, 3)
	err = b.Set(0, 1, 1)

Out-of-range access returns ErrIndexOutOfRange from Set and At. Rank is the
unchecked accessor used by the tally loops and panics instead.

Voters may carry metadata (the leading CSV columns, such as a receipt
digest); see SetMeta and Meta.
*/
package ballot
