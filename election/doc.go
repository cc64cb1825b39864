// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package election dispatches a method name to the right resolver.

	snap, err := election.Run(models.MethodSchulze, election.Input{Ballot: b})

Condorcet-family methods (minimax, ranked-pairs, schulze) accept a ballot or
a duel matrix; plurality, two-round and majority-judgment need the ballot
and return ErrBallotRequired otherwise.

Every call returns a fresh models.ResultSnapshot with a random UUID and a
UTC timestamp, ready to be archived.
*/
package election
