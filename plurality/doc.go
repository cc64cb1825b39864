// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package plurality implements single-member plurality in one or two rounds.

A voter's first preference is the candidate with the strictly lowest rank
on their ballot. Ballots with a tie at the top, or with no rank at all, count
for nobody.

	winners := plurality.OneRound(b)
	outcome := plurality.TwoRounds(b)

Scores are percentages of all voters, counted or not.
*/
package plurality
