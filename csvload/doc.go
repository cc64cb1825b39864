// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package csvload reads ballot and duel files.

# Ballot Files

The header lists skip metadata columns followed by the candidate labels.
Each following line is one voter: the metadata fields, then one rank per
candidate. An empty cell means no opinion.

	date,receipt,Alice,Bob,Carol
	2025-03-01,9f86d08...,1,2,
	2025-03-01,2c26b46...,2,1,3

	b, err := csvload.BallotFile("votes.csv", 2)

# Duel Files

The header lists the candidates; line i+1 holds the votes preferring
candidate i over each candidate. Empty cells count as zero.

	Alice,Bob
	,12
	7,

Lines starting with # are ignored in both formats.
*/
package csvload
