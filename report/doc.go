// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package report prints election results for a terminal.

Write renders one snapshot:

	schulze: 3 candidates, 1,204 voters
	  Condorcet winner found
	  winner: A (2)

Two-round results list each round before the winners. WriteHistory renders
archived snapshots as an aligned table with relative ages. Colour codes are
only emitted when the caller asks for them; UseColor makes that decision for
a file the way most CLI tools do, honouring NO_COLOR.
*/
package report
