// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package duel builds the pairwise duel matrix, either tallied from a
// ballot.Ballot with FromBallot or entered directly with New.
package duel
