// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package duel

import (
	"errors"
	"fmt"

	"github.com/danielhkuo/quickly-tally/ballot"
)

// ErrInvalidVotes reports a negative count in a directly entered matrix.
var ErrInvalidVotes = errors.New("invalid vote count")

// Matrix is a square table where Votes(x, y) is the number of voters who
// strictly prefer x over y. It is immutable once built.
type Matrix struct {
	labels []string
	votes  []int
}

// New builds a matrix from directly entered rows. The diagonal is ignored.
func New(labels []string, rows [][]int) (*Matrix, error) {
	n := len(labels)
	if err := ballot.CheckLabels(labels); err != nil {
		return nil, err
	}
	if len(rows) != n {
		return nil, fmt.Errorf("%d rows for %d candidates: %w", len(rows), n, ballot.ErrDimensionMismatch)
	}

	m := &Matrix{
		labels: append([]string(nil), labels...),
		votes:  make([]int, n*n),
	}
	for x, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d columns for %d candidates: %w",
				x, len(row), n, ballot.ErrDimensionMismatch)
		}
		for y, v := range row {
			if x == y {
				continue
			}
			if v < 0 {
				return nil, fmt.Errorf("cell (%d,%d) = %d: %w", x, y, v, ErrInvalidVotes)
			}
			m.votes[x*n+y] = v
		}
	}
	return m, nil
}

// FromBallot tallies every voter's preference on every unordered pair.
// A pair contributes at most one vote per voter; ties contribute nothing.
func FromBallot(b *ballot.Ballot) *Matrix {
	n := b.Candidates()
	m := &Matrix{
		labels: b.Labels(),
		votes:  make([]int, n*n),
	}

	for v := 0; v < b.Voters(); v++ {
		for x := 0; x < n; x++ {
			rx := b.Rank(v, x)
			for y := x + 1; y < n; y++ {
				ry := b.Rank(v, y)
				switch {
				case ballot.Prefers(rx, ry):
					m.votes[x*n+y]++
				case ballot.Prefers(ry, rx):
					m.votes[y*n+x]++
				}
			}
		}
	}
	return m
}

// Size returns the number of candidates.
func (m *Matrix) Size() int { return len(m.labels) }

// Label returns the display label of candidate i.
func (m *Matrix) Label(i int) string { return m.labels[i] }

// Labels returns a copy of the candidate labels.
func (m *Matrix) Labels() []string { return append([]string(nil), m.labels...) }

// At returns the votes preferring x over y.
func (m *Matrix) At(x, y int) (int, error) {
	n := len(m.labels)
	if x < 0 || x >= n || y < 0 || y >= n {
		return 0, fmt.Errorf("duel (%d,%d) outside %dx%d: %w", x, y, n, n, ballot.ErrIndexOutOfRange)
	}
	return m.votes[x*n+y], nil
}

// Votes is At without the error return; it panics when out of range.
func (m *Matrix) Votes(x, y int) int {
	v, err := m.At(x, y)
	if err != nil {
		panic(err)
	}
	return v
}

// Margin is x's votes against y minus y's votes against x.
func (m *Matrix) Margin(x, y int) int { return m.Votes(x, y) - m.Votes(y, x) }

// Beats reports a strict pairwise victory of x over y.
func (m *Matrix) Beats(x, y int) bool { return m.Margin(x, y) > 0 }

// Rows returns a deep copy of the table.
func (m *Matrix) Rows() [][]int {
	n := len(m.labels)
	rows := make([][]int, n)
	for x := range rows {
		rows[x] = append([]int(nil), m.votes[x*n:(x+1)*n]...)
	}
	return rows
}
