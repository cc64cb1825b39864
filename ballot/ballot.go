// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// NoOpinion marks a cell the voter left empty. Valid ranks are >= 0.
const NoOpinion = -1

// MaxLabel is the longest candidate label accepted, in runes.
const MaxLabel = 64

var (
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrCellAlreadySet    = errors.New("cell already set")
	ErrInvalidRank       = errors.New("invalid rank")
	ErrLabelTooLong      = errors.New("label too long")
)

// Ballot is a voters × candidates table of ranks, lower meaning preferred.
// Cells are write-once.
type Ballot struct {
	labels []string
	voters int
	ranks  []int
	meta   [][]string
}

// New creates an empty ballot table for the given candidates and voter count.
func New(labels []string, voters int) (*Ballot, error) {
	if voters < 0 {
		return nil, fmt.Errorf("negative voter count %d: %w", voters, ErrDimensionMismatch)
	}
	if err := CheckLabels(labels); err != nil {
		return nil, err
	}

	b := &Ballot{
		labels: append([]string(nil), labels...),
		voters: voters,
		ranks:  make([]int, voters*len(labels)),
		meta:   make([][]string, voters),
	}
	for i := range b.ranks {
		b.ranks[i] = NoOpinion
	}
	return b, nil
}

// FromRanks builds a ballot from one row of ranks per voter.
// NoOpinion cells are left unset.
func FromRanks(labels []string, rows [][]int) (*Ballot, error) {
	b, err := New(labels, len(rows))
	if err != nil {
		return nil, err
	}
	for v, row := range rows {
		if len(row) != len(labels) {
			return nil, fmt.Errorf("voter %d has %d ranks for %d candidates: %w",
				v, len(row), len(labels), ErrDimensionMismatch)
		}
		for c, rank := range row {
			if rank == NoOpinion {
				continue
			}
			if err := b.Set(v, c, rank); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}

// CheckLabels rejects labels longer than MaxLabel.
func CheckLabels(labels []string) error {
	for i, l := range labels {
		if utf8.RuneCountInString(l) > MaxLabel {
			return fmt.Errorf("label %d is longer than %d: %w", i, MaxLabel, ErrLabelTooLong)
		}
	}
	return nil
}

// Voters returns the number of ballot rows.
func (b *Ballot) Voters() int { return b.voters }

// Candidates returns the number of candidate columns.
func (b *Ballot) Candidates() int { return len(b.labels) }

// Label returns the display label of candidate c.
func (b *Ballot) Label(c int) string { return b.labels[c] }

// Labels returns a copy of the candidate labels.
func (b *Ballot) Labels() []string { return append([]string(nil), b.labels...) }

func (b *Ballot) index(v, c int) (int, error) {
	if v < 0 || v >= b.voters || c < 0 || c >= len(b.labels) {
		return 0, fmt.Errorf("cell (%d,%d) outside %dx%d: %w",
			v, c, b.voters, len(b.labels), ErrIndexOutOfRange)
	}
	return v*len(b.labels) + c, nil
}

// Set records voter v's rank for candidate c.
func (b *Ballot) Set(v, c, rank int) error {
	i, err := b.index(v, c)
	if err != nil {
		return err
	}
	if rank < 0 {
		return fmt.Errorf("rank %d at (%d,%d): %w", rank, v, c, ErrInvalidRank)
	}
	if b.ranks[i] != NoOpinion {
		return fmt.Errorf("cell (%d,%d): %w", v, c, ErrCellAlreadySet)
	}
	b.ranks[i] = rank
	return nil
}

// At returns voter v's rank for candidate c, or NoOpinion.
func (b *Ballot) At(v, c int) (int, error) {
	i, err := b.index(v, c)
	if err != nil {
		return 0, err
	}
	return b.ranks[i], nil
}

// Rank is At for callers that already iterate within bounds.
// It panics on an out-of-range cell.
func (b *Ballot) Rank(v, c int) int {
	i, err := b.index(v, c)
	if err != nil {
		panic(err)
	}
	return b.ranks[i]
}

// SetMeta stores the leading metadata fields of voter v's row.
func (b *Ballot) SetMeta(v int, fields []string) error {
	if v < 0 || v >= b.voters {
		return fmt.Errorf("voter %d outside %d voters: %w", v, b.voters, ErrIndexOutOfRange)
	}
	b.meta[v] = append([]string(nil), fields...)
	return nil
}

// Meta returns voter v's metadata fields, nil when none were recorded.
func (b *Ballot) Meta(v int) []string {
	if v < 0 || v >= b.voters {
		return nil
	}
	return b.meta[v]
}

// Prefers reports whether rank a is strictly better than rank b.
// NoOpinion loses to any valid rank and ties with itself.
func Prefers(a, b int) bool {
	if a == NoOpinion {
		return false
	}
	return b == NoOpinion || a < b
}
