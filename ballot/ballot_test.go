// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ballot_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/quickly-tally/ballot"
)

func TestNew_StartsEmpty(t *testing.T) {
	b, err := ballot.New([]string{"A", "B", "C"}, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, b.Voters())
	assert.Equal(t, 3, b.Candidates())
	for v := 0; v < 2; v++ {
		for c := 0; c < 3; c++ {
			assert.Equal(t, ballot.NoOpinion, b.Rank(v, c))
		}
	}
}

func TestNew_RejectsBadDimensions(t *testing.T) {
	_, err := ballot.New([]string{"A"}, -1)
	assert.ErrorIs(t, err, ballot.ErrDimensionMismatch)

	_, err = ballot.New([]string{strings.Repeat("x", ballot.MaxLabel+1)}, 1)
	assert.ErrorIs(t, err, ballot.ErrLabelTooLong)
}

func TestSet_WriteOnce(t *testing.T) {
	b, err := ballot.New([]string{"A", "B"}, 1)
	require.NoError(t, err)

	require.NoError(t, b.Set(0, 1, 2))
	assert.ErrorIs(t, b.Set(0, 1, 3), ballot.ErrCellAlreadySet)

	got, err := b.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, got, "first write must survive")
}

func TestSet_Errors(t *testing.T) {
	b, err := ballot.New([]string{"A", "B"}, 1)
	require.NoError(t, err)

	assert.ErrorIs(t, b.Set(1, 0, 1), ballot.ErrIndexOutOfRange)
	assert.ErrorIs(t, b.Set(0, 2, 1), ballot.ErrIndexOutOfRange)
	assert.ErrorIs(t, b.Set(0, -1, 1), ballot.ErrIndexOutOfRange)
	assert.ErrorIs(t, b.Set(0, 0, -4), ballot.ErrInvalidRank)

	_, err = b.At(3, 3)
	assert.ErrorIs(t, err, ballot.ErrIndexOutOfRange)
	assert.Panics(t, func() { b.Rank(0, 5) })
}

func TestFromRanks(t *testing.T) {
	b, err := ballot.FromRanks([]string{"A", "B"}, [][]int{
		{1, ballot.NoOpinion},
		{2, 1},
	})
	require.NoError(t, err)
	assert.Equal(t, ballot.NoOpinion, b.Rank(0, 1))
	assert.Equal(t, 2, b.Rank(1, 0))

	_, err = ballot.FromRanks([]string{"A", "B"}, [][]int{{1}})
	assert.ErrorIs(t, err, ballot.ErrDimensionMismatch)
}

func TestLabelsAreCopied(t *testing.T) {
	labels := []string{"A", "B"}
	b, err := ballot.New(labels, 0)
	require.NoError(t, err)

	labels[0] = "Z"
	assert.Equal(t, "A", b.Label(0))

	out := b.Labels()
	out[1] = "Y"
	assert.Equal(t, "B", b.Label(1))
}

func TestMeta(t *testing.T) {
	b, err := ballot.New([]string{"A"}, 2)
	require.NoError(t, err)

	require.NoError(t, b.SetMeta(1, []string{"2025-01-01", "abc"}))
	assert.Equal(t, []string{"2025-01-01", "abc"}, b.Meta(1))
	assert.Nil(t, b.Meta(0))
	assert.Nil(t, b.Meta(9))
	assert.ErrorIs(t, b.SetMeta(2, nil), ballot.ErrIndexOutOfRange)
}

func TestPrefers(t *testing.T) {
	tests := []struct {
		name string
		a, b int
		want bool
	}{
		{"lower rank wins", 1, 2, true},
		{"higher rank loses", 3, 2, false},
		{"equal ranks", 2, 2, false},
		{"rank beats no opinion", 9, ballot.NoOpinion, true},
		{"no opinion loses to rank", ballot.NoOpinion, 9, false},
		{"no opinion ties itself", ballot.NoOpinion, ballot.NoOpinion, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ballot.Prefers(tt.a, tt.b))
		})
	}
}
