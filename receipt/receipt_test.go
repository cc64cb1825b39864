// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package receipt

import (
	"errors"
	"strings"
	"testing"

	"github.com/danielhkuo/quickly-tally/ballot"
)

func TestDigest(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{"known vector", "test", "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"},
		{"whitespace ignored", "  test\n", "9f86d081884c7d659a2feaa0c55ad015a3bf4f1b2b0b822cd15d6c15b0f00a08"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Digest(tt.key); got != tt.want {
				t.Errorf("Digest(%q) = %s, want %s", tt.key, got, tt.want)
			}
		})
	}

	// Verify it's valid lowercase hex
	for _, c := range Digest("another key") {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
			t.Errorf("Digest() contains invalid hex char: %c", c)
		}
	}
}

func newBallot(t *testing.T, meta [][]string) *ballot.Ballot {
	t.Helper()
	b, err := ballot.New([]string{"A", "B"}, len(meta))
	if err != nil {
		t.Fatalf("ballot.New() error = %v", err)
	}
	for v, m := range meta {
		if err := b.SetMeta(v, m); err != nil {
			t.Fatalf("SetMeta() error = %v", err)
		}
	}
	return b
}

func TestCheck(t *testing.T) {
	b := newBallot(t, [][]string{
		{"2025-03-01", Digest("alice-key")},
		{"2025-03-01", strings.ToUpper(Digest("bob-key"))},
		{"2025-03-02"},
	})

	tests := []struct {
		name      string
		column    int
		key       string
		wantVoter int
		wantErr   error
	}{
		{"found", 1, "alice-key", 0, nil},
		{"uppercase digest in file", 1, "bob-key", 1, nil},
		{"unknown key", 1, "mallory-key", -1, ErrNotFound},
		{"wrong column", 0, "alice-key", -1, ErrNotFound},
		{"column past metadata", 5, "alice-key", -1, ErrNoColumn},
		{"negative column", -1, "alice-key", -1, ErrNoColumn},
		{"empty key", 1, "  ", -1, ErrEmptyKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			voter, err := Check(b, tt.column, tt.key)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Check() error = %v, want %v", err, tt.wantErr)
			}
			if voter != tt.wantVoter {
				t.Errorf("Check() voter = %d, want %d", voter, tt.wantVoter)
			}
		})
	}
}

func TestCheck_EmptyBallot(t *testing.T) {
	b := newBallot(t, nil)
	if _, err := Check(b, 0, "key"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Check() error = %v, want ErrNotFound", err)
	}
}
