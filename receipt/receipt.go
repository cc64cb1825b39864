// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package receipt

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/danielhkuo/quickly-tally/ballot"
)

var (
	ErrNotFound = errors.New("receipt not found")
	ErrNoColumn = errors.New("no such metadata column")
	ErrEmptyKey = errors.New("empty voter key")
)

// Digest returns the lowercase hex SHA-256 of a voter's key.
// Surrounding whitespace in the key is ignored.
func Digest(key string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(key)))
	return hex.EncodeToString(sum[:])
}

// Check looks for the digest of key in metadata column column of every
// voter and returns the first matching voter.
func Check(b *ballot.Ballot, column int, key string) (int, error) {
	if strings.TrimSpace(key) == "" {
		return -1, ErrEmptyKey
	}
	if column < 0 {
		return -1, fmt.Errorf("column %d: %w", column, ErrNoColumn)
	}

	want := []byte(Digest(key))
	seen := false
	for v := 0; v < b.Voters(); v++ {
		meta := b.Meta(v)
		if column >= len(meta) {
			continue
		}
		seen = true
		got := []byte(strings.ToLower(strings.TrimSpace(meta[column])))
		// Constant-time compare
		if hmac.Equal(got, want) {
			return v, nil
		}
	}
	if !seen && b.Voters() > 0 {
		return -1, fmt.Errorf("column %d: %w", column, ErrNoColumn)
	}
	return -1, ErrNotFound
}
