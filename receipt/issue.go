// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package receipt

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"
)

// Pair is a freshly issued voter key and the digest that goes in the ballot
// file.
type Pair struct {
	Key    string
	Digest string
}

// NewKey creates a random voter key with 192 bits of entropy.
func NewKey() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate voter key: %w", err)
	}
	// URL-safe base64 without padding
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}

// Issue creates n distinct voter keys with their digests.
func Issue(n int) ([]Pair, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot issue %d keys", n)
	}
	pairs := make([]Pair, 0, n)
	seen := make(map[string]bool, n)
	for len(pairs) < n {
		key, err := NewKey()
		if err != nil {
			return nil, err
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		pairs = append(pairs, Pair{Key: key, Digest: Digest(key)})
	}
	return pairs, nil
}
