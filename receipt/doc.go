// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package receipt lets a voter check that their ballot was counted.

Each voter keeps a private key; the ballot file stores only its SHA-256
digest in one of the metadata columns. Check hashes the key and looks it up:

	voter, err := receipt.Check(b, 1, key)
	if errors.Is(err, receipt.ErrNotFound) {
		// not in this ballot file
	}

Issue creates the keys in the first place, returning each key with the
digest to store:

	pairs, err := receipt.Issue(len(voters))

Digests are compared in constant time with hmac.Equal and matched case
insensitively.
*/
package receipt
