// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"fmt"
	"strconv"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// KeyLength is the size of a derived key in bytes (256 bits).
	KeyLength = 32

	// DefaultIterations is the PBKDF2 work factor. Lower values are refused.
	DefaultIterations = 100_000

	// DefaultSalt is the salt shared by every user of a deployment. Rows
	// written with a different salt cannot be decrypted.
	DefaultSalt = "salt_12345678"
)

// Key is a derived 256-bit key. The first half signs tokens and the second
// half encrypts them.
type Key [KeyLength]byte

// pbkdf2Deriver is the private implementation of [KeyDeriver].
type pbkdf2Deriver struct {
	salt       []byte
	iterations int
}

// NewKeyDeriver returns a [KeyDeriver] using salt and iterations. An empty
// salt or fewer than [DefaultIterations] rounds is rejected.
func NewKeyDeriver(salt string, iterations int) (KeyDeriver, error) {
	if salt == "" {
		return nil, ErrEmptySalt
	}
	if iterations < DefaultIterations {
		return nil, fmt.Errorf("%w: %d < %d", ErrWeakIterations, iterations, DefaultIterations)
	}

	return &pbkdf2Deriver{
		salt:       []byte(salt),
		iterations: iterations,
	}, nil
}

// KeyFor implements [KeyDeriver].
func (d *pbkdf2Deriver) KeyFor(userID int64) Key {
	password := strconv.FormatInt(userID, 10)

	var key Key
	copy(key[:], pbkdf2.Key([]byte(password), d.salt, d.iterations, KeyLength, sha256.New))
	return key
}
