// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"fmt"

	"github.com/fernet/fernet-go"
)

// strictURL rejects non-canonical encodings, so a flipped padding bit can
// never decode to the original bytes.
var strictURL = base64.URLEncoding.Strict()

// fernetCipher is the private implementation of [Cipher].
//
// A stored value is base64url(fernet token), where the token itself is
// base64url text. The double encoding matches rows already written by
// earlier deployments.
type fernetCipher struct{}

// NewCipher returns the Fernet-based [Cipher].
func NewCipher() Cipher {
	return fernetCipher{}
}

// Encrypt implements [Cipher].
func (fernetCipher) Encrypt(plaintext string, key Key) (string, error) {
	k := fernet.Key(key)

	token, err := fernet.EncryptAndSign([]byte(plaintext), &k)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncryption, err)
	}

	return base64.URLEncoding.EncodeToString(token), nil
}

// Decrypt implements [Cipher]. Token age is not checked.
func (fernetCipher) Decrypt(ciphertext string, key Key) (string, error) {
	token, err := strictURL.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: outer encoding: %w", ErrDecryption, err)
	}
	if _, err = strictURL.DecodeString(string(token)); err != nil {
		return "", fmt.Errorf("%w: token encoding: %w", ErrDecryption, err)
	}

	k := fernet.Key(key)
	plaintext := fernet.VerifyAndDecrypt(token, 0, []*fernet.Key{&k})
	if plaintext == nil {
		return "", ErrDecryption
	}

	return string(plaintext), nil
}
