package crypto

import "errors"

var (
	// ErrDecryption means a ciphertext could not be authenticated or decoded
	// under the given key. It signals a data-integrity problem, never a
	// caller error.
	ErrDecryption = errors.New("decryption failed")

	ErrEncryption = errors.New("encryption failed")

	ErrEmptySalt      = errors.New("kdf salt must not be empty")
	ErrWeakIterations = errors.New("kdf iteration count too low")
)
