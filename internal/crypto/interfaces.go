package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyDeriver turns a user identifier into that user's symmetric key.
//
// Derivation is deterministic: the same user id always yields the same key,
// and no key material is ever persisted. Anyone who knows the salt and a
// user id can recompute the key, so the salt is the only secret protecting
// stored records.
type KeyDeriver interface {
	// KeyFor stretches the decimal form of userID with PBKDF2-HMAC-SHA256.
	KeyFor(userID int64) Key
}

// Cipher performs authenticated symmetric encryption of credential secrets.
type Cipher interface {
	// Encrypt seals plaintext under key and returns text that is safe to
	// store in a TEXT column.
	Encrypt(plaintext string, key Key) (string, error)

	// Decrypt opens a value produced by Encrypt. Any failure (malformed
	// encoding, tampered token, wrong key) is reported as [ErrDecryption].
	Decrypt(ciphertext string, key Key) (string, error)
}
