package crypto

import "errors"

var (
	// ErrRandomFailed is returned when the secure random source fails.
	ErrRandomFailed = errors.New("random generation failed")

	// ErrDeriveFailed is returned when the BLAKE2b KDF fails to derive a key.
	ErrDeriveFailed = errors.New("key derivation failed")

	// ErrSealFailed is returned when the AEAD seal operation fails.
	ErrSealFailed = errors.New("sealing failed")

	// ErrOpenFailed is returned when the AEAD open operation fails. All
	// authentication and primitive-level open failures map to this single
	// error so callers cannot distinguish why verification failed.
	ErrOpenFailed = errors.New("authenticated open failed")

	// ErrInvalidSecretSize is returned when the user secret is outside
	// [MinSecretSize, MaxSecretSize].
	ErrInvalidSecretSize = errors.New("invalid secret size")

	// ErrInvalidSaltSize is returned when the salt is not SaltSize bytes.
	ErrInvalidSaltSize = errors.New("invalid salt size")

	// ErrInvalidNonceSize is returned when the nonce is not NonceSize bytes.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrInvalidKeySize is returned when the AEAD key is not KeySize bytes.
	ErrInvalidKeySize = errors.New("invalid key size")
)
