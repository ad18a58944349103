package crypto

import (
	"fmt"

	"github.com/dchest/blake2b"
)

// DeriveKey derives a KeySize-byte AEAD key from a user secret and a salt
// using BLAKE2b in keyed KDF mode. The secret is the BLAKE2b key parameter,
// the salt is the native BLAKE2b salt parameter, and the message and
// personalization are empty, so identical inputs always yield identical
// output.
//
// The caller owns the returned key and must zero it as soon as it is no
// longer needed.
func DeriveKey(secret, salt []byte) ([]byte, error) {
	if len(secret) < MinSecretSize || len(secret) > MaxSecretSize {
		return nil, fmt.Errorf("%w: got %d, want %d..%d",
			ErrInvalidSecretSize, len(secret), MinSecretSize, MaxSecretSize)
	}
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidSaltSize, len(salt), SaltSize)
	}

	h, err := blake2b.New(&blake2b.Config{
		Size: KeySize,
		Key:  secret,
		Salt: salt,
	})
	if err != nil {
		// Only reachable through an internal sizing bug; inputs are
		// validated above.
		return nil, fmt.Errorf("%w: %v", ErrDeriveFailed, err)
	}

	return h.Sum(nil), nil
}
