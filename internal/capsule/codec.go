// Package capsule implements the rawkey capsule codec: the binary framing
// and the seal/open orchestration on top of the primitives in
// internal/crypto.
//
// A capsule is laid out as
//
//	salt[16] || nonce[12] || ciphertext[n] || tag[16]
//
// for a total of n+44 bytes, where n is the payload length. There is no
// version byte or algorithm identifier in the capsule itself; construction
// identity is negotiated out of band.
package capsule

import (
	"errors"

	"github.com/rawkey/capsule-go/internal/crypto"
)

// Overhead is the number of bytes a capsule adds on top of its payload.
const Overhead = crypto.Overhead

// ErrTruncated is returned by Open for any input shorter than Overhead.
// Such inputs are rejected before any cryptographic work is performed.
var ErrTruncated = errors.New("truncated capsule")

// Seal protects payload under secret and returns a freshly assembled
// capsule of exactly len(payload)+Overhead bytes.
//
// The salt and nonce are independent draws from the secure random source,
// and the AEAD key is derived per call and zeroed before Seal returns. On
// any failure the result is nil; a partially written capsule is never
// exposed.
func Seal(secret, payload []byte) ([]byte, error) {
	buf := make([]byte, crypto.SaltSize+crypto.NonceSize, len(payload)+Overhead)
	salt := buf[:crypto.SaltSize]
	nonce := buf[crypto.SaltSize:]

	if err := crypto.Random(salt); err != nil {
		return nil, err
	}
	if err := crypto.Random(nonce); err != nil {
		return nil, err
	}

	key, err := crypto.DeriveKey(secret, salt)
	if err != nil {
		return nil, err
	}
	defer crypto.Zero(key)

	// Appends ciphertext and tag in place; buf has exact capacity.
	return crypto.Seal(buf, key, nonce, payload)
}

// Open verifies and decrypts a capsule produced by Seal with the same
// secret, returning the original payload.
//
// Inputs shorter than Overhead fail with ErrTruncated before any
// cryptographic work. Authentication failures and primitive-level open
// failures all surface as crypto.ErrOpenFailed, deliberately
// undifferentiated.
func Open(secret, capsule []byte) ([]byte, error) {
	if len(capsule) < Overhead {
		return nil, ErrTruncated
	}

	salt := capsule[:crypto.SaltSize]
	nonce := capsule[crypto.SaltSize : crypto.SaltSize+crypto.NonceSize]
	remainder := capsule[crypto.SaltSize+crypto.NonceSize:]

	key, err := crypto.DeriveKey(secret, salt)
	if err != nil {
		return nil, err
	}
	defer crypto.Zero(key)

	return crypto.Open(key, nonce, remainder)
}
