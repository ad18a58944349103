// Package rawkey seals secret payloads into password-protected capsules.
//
// Given a low-entropy user secret (a password) and an arbitrary secret
// payload (typically a cryptographic key), the engine derives a fresh
// per-operation key with a BLAKE2b KDF and seals the payload with
// ChaCha20-Poly1305 into a self-contained, authenticated capsule:
//
//	salt[16] || nonce[12] || ciphertext[n] || tag[16]
//
// Only a caller holding the same user secret can open the capsule again.
//
// Basic usage:
//
//	capsule, err := rawkey.Seal([]byte("password"), key)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	key, err = rawkey.Open([]byte("password"), capsule)
//	if errors.Is(err, rawkey.ErrInvalidCapsule) {
//	    // wrong password or tampered capsule; deliberately not
//	    // distinguishable
//	}
//
// Both operations are stateless and safe for concurrent use. User secrets
// must be 1 to 64 bytes; they are never persisted, and derived keys are
// zeroed as soon as each call returns.
package rawkey
