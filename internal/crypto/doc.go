// Package crypto provides the cryptographic primitives for the rawkey
// capsule construction.
//
// # Algorithm Suite
//
// The package uses the following cryptographic algorithms:
//
//   - BLAKE2b (RFC 7693) in keyed KDF mode: derives the symmetric key from
//     the user secret and a per-capsule salt. The user secret is the BLAKE2b
//     key parameter (hence the 64-byte secret limit) and the salt is the
//     16-byte BLAKE2b salt parameter; the message and personalization are
//     empty and the digest length is 32 bytes.
//
//   - ChaCha20-Poly1305 (RFC 8439, IETF variant): authenticated encryption
//     with a 12-byte nonce and a 16-byte tag. No associated data is used.
//
// # Security Model
//
// The construction provides:
//
//   - Confidentiality: only a holder of the user secret can recover a
//     sealed payload.
//   - Integrity: tampering with any capsule byte causes open to fail.
//   - Per-capsule freshness: salt and nonce are independent random draws
//     for every seal, so sealing the same payload twice never produces the
//     same capsule and derived keys are never reused.
//
// # Critical Security Notes
//
// The single ErrOpenFailed error deliberately covers every authentication
// and primitive-level open failure. Distinguishing "wrong password" from
// "corrupted ciphertext" would hand an attacker an oracle; callers that
// need diagnostics must obtain them out of band.
//
// Derived keys are as sensitive as the user secret itself. Every function
// in this package that produces or consumes key material zeroes its scratch
// buffers before returning; callers own the zeroing of buffers they hold.
package crypto
