package crypto

const (
	// SaltSize is the size of the per-capsule KDF salt in bytes. It matches
	// BLAKE2b's native salt parameter size.
	SaltSize = 16
	// NonceSize is the size of a ChaCha20-Poly1305 nonce in bytes.
	NonceSize = 12
	// TagSize is the size of a Poly1305 authentication tag in bytes.
	TagSize = 16

	// KeySize is the size of the derived ChaCha20-Poly1305 key in bytes.
	KeySize = 32

	// MinSecretSize is the minimum user secret length in bytes.
	MinSecretSize = 1
	// MaxSecretSize is the maximum user secret length in bytes. It matches
	// BLAKE2b's key parameter limit, which the KDF consumes directly.
	MaxSecretSize = 64

	// Overhead is the number of bytes a capsule adds on top of its payload:
	// salt, nonce, and authentication tag.
	Overhead = SaltSize + NonceSize + TagSize
)

// Construction is the canonical string representation of the single
// supported KDF/AEAD pairing.
var Construction = "BLAKE2b-KDF:ChaCha20-Poly1305-IETF"
