package rawkey

import (
	"github.com/rawkey/capsule-go/internal/capsule"
	"github.com/rawkey/capsule-go/internal/crypto"
)

// User secret policy constants.
const (
	MinSecretLength = crypto.MinSecretSize // Minimum user secret length: 1 byte
	MaxSecretLength = crypto.MaxSecretSize // Maximum user secret length: 64 bytes
)

// CapsuleOverhead is the number of bytes a capsule adds on top of its
// payload: a 16-byte salt, a 12-byte nonce, and a 16-byte tag.
const CapsuleOverhead = capsule.Overhead

// Construction is the name of the single supported KDF/AEAD pairing.
var Construction = crypto.Construction

// Engine seals secret payloads into password-protected capsules and opens
// them again. Both operations are stateless and single-shot: each call
// draws its own salt and nonce, derives its own key, and shares no mutable
// state with any other call, so an Engine is safe for concurrent use.
type Engine struct {
	logger Logger
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	cfg := engineConfig{
		logger: discardLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Engine{logger: cfg.logger}
}

// defaultEngine backs the package-level Seal and Open.
var defaultEngine = New()

// Seal protects payload under userSecret and returns a self-contained
// capsule of exactly len(payload)+CapsuleOverhead bytes.
//
// A fresh random salt and nonce are drawn per call, the AEAD key is derived
// from (userSecret, salt) and zeroed before Seal returns, and the payload
// is sealed with ChaCha20-Poly1305. Sealing the same input twice produces
// different capsules, each of which opens independently.
//
// The secret must be 1..64 bytes: a nil secret fails with
// ErrMissingSecret, any other length outside the range with
// ErrUnsupportedSecretLength. Internal primitive failures surface as
// *FaultError and never leave a partially written capsule behind.
func (e *Engine) Seal(userSecret, payload []byte, opts ...CallOption) ([]byte, error) {
	if err := e.checkCall(userSecret, opts); err != nil {
		return nil, err
	}

	sealed, err := capsule.Seal(userSecret, payload)
	if err != nil {
		err = wrapError(err)
		e.logger.WithError(err).Error("seal failed")
		return nil, err
	}

	return sealed, nil
}

// Open verifies and decrypts a capsule produced by Seal with the same
// secret, returning the original payload of len(capsule)-CapsuleOverhead
// bytes.
//
// Capsules shorter than CapsuleOverhead fail with ErrTruncatedCapsule
// before any cryptographic work. Every authentication failure, whether a
// wrong secret or a tampered capsule, is the single undifferentiated
// ErrInvalidCapsule.
func (e *Engine) Open(userSecret, sealed []byte, opts ...CallOption) ([]byte, error) {
	if err := e.checkCall(userSecret, opts); err != nil {
		return nil, err
	}

	payload, err := capsule.Open(userSecret, sealed)
	if err != nil {
		err = wrapError(err)
		// Diagnostics only; the error itself stays undifferentiated.
		e.logger.WithError(err).Debug("open failed")
		return nil, err
	}

	return payload, nil
}

// checkCall enforces the boundary policy shared by Seal and Open: the
// requested configuration must be the supported one and the user secret
// must be present and of legal length. Violations are rejected before any
// cryptographic work.
func (e *Engine) checkCall(userSecret []byte, opts []CallOption) error {
	cfg := callConfig{configuration: Construction}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.configuration != Construction {
		return &ConfigurationError{Name: cfg.configuration}
	}
	if userSecret == nil {
		return ErrMissingSecret
	}
	if len(userSecret) < MinSecretLength || len(userSecret) > MaxSecretLength {
		return &SecretLengthError{Length: len(userSecret)}
	}
	return nil
}

// Seal protects payload under userSecret using the default engine.
func Seal(userSecret, payload []byte, opts ...CallOption) ([]byte, error) {
	return defaultEngine.Seal(userSecret, payload, opts...)
}

// Open opens a capsule with userSecret using the default engine.
func Open(userSecret, sealed []byte, opts ...CallOption) ([]byte, error) {
	return defaultEngine.Open(userSecret, sealed, opts...)
}
