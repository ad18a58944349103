package rawkey

import (
	"errors"
	"fmt"

	"github.com/rawkey/capsule-go/internal/capsule"
	"github.com/rawkey/capsule-go/internal/crypto"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingSecret is returned when no user secret is provided.
	ErrMissingSecret = errors.New("user secret is required")

	// ErrUnsupportedSecretLength is returned when a user secret is present
	// but outside the supported 1..64 byte range.
	ErrUnsupportedSecretLength = errors.New("unsupported user secret length")

	// ErrUnsupportedConfiguration is returned when a caller requests a
	// construction other than the single supported one.
	ErrUnsupportedConfiguration = errors.New("unsupported configuration")

	// ErrTruncatedCapsule is returned when a capsule is shorter than the
	// fixed overhead. Such inputs are rejected before any cryptographic work.
	ErrTruncatedCapsule = errors.New("truncated capsule")

	// ErrInvalidCapsule is returned when opening a capsule fails
	// authentication. It deliberately does not distinguish a wrong secret
	// from corrupted ciphertext.
	ErrInvalidCapsule = errors.New("invalid capsule")

	// ErrUnknownOperation is returned by PredictSize for an operation name
	// it does not recognize.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrRandomFault is returned when the secure random source fails during
	// sealing. This indicates a broken environment, not bad input.
	ErrRandomFault = errors.New("random generation fault")

	// ErrKeyDerivationFault is returned when the KDF primitive fails.
	// This indicates a broken environment, not bad input.
	ErrKeyDerivationFault = errors.New("key derivation fault")

	// ErrSealingFault is returned when the AEAD seal primitive fails.
	// This indicates a broken environment, not bad input.
	ErrSealingFault = errors.New("sealing fault")
)

// RawKeyError is implemented by all engine errors.
type RawKeyError interface {
	error
	RawKeyError() // marker method
}

// SecretLengthError reports a user secret outside the supported range.
type SecretLengthError struct {
	Length int
}

func (e *SecretLengthError) Error() string {
	return fmt.Sprintf("unsupported user secret length %d: want %d..%d",
		e.Length, MinSecretLength, MaxSecretLength)
}

// Is implements errors.Is for sentinel error matching.
func (e *SecretLengthError) Is(target error) bool {
	return target == ErrUnsupportedSecretLength
}

// RawKeyError implements the RawKeyError interface.
func (e *SecretLengthError) RawKeyError() {}

// ConfigurationError reports a request for a construction this engine does
// not provide.
type ConfigurationError struct {
	Name string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("unsupported configuration %q: only %q is supported", e.Name, Construction)
}

// Is implements errors.Is for sentinel error matching.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrUnsupportedConfiguration
}

// RawKeyError implements the RawKeyError interface.
func (e *ConfigurationError) RawKeyError() {}

// FaultError reports an internal primitive failure. Faults are fatal to the
// single call that hit them and are never caused by adversarial input.
type FaultError struct {
	Stage string // "random", "kdf", "seal"
	Err   error
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("internal fault at %s: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *FaultError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching.
func (e *FaultError) Is(target error) bool {
	switch e.Stage {
	case "random":
		return target == ErrRandomFault
	case "kdf":
		return target == ErrKeyDerivationFault
	case "seal":
		return target == ErrSealingFault
	}
	return false
}

// RawKeyError implements the RawKeyError interface.
func (e *FaultError) RawKeyError() {}

// wrapError converts internal codec errors to public errors.
// This ensures that errors.Is() checks work with public sentinel errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, capsule.ErrTruncated):
		return ErrTruncatedCapsule
	case errors.Is(err, crypto.ErrOpenFailed):
		// One undifferentiated error for every authentication failure.
		return ErrInvalidCapsule
	case errors.Is(err, crypto.ErrInvalidSecretSize):
		// Normally caught at the boundary before the codec runs.
		return &SecretLengthError{}
	case errors.Is(err, crypto.ErrRandomFailed):
		return &FaultError{Stage: "random", Err: err}
	case errors.Is(err, crypto.ErrDeriveFailed), errors.Is(err, crypto.ErrInvalidSaltSize):
		return &FaultError{Stage: "kdf", Err: err}
	case errors.Is(err, crypto.ErrSealFailed),
		errors.Is(err, crypto.ErrInvalidKeySize),
		errors.Is(err, crypto.ErrInvalidNonceSize):
		return &FaultError{Stage: "seal", Err: err}
	}

	return err
}
