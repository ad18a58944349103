package rawkey

// formatUID is the fixed, opaque identifier of the capsule wire format.
// It is never embedded in capsules; hosts compare it out of band.
const formatUID = "de.KizzyCode.RawKey.7ABD7A67-49EC-46B6-B881-1B6FD7E03E01"

// Operation names an engine operation for size prediction.
type Operation string

const (
	// OpSeal is the seal operation.
	OpSeal Operation = "seal"
	// OpOpen is the open operation.
	OpOpen Operation = "open"
	// OpFormatUID is the format identifier query.
	OpFormatUID Operation = "capsule_format_uid"
	// OpConfigurations is the configuration enumeration query.
	OpConfigurations Operation = "configurations"
)

// RetriesUnlimited marks an unbounded retry allowance.
const RetriesUnlimited = ^uint64(0)

// AuthRequirement describes what a configuration demands from callers
// before it will open a capsule.
type AuthRequirement struct {
	// SecretRequired reports whether a user secret must be supplied.
	SecretRequired bool
	// RetriesAllowed is the number of failed attempts the engine tolerates
	// before locking out; RetriesUnlimited means no lockout policy.
	RetriesAllowed uint64
}

// PredictSize returns the exact output size in bytes that op will require
// for an input of inputLen bytes. For OpOpen the prediction is a safe upper
// bound, since a payload is always shorter than its capsule. Unknown
// operations fail with ErrUnknownOperation.
func (e *Engine) PredictSize(op Operation, inputLen int) (int, error) {
	switch op {
	case OpSeal:
		return inputLen + CapsuleOverhead, nil
	case OpOpen:
		return inputLen, nil
	case OpFormatUID:
		return len(formatUID), nil
	case OpConfigurations:
		return len(Construction), nil
	}
	return 0, ErrUnknownOperation
}

// FormatUID returns the fixed identifier of the capsule wire format.
func (e *Engine) FormatUID() string {
	return formatUID
}

// Configurations enumerates the supported constructions. There is exactly
// one: the BLAKE2b-KDF / ChaCha20-Poly1305-IETF pairing.
func (e *Engine) Configurations() []string {
	return []string{Construction}
}

// AuthRequirements reports the authentication policy for a configuration:
// a user secret is always required and retries are unbounded (this engine
// implements no lockout). Unknown configuration names fail with
// ErrUnsupportedConfiguration.
func (e *Engine) AuthRequirements(config string) (AuthRequirement, error) {
	if config != Construction {
		return AuthRequirement{}, &ConfigurationError{Name: config}
	}

	return AuthRequirement{
		SecretRequired: true,
		RetriesAllowed: RetriesUnlimited,
	}, nil
}
