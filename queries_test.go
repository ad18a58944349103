package rawkey

import (
	"errors"
	"testing"
)

func TestPredictSize(t *testing.T) {
	tests := []struct {
		name     string
		op       Operation
		inputLen int
		want     int
	}{
		{"seal empty", OpSeal, 0, CapsuleOverhead},
		{"seal payload", OpSeal, 100, 100 + CapsuleOverhead},
		{"open", OpOpen, 144, 144},
		{"format uid", OpFormatUID, 0, len(formatUID)},
		{"configurations", OpConfigurations, 0, len(Construction)},
	}

	engine := New()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.PredictSize(tt.op, tt.inputLen)
			if err != nil {
				t.Fatalf("PredictSize() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("PredictSize() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPredictSize_UnknownOperation(t *testing.T) {
	engine := New()

	if _, err := engine.PredictSize(Operation("compress"), 10); !errors.Is(err, ErrUnknownOperation) {
		t.Errorf("error = %v, want ErrUnknownOperation", err)
	}
}

// PredictSize must agree with what Seal actually produces.
func TestPredictSize_MatchesSeal(t *testing.T) {
	engine := New()
	secret := []byte("secret")

	for _, n := range []int{0, 1, 44, 1000} {
		predicted, err := engine.PredictSize(OpSeal, n)
		if err != nil {
			t.Fatalf("PredictSize() error = %v", err)
		}

		capsule, err := engine.Seal(secret, make([]byte, n))
		if err != nil {
			t.Fatalf("Seal() error = %v", err)
		}

		if len(capsule) != predicted {
			t.Errorf("payload %d: capsule length = %d, predicted %d", n, len(capsule), predicted)
		}

		// And the open prediction is a safe upper bound on the payload.
		bound, err := engine.PredictSize(OpOpen, len(capsule))
		if err != nil {
			t.Fatalf("PredictSize() error = %v", err)
		}
		if n > bound {
			t.Errorf("payload %d exceeds open bound %d", n, bound)
		}
	}
}

func TestFormatUID(t *testing.T) {
	engine := New()

	uid := engine.FormatUID()
	if uid != "de.KizzyCode.RawKey.7ABD7A67-49EC-46B6-B881-1B6FD7E03E01" {
		t.Errorf("FormatUID() = %q", uid)
	}
}

func TestConfigurations(t *testing.T) {
	engine := New()

	configs := engine.Configurations()
	if len(configs) != 1 {
		t.Fatalf("Configurations() returned %d entries, want 1", len(configs))
	}
	if configs[0] != Construction {
		t.Errorf("Configurations()[0] = %q, want %q", configs[0], Construction)
	}
}

func TestAuthRequirements(t *testing.T) {
	engine := New()

	req, err := engine.AuthRequirements(Construction)
	if err != nil {
		t.Fatalf("AuthRequirements() error = %v", err)
	}
	if !req.SecretRequired {
		t.Error("SecretRequired = false, want true")
	}
	if req.RetriesAllowed != RetriesUnlimited {
		t.Errorf("RetriesAllowed = %d, want RetriesUnlimited", req.RetriesAllowed)
	}
}

func TestAuthRequirements_UnknownConfiguration(t *testing.T) {
	engine := New()

	if _, err := engine.AuthRequirements("PBKDF2:AES-256-GCM"); !errors.Is(err, ErrUnsupportedConfiguration) {
		t.Errorf("error = %v, want ErrUnsupportedConfiguration", err)
	}
}
