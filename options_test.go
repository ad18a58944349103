package rawkey

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/rawkey/capsule-go/internal/crypto"
)

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)

	engine := New(WithLogger(logger))

	restore := crypto.SetRandReaderForTesting(bytes.NewReader(nil))
	defer restore()

	if _, err := engine.Seal([]byte("secret"), []byte("payload")); !errors.Is(err, ErrRandomFault) {
		t.Fatalf("error = %v, want ErrRandomFault", err)
	}

	out := buf.String()
	if out == "" {
		t.Error("internal fault produced no diagnostic output")
	}
	if bytes.Contains(buf.Bytes(), []byte("secret")) || bytes.Contains(buf.Bytes(), []byte("payload")) {
		t.Error("diagnostics leaked call inputs")
	}
}

func TestWithLogger_Nil(t *testing.T) {
	// A nil logger keeps the discarding default instead of panicking later.
	engine := New(WithLogger(nil))

	if _, err := engine.Seal([]byte("secret"), []byte("payload")); err != nil {
		t.Fatalf("Seal() error = %v", err)
	}
}

func TestDefaultEngine_DiscardsDiagnostics(t *testing.T) {
	// The default engine must work without any logger wired up.
	if _, err := Open([]byte("secret"), make([]byte, CapsuleOverhead)); !errors.Is(err, ErrInvalidCapsule) {
		t.Fatalf("error = %v, want ErrInvalidCapsule", err)
	}
}
