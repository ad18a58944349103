package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
)

// randReader is the secure random source used for salts and nonces.
// It defaults to crypto/rand but can be overridden for testing.
var randReader io.Reader = rand.Reader

// Random fills buf with bytes from the secure random source. On failure no
// partial fill is exposed: buf is zeroed before the error is returned.
func Random(buf []byte) error {
	if _, err := io.ReadFull(randReader, buf); err != nil {
		Zero(buf)
		return fmt.Errorf("%w: %v", ErrRandomFailed, err)
	}
	return nil
}
