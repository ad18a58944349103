package crypto

import "runtime"

// Zero overwrites b with zeros. Used to scrub derived keys and other
// sensitive scratch buffers as soon as they are no longer needed.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
