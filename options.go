package rawkey

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logger is the diagnostic channel used for internal fault reporting.
// It has no correctness impact: engine behavior and errors are identical
// whether or not a logger is wired up, and secrets, keys, payloads, and
// capsule contents are never logged.
type Logger = logrus.FieldLogger

// engineConfig holds configuration for the engine.
type engineConfig struct {
	logger Logger
}

// callConfig holds per-call configuration for Seal and Open.
type callConfig struct {
	configuration string
}

// Option configures the engine.
type Option func(*engineConfig)

// CallOption configures a single Seal or Open call.
type CallOption func(*callConfig)

// WithLogger sets the diagnostic logger. By default diagnostics are
// discarded.
func WithLogger(logger Logger) Option {
	return func(c *engineConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithConfiguration selects the construction to use by name. The engine
// supports exactly one construction (Construction); any other name fails
// with ErrUnsupportedConfiguration before cryptographic work.
func WithConfiguration(name string) CallOption {
	return func(c *callConfig) {
		c.configuration = name
	}
}

// discardLogger returns a logger that drops everything.
func discardLogger() Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
