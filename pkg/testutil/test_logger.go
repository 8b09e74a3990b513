package testutil

import (
	"testing"

	"github.com/rs/zerolog"
)

// NewTestLogger creates a debug-level zerolog.Logger that writes to the
// provided testing.T, so log output only shows up for failing or verbose
// tests.
func NewTestLogger(t *testing.T) zerolog.Logger {
	return zerolog.New(zerolog.NewTestWriter(t)).Level(zerolog.DebugLevel)
}
