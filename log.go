package bigint

import (
	"os"

	"github.com/rs/zerolog"
)

// logger is this package's structured debug logger, grounded on the
// zerolog usage pattern from the wider corpus. It is silent by default
// (level Disabled) so importing this package never produces output on its
// own; callers that want a trace of primality-test stage decisions can
// enable it with SetLogger or SetLogLevel.
var logger = zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.Disabled)

// SetLogger replaces the package's debug logger, letting a host
// application route bigint's internal trace output (currently limited to
// IsProbablePrime's stage decisions) into its own logging pipeline.
func SetLogger(l zerolog.Logger) { logger = l }

// SetLogLevel adjusts the package logger's verbosity without replacing its
// output destination.
func SetLogLevel(level zerolog.Level) { logger = logger.Level(level) }
