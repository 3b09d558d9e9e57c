package util

import (
	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"
)

const (
	ErrGeneric = 99
)

// MustErrorNilOrExit will check the provided argument. If it's `nil` it will simply return. If it's
// not `nil`, it will log the error as `log.FatalLevel` and exit with an error code. The code is
// unwrapped from `flags.Error` object; any other kind of error exits with a generic code - 99.
// A request for help exits with 0.
//
// The exit goes through the standard logger, so tests can replace its `ExitFunc`.
func MustErrorNilOrExit(err error) {
	if err == nil {
		return
	}

	logger := log.StandardLogger()
	if flagsError, ok := err.(*flags.Error); ok {
		if flagsError.Type == flags.ErrHelp {
			logger.Exit(0)
			return
		}

		logger.WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
		logger.Exit(int(flagsError.Type))
		return
	}

	logger.WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
	logger.Exit(ErrGeneric)
}
