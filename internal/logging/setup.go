package logging

import (
	"github.com/bokysan/triblock/internal/args"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"os"
	"strings"
)

// logFile is the currently open log file, closed when logging is set up again
var logFile *os.File

// SetupLogging configures the standard logrus logger from the general options. Log output
// goes to stderr unless a log file is given, so it never mixes with cipher text written to
// stdout.
func SetupLogging() error {
	SetVerbosity(args.General.Verbose)

	if args.General.LogReportCaller && !hasContextHook() {
		log.AddHook(&ContextHook{})
	}

	if args.General.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{
			FieldMap: log.FieldMap{
				log.FieldKeyTime:  "timestamp",
				log.FieldKeyLevel: "@level",
				log.FieldKeyMsg:   "message",
				log.FieldKeyFunc:  "@caller",
			},
		})
	} else {
		color := strings.TrimSpace(strings.ToLower(args.General.LogColor))
		log.SetFormatter(&log.TextFormatter{
			ForceColors:   color == "yes" || color == "true" || color == "1",
			DisableColors: color == "no" || color == "false" || color == "0",
			FullTimestamp: args.General.LogFullTimestamp,
		})
	}
	log.SetReportCaller(args.General.LogReportCaller)

	if args.General.LogFile != nil && len(*args.General.LogFile) > 0 && *args.General.LogFile != "-" {
		f, err := os.OpenFile(*args.General.LogFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			return errors.Wrapf(err, "could not open log file %v", *args.General.LogFile)
		}
		log.SetOutput(f)
		closeLogFile()
		logFile = f
	} else {
		log.SetOutput(os.Stderr)
		closeLogFile()
	}

	log.Debugf("Verbosity level: %v", VerbosityName())
	return nil
}

func closeLogFile() {
	if logFile == nil {
		return
	}
	if err := logFile.Close(); err != nil {
		log.Warnf("Could not close log file %v: %v", logFile.Name(), err)
	}
	logFile = nil
}

func hasContextHook() bool {
	for _, h := range log.StandardLogger().Hooks[log.InfoLevel] {
		if _, ok := h.(*ContextHook); ok {
			return true
		}
	}
	return false
}
