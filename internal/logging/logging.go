// Package logging provides the action logger wrapped around every
// service operation at the command-dispatch boundary.
package logging

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Level:           log.WarnLevel,
	ReportTimestamp: true,
	Prefix:          "taskpro",
})

// SetDebug lowers the level so action begin/end lines are emitted.
func SetDebug(enabled bool) {
	if enabled {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.WarnLevel)
	}
}

// Logger returns the shared logger for ad hoc warnings.
func Logger() *log.Logger {
	return logger
}

// Action runs fn, logging the operation name before and after with the
// elapsed time. Errors are logged and passed through unchanged.
func Action(name string, fn func() error) error {
	logger.Debug("executing", "action", name)
	start := time.Now()
	err := fn()
	if err != nil {
		logger.Error("failed", "action", name, "err", err, "took", time.Since(start))
		return err
	}
	logger.Debug("completed", "action", name, "took", time.Since(start))
	return nil
}
