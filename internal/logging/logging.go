// Package logging configures the shared logger for the CLI and the
// generators' non-fatal diagnostics.
package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the process-wide logger. Generators log warnings through it;
// the CLI adjusts the level from flags.
var Logger = logrus.New()

func init() {
	Logger.SetOutput(os.Stderr)
	Logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	Logger.SetLevel(logrus.InfoLevel)
}

// SetVerbose switches debug logging on or off.
func SetVerbose(verbose bool) {
	if verbose {
		Logger.SetLevel(logrus.DebugLevel)
		return
	}
	Logger.SetLevel(logrus.InfoLevel)
}
