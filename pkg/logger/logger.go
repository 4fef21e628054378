// Package logger holds the process-wide structured logger.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the global logger. It is usable before Init, writing warnings and above to stderr.
var Log = logrus.New()

func init() {
	Log.SetLevel(logrus.WarnLevel)
	Log.SetOutput(os.Stderr)
}

// Init configures the global logger from LOG_LEVEL and LOG_FORMAT.
// Call once from main before the simulation starts.
func Init() {
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	logFormat := strings.ToLower(os.Getenv("LOG_FORMAT"))
	if logFormat == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
}

// SetOutput redirects the logger, e.g. to a file while a terminal UI owns stdout
func SetOutput(w io.Writer) {
	Log.SetOutput(w)
}

// For returns an entry tagged with the given component name
func For(component string) *logrus.Entry {
	return Log.WithField("component", component)
}
