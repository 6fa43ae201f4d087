package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. Init must run before any package logs.
var Log *logrus.Logger

// Init configures Log from the environment:
//
//	LOG_LEVEL  logrus level name, default "info"
//	LOG_FORMAT "json" for the JSON formatter, anything else for text
func Init() {
	InitWithOutput(os.Stdout)
}

// InitWithOutput is Init writing to out. The terminal renderer owns
// stdout, so the client sends logs elsewhere while it runs.
func InitWithOutput(out io.Writer) {
	Log = logrus.New()

	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}

	Log.SetOutput(out)
}

// Component returns an entry tagged with the component field.
func Component(name string) *logrus.Entry {
	return Log.WithField("component", name)
}
