package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the shared application logger. NewLoggerService reconfigures it
// from the environment; until then it logs at logrus defaults.
var Logger = logrus.New()

// NewLoggerService configures the shared logger. LOG_LEVEL accepts the usual
// logrus level names and defaults to info.
func NewLoggerService() {
	Logger.SetOutput(os.Stdout)
	Logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}

	Logger.SetLevel(level)
}
