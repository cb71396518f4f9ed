package techjobs

import (
	"time"

	"github.com/sirupsen/logrus"
)

// SetupLogging configures the standard logrus logger. Unknown levels fall
// back to info.
func SetupLogging(level string) {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.WithField("level", level).Warn("Unknown log level, using info")
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}
