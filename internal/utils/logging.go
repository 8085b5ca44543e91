package utils

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// SetupLogger applies the configured level and format to the standard logrus logger.
// Unknown levels fall back to info.
func SetupLogger(level, format string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)

	if strings.EqualFold(format, "json") {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		return
	}
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
}
