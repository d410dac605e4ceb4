package config

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// LogrusLevel maps LOG_LEVEL to a logrus level. "silent" only lets panics
// through; unknown names fall back to info.
func (c Config) LogrusLevel() logrus.Level {
	switch c.LogLevel {
	case "silent":
		return logrus.PanicLevel
	case "error":
		return logrus.ErrorLevel
	case "warn":
		return logrus.WarnLevel
	case "debug":
		return logrus.DebugLevel
	default:
		return logrus.InfoLevel
	}
}

// NewLogger builds the process logger: JSON in production, text elsewhere.
func NewLogger(c Config, out io.Writer) *logrus.Logger {
	if out == nil {
		out = os.Stdout
	}
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(c.LogrusLevel())
	if c.IsProduction() {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return l
}
