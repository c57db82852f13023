// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging configures the logrus logger used for diagnostics.
// Progress output (written files, run summaries) does not go through here;
// commands print it directly to their output writer.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var base = newBase(os.Stderr)

func newBase(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return l
}

// Setup sets the level and destination of the shared logger. Unknown levels
// fall back to info.
func Setup(level string, w io.Writer) {
	if w != nil {
		base.SetOutput(w)
	}
	base.SetLevel(ParseLevel(level))
}

// ParseLevel converts "debug", "info", "warn", or "error" to a logrus level.
func ParseLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// NewLogger returns an entry tagged with the given component name.
func NewLogger(component string) *logrus.Entry {
	return base.WithField("component", component)
}

// Discard returns an entry that drops everything. Tests use it to keep
// output quiet.
func Discard() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}
