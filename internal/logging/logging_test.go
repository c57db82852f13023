// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logging

import (
	"bytes"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]logrus.Level{
		"debug":   logrus.DebugLevel,
		"INFO":    logrus.InfoLevel,
		"warn":    logrus.WarnLevel,
		"warning": logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"":        logrus.InfoLevel,
		"verbose": logrus.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNewLogger_TagsComponent(t *testing.T) {
	var buf bytes.Buffer
	Setup("debug", &buf)
	t.Cleanup(func() { Setup("info", os.Stderr) })

	NewLogger("pipeline").WithField("file", "a.json").Debug("reading")

	out := buf.String()
	assert.Contains(t, out, "component=pipeline")
	assert.Contains(t, out, "file=a.json")
	assert.Contains(t, out, "reading")
}

func TestSetup_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	Setup("warn", &buf)
	t.Cleanup(func() { Setup("info", os.Stderr) })

	NewLogger("pipeline").Info("hidden")
	NewLogger("pipeline").Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
