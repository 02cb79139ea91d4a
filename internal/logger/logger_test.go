package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsoleLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleLogger(&buf, "warn")

	l.Debug("hidden")
	l.Info("also hidden")
	l.Warn("visible")
	l.Error("also visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
	assert.Contains(t, out, "also visible")
}

func TestConsoleLoggerDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleLogger(&buf, "nonsense")
	l.Debug("hidden")
	l.Info("shown")
	assert.False(t, strings.Contains(buf.String(), "hidden"))
	assert.True(t, strings.Contains(buf.String(), "shown"))
}

func TestConsoleLoggerNilWriterNoPanic(t *testing.T) {
	l := NewConsoleLogger(nil, "debug")
	assert.NotPanics(t, func() { l.Info("anything") })
}

func TestNullLoggerDiscardsEverything(t *testing.T) {
	var l Logger = NullLogger{}
	assert.NotPanics(t, func() {
		l.Debug("x")
		l.Info("x")
		l.Warn("x")
		l.Error("x")
	})
}
