package logging

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", DebugLevel.String())
	assert.Equal(t, "INFO", InfoLevel.String())
	assert.Equal(t, "WARN", WarnLevel.String())
	assert.Equal(t, "ERROR", ErrorLevel.String())
	assert.Equal(t, "FATAL", FatalLevel.String())
	assert.Equal(t, "UNKNOWN", Level(42).String())
}

func TestWriterLogger_Routing(t *testing.T) {
	var stdout, stderr strings.Builder
	l := NewWriterLogger(&stdout, &stderr)

	l.Debug("debug message")
	l.Info("info message")
	l.Warn("warn message")

	assert.Contains(t, stdout.String(), "[DEBUG] debug message")
	assert.Contains(t, stdout.String(), "[INFO] info message")
	assert.Contains(t, stderr.String(), "[WARN] warn message")
	assert.NotContains(t, stdout.String(), "warn message")
}

func TestWriterLogger_LevelGate(t *testing.T) {
	var stdout, stderr strings.Builder
	l := NewWriterLogger(&stdout, &stderr)
	l.SetLevel(WarnLevel)

	l.Info("dropped")
	l.Warn("kept")

	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "kept")
}

func TestWriterLogger_WithFields(t *testing.T) {
	var stdout, stderr strings.Builder
	l := NewWriterLogger(&stdout, &stderr).WithFields(Fields{"key": "C"})

	l.Info("evaluated", Fields{"valid": true})

	out := stdout.String()
	assert.Contains(t, out, "key:C")
	assert.Contains(t, out, "valid:true")
}

func TestSetGlobalLogger_NilFallsBackToNoOp(t *testing.T) {
	prev := GetGlobalLogger()
	defer SetGlobalLogger(prev)

	SetGlobalLogger(nil)
	_, ok := GetGlobalLogger().(*NoOpLogger)
	assert.True(t, ok)
}
