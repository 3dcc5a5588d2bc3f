package applog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_FiltersBelowMinLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelWarn)

	log.Debug("debug line")
	log.Info("info line")
	log.Warn("warn line")
	log.Error("error line")

	out := buf.String()
	assert.NotContains(t, out, "debug line")
	assert.NotContains(t, out, "info line")
	assert.Contains(t, out, "warn line")
	assert.Contains(t, out, "error line")
}

func TestLogger_TagsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelTrace)
	log.Error("boom %d", 7)
	assert.True(t, strings.Contains(buf.String(), "[ERROR] boom 7"))
}

func TestDiscard_DropsEverything(t *testing.T) {
	log := Discard()
	log.Error("should not panic or write anywhere")
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "TRACE", LevelTrace.String())
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "ERROR", LevelError.String())
}
