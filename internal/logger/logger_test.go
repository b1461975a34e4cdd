package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit_DisabledDiscards(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Enabled: false, Writer: &buf})
	Info("hello")
	assert.Empty(t, buf.String())
}

func TestInit_Level(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Enabled: true, Writer: &buf, Level: slog.LevelDebug})
	t.Cleanup(func() { Init(Options{}) })

	Debug("computing report", "config", "A")
	assert.Contains(t, buf.String(), "computing report")
	assert.Contains(t, buf.String(), "config=A")
}

func TestInit_DefaultLevelIsInfo(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{Enabled: true, Writer: &buf})
	t.Cleanup(func() { Init(Options{}) })

	Debug("hidden")
	Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
