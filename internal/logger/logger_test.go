package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fitjourney/internal/config"
)

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(config.LoggingConfig{Level: "nope", Format: "text", Output: "discard"})
	assert.Error(t, err)
}

func TestNew_JSONFormat(t *testing.T) {
	l, err := New(config.LoggingConfig{Level: "debug", Format: "json", Output: "discard"})
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, l.GetLevel())

	var buf bytes.Buffer
	l.SetOutput(&buf)
	WithComponent(l, "ui").Info("navigated")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "navigated", entry["message"])
	assert.Equal(t, "ui", entry["component"])
	assert.Contains(t, entry, "timestamp")
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "fit.log")
	l, err := New(config.LoggingConfig{Level: "info", Format: "text", Output: path, MaxSize: 1})
	require.NoError(t, err)

	l.WithField("to", "profile").Info("navigate")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "navigate")
	assert.Contains(t, string(data), "to=profile")
}

func TestDiscard(t *testing.T) {
	l := Discard()
	assert.NotPanics(t, func() { l.Info("dropped") })
}
