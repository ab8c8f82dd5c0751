package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rotj-game/rotj/internal/config"
)

func TestConsoleAndFile(t *testing.T) {
	var console bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "rotj.json")

	logger, closeFn, err := New(config.LogConfig{Level: "info", File: path}, &console)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("screen changed", "state", "menu")
	require.NoError(t, closeFn())

	assert.Contains(t, console.String(), "screen changed")
	assert.Contains(t, console.String(), "rotj")
	assert.NotContains(t, console.String(), "hidden")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "screen changed", entry["msg"])
	assert.Equal(t, "menu", entry["state"])
}

func TestConsoleOnly(t *testing.T) {
	var console bytes.Buffer
	logger, closeFn, err := New(config.LogConfig{Level: "debug"}, &console)
	require.NoError(t, err)
	defer closeFn()

	logger.Debug("tick")
	assert.Contains(t, console.String(), "tick")
}

func TestDiscard(t *testing.T) {
	assert.False(t, Discard().Enabled(t.Context(), 0))
}
