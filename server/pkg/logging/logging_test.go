package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oarkflow/textlab/server/pkg/config"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}

func TestNewWritesToFileAndOut(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "textlab.log")
	var out bytes.Buffer
	logger, closer, err := New(config.Log{Level: "warn", File: file, MaxSize: 1}, &out)
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", slog.String("mode", "analysis"))
	require.NoError(t, closer.Close())

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "mode=analysis")
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=shown")
}
