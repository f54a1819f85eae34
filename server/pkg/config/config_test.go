package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.True(t, cfg.Server.HealthCheck.Enabled)
	assert.Equal(t, 0.5, cfg.Analysis.SummaryRatio)
	assert.Contains(t, cfg.GlobalMiddleware, "request_id")
}

func TestLoadYAML(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "textlab.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  address: ":9090"
  rate_limit: 0
log:
  level: debug
translate:
  base_url: http://localhost:5000
  timeout: 3
analysis:
  summary_ratio: 0.3
  word_cloud_width: 640
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Zero(t, cfg.Server.RateLimit)
	assert.Equal(t, "textlab", cfg.Server.Name)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 0.3, cfg.Analysis.SummaryRatio)
	assert.Equal(t, 640, cfg.Analysis.WordCloudWidth)

	cc := cfg.Translate.ClientConfig()
	assert.Equal(t, "http://localhost:5000", cc.BaseURL)
	assert.Equal(t, "3s", cc.Timeout.String())
}

func TestLoadEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("TEXTLAB_LOG_LEVEL=warn\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("TEXTLAB_LOG_LEVEL") })
	t.Setenv("TEXTLAB_ADDRESS", "127.0.0.1:7000")
	t.Setenv("TEXTLAB_RATE_LIMIT", "5")
	t.Setenv("TEXTLAB_TRANSLATE_ENABLED", "false")
	t.Setenv("TEXTLAB_REPORT_CACHE", "32")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:7000", cfg.Server.Address)
	assert.Equal(t, 5, cfg.Server.RateLimit)
	assert.False(t, cfg.Translate.Enabled)
	assert.Equal(t, 32, cfg.Analysis.CacheSize)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(dir, "textlab.toml")
	require.NoError(t, os.WriteFile(path, []byte("x = 1"), 0o644))
	_, err = Load(path)
	assert.ErrorContains(t, err, "unsupported config format")

	t.Setenv("TEXTLAB_BODY_LIMIT", "lots")
	_, err = Load("")
	assert.ErrorContains(t, err, "TEXTLAB_BODY_LIMIT")
}
