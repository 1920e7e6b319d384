package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenNothingConfigured(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveConfigThenLoadConfig(t *testing.T) {
	dir := t.TempDir()
	want := DefaultConfig()
	want.MaxRate = 450
	want.DBPath = "/tmp/hub.db"

	require.NoError(t, SaveConfig(dir, want))

	got, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, DirName), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, DirName, "config.json"), []byte(`{"log_level":"debug"}`), 0644))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 1000, cfg.MaxRate)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	t.Chdir(t.TempDir())
	dir := t.TempDir()
	fileCfg := DefaultConfig()
	fileCfg.ServeAddr = ":9000"
	require.NoError(t, SaveConfig(dir, fileCfg))

	t.Setenv("WORKERHUB_SERVE_ADDR", ":9100")
	t.Setenv("WORKERHUB_ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("WORKERHUB_AUTH_TIMEOUT_SECONDS", "15")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, ":9100", cfg.ServeAddr)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
	assert.Equal(t, 15*time.Second, cfg.AuthTimeout())
}

func TestLoad_DotEnvFile(t *testing.T) {
	work := t.TempDir()
	t.Chdir(work)
	require.NoError(t, os.WriteFile(filepath.Join(work, ".env"), []byte("WORKERHUB_MAX_RATE=600\n"), 0644))
	t.Cleanup(func() { os.Unsetenv("WORKERHUB_MAX_RATE") })

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, 600, cfg.MaxRate)
}

func TestLoad_InvalidEnvironmentFailsValidation(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("WORKERHUB_LOG_FORMAT", "xml")

	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_format")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults are valid", func(c *Config) {}, ""},
		{"relative auth url", func(c *Config) { c.AuthBaseURL = "/api/auth" }, "auth_base_url"},
		{"zero max rate", func(c *Config) { c.MaxRate = 0 }, "max_rate"},
		{"empty serve addr", func(c *Config) { c.ServeAddr = "" }, "serve_addr"},
		{"unknown log level", func(c *Config) { c.LogLevel = "loud" }, "log_level"},
		{"negative timeout", func(c *Config) { c.AuthTimeoutSeconds = -1 }, "auth_timeout_seconds"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSlogLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "warn"

	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)
}
