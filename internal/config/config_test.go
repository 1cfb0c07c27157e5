package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"CONFIG_FILE", "PORT", "DOCS_DIR", "ASSETS_DIR", "LOG_LEVEL", "LOG_FORMAT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "docsite.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
port = "9000"
docs_title = "Manual"
read_timeout = "3s"
log_format = "text"
`), 0o644))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "9100")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9100", cfg.Port, "env wins over file")
	assert.Equal(t, "Manual", cfg.DocsTitle, "file wins over default")
	assert.Equal(t, 3*time.Second, cfg.ReadTimeout)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "Froq! Framework", cfg.SiteTitle, "defaults preserved")
}

func TestLoadMissingFileIgnored(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "nope.toml"))
	t.Setenv("PORT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8090", cfg.Port)
}

func TestLoadBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.toml")
	require.NoError(t, os.WriteFile(path, []byte("port = "), 0o644))
	t.Setenv("CONFIG_FILE", path)

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadInvalidDurationsFallBack(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("WRITE_TIMEOUT", "soon")
	t.Setenv("IDLE_TIMEOUT", "-1s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default().WriteTimeout, cfg.WriteTimeout)
	assert.Equal(t, Default().IdleTimeout, cfg.IdleTimeout)
}

func TestValidate(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"bad port", func(c *Config) { c.Port = "http" }, true},
		{"port out of range", func(c *Config) { c.Port = "70000" }, true},
		{"docs dir exists", func(c *Config) { c.DocsDir = t.TempDir() }, false},
		{"docs dir missing", func(c *Config) { c.DocsDir = "/definitely/not/here" }, true},
		{"assets dir is a file", func(c *Config) { c.AssetsDir = file }, true},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, true},
		{"bad log format", func(c *Config) { c.LogFormat = "xml" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSlogLevel(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "debug"
	lvl, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}
