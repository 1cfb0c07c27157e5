package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Port string `toml:"port"`

	// Content. Empty dirs serve the bundled copies.
	DocsDir   string `toml:"docs_dir"`
	AssetsDir string `toml:"assets_dir"`

	// Page metadata
	SiteTitle       string `toml:"site_title"`
	SiteDescription string `toml:"site_description"`
	DocsTitle       string `toml:"docs_title"`

	// HTTP server
	ReadTimeout     time.Duration `toml:"read_timeout"`
	WriteTimeout    time.Duration `toml:"write_timeout"`
	IdleTimeout     time.Duration `toml:"idle_timeout"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout"`

	// Render latency window
	StatsWindow time.Duration `toml:"stats_window"`

	// Logging
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Port:            "8090",
		SiteTitle:       "Froq! Framework",
		SiteDescription: "Froq! Hassle-free PHP framework.",
		DocsTitle:       "Docs",
		ReadTimeout:     10 * time.Second,
		WriteTimeout:    30 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		StatsWindow:     time.Hour,
		LogLevel:        "info",
		LogFormat:       "json",
	}
}

// Load reads config: defaults -> TOML file (CONFIG_FILE) -> env vars (env wins).
// A missing file is ignored; a file that fails to parse is an error.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("config file %s: %w", path, err)
		}
	}

	cfg.Port = envOr("PORT", cfg.Port)
	cfg.DocsDir = envOr("DOCS_DIR", cfg.DocsDir)
	cfg.AssetsDir = envOr("ASSETS_DIR", cfg.AssetsDir)
	cfg.SiteTitle = envOr("SITE_TITLE", cfg.SiteTitle)
	cfg.SiteDescription = envOr("SITE_DESCRIPTION", cfg.SiteDescription)
	cfg.DocsTitle = envOr("DOCS_TITLE", cfg.DocsTitle)

	cfg.ReadTimeout = envDuration("READ_TIMEOUT", cfg.ReadTimeout)
	cfg.WriteTimeout = envDuration("WRITE_TIMEOUT", cfg.WriteTimeout)
	cfg.IdleTimeout = envDuration("IDLE_TIMEOUT", cfg.IdleTimeout)
	cfg.ShutdownTimeout = envDuration("SHUTDOWN_TIMEOUT", cfg.ShutdownTimeout)
	cfg.StatsWindow = envDuration("STATS_WINDOW", cfg.StatsWindow)

	cfg.LogLevel = envOr("LOG_LEVEL", cfg.LogLevel)
	cfg.LogFormat = envOr("LOG_FORMAT", cfg.LogFormat)

	def := Default()
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = def.ReadTimeout
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = def.WriteTimeout
	}
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = def.IdleTimeout
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = def.ShutdownTimeout
	}
	if cfg.StatsWindow <= 0 {
		cfg.StatsWindow = def.StatsWindow
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if n, err := strconv.Atoi(c.Port); err != nil || n <= 0 || n > 65535 {
		return fmt.Errorf("PORT must be a valid port number, got %q", c.Port)
	}
	for name, dir := range map[string]string{"DOCS_DIR": c.DocsDir, "ASSETS_DIR": c.AssetsDir} {
		if dir == "" {
			continue
		}
		fi, err := os.Stat(dir)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if !fi.IsDir() {
			return fmt.Errorf("%s: %s is not a directory", name, dir)
		}
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.LogFormat)
	}
	return nil
}

// SlogLevel parses LogLevel.
func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return lvl, nil
}

// NewLogger builds the process logger on os.Stdout.
func (c Config) NewLogger() *slog.Logger {
	lvl, err := c.SlogLevel()
	if err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if c.LogFormat == "text" {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
