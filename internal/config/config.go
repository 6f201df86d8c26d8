// Package config loads the server configuration from a YAML file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config configures the imageauthd server.
type Config struct {
	// ListenAddr is the address the HTTP server binds to.
	ListenAddr string `yaml:"listen_addr"`
	// RestoredDir receives the restored images written by authenticate.
	RestoredDir string `yaml:"restored_dir"`
	// FallbackDir is searched when a download misses RestoredDir.
	FallbackDir string `yaml:"fallback_dir"`
	// AuditDB is the SQLite path of the operation log. Empty disables
	// logging and the records endpoint.
	AuditDB string `yaml:"audit_db"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file is given: listen on
// :8000 and keep restored images in the system temp directory with the
// working directory as fallback.
func Default() Config {
	return Config{
		ListenAddr:  ":8000",
		RestoredDir: os.TempDir(),
		FallbackDir: ".",
		LogLevel:    "info",
	}
}

// Load reads a YAML file over the defaults. Keys absent from the file keep
// their default values.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse config: %w", err)
	}
	return c, nil
}

// Level maps LogLevel to a slog level, defaulting to info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
