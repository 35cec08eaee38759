package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config is artshelf's client configuration.
type Config struct {
	APIBaseURL     string
	DataDir        string
	RequestTimeout time.Duration
	LogLevel       string
	KeyPrefix      string
}

const (
	defaultConfigPath     = "~/.config/artshelf/config.toml"
	defaultAPIBaseURL     = "https://66dff3132fb67ac16f27acda.mockapi.io/"
	defaultDataDir        = "~/.local/share/artshelf"
	defaultRequestTimeout = 10 * time.Second
	defaultLogLevel       = "info"
	defaultKeyPrefix      = "artshelf/"
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIBaseURL:     defaultAPIBaseURL,
		DataDir:        mustExpand(defaultDataDir),
		RequestTimeout: defaultRequestTimeout,
		LogLevel:       defaultLogLevel,
		KeyPrefix:      defaultKeyPrefix,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBaseURL            string  `toml:"api_base_url"`
		DataDir               string  `toml:"data_dir"`
		RequestTimeoutSeconds int     `toml:"request_timeout_seconds"`
		LogLevel              string  `toml:"log_level"`
		KeyPrefix             *string `toml:"key_prefix"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := strings.TrimSpace(raw.DataDir); v != "" {
		cfg.DataDir = mustExpand(v)
	}
	if raw.RequestTimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(raw.RequestTimeoutSeconds) * time.Second
	}
	if v := strings.ToLower(strings.TrimSpace(raw.LogLevel)); v != "" {
		cfg.LogLevel = v
	}
	// An explicitly empty prefix is allowed; only a missing key means default.
	if raw.KeyPrefix != nil {
		cfg.KeyPrefix = strings.TrimSpace(*raw.KeyPrefix)
	}

	return cfg, nil
}

// Level parses LogLevel. Unknown names fall back to info with an error.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// WithDataDir overrides the data directory, as the --data-dir flag does.
func (c Config) WithDataDir(dir string) Config {
	if strings.TrimSpace(dir) != "" {
		c.DataDir = mustExpand(dir)
	}
	return c
}

// StorePath returns the directory of the local key-value store.
func (c Config) StorePath() string {
	return filepath.Join(c.dataDir(), "store")
}

// LogPath returns artshelf's own log file.
func (c Config) LogPath() string {
	return filepath.Join(c.dataDir(), "artshelf.log")
}

func (c Config) dataDir() string {
	if strings.TrimSpace(c.DataDir) == "" {
		return mustExpand(defaultDataDir)
	}
	return c.DataDir
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
