package server

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "CATALOGD"

// Config is catalogd's runtime configuration.
type Config struct {
	Addr        string        `mapstructure:"addr"`
	SeedFile    string        `mapstructure:"seed_file"`
	LogLevel    string        `mapstructure:"log_level"`
	WatchSeed   bool          `mapstructure:"watch_seed"`
	ReadTimeout time.Duration `mapstructure:"read_timeout"`
}

// Default values.
const (
	DefaultAddr        = "127.0.0.1:8080"
	DefaultLogLevel    = "info"
	DefaultReadTimeout = 5 * time.Second
)

// LoadConfig resolves configuration from, lowest precedence first: defaults,
// the config file named by --config, a .env file, CATALOGD_* environment
// variables and command-line flags.
func LoadConfig(args []string) (Config, error) {
	flags := pflag.NewFlagSet("catalogd", pflag.ContinueOnError)
	configPath := flags.String("config", "", "config file (yaml, toml or json)")
	envFile := flags.String("env-file", ".env", "dotenv file loaded when present")
	flags.String("addr", DefaultAddr, "listen address")
	flags.String("seed", "", "seed catalog file")
	flags.String("log-level", DefaultLogLevel, "log level (debug, info, warn, error)")
	flags.Bool("watch", false, "reload the seed file when it changes")
	flags.Duration("read-timeout", DefaultReadTimeout, "request header read timeout")
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	if err := loadDotenv(*envFile); err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetDefault("addr", DefaultAddr)
	v.SetDefault("seed_file", "")
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("watch_seed", false)
	v.SetDefault("read_timeout", DefaultReadTimeout)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for key, flag := range map[string]string{
		"addr":         "addr",
		"seed_file":    "seed",
		"log_level":    "log-level",
		"watch_seed":   "watch",
		"read_timeout": "read-timeout",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			return Config{}, fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	if path := strings.TrimSpace(*configPath); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func loadDotenv(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func (c *Config) normalize() {
	c.Addr = strings.TrimSpace(c.Addr)
	if c.Addr == "" {
		c.Addr = DefaultAddr
	}
	c.SeedFile = strings.TrimSpace(c.SeedFile)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.ReadTimeout <= 0 {
		c.ReadTimeout = DefaultReadTimeout
	}
}

// Validate reports configuration that cannot start a server.
func (c Config) Validate() error {
	if c.SeedFile == "" {
		return errors.New("seed file is required (--seed or CATALOGD_SEED_FILE)")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
