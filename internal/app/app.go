package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/five82/artshelf/internal/config"
	"github.com/five82/artshelf/internal/favorites"
	"github.com/five82/artshelf/internal/gallery"
	"github.com/five82/artshelf/internal/history"
	"github.com/five82/artshelf/internal/kvstore"
	"github.com/five82/artshelf/internal/prefs"
	"github.com/five82/artshelf/internal/ui"
)

// Options configure the artshelf application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/artshelf/prefs.toml
	DataDir    string // overrides data_dir from the config file
}

// Run boots the artshelf TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg = cfg.WithDataDir(opts.DataDir)

	logger, logFile, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()
	slog.SetDefault(logger)

	const op = "app.Run"
	log := slog.With("op", op)

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		log.Warn("failed to load preferences, using defaults", "err", err)
		userPrefs = prefs.Default()
	}

	db, err := kvstore.Open(cfg.StorePath())
	if err != nil {
		return fmt.Errorf("open local store: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Warn("failed to close local store", "err", err)
		}
	}()
	kv := kvstore.Prefixed{Store: db, Prefix: cfg.KeyPrefix}

	client, err := gallery.NewClient(cfg.APIBaseURL, cfg.RequestTimeout)
	if err != nil {
		return fmt.Errorf("init catalog client: %w", err)
	}

	log.Info("artshelf starting",
		"api", client.BaseURL(),
		"store", cfg.StorePath(),
		"theme", userPrefs.Theme,
	)
	defer log.Info("artshelf stopped")

	return ui.Run(ui.Options{
		Context:   ctx,
		Client:    client,
		Favorites: favorites.New(kv),
		History:   history.New(kv),
		LogPath:   cfg.LogPath(),
		Prefs:     userPrefs,
		PrefsPath: opts.PrefsPath,
	})
}

// newLogger opens the log file and returns a text logger writing to it. The
// terminal belongs to the TUI, so nothing is logged to stderr once it runs.
func newLogger(cfg config.Config) (*slog.Logger, io.Closer, error) {
	path := cfg.LogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	level, levelErr := cfg.Level()
	logger := slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{Level: level}))
	if levelErr != nil {
		logger.Warn("invalid log level, using info", "err", levelErr)
	}
	return logger, file, nil
}
