package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/artshelf/internal/server"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := server.LoadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "catalogd: %v\n", err)
		return 2
	}

	// Validate already rejected unknown levels.
	level, _ := cfg.Level()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	slog.Info("catalogd starting", "addr", cfg.Addr, "seed", cfg.SeedFile, "watch", cfg.WatchSeed)
	if err := server.Run(ctx, cfg); err != nil {
		slog.Error("catalogd stopped", "err", err)
		return 1
	}
	slog.Info("catalogd stopped")
	return 0
}
