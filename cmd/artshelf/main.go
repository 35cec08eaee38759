package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"

	"github.com/five82/artshelf/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "config file path (default ~/.config/artshelf/config.toml)")
	prefsPath := flag.String("prefs", "", "preferences file path (default ~/.config/artshelf/prefs.toml)")
	dataDir := flag.String("data-dir", "", "directory for the local store and log file")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		DataDir:    *dataDir,
	}
	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "artshelf: %v\n", err)
		return 1
	}
	return 0
}
