package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/artshelf/internal/config"
)

func TestNewLogger_WritesTextToLogFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default().WithDataDir(filepath.Join(dir, "data"))
	cfg.LogLevel = "info"

	logger, closer, err := newLogger(cfg)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Debug("hidden detail")
	logger.Info("catalog loaded", "op", "test", "count", 3)
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(cfg.LogPath())
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	got := string(data)
	if !strings.Contains(got, `msg="catalog loaded"`) || !strings.Contains(got, "count=3") {
		t.Fatalf("log = %q, want the info record", got)
	}
	if strings.Contains(got, "hidden detail") {
		t.Fatalf("log = %q, debug record should be filtered at info", got)
	}
}

func TestNewLogger_InvalidLevelFallsBackToInfo(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Default().WithDataDir(dir)
	cfg.LogLevel = "chatty"

	logger, closer, err := newLogger(cfg)
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	logger.Info("still logging")
	_ = closer.Close()

	data, err := os.ReadFile(cfg.LogPath())
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	got := string(data)
	if !strings.Contains(got, "invalid log level") {
		t.Fatalf("log = %q, want a warning about the level", got)
	}
	if !strings.Contains(got, "still logging") {
		t.Fatalf("log = %q, want info records after fallback", got)
	}
}

func TestNewLogger_AppendsAcrossRuns(t *testing.T) {
	cfg := config.Default().WithDataDir(t.TempDir())

	for _, msg := range []string{"first run", "second run"} {
		logger, closer, err := newLogger(cfg)
		if err != nil {
			t.Fatalf("newLogger: %v", err)
		}
		logger.Info(msg)
		_ = closer.Close()
	}

	data, err := os.ReadFile(cfg.LogPath())
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if got := strings.Count(string(data), "\n"); got != 2 {
		t.Fatalf("log has %d lines, want 2", got)
	}
}
