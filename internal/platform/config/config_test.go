package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"huntlog/internal/platform/config"
)

func TestNewAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DBPath != filepath.Join(dir, ".huntlog", "huntlog.db") {
		t.Fatalf("unexpected db path %s", cfg.DBPath)
	}
	if cfg.TopCreatures != 4 || cfg.FallbackCharacter != "Unknown" || cfg.Locale != "en" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestNewReadsFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	content := "log_dir: /games/logs\ntop_creatures: 6\nlocale: pt-BR\n"
	if err := os.WriteFile(config.Path(dir), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("HUNTLOG_DEFAULT_LOCATION", "Venore")

	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LogDir != "/games/logs" || cfg.TopCreatures != 6 || cfg.Locale != "pt-BR" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.DefaultLocation != "Venore" {
		t.Fatalf("env override not applied: %q", cfg.DefaultLocation)
	}
}

func TestNewRejectsEmptyPathAndNegativeTop(t *testing.T) {
	if _, err := config.New(" "); err == nil {
		t.Fatalf("empty data path should fail")
	}
	dir := t.TempDir()
	if err := os.WriteFile(config.Path(dir), []byte("top_creatures: -1\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := config.New(dir); err == nil || !strings.Contains(err.Error(), "top_creatures") {
		t.Fatalf("expected top_creatures error, got %v", err)
	}
}

func TestSetLogDirPersists(t *testing.T) {
	dir := t.TempDir()
	if err := config.SetLogDir(dir, "/tmp/reports"); err != nil {
		t.Fatalf("set log dir: %v", err)
	}
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("reload config: %v", err)
	}
	if cfg.LogDir != "/tmp/reports" {
		t.Fatalf("expected persisted log dir, got %q", cfg.LogDir)
	}
}
