package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	dir := t.TempDir()
	t.Chdir(dir)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Port != 3000 || cfg.Server.TickHz != 30 {
		t.Fatalf("defaults = %+v", cfg.Server)
	}
	if cfg.Addr() != ":3000" {
		t.Fatalf("addr = %q", cfg.Addr())
	}
}

func TestLoadReadsYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("server:\n  host: 127.0.0.1\n  port: 4000\nlogger:\n  level: debug\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Server.Host != "127.0.0.1" || cfg.Server.Port != 4000 {
		t.Fatalf("server = %+v", cfg.Server)
	}
	if cfg.Logger.Level != "debug" {
		t.Fatalf("logger level = %q", cfg.Logger.Level)
	}
	// Unset keys keep their defaults.
	if cfg.Server.TickHz != 30 {
		t.Fatalf("tick_hz = %d, want default 30", cfg.Server.TickHz)
	}
}

func TestLoadRejectsMissingExplicitFile(t *testing.T) {
	t.Setenv(EnvConfigPath, filepath.Join(t.TempDir(), "nope.yaml"))
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing explicit config file")
	}
}
