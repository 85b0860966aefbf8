package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"todo/internal/config"
)

func TestNew_Defaults(t *testing.T) {
	dir := t.TempDir()

	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Dir != dir {
		t.Errorf("expected dir %q, got %q", dir, cfg.Dir)
	}
	if cfg.Storage.Backend != config.BackendBolt {
		t.Errorf("expected backend %q, got %q", config.BackendBolt, cfg.Storage.Backend)
	}
	if cfg.StorageKey() != "tasks" {
		t.Errorf("expected key 'tasks', got %q", cfg.StorageKey())
	}
	if cfg.IDs != config.IDSchemeTime {
		t.Errorf("expected id scheme %q, got %q", config.IDSchemeTime, cfg.IDs)
	}
	if cfg.DatabasePath() != filepath.Join(dir, "todo.db") {
		t.Errorf("unexpected database path %q", cfg.DatabasePath())
	}
	if cfg.ServeAddr() != config.DefaultServeAddr {
		t.Errorf("unexpected serve addr %q", cfg.ServeAddr())
	}
}

func TestNew_SettingsFile(t *testing.T) {
	dir := t.TempDir()
	settings := `storage:
  backend: memory
  key: my-tasks
ids: uuid
log:
  level: info
serve:
  addr: 127.0.0.1:9999
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(settings), 0600); err != nil {
		t.Fatalf("failed to write config.yaml: %v", err)
	}

	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Storage.Backend != config.BackendMemory {
		t.Errorf("expected backend memory, got %q", cfg.Storage.Backend)
	}
	if cfg.StorageKey() != "my-tasks" {
		t.Errorf("expected key my-tasks, got %q", cfg.StorageKey())
	}
	if cfg.IDs != config.IDSchemeUUID {
		t.Errorf("expected uuid ids, got %q", cfg.IDs)
	}
	if cfg.LogLevel() != "info" {
		t.Errorf("expected log level info, got %q", cfg.LogLevel())
	}
	if cfg.ServeAddr() != "127.0.0.1:9999" {
		t.Errorf("expected serve addr override, got %q", cfg.ServeAddr())
	}
}

func TestNew_EnvOverride(t *testing.T) {
	t.Setenv("TODO_STORAGE_BACKEND", "memory")

	cfg, err := config.New(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Storage.Backend != config.BackendMemory {
		t.Errorf("expected env override to memory, got %q", cfg.Storage.Backend)
	}
}

func TestNew_InvalidBackend(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("storage:\n  backend: redis\n"), 0600); err != nil {
		t.Fatalf("failed to write config.yaml: %v", err)
	}

	if _, err := config.New(dir); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestLogLevel_DebugWins(t *testing.T) {
	cfg := &config.Config{Debug: true, Log: config.LogConfig{Level: "error"}}
	if cfg.LogLevel() != "debug" {
		t.Errorf("expected debug, got %q", cfg.LogLevel())
	}
}

func TestDefaultConfigDir_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	if got := config.DefaultConfigDir(); got != filepath.Join("/tmp/xdg", "todo") {
		t.Errorf("unexpected default dir %q", got)
	}
}
