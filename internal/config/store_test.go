package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
)

func TestStore_LoadMissingReturnsDefault(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(filepath.Join(dir, "config.json"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	cfg, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Version != CurrentVersion {
		t.Fatalf("Version=%d want %d", cfg.Version, CurrentVersion)
	}
	if cfg.CodexPath != "" || cfg.DefaultLimit != 0 {
		t.Fatalf("cfg=%#v want zero fields", cfg)
	}
}

func TestStore_SaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(filepath.Join(dir, "config.json"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	in := Config{
		Version:      CurrentVersion,
		CodexPath:    "/usr/local/bin/codex",
		DefaultLimit: 25,
	}

	if err := store.Save(in); err != nil {
		t.Fatalf("Save: %v", err)
	}

	out, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out.CodexPath != in.CodexPath {
		t.Fatalf("CodexPath=%q want %q", out.CodexPath, in.CodexPath)
	}
	if out.DefaultLimit != in.DefaultLimit {
		t.Fatalf("DefaultLimit=%d want %d", out.DefaultLimit, in.DefaultLimit)
	}
}

func TestStore_UpdateIsSerialized(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(filepath.Join(dir, "config.json"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	const n = 25
	var wg sync.WaitGroup
	errCh := make(chan error, n)
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			errCh <- store.Update(func(cfg *Config) error {
				cfg.DefaultLimit++
				return nil
			})
		}()
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
	}

	cfg, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultLimit != n {
		t.Fatalf("DefaultLimit=%d want %d", cfg.DefaultLimit, n)
	}
}

func TestStore_ErrorPaths(t *testing.T) {
	t.Run("Load rejects invalid JSON", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.json")
		if err := os.WriteFile(path, []byte("{"), 0o600); err != nil {
			t.Fatalf("write config: %v", err)
		}
		store, err := NewStore(path)
		if err != nil {
			t.Fatalf("NewStore: %v", err)
		}
		if _, err := store.Load(); err == nil {
			t.Fatalf("expected parse error")
		}
	})

	t.Run("Load rejects unsupported version", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.json")
		if err := os.WriteFile(path, []byte(`{"version":999}`), 0o600); err != nil {
			t.Fatalf("write config: %v", err)
		}
		store, err := NewStore(path)
		if err != nil {
			t.Fatalf("NewStore: %v", err)
		}
		if _, err := store.Load(); err == nil {
			t.Fatalf("expected version error")
		}
	})

	t.Run("Save rejects unsupported version", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewStore(filepath.Join(dir, "config.json"))
		if err != nil {
			t.Fatalf("NewStore: %v", err)
		}
		if err := store.Save(Config{Version: CurrentVersion + 1}); err == nil {
			t.Fatalf("expected save version error")
		}
	})

	t.Run("Update propagates callback error", func(t *testing.T) {
		dir := t.TempDir()
		store, err := NewStore(filepath.Join(dir, "config.json"))
		if err != nil {
			t.Fatalf("NewStore: %v", err)
		}
		if err := store.Update(func(cfg *Config) error {
			cfg.Version = CurrentVersion
			return fmt.Errorf("boom")
		}); err == nil {
			t.Fatalf("expected callback error")
		}
	})
}

func TestNewStoreDefaultPath(t *testing.T) {
	dir := t.TempDir()
	switch runtime.GOOS {
	case "windows":
		t.Setenv("APPDATA", dir)
	case "darwin":
		t.Setenv("HOME", dir)
	default:
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	base, err := os.UserConfigDir()
	if err != nil {
		t.Fatalf("UserConfigDir error: %v", err)
	}
	store, err := NewStore("")
	if err != nil {
		t.Fatalf("NewStore error: %v", err)
	}
	want := filepath.Join(base, "codex-sessions", "config.json")
	if store.Path() != want {
		t.Fatalf("expected path %q, got %q", want, store.Path())
	}
}
