package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"twoface/internal/logging"
)

func startWatcher(t *testing.T, path string, lm *logging.TestLogManager) <-chan Config {
	t.Helper()
	w, err := NewWatcher(path, lm.For("config"))
	if err != nil {
		t.Fatalf("NewWatcher() error = %v", err)
	}
	w.settle = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	reloads := make(chan Config, 4)
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = w.Run(ctx, func(cfg Config) { reloads <- cfg })
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	// Give the watcher time to register the directory.
	time.Sleep(50 * time.Millisecond)
	return reloads
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "theme: mocha\n")
	lm := logging.NewTestLogManager(64)
	defer func() { _ = lm.Close() }()

	reloads := startWatcher(t, path, lm)

	if err := os.WriteFile(path, []byte("theme: latte\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	select {
	case cfg := <-reloads:
		if cfg.Theme != "latte" {
			t.Errorf("reloaded Theme = %q, want latte", cfg.Theme)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for config reload")
	}
}

func TestWatcher_SkipsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "theme: mocha\n")
	lm := logging.NewTestLogManager(64)
	defer func() { _ = lm.Close() }()

	reloads := startWatcher(t, path, lm)

	if err := os.WriteFile(path, []byte("resize: {debounce_ms: -5}\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	time.Sleep(200 * time.Millisecond)
	if err := os.WriteFile(path, []byte("theme: frappe\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	select {
	case cfg := <-reloads:
		if cfg.Theme != "frappe" {
			t.Errorf("first reload Theme = %q, want frappe (invalid file should be skipped)", cfg.Theme)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for config reload")
	}

	var rejected bool
	for _, e := range lm.Drain() {
		if e.Message == "config reload rejected" {
			rejected = true
		}
	}
	if !rejected {
		t.Error("expected a 'config reload rejected' log entry")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "theme: mocha\n")
	lm := logging.NewTestLogManager(64)
	defer func() { _ = lm.Close() }()

	reloads := startWatcher(t, path, lm)

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	select {
	case cfg := <-reloads:
		t.Errorf("unexpected reload %+v", cfg)
	case <-time.After(150 * time.Millisecond):
	}
}
