package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inkwell.toml")
	if err := os.WriteFile(path, []byte(`log_level = "warn"`), 0o644); err != nil {
		t.Fatal(err)
	}

	changed := make(chan Config, 1)
	w := NewWatcher(path, func(cfg Config) {
		select {
		case changed <- cfg:
		default:
		}
	}, nil)
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(path, []byte(`log_level = "debug"`), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-changed:
		if cfg.LogLevel != "debug" {
			t.Errorf("reloaded log level = %q, want debug", cfg.LogLevel)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatcherReportsReloadErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inkwell.toml")
	if err := os.WriteFile(path, []byte(`log_level = "warn"`), 0o644); err != nil {
		t.Fatal(err)
	}

	errs := make(chan error, 1)
	w := NewWatcher(path, nil, func(err error) {
		select {
		case errs <- err:
		default:
		}
	})
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(path, []byte("[broken"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-errs:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for the reload error")
	}
}

func TestWatcherStartFailsForMissingDir(t *testing.T) {
	w := NewWatcher("/no/such/dir/inkwell.toml", nil, nil)
	if err := w.Start(); err == nil {
		w.Stop()
		t.Error("watching a missing directory must fail")
	}
}

func TestWatcherStopIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inkwell.toml")

	w := NewWatcher(path, nil, nil)
	if err := w.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	w.Stop()
	w.Stop()
}
