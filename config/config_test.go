package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultSettings(t *testing.T) {
	s := Default()
	if s.Window.Width != 1280 || s.Window.Height != 720 {
		t.Fatalf("default window = %dx%d, want 1280x720", s.Window.Width, s.Window.Height)
	}
	if s.Window.Title == "" {
		t.Fatalf("default title should not be empty")
	}
	if s.Gamepad.Slot != 0 {
		t.Fatalf("default gamepad slot = %d, want 0", s.Gamepad.Slot)
	}
	if s.View.ScrollSpeed <= 0 || s.View.ZoomStep <= 0 {
		t.Fatalf("default view tunables should be positive")
	}
	if s.View.MinZoom >= s.View.MaxZoom {
		t.Fatalf("default zoom range inverted: %v..%v", s.View.MinZoom, s.View.MaxZoom)
	}
}

func TestLoadOverridesOnTopOfDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	partial := "window:\n  width: 1920\n  height: 1080\ngamepad:\n  slot: 1\n"
	if err := os.WriteFile(path, []byte(partial), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Window.Width != 1920 || s.Window.Height != 1080 {
		t.Fatalf("override window = %dx%d, want 1920x1080", s.Window.Width, s.Window.Height)
	}
	if s.Gamepad.Slot != 1 {
		t.Fatalf("override slot = %d, want 1", s.Gamepad.Slot)
	}
	// untouched keys keep their defaults
	if s.View.ScrollSpeed != Default().View.ScrollSpeed {
		t.Fatalf("unnamed keys should keep defaults")
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error, got %v", err)
	}
	if s != Default() {
		t.Fatalf("missing file should yield defaults")
	}
}

func TestLoadRejectsBadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	if err := os.WriteFile(path, []byte("window: [not: a: map"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("malformed yaml should error")
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	if err := os.WriteFile(path, []byte("window:\n  width: 800\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("window:\n  width: 1024\n"), 0o644); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	select {
	case s := <-w.Events:
		if s.Window.Width != 1024 {
			t.Fatalf("reloaded width = %d, want 1024", s.Window.Width)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("timed out waiting for reload event")
	}
}

func TestWatcherCloseDrainsChannels(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	if err := os.WriteFile(path, []byte("window:\n  width: 800\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}

	// a burst of writes right up to Close must not panic the watch loop
	for i := 0; i < 10; i++ {
		_ = os.WriteFile(path, []byte("window:\n  width: 900\n"), 0o644)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}

	// the loop owns the channels; both must close once it drains
	deadline := time.After(5 * time.Second)
	for open := true; open; {
		select {
		case _, ok := <-w.Events:
			open = ok
		case <-deadline:
			t.Fatalf("Events never closed after Close")
		}
	}
	select {
	case _, ok := <-w.Errors:
		if ok {
			// a real error is fine; keep draining until closed
			for range w.Errors {
			}
		}
	case <-deadline:
		t.Fatalf("Errors never closed after Close")
	}
}
