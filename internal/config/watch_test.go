package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte("camera:\n  speed: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("camera:\n  speed: 6\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	timeout := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-w.Changes():
			// A write can be observed half done; wait for the final content.
			if cfg != nil && cfg.Camera.Speed == 6 {
				return
			}
		case <-timeout:
			t.Fatal("no reload seen")
		}
	}
}

func TestWatcherCloseClosesChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path)
	if err != nil {
		t.Fatalf("Watch: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}

	select {
	case _, ok := <-w.Changes():
		if ok {
			t.Error("expected Changes to be closed")
		}
	case <-time.After(time.Second):
		t.Error("Changes not closed after Close")
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	if _, err := Watch(filepath.Join(t.TempDir(), "nope", "scene.yaml")); err == nil {
		t.Error("expected error for a missing directory")
	}
}
