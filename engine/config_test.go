package engine_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fuzzymax/engine"
)

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	want := engine.Config{UseBandit: true, MaxDepth: 7, Iterations: 250}
	if err := want.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got := engine.LoadConfig(path)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("config round trip mismatch:\n%s", diff)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	got := engine.LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if diff := cmp.Diff(engine.DefaultConfig(), got); diff != "" {
		t.Fatalf("missing file should load defaults:\n%s", diff)
	}
}

func TestLoadConfigBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got := engine.LoadConfig(path)
	if diff := cmp.Diff(engine.DefaultConfig(), got); diff != "" {
		t.Fatalf("bad JSON should load defaults:\n%s", diff)
	}
}

func TestLoadConfigClampsValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	bad := engine.Config{UseBandit: true, MaxDepth: -3, Iterations: 1 << 30}
	if err := bad.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got := engine.LoadConfig(path)
	if got.MaxDepth < 1 || got.MaxDepth > 100 {
		t.Fatalf("MaxDepth not clamped: %d", got.MaxDepth)
	}
	if got.Iterations < 1 || got.Iterations > 100000 {
		t.Fatalf("Iterations not clamped: %d", got.Iterations)
	}
	if !got.UseBandit {
		t.Fatalf("UseBandit should survive clamping")
	}
}
