package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.Radius != 5 || cfg.PreviewMaxW != 720 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.json")
	cfg := DefaultConfig()
	cfg.Radius = 12
	cfg.LastOpenDir = "/tmp/pics"
	if err := cfg.Save(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Radius != 12 || got.LastOpenDir != "/tmp/pics" {
		t.Fatalf("round trip lost values: %+v", got)
	}
}

func TestValidate_ClampsRadiusAndPreview(t *testing.T) {
	cfg := &Config{Radius: 99, PreviewMaxW: 10, PreviewMaxH: -5}
	_ = cfg.Validate()
	if cfg.Radius != 20 {
		t.Fatalf("radius not clamped: %d", cfg.Radius)
	}
	if cfg.PreviewMaxW != 720 || cfg.PreviewMaxH != 480 {
		t.Fatalf("preview box not restored: %dx%d", cfg.PreviewMaxW, cfg.PreviewMaxH)
	}
}

func TestLoad_MalformedJSONFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{nope"), 0o644); err != nil {
		t.Fatalf("setup: %v", err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if cfg == nil || cfg.Radius != 5 {
		t.Fatalf("defaults expected alongside error, got %+v", cfg)
	}
}
