package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	want := DefaultConfig()
	if cfg.Images != want.Images {
		t.Errorf("Images = %+v, expected %+v", cfg.Images, want.Images)
	}
	if cfg.Tilemaps != want.Tilemaps {
		t.Errorf("Tilemaps = %+v, expected %+v", cfg.Tilemaps, want.Tilemaps)
	}
	if cfg.Channels != want.Channels || cfg.Sounds != want.Sounds ||
		cfg.Musics != want.Musics || cfg.Waveforms != want.Waveforms {
		t.Errorf("bank counts = %+v, expected %+v", cfg, want)
	}
	if len(cfg.Palette) != 16 {
		t.Errorf("palette has %d entries, expected 16", len(cfg.Palette))
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")
	custom := `
images:
  count: 1
  width: 8
  height: 8
channels: 1
palette: ["000000", "FFFFFF"]
`
	if err := os.WriteFile(path, []byte(custom), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) failed: %v", path, err)
	}
	if cfg.Images.Count != 1 || cfg.Images.Width != 8 {
		t.Errorf("Images = %+v, expected count 1 width 8", cfg.Images)
	}
	if len(cfg.Palette) != 2 {
		t.Errorf("palette has %d entries, expected 2", len(cfg.Palette))
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom path")
	}
}

func TestLoadMalformedCustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")
	if err := os.WriteFile(path, []byte("channels: [not a count"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() should fail for malformed YAML")
	}
}
