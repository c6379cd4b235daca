package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Width <= 0 || cfg.Height <= 0 {
		t.Error("default viewport should be positive")
	}
	if cfg.FPS() != DesktopFPS {
		t.Errorf("default profile should target %d fps, got %d", DesktopFPS, cfg.FPS())
	}
	cfg.Profile = "mobile"
	if cfg.FPS() != MobileFPS {
		t.Errorf("mobile profile should target %d fps, got %d", MobileFPS, cfg.FPS())
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parascope.yaml")
	want := DefaultConfig()
	want.Width = 1280
	want.Height = 720
	want.InitialScene = 3

	if err := Save(path, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *got != *want {
		t.Errorf("round trip mismatch: %+v vs %+v", got, want)
	}
}

func TestLoadRejectsBadProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parascope.yaml")
	if err := os.WriteFile(path, []byte("profile: quantum\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown profile")
	}
}

func TestGetPreset(t *testing.T) {
	vals := GetPreset("torus_knot", "trefoil")
	if vals == nil {
		t.Fatal("expected trefoil preset")
	}
	if vals["q"] != 3 {
		t.Errorf("expected q=3, got %v", vals["q"])
	}

	if GetPreset("torus_knot", "nope") != nil {
		t.Error("expected nil for unknown preset")
	}
	if GetPreset("nope", "trefoil") != nil {
		t.Error("expected nil for unknown scene")
	}
}

func TestListPresets(t *testing.T) {
	if len(ListPresets("torus_knot")) == 0 {
		t.Error("expected presets for torus_knot")
	}
	if ListPresets("nope") != nil {
		t.Error("expected nil for unknown scene")
	}
}
