package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileIsZeroConfig(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.EffectsEnabled() {
		t.Error("effects should default to enabled")
	}
	if cfg.Learner.Grade != "" || cfg.Player.Seed != 0 {
		t.Error("missing file should yield the zero config")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
learner:
  name: Ana
  grade: "5º ano"
  age: 10
player:
  seed: 7
  effects: false
content:
  dir: /srv/conteudos
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Learner.Name != "Ana" || cfg.Learner.Grade != "5º ano" || cfg.Learner.Age != 10 {
		t.Errorf("learner = %+v", cfg.Learner)
	}
	if cfg.Player.Seed != 7 {
		t.Errorf("seed = %d, want 7", cfg.Player.Seed)
	}
	if cfg.EffectsEnabled() {
		t.Error("effects explicitly disabled in file")
	}
	if cfg.Content.Dir != "/srv/conteudos" {
		t.Errorf("content dir = %q", cfg.Content.Dir)
	}
}

func TestLoadRejectsNegativeAge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	os.WriteFile(path, []byte("learner:\n  age: -3\n"), 0o644)
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for negative age")
	}
}

func TestDefaultPathEnvOverride(t *testing.T) {
	t.Setenv("PROVINHA_CONFIG", "/tmp/custom.yaml")
	p, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if p != "/tmp/custom.yaml" {
		t.Errorf("path = %q", p)
	}

	t.Setenv("PROVINHA_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	p, err = DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if p != filepath.Join("/xdg", "provinha", "config.yaml") {
		t.Errorf("path = %q", p)
	}
}
