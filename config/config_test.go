package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultMatchesSpecDefaults(t *testing.T) {
	cfg := Default()
	if cfg.DT != 0.016 || cfg.G != 100.0 || cfg.Softening != 10.0 {
		t.Fatalf("unexpected defaults: dt=%f g=%f softening=%f", cfg.DT, cfg.G, cfg.Softening)
	}
	if cfg.TickRate != 120 || cfg.Theta != 0.5 || cfg.SpeedMultiplier != 1.0 {
		t.Fatalf("unexpected defaults: tickrate=%f theta=%f speed=%f", cfg.TickRate, cfg.Theta, cfg.SpeedMultiplier)
	}
	if cfg.DirectThreshold != 50 || cfg.GPUThreshold != 500 || cfg.MetricsAddr != ":9090" {
		t.Fatalf("unexpected defaults: direct=%d gpu=%d addr=%s", cfg.DirectThreshold, cfg.GPUThreshold, cfg.MetricsAddr)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if cfg != Default() {
		t.Fatal("Load(\"\") should return exactly Default()")
	}
}

func TestLoadOverlaysConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orbitforge.yaml")
	if err := os.WriteFile(path, []byte("g: 250\ntheta: 0.8\n"), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.G != 250 || cfg.Theta != 0.8 {
		t.Fatalf("overlay failed: g=%f theta=%f", cfg.G, cfg.Theta)
	}
	if cfg.DT != 0.016 {
		t.Fatalf("unset field should keep default: dt=%f", cfg.DT)
	}
}

func TestLoadUnreadablePathReturnsError(t *testing.T) {
	_, err := Load("/nonexistent/path/orbitforge.yaml")
	if err == nil {
		t.Fatal("expected error for unreadable config path")
	}
}
