package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PESA_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Theme.Mode != "auto" {
		t.Fatalf("theme mode = %q", cfg.Theme.Mode)
	}
	if !cfg.Haptics.Enabled {
		t.Fatalf("haptics should default on")
	}
	if cfg.UI.StartRoute != "index" {
		t.Fatalf("start route = %q", cfg.UI.StartRoute)
	}
	if !cfg.UI.NerdFont {
		t.Fatalf("nerd font should default on")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[theme]\nmode = \"dark\"\n\n[haptics]\nenabled = false\n\n[ui]\nstart_route = \"send-money\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("PESA_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Theme.Mode != "dark" {
		t.Fatalf("theme mode = %q", cfg.Theme.Mode)
	}
	if cfg.Haptics.Enabled {
		t.Fatalf("haptics should be off")
	}
	if cfg.UI.StartRoute != "send-money" {
		t.Fatalf("start route = %q", cfg.UI.StartRoute)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("PESA_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("PESA_THEME_MODE", "light")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Theme.Mode != "light" {
		t.Fatalf("env override ignored, mode = %q", cfg.Theme.Mode)
	}
}

func TestInvalidThemeModeRejected(t *testing.T) {
	t.Setenv("PESA_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))
	t.Setenv("PESA_THEME_MODE", "sepia")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown theme mode")
	}
}
