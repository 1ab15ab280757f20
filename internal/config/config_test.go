package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, _, exists, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false")
	}
	if cfg.General.DefaultNamespace != "minecraft" || cfg.Editor.PackFormat != 34 {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoadParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[general]
default_namespace = "mrwm"

[editor]
pack_format = 46

[logging]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("resolved = %q exists=%v", resolved, exists)
	}
	if cfg.General.DefaultNamespace != "mrwm" || cfg.Editor.PackFormat != 46 || cfg.Logging.Level != "debug" {
		t.Fatalf("cfg = %+v", cfg)
	}
	// Unspecified sections keep defaults.
	if cfg.Logging.Format != "console" || cfg.General.FontKey != "default" {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestLoadEnvironmentOverride(t *testing.T) {
	t.Setenv("PACKSMITH_DEFAULT_NAMESPACE", "envspace")
	cfg, _, _, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.DefaultNamespace != "envspace" {
		t.Fatalf("DefaultNamespace = %q", cfg.General.DefaultNamespace)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[logging]
level = "loud"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := Load(path); err == nil || !strings.Contains(err.Error(), "logging.level") {
		t.Fatalf("err = %v", err)
	}
}

func TestValidateNamespace(t *testing.T) {
	cfg := Default()
	cfg.General.DefaultNamespace = "bad:ns"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for namespace with separator")
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "default_namespace") {
		t.Fatalf("sample = %s", data)
	}
	// Sample must itself parse and validate.
	if _, _, _, err := Load(path); err != nil {
		t.Fatalf("sample does not load: %v", err)
	}
}
