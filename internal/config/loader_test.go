package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadFromPathMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if *cfg != (Config{}) {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadFromPathEmptyFileUsesDefaults(t *testing.T) {
	path := writeConfig(t, "")

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if *cfg != (Config{}) {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadFromPathReadsOptions(t *testing.T) {
	path := writeConfig(t, `
use_work_area: true
disable_dpi_awareness: false
verbose: true
`)

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	want := Config{UseWorkArea: true, Verbose: true}
	if *cfg != want {
		t.Fatalf("got %+v, want %+v", *cfg, want)
	}
}

func TestLoadFromPathRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "use_workarea: true\n")

	if _, err := LoadFromPath(path); err == nil {
		t.Fatal("expected error for unknown key")
	} else if !strings.Contains(err.Error(), "invalid config") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadFromPathRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "use_work_area: [oops\n")

	if _, err := LoadFromPath(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path, err := DefaultConfigPath()
	if err != nil {
		t.Fatalf("DefaultConfigPath failed: %v", err)
	}
	if filepath.Base(path) != "config.yaml" {
		t.Fatalf("unexpected file name in %s", path)
	}
	if !strings.Contains(path, "centerwindow") {
		t.Fatalf("path %s not scoped to the application", path)
	}
}
