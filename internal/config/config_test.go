package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Log.Level != "info" {
		t.Errorf("log level: got %s, want info", cfg.Log.Level)
	}
	if cfg.Log.File != "" {
		t.Errorf("log file: got %s, want empty (stderr)", cfg.Log.File)
	}
	if cfg.Log.MaxSizeMB <= 0 {
		t.Errorf("rotation size: got %d, want > 0", cfg.Log.MaxSizeMB)
	}
	if cfg.Export.Dir != "." {
		t.Errorf("export dir: got %s, want .", cfg.Export.Dir)
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("log level: got %s, want default info", cfg.Log.Level)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "refract.yaml")
	content := `
log:
  file: /var/log/refract.log
  level: debug
  json: true
export:
  dir: /tmp/exports
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Log.File != "/var/log/refract.log" {
		t.Errorf("log file: got %s", cfg.Log.File)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level: got %s", cfg.Log.Level)
	}
	if !cfg.Log.JSON {
		t.Error("json flag not applied")
	}
	// Unset fields retain their defaults.
	if cfg.Log.MaxBackups != 3 {
		t.Errorf("max backups: got %d, want default 3", cfg.Log.MaxBackups)
	}
	if cfg.Export.Dir != "/tmp/exports" {
		t.Errorf("export dir: got %s", cfg.Export.Dir)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("log: [unclosed"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load should fail on invalid YAML")
	}
}
