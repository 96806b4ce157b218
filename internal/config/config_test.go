package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("addr = %q, want :8080", cfg.Addr)
	}
	if cfg.CatalogPath != "Questions.json" {
		t.Fatalf("catalog_path = %q, want Questions.json", cfg.CatalogPath)
	}
	if cfg.SessionTTLMinutes != 30 || cfg.ConfirmTTLMinutes != 10 {
		t.Fatalf("ttls = (%d,%d), want (30,10)", cfg.SessionTTLMinutes, cfg.ConfirmTTLMinutes)
	}
	if len(cfg.Languages) != 2 {
		t.Fatalf("languages = %v, want default pair", cfg.Languages)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("addr: \":9090\"\nsqlite_path: /tmp/s.db\ncatalog_path: q.json\nsession_ttl_minutes: 5\nlanguages: [en]\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Addr != ":9090" || cfg.SQLitePath != "/tmp/s.db" || cfg.CatalogPath != "q.json" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.SessionTTLMinutes != 5 {
		t.Fatalf("session ttl = %d, want 5", cfg.SessionTTLMinutes)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("addr: \":9090\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	os.Setenv("SURVEY_ADDR", ":7070")
	defer os.Unsetenv("SURVEY_ADDR")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Addr != ":7070" {
		t.Fatalf("addr = %q, want env override :7070", cfg.Addr)
	}
}

func TestLoadRejectsNegativeTTL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("session_ttl_minutes: -1\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected validation error for negative ttl")
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("addr: [unclosed\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}
