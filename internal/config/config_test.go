package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Manager.Port != 443 {
		t.Fatalf("expected default port 443, got %d", cfg.Manager.Port)
	}
	if !cfg.SSL.VerifyCertificates {
		t.Fatalf("expected certificate verification on by default")
	}
	if cfg.Section.Name != "DFW-Portal-Rules" || cfg.Section.Category != "LAYER3" {
		t.Fatalf("unexpected section defaults: %+v", cfg.Section)
	}
	if cfg.API.Timeout() != 30*time.Second {
		t.Fatalf("expected 30s timeout, got %v", cfg.API.Timeout())
	}
	if cfg.API.Retries != 3 {
		t.Fatalf("expected 3 retries, got %d", cfg.API.Retries)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("NSX_MANAGER_HOST", "nsx.example.net")
	t.Setenv("NSX_MANAGER_PORT", "8443")
	t.Setenv("NSX_VERIFY_SSL", "false")
	t.Setenv("NSX_SECTION_ID", "sec-42")
	t.Setenv("NSX_TIMEOUT_MS", "5000")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Manager.Host != "nsx.example.net" || cfg.Manager.Port != 8443 {
		t.Fatalf("env override not applied: %+v", cfg.Manager)
	}
	if cfg.SSL.VerifyCertificates {
		t.Fatalf("expected verification disabled via env")
	}
	if cfg.Section.Id != "sec-42" {
		t.Fatalf("expected section id override, got %q", cfg.Section.Id)
	}
	if cfg.API.Timeout() != 5*time.Second {
		t.Fatalf("expected 5s timeout, got %v", cfg.API.Timeout())
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portal.yaml")
	body := `
nsx_manager:
  host: file-host
  username: operator
section:
  name: File-Section
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("NSX_MANAGER_HOST", "env-host")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// env wins over file, file wins over defaults
	if cfg.Manager.Host != "env-host" {
		t.Fatalf("expected env to win, got %q", cfg.Manager.Host)
	}
	if cfg.Manager.Username != "operator" {
		t.Fatalf("expected file value, got %q", cfg.Manager.Username)
	}
	if cfg.Section.Name != "File-Section" {
		t.Fatalf("expected file section name, got %q", cfg.Section.Name)
	}
}

func TestLoadRejectsEmptySectionName(t *testing.T) {
	t.Setenv("NSX_SECTION_NAME", "")
	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for empty section name")
	}
}
