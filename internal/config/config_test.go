package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8095" {
		t.Errorf("unexpected default port %q", cfg.Port)
	}
	if cfg.MaxUploadBytes != 52428800 {
		t.Errorf("unexpected default upload limit %d", cfg.MaxUploadBytes)
	}
	if cfg.SectionHeadLines != 5 || cfg.SectionMaxTitleLen != 80 {
		t.Errorf("unexpected section defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PDFSIFT_PORT", "9000")
	t.Setenv("PDFSIFT_WORKER_COUNT", "8")
	t.Setenv("PDFSIFT_DOCUMENT_TTL", "30m")
	t.Setenv("PDFSIFT_SECTION_KEYWORDS", "Methods, Findings ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9000" {
		t.Errorf("port override not applied: %q", cfg.Port)
	}
	if cfg.WorkerCount != 8 {
		t.Errorf("worker count override not applied: %d", cfg.WorkerCount)
	}
	if cfg.DocumentTTL != 30*time.Minute {
		t.Errorf("ttl override not applied: %v", cfg.DocumentTTL)
	}
	want := []string{"Methods", "Findings"}
	if len(cfg.SectionKeywords) != len(want) {
		t.Fatalf("keywords override not applied: %v", cfg.SectionKeywords)
	}
	for i := range want {
		if cfg.SectionKeywords[i] != want[i] {
			t.Errorf("keyword %d: expected %q, got %q", i, want[i], cfg.SectionKeywords[i])
		}
	}
}

func TestLoad_InvalidEnvFallsBack(t *testing.T) {
	t.Setenv("PDFSIFT_WORKER_COUNT", "not-a-number")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.WorkerCount != 2 {
		t.Errorf("expected fallback worker count, got %d", cfg.WorkerCount)
	}
}

func TestLoad_FileOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pdfsift.yaml")
	content := `
port: "7070"
upload_dir: /data/uploads
document_ttl: 45m
section:
  keywords:
    - Zusammenfassung
  head_lines: 3
  max_title_len: 60
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PDFSIFT_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "7070" {
		t.Errorf("file port not applied: %q", cfg.Port)
	}
	if cfg.UploadDir != "/data/uploads" {
		t.Errorf("file upload dir not applied: %q", cfg.UploadDir)
	}
	if cfg.DocumentTTL != 45*time.Minute {
		t.Errorf("file ttl not applied: %v", cfg.DocumentTTL)
	}
	if len(cfg.SectionKeywords) != 1 || cfg.SectionKeywords[0] != "Zusammenfassung" {
		t.Errorf("file keywords not applied: %v", cfg.SectionKeywords)
	}
	if cfg.SectionHeadLines != 3 || cfg.SectionMaxTitleLen != 60 {
		t.Errorf("file section limits not applied: %+v", cfg)
	}
}

func TestLoad_FileOverlayBeatsEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pdfsift.yaml")
	if err := os.WriteFile(path, []byte("port: \"7071\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PDFSIFT_CONFIG", path)
	t.Setenv("PDFSIFT_PORT", "9999")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "7071" {
		t.Errorf("file must override env, got %q", cfg.Port)
	}
}

func TestLoad_BadFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pdfsift.yaml")
	if err := os.WriteFile(path, []byte("port: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PDFSIFT_CONFIG", path)

	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed config file")
	}
}

func TestValidate_EmptyUploadDir(t *testing.T) {
	cfg := Config{Port: "8095"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for empty upload dir")
	}
}
