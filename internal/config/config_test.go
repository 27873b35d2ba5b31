package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "cfg.yml")
	content := "include: \"**/*.go\"\nmax_bytes: 2048\nthreads: 4\nno_color: true\nfail_on: PRODUCTION,ENCRYPTED\n"
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Include == nil || *cfg.Include != "**/*.go" {
		t.Fatalf("include=%v", cfg.Include)
	}
	if cfg.MaxBytes == nil || *cfg.MaxBytes != 2048 {
		t.Fatalf("max_bytes=%v", cfg.MaxBytes)
	}
	if cfg.Threads == nil || *cfg.Threads != 4 {
		t.Fatalf("threads=%v", cfg.Threads)
	}
	if cfg.NoColor == nil || !*cfg.NoColor {
		t.Fatalf("no_color=%v", cfg.NoColor)
	}
	if cfg.FailOn == nil || *cfg.FailOn != "PRODUCTION,ENCRYPTED" {
		t.Fatalf("fail_on=%v", cfg.FailOn)
	}
	// Absent keys stay nil so callers can tell unset from zero.
	if cfg.Exclude != nil || cfg.Baseline != nil {
		t.Fatalf("unset fields should be nil: %+v", cfg)
	}
}

func TestLoadFileInvalidYAML(t *testing.T) {
	p := filepath.Join(t.TempDir(), "cfg.yml")
	if err := os.WriteFile(p, []byte("include: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(p); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoadLocal(t *testing.T) {
	root := t.TempDir()
	if _, err := LoadLocal(root); err == nil {
		t.Fatal("expected error when no local config exists")
	}
	if err := os.WriteFile(filepath.Join(root, ".secretaudit.yml"), []byte("threads: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadLocal(root)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Threads == nil || *cfg.Threads != 2 {
		t.Fatalf("threads=%v", cfg.Threads)
	}
}

func TestLoadGlobal(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)
	if _, err := LoadGlobal(); err == nil {
		t.Fatal("expected error when no global config exists")
	}
	dir := filepath.Join(base, "secretaudit")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte("csv: out.csv\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadGlobal()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.CSVOut == nil || *cfg.CSVOut != "out.csv" {
		t.Fatalf("csv=%v", cfg.CSVOut)
	}
}
