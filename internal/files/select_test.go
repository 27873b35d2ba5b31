package files

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEligibleExtensions(t *testing.T) {
	cases := map[string]bool{
		"src/main.go":          true,
		"web/app.TS":           true, // extension check is case-insensitive
		"config/app.yaml":      true,
		"settings.env":         true,
		"img/logo.png":         false,
		"bin/tool.exe":         false,
		"archive.tar.gz":       false,
		"db/schema.sql":        true,
		"notes/README.md":      true,
		"styles/theme.scss":    true,
		"legacy/web.config":    true,
		"etc/app.properties":   true,
		"scripts/deploy.bash":  true,
		"src/Service.java":     true,
		"frontend/App.jsx":     true,
		"package-lock.json":    false,
		"ui/package-lock.json": false,
	}
	for rel, want := range cases {
		if got := Eligible(t.TempDir(), rel); got != want {
			t.Fatalf("Eligible(%q)=%v want %v", rel, got, want)
		}
	}
}

func TestEligibleSkipsDotComponents(t *testing.T) {
	for _, rel := range []string{
		".github/workflows/ci.yml",
		"src/.hidden/config.yaml",
		".env", // dot-prefixed basename is itself a dot component
		"a/b/.cache/x.json",
	} {
		if Eligible(t.TempDir(), rel) {
			t.Fatalf("Eligible(%q) should be false", rel)
		}
	}
}

func TestEligibleSkipsDependencyDirs(t *testing.T) {
	for _, rel := range []string{
		"node_modules/lodash/index.js",
		"web/dist/bundle.js",
		"build/out.go",
		"py/__pycache__/mod.py",
	} {
		if Eligible(t.TempDir(), rel) {
			t.Fatalf("Eligible(%q) should be false", rel)
		}
	}
	// Only exact component names are excluded.
	if !Eligible(t.TempDir(), "builder/out.go") {
		t.Fatal("builder/ is not a build directory")
	}
}

func TestEligibleExtensionlessSniff(t *testing.T) {
	root := t.TempDir()

	text := filepath.Join(root, "Makefile")
	if err := os.WriteFile(text, []byte("all:\n\tgo build ./...\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !Eligible(root, "Makefile") {
		t.Fatal("printable extensionless file should be eligible")
	}

	binary := filepath.Join(root, "tool")
	if err := os.WriteFile(binary, []byte{0x7f, 'E', 'L', 'F', 0x00, 0x01, 0x02}, 0o644); err != nil {
		t.Fatal(err)
	}
	if Eligible(root, "tool") {
		t.Fatal("binary extensionless file should be skipped")
	}

	if Eligible(root, "missing") {
		t.Fatal("unreadable extensionless file should be skipped")
	}
}
