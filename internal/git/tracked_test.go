package git

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

func initRepo(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	repo, err := gogit.PlainInit(root, false)
	if err != nil {
		t.Fatal(err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		t.Fatal(err)
	}
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := wt.Add(rel); err != nil {
			t.Fatal(err)
		}
	}
	_, err = wt.Commit("init", &gogit.CommitOptions{
		Author: &object.Signature{Name: "tester", Email: "tester@localhost", When: time.Now()},
	})
	if err != nil {
		t.Fatal(err)
	}
	return root
}

func TestTrackedFiles(t *testing.T) {
	root := initRepo(t, map[string]string{
		"main.go":         "package main\n",
		"config/app.yaml": "key: value\n",
		"docs/guide.md":   "# guide\n",
	})

	// An untracked file must not appear.
	if err := os.WriteFile(filepath.Join(root, "scratch.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	paths, err := TrackedFiles(root)
	if err != nil {
		t.Fatal(err)
	}
	got := append([]string(nil), paths...)
	sort.Strings(got)
	want := []string{"config/app.yaml", "docs/guide.md", "main.go"}
	if len(got) != len(want) {
		t.Fatalf("paths=%v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("paths=%v want %v", got, want)
		}
	}
}

func TestTrackedFilesNotARepo(t *testing.T) {
	if _, err := TrackedFiles(t.TempDir()); err == nil {
		t.Fatal("expected error outside a repository")
	}
}

func TestTrackedFilesNoCommits(t *testing.T) {
	root := t.TempDir()
	if _, err := gogit.PlainInit(root, false); err != nil {
		t.Fatal(err)
	}
	if _, err := TrackedFiles(root); err == nil {
		t.Fatal("expected error for a repository without commits")
	}
}
