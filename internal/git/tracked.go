// Package git lists the files a repository tracks, which bounds the scan to
// content that would actually ship.
package git

import (
	"fmt"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// TrackedFiles returns the relative paths of all files tracked at HEAD of the
// repository at root, in tree order. An error means the scan cannot proceed
// at all: root is not a repository, or it has no commits yet.
func TrackedFiles(root string) ([]string, error) {
	repo, err := gogit.PlainOpenWithOptions(root, &gogit.PlainOpenOptions{})
	if err != nil {
		return nil, fmt.Errorf("open repository at %s: %w", root, err)
	}
	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("resolve HEAD: %w", err)
	}
	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return nil, fmt.Errorf("load HEAD commit: %w", err)
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("load HEAD tree: %w", err)
	}

	var paths []string
	err = tree.Files().ForEach(func(f *object.File) error {
		paths = append(paths, f.Name)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk HEAD tree: %w", err)
	}
	return paths, nil
}
