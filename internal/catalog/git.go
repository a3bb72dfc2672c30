package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	playerrors "github.com/alexisbeaulieu97/playground/pkg/errors"
)

// GitSource points at a catalog file inside a git repository.
type GitSource struct {
	URL string
	// Branch to clone; empty means the remote HEAD.
	Branch string
	// Path of the catalog file relative to the repository root.
	Path string
}

// FetchGit clones the repository into a temporary directory and loads
// the catalog file from it. The clone is removed before returning.
func FetchGit(ctx context.Context, src GitSource) (*Catalog, error) {
	if src.URL == "" {
		return nil, playerrors.NewSourceError("", fmt.Errorf("repository url is required"))
	}
	if src.Path == "" {
		return nil, playerrors.NewSourceError(src.URL, fmt.Errorf("catalog path is required"))
	}

	dir, err := os.MkdirTemp("", "playground-catalog-*")
	if err != nil {
		return nil, playerrors.NewSourceError(src.URL, err)
	}
	defer os.RemoveAll(dir)

	cloneOpts := &git.CloneOptions{
		URL: src.URL,
	}
	if src.Branch != "" {
		cloneOpts.ReferenceName = plumbing.NewBranchReferenceName(src.Branch)
		cloneOpts.SingleBranch = true
	}

	if _, err := git.PlainCloneContext(ctx, dir, false, cloneOpts); err != nil {
		return nil, playerrors.NewSourceError(src.URL, fmt.Errorf("clone failed: %w", err))
	}

	file := filepath.Join(dir, filepath.Clean(string(filepath.Separator)+src.Path))
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, playerrors.NewSourceError(src.URL, fmt.Errorf("read %s: %w", src.Path, err))
	}

	return Parse(src.URL+"//"+src.Path, data)
}
