package git

import (
	"os"

	gogit "github.com/go-git/go-git/v5"
	"github.com/penwyp/xtask/internal/errors"
)

// ProjectRoot returns the top-level directory of the working tree that
// contains start, walking up the directory tree the way git itself does.
// An empty start means the current working directory.
func ProjectRoot(start string) (string, error) {
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(errors.ErrTypeGit, "failed to get working directory", err)
		}
		start = wd
	}

	repo, err := gogit.PlainOpenWithOptions(start, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return "", errors.ErrNoGitRepo
		}
		return "", errors.Wrap(errors.ErrTypeGit, "failed to open repository", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		// bare repositories have no worktree to run commands in
		return "", errors.Wrap(errors.ErrTypeGit, "repository has no working tree", err)
	}

	return wt.Filesystem.Root(), nil
}
