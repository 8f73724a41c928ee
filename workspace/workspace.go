package workspace

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/JakubFranek/Nexys-A7-Lab/log"
	"github.com/JakubFranek/Nexys-A7-Lab/util"
	"github.com/go-git/go-git/v5"
	"github.com/pkg/errors"
)

// Workspace is the lab project the tool operates on.
type Workspace struct {
	root string
	repo *git.Repository
}

// Open finds the workspace containing `dir`. If `dir` is inside a git repository, the workspace
// root is the top level of its worktree. Otherwise `dir` itself is the root.
func Open(dir string) (Workspace, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return Workspace{}, errors.Wrapf(err, "failed to resolve '%s'", dir)
	}

	repo, err := git.PlainOpenWithOptions(abs, &git.PlainOpenOptions{DetectDotGit: true})
	if err == git.ErrRepositoryNotExists {
		log.Debug("'%s' is not inside a git repository.\n", abs)
		return Workspace{root: abs}, nil
	}
	if err != nil {
		return Workspace{}, errors.Wrapf(err, "failed to open git repository at '%s'", abs)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return Workspace{}, errors.Wrap(err, "failed to get repo worktree")
	}
	root := worktree.Filesystem.Root()
	log.Debug("Workspace root is '%s'.\n", root)
	return Workspace{root: root, repo: repo}, nil
}

// Current opens the workspace containing the working directory.
func Current() (Workspace, error) {
	wd, err := os.Getwd()
	if err != nil {
		return Workspace{}, err
	}
	return Open(wd)
}

// Root returns the workspace root directory.
func (w Workspace) Root() string {
	return w.root
}

// IsRepo reports whether the workspace is a git repository.
func (w Workspace) IsRepo() bool {
	return w.repo != nil
}

// Path joins `elem` onto the workspace root.
func (w Workspace) Path(elem ...string) string {
	return filepath.Join(append([]string{w.root}, elem...)...)
}

// DirtyFiles returns the files below `dir` with uncommited or untracked changes, relative to the
// workspace root and sorted. It returns nothing outside of a git repository.
func (w Workspace) DirtyFiles(dir string) ([]string, error) {
	if w.repo == nil {
		return nil, nil
	}

	prefix, err := w.relative(dir)
	if err != nil {
		return nil, err
	}

	worktree, err := w.repo.Worktree()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get repo worktree")
	}
	status, err := worktree.Status()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get repo status")
	}

	dirty := []string{}
	for file, fileStatus := range status {
		if fileStatus.Staging == git.Unmodified && fileStatus.Worktree == git.Unmodified {
			continue
		}
		if prefix != "." && file != prefix && !strings.HasPrefix(file, prefix+"/") {
			continue
		}
		dirty = append(dirty, file)
	}
	return util.OrderedSlice(dirty), nil
}

func (w Workspace) relative(dir string) (string, error) {
	if !filepath.IsAbs(dir) {
		dir = w.Path(dir)
	}
	rel, err := filepath.Rel(w.root, dir)
	if err != nil {
		return "", errors.Wrapf(err, "'%s' is not inside the workspace", dir)
	}
	if strings.HasPrefix(rel, "..") {
		return "", errors.Errorf("'%s' is not inside the workspace", dir)
	}
	return filepath.ToSlash(rel), nil
}
