package git

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindWorkspace searches dir and its parents for the first directory that
// contains a .git entry. Returns dir itself if no ancestor is a git repo.
func FindWorkspace(dir string) string {
	for current := dir; ; {
		if isGitRepo(current) {
			return current
		}
		parent := filepath.Dir(current)
		if parent == current {
			return dir
		}
		current = parent
	}
}

// CurrentWorkspace returns FindWorkspace for the working directory.
func CurrentWorkspace() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("determine current directory: %w", err)
	}
	return FindWorkspace(wd), nil
}

// isGitRepo checks if path contains a .git directory or file
func isGitRepo(path string) bool {
	gitPath := filepath.Join(path, ".git")
	info, err := os.Stat(gitPath)
	if err != nil {
		return false
	}
	// .git can be a directory (regular repo) or file (worktree)
	return info.IsDir() || info.Mode().IsRegular()
}
