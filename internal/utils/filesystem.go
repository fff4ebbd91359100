package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindGitRoot traverses up from the working directory to find the
// enclosing git working tree. Returns the path to the tree root if
// found, empty string otherwise.
func FindGitRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	for {
		gitDir := filepath.Join(currentDir, ".git")
		_, err := os.Stat(gitDir)
		// No error means the path exists. Worktrees keep .git as a
		// file rather than a directory, so either counts.
		if err == nil {
			return currentDir, nil
		} else if !os.IsNotExist(err) {
			return "", fmt.Errorf("error checking for .git at %s: %w", currentDir, err)
		}

		parentDir := filepath.Dir(currentDir)

		// Reached the filesystem root without finding .git.
		if parentDir == currentDir {
			return "", nil
		}
		currentDir = parentDir
	}
}
