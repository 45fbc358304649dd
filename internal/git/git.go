package git

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Run executes a git command in the given directory and returns trimmed stdout.
func Run(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		return strings.TrimSpace(string(out)), err
	}
	return strings.TrimSpace(string(out)), nil
}

// IsRepo returns true if dir is a git repository.
func IsRepo(dir string) bool {
	_, err := Run(dir, "rev-parse", "--git-dir")
	return err == nil
}

// IsClean returns true if the working tree has no uncommitted changes.
func IsClean(dir string) (bool, error) {
	out, err := Run(dir, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return out == "", nil
}

// Init initializes a new git repo in dir with local user config
// so commits work regardless of global git configuration.
func Init(dir string) error {
	if _, err := Run(dir, "init", "-b", "main"); err != nil {
		return err
	}
	if _, err := Run(dir, "config", "user.name", "aaz-profiles"); err != nil {
		return err
	}
	_, err := Run(dir, "config", "user.email", "aaz-profiles@localhost")
	return err
}

// Add stages files.
func Add(dir string, paths ...string) error {
	args := append([]string{"add"}, paths...)
	_, err := Run(dir, args...)
	return err
}

// Remove stages the deletion of paths. Paths git does not track are ignored.
func Remove(dir string, paths ...string) error {
	args := append([]string{"rm", "-q", "--cached", "--ignore-unmatch", "--"}, paths...)
	_, err := Run(dir, args...)
	return err
}

// HasStagedChanges reports whether the index differs from HEAD.
func HasStagedChanges(dir string) (bool, error) {
	out, err := Run(dir, "diff", "--cached", "--quiet")
	if err == nil {
		return false, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		return true, nil
	}
	return false, fmt.Errorf("%s", out)
}

// Commit creates a commit with the given message.
func Commit(dir, message string) error {
	_, err := Run(dir, "commit", "-m", message)
	return err
}

// CommitPaths stages paths and commits them when anything changed.
// Returns false when there was nothing to commit.
func CommitPaths(dir, message string, paths ...string) (bool, error) {
	if err := Add(dir, paths...); err != nil {
		return false, fmt.Errorf("staging changes: %w", err)
	}
	staged, err := HasStagedChanges(dir)
	if err != nil {
		return false, err
	}
	if !staged {
		return false, nil
	}
	if err := Commit(dir, message); err != nil {
		return false, fmt.Errorf("committing: %w", err)
	}
	return true, nil
}

// Log returns up to n one-line commit summaries touching path, newest first.
// An empty path covers the whole repository.
func Log(dir, path string, n int) ([]string, error) {
	args := []string{"log", "--oneline", fmt.Sprintf("-%d", n)}
	if path != "" {
		args = append(args, "--", path)
	}
	out, err := Run(dir, args...)
	if err != nil {
		return nil, fmt.Errorf("%s", out)
	}
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}
