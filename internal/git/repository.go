// Package git lists the commits of a repository through the git CLI.
package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Repository represents an opened git repository.
type Repository struct {
	// Path is the absolute path to the repository root
	Path string
}

// Open validates that path is a git work tree and returns it.
func Open(path string) (*Repository, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to access path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", absPath)
	}

	repo := &Repository{Path: absPath}

	// Bare repositories and worktrees have no .git directory of their own
	if _, err := os.Stat(filepath.Join(absPath, ".git")); err != nil {
		if _, err := repo.runGitCommand(context.Background(), "rev-parse", "--git-dir"); err != nil {
			return nil, fmt.Errorf("not a git repository: %s", absPath)
		}
	}

	return repo, nil
}

// CurrentBranch returns the checked out branch, or "HEAD" when detached.
func (r *Repository) CurrentBranch(ctx context.Context) string {
	branch, err := r.runGitCommand(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "HEAD"
	}
	return branch
}

// runGitCommand runs git in the repository and returns its trimmed stdout.
func (r *Repository) runGitCommand(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = r.Path

	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", fmt.Errorf("git %s failed: %s", args[0], strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("git %s failed: %w", args[0], err)
	}

	return strings.TrimSpace(string(output)), nil
}
