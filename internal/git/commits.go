package git

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/andpalmier/itermeter/internal/source"
)

// logFormat puts the subject last so it may contain the separator.
const logFormat = "--format=%H|%h|%an|%at|%s"

// ListOptions configures how commits are listed from the repository.
type ListOptions struct {
	// Branch to list commits from. If empty, uses the current HEAD.
	Branch string

	// Limit is the maximum number of commits to return, 0 for all.
	Limit int

	// Reverse returns commits oldest first.
	Reverse bool
}

// ListCommits returns the commits selected by opts, newest first unless
// opts.Reverse is set.
func (r *Repository) ListCommits(ctx context.Context, opts ListOptions) ([]Commit, error) {
	args := []string{"log", logFormat}

	if opts.Limit > 0 {
		args = append(args, fmt.Sprintf("-n%d", opts.Limit))
	}
	if opts.Reverse {
		args = append(args, "--reverse")
	}
	if opts.Branch != "" {
		args = append(args, opts.Branch)
	}

	output, err := r.runGitCommand(ctx, args...)
	if err != nil {
		return nil, err
	}

	var commits []Commit
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		commit, err := parseCommitLine(line)
		if err != nil {
			continue
		}
		commits = append(commits, commit)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to parse git log output: %w", err)
	}

	return commits, nil
}

// Commits lists commits like ListCommits and returns them as a sized
// source, ready to be drawn with a bounded bar.
func (r *Repository) Commits(ctx context.Context, opts ListOptions) (*source.Slice[Commit], error) {
	commits, err := r.ListCommits(ctx, opts)
	if err != nil {
		return nil, err
	}
	return source.FromSlice(commits), nil
}

// CommitCount returns the number of commits reachable from branch
// (HEAD when empty).
func (r *Repository) CommitCount(ctx context.Context, branch string) (int, error) {
	ref := branch
	if ref == "" {
		ref = "HEAD"
	}

	output, err := r.runGitCommand(ctx, "rev-list", "--count", ref)
	if err != nil {
		return 0, fmt.Errorf("failed to count commits: %w", err)
	}

	count, err := strconv.Atoi(output)
	if err != nil {
		return 0, fmt.Errorf("failed to parse commit count: %w", err)
	}
	return count, nil
}

// parseCommitLine parses one line produced with logFormat.
func parseCommitLine(line string) (Commit, error) {
	parts := strings.SplitN(line, "|", 5)
	if len(parts) < 5 {
		return Commit{}, fmt.Errorf("invalid commit line format: %s", line)
	}

	timestamp, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil {
		return Commit{}, fmt.Errorf("invalid author timestamp: %w", err)
	}

	return Commit{
		Hash:       parts[0],
		ShortHash:  parts[1],
		Author:     parts[2],
		AuthorDate: time.Unix(timestamp, 0),
		Subject:    parts[4],
	}, nil
}
