package cmd

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/andpalmier/itermeter/internal/app"
	"github.com/andpalmier/itermeter/internal/git"
	"github.com/andpalmier/itermeter/internal/progress"
	"github.com/andpalmier/itermeter/internal/source"
	"github.com/spf13/cobra"
)

func newRunCommand(opts *options) *cobra.Command {
	var items int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Work through a fixed number of items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if items < 0 {
				return fmt.Errorf("items must not be negative, got %d", items)
			}

			src := source.FromSlice(slices.Repeat([]int{1}, items))
			cfg := opts.config(cmd, fmt.Sprintf("Running %d jobs", items))
			_, err := app.RunSized(cmd.Context(), cfg, progress.SizedIterator[int](src), work[int](opts, cmd.ErrOrStderr()))
			return err
		},
	}

	cmd.Flags().IntVarP(&items, "items", "n", 10, "Number of items to process")
	return cmd
}

func newCountCommand(opts *options) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count upwards, forever unless a limit is set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.config(cmd, "Counting")
			w := work[int](opts, cmd.ErrOrStderr())

			if limit > 0 {
				_, err := app.RunSized(cmd.Context(), cfg, progress.SizedIterator[int](source.Take(source.Counter(0), limit)), w)
				return err
			}
			_, err := app.Run(cmd.Context(), cfg, progress.Iterator[int](source.Counter(0)), w)
			return err
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Stop after this many numbers (0 = never)")
	return cmd
}

func newLinesCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lines [file]",
		Short: "Process the lines of a file, or standard input",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			name := "standard input"
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open input: %w", err)
				}
				defer f.Close()
				r, name = f, args[0]
			}

			lines := source.Lines(r)
			cfg := opts.config(cmd, "Reading "+name)
			if _, err := app.Run(cmd.Context(), cfg, progress.Iterator[string](lines), work[string](opts, cmd.ErrOrStderr())); err != nil {
				return err
			}
			return lines.Err()
		},
	}

	return cmd
}

func newCommitsCommand(opts *options) *cobra.Command {
	var listOpts git.ListOptions

	cmd := &cobra.Command{
		Use:   "commits [repository-path]",
		Short: "Walk the commit log of a git repository, oldest first",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repoPath := "."
			if len(args) == 1 {
				repoPath = args[0]
			}

			repo, err := git.Open(repoPath)
			if err != nil {
				return fmt.Errorf("failed to open repository: %w", err)
			}

			listOpts.Reverse = true
			commits, err := repo.Commits(cmd.Context(), listOpts)
			if err != nil {
				return fmt.Errorf("failed to list commits: %w", err)
			}
			if commits.Len() == 0 {
				return fmt.Errorf("no commits found")
			}

			branch := listOpts.Branch
			if branch == "" {
				branch = repo.CurrentBranch(cmd.Context())
			}

			cfg := opts.config(cmd, fmt.Sprintf("Commits of %s (%s)", repo.Path, branch))
			_, err = app.RunSized(cmd.Context(), cfg, progress.SizedIterator[git.Commit](commits), work[git.Commit](opts, cmd.ErrOrStderr()))
			return err
		},
	}

	cmd.Flags().StringVarP(&listOpts.Branch, "branch", "b", "", "Branch to walk (default: current HEAD)")
	cmd.Flags().IntVarP(&listOpts.Limit, "limit", "n", 0, "Maximum number of commits (0 = all)")
	return cmd
}
