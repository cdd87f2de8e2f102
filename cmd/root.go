// Package cmd provides the CLI interface for itermeter.
// It parses command-line arguments and hands the chosen source to app.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"
	"unicode/utf8"

	"github.com/andpalmier/itermeter/internal/app"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const appName = "itermeter"

// Flags shared by every subcommand
type options struct {
	style   string
	delay   time.Duration
	delims  string
	marker  string
	clear   string
	quiet   bool
	verbose bool
}

// Execute runs the CLI application and returns an exit code.
func Execute(version, commit, date string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := newRootCommand(version, commit, date)
	if err := root.ExecuteContext(ctx); err != nil {
		red := color.New(color.FgRed, color.Bold).SprintFunc()
		if errors.Is(err, context.Canceled) {
			fmt.Fprintf(os.Stderr, "\n%s Interrupted\n", red("⚠"))
			return 130
		}
		fmt.Fprintf(os.Stderr, "%s %v\n", red("Error:"), err)
		return 1
	}
	return 0
}

func newRootCommand(version, commit, date string) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   appName,
		Short: "Draw a progress indicator while working through a sequence",
		Long: `itermeter pulls items from a source one at a time, does some work for each
of them and redraws a progress line before every item.

Sources of known length draw a bounded bar ([████      ]); sources of unknown
length draw a growing row of markers (****).`,
		Example: `  # Ten one-second jobs with a bounded bar
  itermeter run

  # Count forever with stars, until interrupted
  itermeter count --style stars --delay 200ms

  # One frame per line of a file, with angle brackets
  itermeter lines notes.txt

  # Walk the commit log of a repository
  itermeter commits --limit 50 --delims '<>' /path/to/repo`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !app.ValidStyle(opts.style) {
				return fmt.Errorf("invalid style %q (valid: stars, bar, meter)", opts.style)
			}
			if utf8.RuneCountInString(opts.delims) != 2 {
				return fmt.Errorf("delims must be exactly two characters, got %q", opts.delims)
			}
			if utf8.RuneCountInString(opts.marker) != 1 {
				return fmt.Errorf("marker must be a single character, got %q", opts.marker)
			}
			switch opts.clear {
			case "auto", "always", "never":
			default:
				return fmt.Errorf("invalid clear mode %q (valid: auto, always, never)", opts.clear)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	root.SetVersionTemplate(versionTemplate(commit, date))

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.style, "style", "s", app.StyleBar, "Display style: stars, bar, meter")
	flags.DurationVarP(&opts.delay, "delay", "d", time.Second, "Simulated work per item")
	flags.StringVar(&opts.delims, "delims", "[]", "Opening and closing characters of the bar")
	flags.StringVar(&opts.marker, "marker", "*", "Marker drawn per item in stars style")
	flags.StringVar(&opts.clear, "clear", "auto", "Clear the screen before each frame: auto, always, never")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress progress output")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Print each item to stderr after it is processed")

	root.AddCommand(
		newRunCommand(opts),
		newCountCommand(opts),
		newLinesCommand(opts),
		newCommitsCommand(opts),
	)

	return root
}

// config turns the shared flags into an app configuration.
func (o *options) config(cmd *cobra.Command, title string) app.Config {
	delims := []rune(o.delims)
	cfg := app.Config{
		Title:  title,
		Style:  o.style,
		Delay:  o.delay,
		Marker: []rune(o.marker)[0],
		Open:   delims[0],
		Close:  delims[1],
		Quiet:  o.quiet,
		Output: cmd.OutOrStdout(),
		Log:    cmd.ErrOrStderr(),
	}

	switch o.clear {
	case "always":
		cfg.Clear = boolPtr(true)
	case "never":
		cfg.Clear = boolPtr(false)
	}

	return cfg
}

// work returns the simulated work, echoing each item in verbose mode.
func work[T any](o *options, log io.Writer) app.Work[T] {
	sleep := app.Sleep[T](o.delay)
	if !o.verbose || o.quiet {
		return sleep
	}
	return func(ctx context.Context, item T) error {
		if err := sleep(ctx, item); err != nil {
			return err
		}
		fmt.Fprintf(log, "✓ %v\n", item)
		return nil
	}
}

func versionTemplate(commit, date string) string {
	tmpl := appName + " version {{.Version}}\n"
	if commit != "none" {
		tmpl += "  commit: " + commit + "\n"
	}
	if date != "unknown" {
		tmpl += "  built:  " + date + "\n"
	}
	return tmpl
}

func boolPtr(b bool) *bool {
	return &b
}
