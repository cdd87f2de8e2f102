// Package app drives a sequence source through the progress decorator,
// doing a unit of work for every item pulled.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/andpalmier/itermeter/internal/progress"
	"github.com/fatih/color"
)

// Display styles
const (
	StyleStars = "stars"
	StyleBar   = "bar"
	StyleMeter = "meter"
)

// Config holds the application configuration
type Config struct {
	// Title is shown in the header and used as the meter description
	Title string

	// Style is one of StyleStars, StyleBar or StyleMeter.
	// Unbounded sources fall back to stars for StyleBar.
	Style string

	// Delay simulates the cost of processing one item
	Delay time.Duration

	Marker rune
	Open   rune
	Close  rune

	// Clear forces the clear sequence on (true) or off (false);
	// nil detects a terminal.
	Clear *bool

	// Quiet suppresses progress frames, header and summary
	Quiet bool

	// Output receives progress frames (defaults to os.Stdout)
	Output io.Writer

	// Log receives the header and summary (defaults to os.Stderr)
	Log io.Writer
}

// Work processes a single item.
type Work[T any] func(ctx context.Context, item T) error

// Result summarizes a run.
type Result struct {
	Processed int
	Failed    int
	Elapsed   time.Duration
}

// Sleep returns a Work that only waits for d, the stand-in for an
// expensive calculation.
func Sleep[T any](d time.Duration) Work[T] {
	return func(ctx context.Context, _ T) error {
		if d <= 0 {
			return ctx.Err()
		}
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			return nil
		}
	}
}

// ValidStyle reports whether style names a known display style.
func ValidStyle(style string) bool {
	switch strings.ToLower(style) {
	case StyleStars, StyleBar, StyleMeter:
		return true
	default:
		return false
	}
}

// RunSized processes a source of known length. StyleBar draws a bounded
// bar, StyleMeter a meter with percentage and ETA.
func RunSized[T any](ctx context.Context, cfg Config, src progress.SizedIterator[T], work Work[T]) (Result, error) {
	cfg = withDefaults(cfg)
	total := src.Len()
	printHeader(cfg, total)

	var it progress.Iterator[T]
	switch strings.ToLower(cfg.Style) {
	case StyleBar:
		it = progress.WrapSized(src).WithScreen(screen(cfg)).WithBound().WithDelims(cfg.Open, cfg.Close)
	case StyleMeter:
		it = progress.Wrap(progress.Iterator[T](src)).WithScreen(screen(cfg)).WithDisplay(progress.NewMeter(total, cfg.Title))
	default:
		it = progress.Wrap(progress.Iterator[T](src)).WithScreen(screen(cfg)).WithMarker(cfg.Marker)
	}

	return process(ctx, cfg, it, work)
}

// Run processes a source of unknown length, possibly infinite; it stops
// when the source is exhausted or ctx is cancelled.
func Run[T any](ctx context.Context, cfg Config, src progress.Iterator[T], work Work[T]) (Result, error) {
	cfg = withDefaults(cfg)
	printHeader(cfg, -1)

	p := progress.Wrap(src).WithScreen(screen(cfg)).WithMarker(cfg.Marker)
	if strings.ToLower(cfg.Style) == StyleMeter {
		p = p.WithDisplay(progress.NewMeter(-1, cfg.Title))
	}

	return process(ctx, cfg, p, work)
}

// process pulls every item of it and hands it to work.
func process[T any](ctx context.Context, cfg Config, it progress.Iterator[T], work Work[T]) (Result, error) {
	start := time.Now()

	var result Result
	var workErrs []error

	for {
		if err := ctx.Err(); err != nil {
			result.Elapsed = time.Since(start)
			printSummary(cfg, result)
			return result, err
		}

		item, ok := it.Next()
		if !ok {
			break
		}

		if err := work(ctx, item); err != nil {
			if ctx.Err() != nil {
				continue
			}
			result.Failed++
			workErrs = append(workErrs, err)
			continue
		}
		result.Processed++
	}

	result.Elapsed = time.Since(start)
	printSummary(cfg, result)

	if len(workErrs) > 0 {
		return result, fmt.Errorf("%d of %d items failed: %w",
			result.Failed, result.Processed+result.Failed, errors.Join(workErrs...))
	}
	return result, nil
}

func withDefaults(cfg Config) Config {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	if cfg.Log == nil {
		cfg.Log = os.Stderr
	}
	if cfg.Style == "" {
		cfg.Style = StyleBar
	}
	if cfg.Marker == 0 {
		cfg.Marker = progress.DefaultMarker
	}
	if cfg.Open == 0 {
		cfg.Open = progress.DefaultOpen
	}
	if cfg.Close == 0 {
		cfg.Close = progress.DefaultClose
	}
	if cfg.Title == "" {
		cfg.Title = "working"
	}
	return cfg
}

func screen(cfg Config) *progress.Screen {
	if cfg.Quiet {
		return progress.Discard()
	}
	s := progress.NewScreen(cfg.Output)
	if cfg.Clear != nil {
		s.SetClear(*cfg.Clear)
	}
	return s
}

// printHeader displays the run configuration; total < 0 means unknown
func printHeader(cfg Config, total int) {
	if cfg.Quiet {
		return
	}
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()

	fmt.Fprintf(cfg.Log, "%s %s\n", cyan("▶"), cfg.Title)
	if total >= 0 {
		fmt.Fprintf(cfg.Log, "Items:  %d\n", total)
	} else {
		fmt.Fprintf(cfg.Log, "Items:  unknown\n")
	}
	fmt.Fprintf(cfg.Log, "Style:  %s\n", cfg.Style)
	if cfg.Delay > 0 {
		fmt.Fprintf(cfg.Log, "Delay:  %s per item\n", cfg.Delay)
	}
	fmt.Fprintln(cfg.Log, "")
}

// printSummary displays the outcome of a run
func printSummary(cfg Config, result Result) {
	if cfg.Quiet {
		return
	}

	if result.Failed > 0 {
		red := color.New(color.FgRed, color.Bold).SprintFunc()
		fmt.Fprintf(cfg.Log, "%s Completed with errors: %d succeeded, %d failed in %s\n",
			red("⚠"), result.Processed, result.Failed, formatDuration(result.Elapsed))
		return
	}

	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	fmt.Fprintf(cfg.Log, "%s Processed %d items in %s\n",
		green("✓"), result.Processed, formatDuration(result.Elapsed))
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return "< 1s"
	}

	seconds := int(d.Seconds())
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}

	minutes := seconds / 60
	seconds = seconds % 60
	if minutes < 60 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}

	hours := minutes / 60
	minutes = minutes % 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
