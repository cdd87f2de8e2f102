package source

import (
	"bufio"
	"fmt"
	"io"
)

// LineReader yields the lines of a reader without their terminators.
// Reads block until a line is available, which makes it an unbounded
// source: the total is unknown until the reader is drained.
type LineReader struct {
	scanner *bufio.Scanner
	err     error
}

// Lines creates a line source over r.
func Lines(r io.Reader) *LineReader {
	return &LineReader{scanner: bufio.NewScanner(r)}
}

// Next returns the next line.
func (l *LineReader) Next() (string, bool) {
	if l.err != nil {
		return "", false
	}
	if !l.scanner.Scan() {
		if err := l.scanner.Err(); err != nil {
			l.err = fmt.Errorf("failed to read line: %w", err)
		}
		return "", false
	}
	return l.scanner.Text(), true
}

// Err returns the read error that ended the sequence, if any.
func (l *LineReader) Err() error {
	return l.err
}
