package progress

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ClearSequence erases the terminal and moves the cursor home.
const ClearSequence = "\x1b[2J\x1b[1;1H"

// Screen is the text sink frames are drawn on.
// Each frame clears the screen first when the writer is a terminal;
// on anything else the clear is skipped and frames are plain lines.
type Screen struct {
	w     io.Writer
	clear bool
	err   error
}

// NewScreen creates a screen writing to w.
func NewScreen(w io.Writer) *Screen {
	if w == nil {
		w = os.Stdout
	}
	return &Screen{w: w, clear: isTerminal(w)}
}

// Stdout returns a screen on standard output.
func Stdout() *Screen {
	return NewScreen(os.Stdout)
}

// Discard returns a screen that draws nothing.
func Discard() *Screen {
	return &Screen{w: io.Discard}
}

// SetClear forces the clear sequence on or off.
func (s *Screen) SetClear(clear bool) *Screen {
	s.clear = clear
	return s
}

// Show clears the screen if needed and writes line followed by a newline.
func (s *Screen) Show(line string) {
	if s.clear {
		s.write(ClearSequence)
	}
	s.write(line + "\n")
}

// Err returns the first write error, if any.
func (s *Screen) Err() error {
	return s.err
}

func (s *Screen) write(str string) {
	if s.err != nil {
		return
	}
	if _, err := io.WriteString(s.w, str); err != nil {
		s.err = err
	}
}

// isTerminal reports whether w is backed by a terminal file descriptor.
func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
