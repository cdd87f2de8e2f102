package progress

import "strings"

// Default glyphs.
const (
	DefaultMarker = '*'
	DefaultFilled = '█'
	DefaultEmpty  = ' '
	DefaultOpen   = '['
	DefaultClose  = ']'
)

// Display renders the progress line for the given number of items
// already yielded.
type Display interface {
	Render(count int) string
}

// DisplayFunc adapts a plain function to Display.
type DisplayFunc func(count int) string

// Render calls f(count).
func (f DisplayFunc) Render(count int) string {
	return f(count)
}

// Stars draws one marker per yielded item.
type Stars struct {
	Marker rune
}

// Render implements Display.
func (s Stars) Render(count int) string {
	return strings.Repeat(string(s.Marker), max(count, 0))
}

// Bar draws a bracketed bar of Total positions.
type Bar struct {
	Total  int
	Open   rune
	Close  rune
	Filled rune
	Empty  rune
}

// Render implements Display.
// The line is always Total+2 runes wide: a count past Total fills the
// whole bar instead of producing a negative number of empty positions.
func (b Bar) Render(count int) string {
	total := max(b.Total, 0)
	filled := min(max(count, 0), total)

	var sb strings.Builder
	sb.WriteRune(b.Open)
	sb.WriteString(strings.Repeat(string(b.Filled), filled))
	sb.WriteString(strings.Repeat(string(b.Empty), total-filled))
	sb.WriteRune(b.Close)
	return sb.String()
}
