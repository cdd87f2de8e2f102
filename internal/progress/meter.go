package progress

import (
	"fmt"
	"io"
	"strings"

	"github.com/schollz/progressbar/v3"
)

// Meter renders frames with a progressbar.ProgressBar: description,
// percentage, count, rate and remaining time. The bar is drawn off-screen
// and its rendered text becomes the frame, so the decorator's Screen stays
// the only writer.
type Meter struct {
	bar         *progressbar.ProgressBar
	total       int
	description string
}

// NewMeter creates a meter for total items. A negative total draws a
// spinner, for sources of unknown length.
func NewMeter(total int, description string) *Meter {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(io.Discard),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("items"),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        string(DefaultFilled),
			SaucerPadding: "░",
			BarStart:      string(DefaultOpen),
			BarEnd:        string(DefaultClose),
		}),
	)
	return &Meter{bar: bar, total: total, description: description}
}

// Render implements Display.
func (m *Meter) Render(count int) string {
	if m.total >= 0 {
		count = min(count, m.total)
	}
	// Errors only report a count past the maximum, which is clamped above.
	_ = m.bar.Set(count)

	line := strings.TrimRight(strings.TrimLeft(m.bar.String(), "\r"), " \n")
	if line == "" {
		if m.total < 0 {
			return fmt.Sprintf("%s %d", m.description, count)
		}
		return fmt.Sprintf("%s %d/%d", m.description, count, m.total)
	}
	return line
}
