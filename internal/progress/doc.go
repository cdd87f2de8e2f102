// Package progress decorates a sequence source with a terminal progress
// indicator.
//
// Every item pulled through a decorator redraws one line on the output
// screen before the item is handed back unchanged:
//
//	for n := range progress.WrapSized(source.FromSlice(jobs)).WithBound().All() {
//	    process(n)
//	}
//
// A freshly wrapped source is unbounded and draws a growing row of markers:
//
//	*****
//
// Sources that know their exact length can be bounded, which draws a fixed
// width bar instead:
//
//	[█████     ]
//
// Any Display can be plugged into an unbounded decorator; Meter renders the
// line with github.com/schollz/progressbar/v3.
package progress
