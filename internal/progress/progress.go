package progress

import "iter"

// Iterator is a pull based sequence source.
// Next returns the next item, or false once the source is exhausted.
type Iterator[T any] interface {
	Next() (T, bool)
}

// SizedIterator is an Iterator that knows exactly how many items remain.
type SizedIterator[T any] interface {
	Iterator[T]
	Len() int
}

// core holds the state shared by every decorator mode.
type core[T any] struct {
	iter   Iterator[T]
	count  int
	screen *Screen
}

// next pulls one item and draws a frame for it.
// Nothing is drawn once the source is exhausted, so N items produce
// exactly N frames with counts 0..N-1.
func (c *core[T]) next(d Display) (T, bool) {
	item, ok := c.iter.Next()
	if !ok {
		return item, false
	}

	c.screen.Show(d.Render(c.count))
	c.count++

	return item, true
}

// Progress is an unbounded decorator.
type Progress[T any] struct {
	core[T]
	display Display
}

// Wrap decorates it with an unbounded progress indicator drawn on
// standard output.
func Wrap[T any](it Iterator[T]) *Progress[T] {
	return &Progress[T]{
		core:    core[T]{iter: it, screen: Stdout()},
		display: Stars{Marker: DefaultMarker},
	}
}

// WithScreen redirects the frames to s.
func (p *Progress[T]) WithScreen(s *Screen) *Progress[T] {
	p.screen = s
	return p
}

// WithMarker changes the glyph drawn for each pulled item.
func (p *Progress[T]) WithMarker(marker rune) *Progress[T] {
	p.display = Stars{Marker: marker}
	return p
}

// WithDisplay replaces the way frames are rendered.
func (p *Progress[T]) WithDisplay(d Display) *Progress[T] {
	p.display = d
	return p
}

// Next returns the next item of the wrapped source.
func (p *Progress[T]) Next() (T, bool) {
	return p.next(p.display)
}

// All returns the remaining items as a range-over-func sequence.
func (p *Progress[T]) All() iter.Seq[T] {
	return all[T](p)
}

// Count reports how many items have been yielded so far.
func (p *Progress[T]) Count() int {
	return p.count
}

// Sized is an unbounded decorator over a source of known length.
// It can be turned into a Bounded decorator with WithBound.
type Sized[T any] struct {
	Progress[T]
	sized SizedIterator[T]
}

// WrapSized decorates it like Wrap, keeping the ability to draw a bounded bar.
func WrapSized[T any](it SizedIterator[T]) *Sized[T] {
	return &Sized[T]{
		Progress: *Wrap[T](it),
		sized:    it,
	}
}

// WithScreen redirects the frames to s.
func (s *Sized[T]) WithScreen(screen *Screen) *Sized[T] {
	s.screen = screen
	return s
}

// WithMarker changes the glyph drawn for each pulled item.
func (s *Sized[T]) WithMarker(marker rune) *Sized[T] {
	s.display = Stars{Marker: marker}
	return s
}

// WithBound switches to a bounded bar whose total is the number of items
// the source reports right now. The count carries over.
// s must not be used after the call.
func (s *Sized[T]) WithBound() *Bounded[T] {
	return &Bounded[T]{
		core: s.core,
		bar: Bar{
			Total:  s.sized.Len(),
			Open:   DefaultOpen,
			Close:  DefaultClose,
			Filled: DefaultFilled,
			Empty:  DefaultEmpty,
		},
	}
}

// Bounded is a decorator drawing a fixed width bar.
type Bounded[T any] struct {
	core[T]
	bar     Bar
	started bool
}

// WithScreen redirects the frames to s.
func (b *Bounded[T]) WithScreen(s *Screen) *Bounded[T] {
	b.screen = s
	return b
}

// WithDelims sets the characters framing the bar. Any two runes are
// accepted, including identical ones. The call has no effect once the
// first item has been pulled.
func (b *Bounded[T]) WithDelims(opening, closing rune) *Bounded[T] {
	if b.started {
		return b
	}
	b.bar.Open, b.bar.Close = opening, closing
	return b
}

// WithMarkers sets the glyphs for done and pending positions.
// Like WithDelims it only applies before iteration starts.
func (b *Bounded[T]) WithMarkers(filled, empty rune) *Bounded[T] {
	if b.started {
		return b
	}
	b.bar.Filled, b.bar.Empty = filled, empty
	return b
}

// Total is the bound fixed when the decorator was created.
func (b *Bounded[T]) Total() int {
	return b.bar.Total
}

// Next returns the next item of the wrapped source.
func (b *Bounded[T]) Next() (T, bool) {
	b.started = true
	return b.next(b.bar)
}

// All returns the remaining items as a range-over-func sequence.
func (b *Bounded[T]) All() iter.Seq[T] {
	return all[T](b)
}

// Count reports how many items have been yielded so far.
func (b *Bounded[T]) Count() int {
	return b.count
}

func all[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			item, ok := it.Next()
			if !ok || !yield(item) {
				return
			}
		}
	}
}
