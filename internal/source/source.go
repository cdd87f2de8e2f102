// Package source provides ready made sequence sources for the progress
// decorator: slices, Go iterators, counters and line readers.
package source

import "iter"

// Slice yields the elements of a slice in order.
type Slice[T any] struct {
	items []T
	pos   int
}

// FromSlice creates a source over items. The slice is not copied.
func FromSlice[T any](items []T) *Slice[T] {
	return &Slice[T]{items: items}
}

// Next returns the next element.
func (s *Slice[T]) Next() (T, bool) {
	var zero T
	if s.pos >= len(s.items) {
		return zero, false
	}
	item := s.items[s.pos]
	s.pos++
	return item, true
}

// Len returns the number of elements not yet yielded.
func (s *Slice[T]) Len() int {
	return len(s.items) - s.pos
}

// Seq pulls items from a range-over-func iterator.
type Seq[T any] struct {
	next func() (T, bool)
	stop func()
}

// FromSeq adapts seq to a pull source. Stop must be called if the source
// is abandoned before it is exhausted.
func FromSeq[T any](seq iter.Seq[T]) *Seq[T] {
	next, stop := iter.Pull(seq)
	return &Seq[T]{next: next, stop: stop}
}

// Next returns the next item of the sequence.
func (s *Seq[T]) Next() (T, bool) {
	return s.next()
}

// Stop releases the underlying iterator.
func (s *Seq[T]) Stop() {
	s.stop()
}

// Count yields start, start+1, ... forever.
type Count struct {
	n int
}

// Counter creates an infinite source starting at start.
func Counter(start int) *Count {
	return &Count{n: start}
}

// Next returns the next number. It never reports exhaustion.
func (c *Count) Next() (int, bool) {
	n := c.n
	c.n++
	return n, true
}

// Iterator is the pull contract shared by all sources.
type Iterator[T any] interface {
	Next() (T, bool)
}

// Limit yields at most n items of another source.
type Limit[T any] struct {
	it   Iterator[T]
	left int
}

// Take limits it to its first n items. The result reports Len as n minus
// the items taken so far, so Take(Counter(0), 10) can drive a bounded bar.
// A source ending early still ends early.
func Take[T any](it Iterator[T], n int) *Limit[T] {
	return &Limit[T]{it: it, left: max(n, 0)}
}

// Next returns the next item while the limit allows it.
func (l *Limit[T]) Next() (T, bool) {
	var zero T
	if l.left <= 0 {
		return zero, false
	}
	item, ok := l.it.Next()
	if !ok {
		l.left = 0
		return zero, false
	}
	l.left--
	return item, true
}

// Len returns the number of items the limit still allows.
func (l *Limit[T]) Len() int {
	return l.left
}
