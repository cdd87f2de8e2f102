package progress

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// items is a minimal sized source.
type items[T any] struct {
	values []T
	pos    int
}

func newItems[T any](values ...T) *items[T] {
	return &items[T]{values: values}
}

func (it *items[T]) Next() (T, bool) {
	var zero T
	if it.pos >= len(it.values) {
		return zero, false
	}
	v := it.values[it.pos]
	it.pos++
	return v, true
}

func (it *items[T]) Len() int {
	return len(it.values) - it.pos
}

// liar reports fewer items than it yields.
type liar struct {
	items[int]
	reported int
}

func (l *liar) Len() int {
	return l.reported
}

// frames splits screen output into drawn lines.
func frames(buf *bytes.Buffer) []string {
	out := strings.TrimSuffix(buf.String(), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

func TestUnboundedYieldsItemsUnchanged(t *testing.T) {
	want := []string{"a", "b", "c", "d"}

	var buf bytes.Buffer
	p := Wrap[string](newItems(want...)).WithScreen(NewScreen(&buf))

	var got []string
	for v := range p.All() {
		got = append(got, v)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("yielded items mismatch (-want +got):\n%s", diff)
	}

	wantFrames := []string{"", "*", "**", "***"}
	if diff := cmp.Diff(wantFrames, frames(&buf)); diff != "" {
		t.Errorf("frames mismatch (-want +got):\n%s", diff)
	}

	if p.Count() != len(want) {
		t.Errorf("expected count %d, got %d", len(want), p.Count())
	}
}

func TestUnboundedFrameCount(t *testing.T) {
	for _, n := range []int{0, 1, 2, 7, 50} {
		values := make([]int, n)
		for i := range values {
			values[i] = i * 3
		}

		var counts []int
		p := Wrap[int](newItems(values...)).
			WithScreen(Discard()).
			WithDisplay(DisplayFunc(func(count int) string {
				counts = append(counts, count)
				return ""
			}))

		var got []int
		for v := range p.All() {
			got = append(got, v)
		}

		if len(counts) != n {
			t.Errorf("n=%d: expected %d frames, got %d", n, n, len(counts))
		}
		for i, c := range counts {
			if c != i {
				t.Errorf("n=%d: frame %d drawn with count %d", n, i, c)
			}
		}
		if diff := cmp.Diff(values, got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("n=%d: items mismatch (-want +got):\n%s", n, diff)
		}
	}
}

func TestWrapMatchesDirectConsumption(t *testing.T) {
	direct := newItems(5, 4, 3, 2, 1)
	wrapped := Wrap[int](newItems(5, 4, 3, 2, 1)).WithScreen(Discard())

	var want, got []int
	for v, ok := direct.Next(); ok; v, ok = direct.Next() {
		want = append(want, v)
	}
	for v, ok := wrapped.Next(); ok; v, ok = wrapped.Next() {
		got = append(got, v)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestExhaustedStaysExhausted(t *testing.T) {
	var buf bytes.Buffer
	p := Wrap[int](newItems(1)).WithScreen(NewScreen(&buf))

	if _, ok := p.Next(); !ok {
		t.Fatal("expected first item")
	}
	for i := 0; i < 3; i++ {
		if _, ok := p.Next(); ok {
			t.Fatal("expected exhaustion")
		}
	}

	if n := strings.Count(buf.String(), "\n"); n != 1 {
		t.Errorf("expected 1 frame, got %d", n)
	}
	if p.Count() != 1 {
		t.Errorf("expected count 1, got %d", p.Count())
	}
}

func TestWithMarker(t *testing.T) {
	var buf bytes.Buffer
	p := Wrap[int](newItems(1, 2, 3)).WithScreen(NewScreen(&buf)).WithMarker('#')
	for range p.All() {
	}

	if got := frames(&buf)[2]; got != "##" {
		t.Errorf("expected %q, got %q", "##", got)
	}
}

func TestBoundedExample(t *testing.T) {
	values := []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}

	var buf bytes.Buffer
	b := WrapSized[int](newItems(values...)).WithBound().WithScreen(NewScreen(&buf))

	if b.Total() != 10 {
		t.Fatalf("expected total 10, got %d", b.Total())
	}

	var got []int
	for v := range b.All() {
		got = append(got, v)
	}
	if diff := cmp.Diff(values, got); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}

	lines := frames(&buf)
	if len(lines) != 10 {
		t.Fatalf("expected 10 frames, got %d", len(lines))
	}
	if lines[0] != "[          ]" {
		t.Errorf("first frame: got %q", lines[0])
	}
	if lines[9] != "[█████████ ]" {
		t.Errorf("last frame: got %q", lines[9])
	}
	for i, line := range lines {
		if w := utf8.RuneCountInString(line); w != 12 {
			t.Errorf("frame %d: expected width 12, got %d (%q)", i, w, line)
		}
	}
}

func TestBoundedWidth(t *testing.T) {
	for _, n := range []int{1, 3, 16, 64} {
		var buf bytes.Buffer
		b := WrapSized[int](newItems(make([]int, n)...)).WithBound().WithScreen(NewScreen(&buf))
		for range b.All() {
		}

		lines := frames(&buf)
		if len(lines) != n {
			t.Errorf("n=%d: expected %d frames, got %d", n, n, len(lines))
		}
		for i, line := range lines {
			if w := utf8.RuneCountInString(line); w != n+2 {
				t.Errorf("n=%d frame %d: expected width %d, got %d", n, i, n+2, w)
			}
		}
	}
}

func TestBoundedEmptySource(t *testing.T) {
	var buf bytes.Buffer
	b := WrapSized[int](newItems[int]()).WithBound().WithScreen(NewScreen(&buf))

	if b.Total() != 0 {
		t.Errorf("expected total 0, got %d", b.Total())
	}
	if _, ok := b.Next(); ok {
		t.Error("expected immediate exhaustion")
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestWithDelims(t *testing.T) {
	var buf bytes.Buffer
	b := WrapSized[int](newItems(1, 2, 3, 4)).WithBound().WithDelims('<', '>').WithScreen(NewScreen(&buf))
	for range b.All() {
	}

	for i, line := range frames(&buf) {
		if !strings.HasPrefix(line, "<") || !strings.HasSuffix(line, ">") {
			t.Errorf("frame %d: expected <...>, got %q", i, line)
		}
	}
}

func TestWithDelimsIdentical(t *testing.T) {
	var buf bytes.Buffer
	b := WrapSized[int](newItems(1, 2)).WithBound().WithDelims('|', '|').WithScreen(NewScreen(&buf))
	for range b.All() {
	}

	want := []string{"|  |", "|█ |"}
	if diff := cmp.Diff(want, frames(&buf)); diff != "" {
		t.Errorf("frames mismatch (-want +got):\n%s", diff)
	}
}

func TestWithDelimsIgnoredAfterStart(t *testing.T) {
	var buf bytes.Buffer
	b := WrapSized[int](newItems(1, 2)).WithBound().WithScreen(NewScreen(&buf))

	b.Next()
	b.WithDelims('<', '>').WithMarkers('=', '.')
	b.Next()

	want := []string{"[  ]", "[█ ]"}
	if diff := cmp.Diff(want, frames(&buf)); diff != "" {
		t.Errorf("frames mismatch (-want +got):\n%s", diff)
	}
}

func TestWithMarkers(t *testing.T) {
	var buf bytes.Buffer
	b := WrapSized[int](newItems(1, 2, 3)).WithBound().WithMarkers('=', '.').WithScreen(NewScreen(&buf))
	for range b.All() {
	}

	want := []string{"[...]", "[=..]", "[==.]"}
	if diff := cmp.Diff(want, frames(&buf)); diff != "" {
		t.Errorf("frames mismatch (-want +got):\n%s", diff)
	}
}

func TestBoundedOvershootIsClamped(t *testing.T) {
	src := &liar{items: items[int]{values: []int{1, 2, 3, 4}}, reported: 2}

	var buf bytes.Buffer
	b := WrapSized[int](src).WithBound().WithScreen(NewScreen(&buf))
	for range b.All() {
	}

	want := []string{"[  ]", "[█ ]", "[██]", "[██]"}
	if diff := cmp.Diff(want, frames(&buf)); diff != "" {
		t.Errorf("frames mismatch (-want +got):\n%s", diff)
	}
}

func TestWithBoundAfterPartialConsumption(t *testing.T) {
	var buf bytes.Buffer
	s := WrapSized[int](newItems(1, 2, 3, 4)).WithScreen(NewScreen(&buf))
	s.Next()

	b := s.WithBound()
	if b.Total() != 3 {
		t.Fatalf("expected total 3, got %d", b.Total())
	}
	if b.Count() != 1 {
		t.Fatalf("expected count to carry over, got %d", b.Count())
	}

	for range b.All() {
	}

	want := []string{"", "[█  ]", "[██ ]", "[███]"}
	if diff := cmp.Diff(want, frames(&buf)); diff != "" {
		t.Errorf("frames mismatch (-want +got):\n%s", diff)
	}
}

func TestAllStopsEarly(t *testing.T) {
	p := Wrap[int](newItems(1, 2, 3, 4, 5)).WithScreen(Discard())

	for v := range p.All() {
		if v == 2 {
			break
		}
	}

	if p.Count() != 2 {
		t.Errorf("expected count 2, got %d", p.Count())
	}
	if v, _ := p.Next(); v != 3 {
		t.Errorf("expected iteration to resume at 3, got %d", v)
	}
}
