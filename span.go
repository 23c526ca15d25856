package timez

import (
	"fmt"
	"strings"
	"time"
)

// indentSize is the number of spaces per nesting level in rendered output.
const indentSize = 2

// Span represents a single timed block of execution, linked into a tree.
// Spans are NOT thread-safe - do not modify from multiple goroutines.
type Span struct {
	Name      string
	StartTime time.Time
	StopTime  time.Time // Zero until the span is stopped.

	parent   *Span
	children []*Span
}

// Parent returns the enclosing span, or nil for a root.
func (s *Span) Parent() *Span {
	return s.parent
}

// Children returns the span's child spans in start order.
// The returned slice is the span's own - callers must not modify it.
func (s *Span) Children() []*Span {
	return s.children
}

// Stopped reports whether the span has received its stop time.
func (s *Span) Stopped() bool {
	return !s.StopTime.IsZero()
}

// Duration returns the span's elapsed time. The boolean is false until the
// span has been stopped; before that the duration is undefined.
func (s *Span) Duration() (time.Duration, bool) {
	if s.StopTime.IsZero() {
		return 0, false
	}
	return s.StopTime.Sub(s.StartTime), true
}

// durationMillis returns the duration in whole milliseconds for rendering.
// A span that was never stopped reports -1, which a stopped span can never
// produce, so unbalanced call sequences are visible in the output instead
// of showing a garbage value.
func (s *Span) durationMillis() int64 {
	d, ok := s.Duration()
	if !ok {
		return -1
	}
	return d.Milliseconds()
}

// render writes the span and its subtree to b, one line per span,
// indented two spaces per depth level.
func (s *Span) render(b *strings.Builder, depth int) {
	if depth > 0 {
		b.WriteString(strings.Repeat(" ", depth*indentSize))
	}
	fmt.Fprintf(b, "%s: %d\n", s.Name, s.durationMillis())

	for _, child := range s.children {
		child.render(b, depth+1)
	}
}
