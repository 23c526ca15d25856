package timez

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zoobzio/clockz"
)

// ErrNotActive is returned by Stop when the requested name does not match
// the currently active span. Stops must be strictly nested: the innermost
// open span is the only one that can be stopped.
var ErrNotActive = errors.New("cannot stop a timer that is not the active one")

// Timer owns a forest of spans for one goroutine and tracks the currently
// active span. New spans attach under the active span; stopping pops back
// to its parent.
//
// A Timer is intended for exclusive use by a single goroutine and performs
// no locking. Cross-goroutine results are combined with AddSubTimer after
// the other goroutine has finished.
type Timer struct {
	roots  []*Span
	active *Span
	clock  clockz.Clock
}

// New creates an empty timer.
// Uses the real clock for production behavior.
func New() *Timer {
	return &Timer{
		clock: clockz.RealClock,
	}
}

// WithClock returns a new empty timer with the specified clock.
// Enables clock injection for deterministic testing.
func (*Timer) WithClock(clock clockz.Clock) *Timer {
	return &Timer{
		clock: clock,
	}
}

// Start opens a new span with the given name.
//
// If no span is active the new span becomes a root; otherwise it becomes a
// child of the active span. Either way it is now the active span. Starting
// is always permitted.
//
// The returned Scope stops the span on End; use it with defer to get the
// stop on every exit path, including panics.
func (t *Timer) Start(name Key) *Scope {
	span := &Span{
		Name:      name,
		StartTime: t.clock.Now(),
		parent:    t.active,
	}

	if t.active == nil {
		t.roots = append(t.roots, span)
	} else {
		t.active.children = append(t.active.children, span)
	}

	t.active = span

	return &Scope{timer: t, name: name}
}

// Stop closes the active span and makes its parent active.
//
// If no span is active, Stop is a no-op - callers may stop defensively
// without having started. If a span is active but its name differs from
// name, Stop returns ErrNotActive and changes nothing: starts and stops
// must pair up like parentheses keyed by name.
func (t *Timer) Stop(name Key) error {
	if t.active == nil {
		return nil
	}

	if t.active.Name != name {
		return ErrNotActive
	}

	t.active.StopTime = t.clock.Now()
	t.active = t.active.parent

	return nil
}

// AddSubTimer grafts another timer's span forest into this one. This is
// how a worker goroutine's timings are folded into the goroutine that
// owns the work: join the worker, then hand its timer over.
//
// If no span is active here, sub's roots become additional roots, in
// order. Otherwise each of sub's roots becomes a child of the active span,
// in order, with its parent pointer updated to match. The active span on
// either timer is not touched.
//
// Call this only after sub's work has fully finished; only the roots
// present at the moment of the call are grafted.
func (t *Timer) AddSubTimer(sub *Timer) {
	if sub == nil {
		return
	}

	if t.active == nil {
		t.roots = append(t.roots, sub.roots...)
		return
	}

	for _, root := range sub.roots {
		root.parent = t.active
		t.active.children = append(t.active.children, root)
	}
}

// Roots returns the timer's root spans in start order.
// The returned slice is the timer's own - callers must not modify it.
func (t *Timer) Roots() []*Span {
	return t.roots
}

// Render serializes the span forest depth-first, one line per span in the
// form "<name>: <milliseconds>", children indented two spaces per level.
// A span that was never stopped renders with duration -1.
func (t *Timer) Render() string {
	var b strings.Builder
	for _, root := range t.roots {
		root.render(&b, 0)
	}
	return b.String()
}

// Print writes the rendered span forest to standard output.
func (t *Timer) Print() {
	fmt.Print(t.Render())
}
