// Package timez provides a minimal, hierarchical code-block timer.
//
// timez measures named, nested blocks of execution and renders the result
// as an indented tree of millisecond durations. It has no export pipeline
// and no protocol integration; it is an in-process utility for answering
// "where did the time go" with a handful of lines.
//
// Core Components:
//   - Timer: owns a forest of spans for one goroutine.
//   - Span: a single timed block, linked into a tree.
//   - Scope: stops a span exactly once on scope exit.
//   - Registry: hands out one Timer per worker key.
//
// Basic Usage:
//
//	timer := timez.New()
//
//	scope := timer.Start("load")
//	loadEverything()
//	scope.End()
//
//	timer.Print()
//
// Blocks nest: a Start while another span is open attaches the new span as
// a child of the open one. Stops must match the innermost open span's name.
//
// Thread Safety:
//
// A Timer belongs to exactly one goroutine and performs no locking.
// Concurrent calls on the same Timer are a data race. To time work across
// goroutines, give each goroutine its own Timer (see Registry), join the
// goroutine, then graft its timer into the parent with AddSubTimer.
//
// Registry is safe for concurrent use.
//
// Timing:
//
// Timestamps come from an injected clockz.Clock, defaulting to the real
// clock. Use WithClock with a fake clock for deterministic tests.
package timez

// Key represents a span name.
type Key = string
