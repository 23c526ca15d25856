package timez

import (
	"sync"

	"github.com/zoobzio/clockz"
)

// Registry hands out one Timer per key, creating each lazily on first
// request. Goroutines carry no identity, so the key is supplied by the
// caller - typically a worker name - and each worker uses only its own
// timer.
//
// Registry is safe for concurrent use; the timers it returns are not.
type Registry struct {
	timers sync.Map // key string -> *Timer
	clock  clockz.Clock
}

// NewRegistry creates an empty registry.
// Timers it creates use the real clock.
func NewRegistry() *Registry {
	return &Registry{
		clock: clockz.RealClock,
	}
}

// WithClock returns a new empty registry whose timers use the specified
// clock. Enables clock injection for deterministic testing.
func (*Registry) WithClock(clock clockz.Clock) *Registry {
	return &Registry{
		clock: clock,
	}
}

// Get returns the timer for key, creating and caching an empty one on the
// first request. Every call with the same key returns the same timer.
func (r *Registry) Get(key string) *Timer {
	if v, ok := r.timers.Load(key); ok {
		return v.(*Timer)
	}

	timer := New().WithClock(r.clock)
	v, _ := r.timers.LoadOrStore(key, timer)
	return v.(*Timer)
}

// Remove forgets the timer for key, if any. Use it once a worker's timer
// has been merged away, so a long-lived registry does not accumulate
// timers for finished workers. A later Get with the same key creates a
// fresh timer.
func (r *Registry) Remove(key string) {
	r.timers.Delete(key)
}
