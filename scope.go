package timez

// Scope stops a started span on scope exit. It is bound to the timer and
// span name it was created for and carries no other state; the span itself
// was already started before the Scope existed.
//
// Typical use:
//
//	scope := timer.Start("query")
//	defer scope.End()
//
// The deferred End runs on every exit path, panics included, so the span
// always gets its stop time.
type Scope struct {
	timer *Timer
	name  Key
	done  bool
}

// End stops the scope's span via the owning timer. Only the first call
// does anything - subsequent calls are no-ops returning nil, so a manual
// End followed by a deferred one is safe.
func (s *Scope) End() error {
	if s.done {
		return nil
	}
	s.done = true

	return s.timer.Stop(s.name)
}
