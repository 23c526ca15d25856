package timez

import "context"

// timerKeyType is a private type for context keys to avoid collisions.
type timerKeyType string

const timerKey timerKeyType = "timez"

// Context returns a new context with this timer embedded. Code further
// down the call stack can recover it with GetTimer instead of threading
// the timer through every signature.
func (t *Timer) Context(parent context.Context) context.Context {
	return context.WithValue(parent, timerKey, t)
}

// GetTimer extracts the timer from a context.
// Returns nil if no timer is present.
func GetTimer(ctx context.Context) *Timer {
	if ctx == nil {
		return nil
	}

	if timer, ok := ctx.Value(timerKey).(*Timer); ok {
		return timer
	}

	return nil
}
