package timez

import (
	"errors"
	"testing"
	"time"

	"github.com/zoobzio/clockz"
)

func TestScopeEndStopsSpan(t *testing.T) {
	clock := clockz.NewFakeClock()
	timer := New().WithClock(clock)

	scope := timer.Start("work")
	clock.Advance(5 * time.Millisecond)
	if err := scope.End(); err != nil {
		t.Fatalf("End returned error: %v", err)
	}

	span := timer.roots[0]
	d, ok := span.Duration()
	if !ok {
		t.Fatal("Expected span to be stopped after End")
	}
	if d != 5*time.Millisecond {
		t.Errorf("Expected duration 5ms, got %v", d)
	}
	if timer.active != nil {
		t.Error("Expected no active span after End")
	}
}

func TestScopeEndExactlyOnce(t *testing.T) {
	clock := clockz.NewFakeClock()
	timer := New().WithClock(clock)

	scope := timer.Start("work")
	clock.Advance(2 * time.Millisecond)
	if err := scope.End(); err != nil {
		t.Fatalf("End returned error: %v", err)
	}

	stopTime := timer.roots[0].StopTime

	// A second End after more clock movement must not re-stop the span
	// or touch the timer.
	clock.Advance(10 * time.Millisecond)
	if err := scope.End(); err != nil {
		t.Errorf("Second End returned error: %v", err)
	}

	if !timer.roots[0].StopTime.Equal(stopTime) {
		t.Error("Expected stop time to remain unchanged on second End")
	}
}

func TestScopeEndOnPanic(t *testing.T) {
	clock := clockz.NewFakeClock()
	timer := New().WithClock(clock)

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("Expected panic to propagate")
		}

		span := timer.roots[0]
		if !span.Stopped() {
			t.Error("Expected span to be stopped by deferred End during panic")
		}
		d, _ := span.Duration()
		if d != 3*time.Millisecond {
			t.Errorf("Expected duration 3ms, got %v", d)
		}
		if timer.active != nil {
			t.Error("Expected no active span after panic unwound the scope")
		}
	}()

	scope := timer.Start("z")
	defer scope.End()

	clock.Advance(3 * time.Millisecond)
	panic("boom")
}

func TestScopeEndPropagatesStopError(t *testing.T) {
	clock := clockz.NewFakeClock()
	timer := New().WithClock(clock)

	scope := timer.Start("outer")
	timer.Start("inner")

	// Ending the outer scope while inner is still open is a mismatched
	// stop; the error surfaces through End.
	if err := scope.End(); !errors.Is(err, ErrNotActive) {
		t.Fatalf("Expected ErrNotActive, got %v", err)
	}

	if timer.active == nil || timer.active.Name != "inner" {
		t.Error("Expected inner to remain active after failed End")
	}
}
