// Package clock provides an abstraction for time operations to improve testability.
// Instead of calling time.Now() or time.Sleep() directly, code can use the Clock
// interface which can be mocked in tests to control time-dependent behavior,
// for example the pause between check batches.
package clock

import (
	"context"
	"time"
)

// Clock is an interface for time operations.
// This allows code to be tested with mock clocks.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// Sleep pauses for the given duration or until the context is done,
	// whichever comes first. Returns the context error on early wake-up.
	Sleep(ctx context.Context, d time.Duration) error
}

// RealClock implements Clock using the actual system time.
type RealClock struct{}

// Now returns the current time from the system clock.
func (RealClock) Now() time.Time {
	return time.Now()
}

// Sleep waits out the duration on a real timer, honoring context cancellation.
func (RealClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Ensure RealClock implements Clock.
var _ Clock = RealClock{}

// Mock implements Clock with a fixed time and instant sleeps.
// Sleeps record their durations so tests can assert on batch pacing.
type Mock struct {
	Time    time.Time
	Slept   []time.Duration
	OnSleep func(d time.Duration)
}

// Now returns the fixed mock time.
func (m *Mock) Now() time.Time {
	return m.Time
}

// Sleep returns immediately, recording the requested duration.
func (m *Mock) Sleep(ctx context.Context, d time.Duration) error {
	m.Slept = append(m.Slept, d)
	if m.OnSleep != nil {
		m.OnSleep(d)
	}
	return ctx.Err()
}

// Ensure Mock implements Clock.
var _ Clock = (*Mock)(nil)
