// Package schedule provides the debounce utility and its pluggable
// scheduling strategies.
//
// A [Scheduler] defers a callback to a later turn and hands back a cancel
// function. Three interchangeable strategies ship with the package: a
// fixed-delay timer ([Timer]), a frame-synchronized queue drained by the
// embedding runtime's frame loop ([Frame] + [StepFrame]), and a plain task
// queue drained on demand ([Queue]).
//
// [Debounce] composes with a scheduler to collapse bursts of calls into one
// trailing call per instance.
package schedule

import "time"

// Scheduler defers a callback to a later turn.
type Scheduler interface {
	// Schedule arranges for fn to run once, later, and returns a cancel
	// function. Cancel is idempotent: canceling an already-fired or
	// already-canceled callback is a no-op.
	Schedule(fn func()) (cancel func())
}

type timerScheduler struct {
	delay time.Duration
}

// Timer returns a fixed-delay scheduler: callbacks run after delay on their
// own timer goroutine.
func Timer(delay time.Duration) Scheduler {
	return timerScheduler{delay: delay}
}

func (s timerScheduler) Schedule(fn func()) func() {
	t := time.AfterFunc(s.delay, fn)
	return func() { t.Stop() }
}
