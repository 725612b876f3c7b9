package schedule

import (
	"sync"

	"github.com/go-drift/tether/pkg/errors"
)

var (
	frameMu      sync.Mutex
	framePending = make(map[*frameEntry]struct{})
)

type frameEntry struct {
	fn func()
}

type frameScheduler struct{}

// Frame returns the frame-synchronized scheduler. Scheduled callbacks run
// on the next call to [StepFrame], which the embedding runtime drives from
// its display refresh loop.
func Frame() Scheduler {
	return frameScheduler{}
}

func (frameScheduler) Schedule(fn func()) func() {
	entry := &frameEntry{fn: fn}
	frameMu.Lock()
	framePending[entry] = struct{}{}
	frameMu.Unlock()
	return func() {
		frameMu.Lock()
		delete(framePending, entry)
		frameMu.Unlock()
	}
}

// StepFrame runs all callbacks scheduled since the previous frame.
// The embedding runtime should call this once per frame.
func StepFrame() {
	frameMu.Lock()
	if len(framePending) == 0 {
		frameMu.Unlock()
		return
	}
	// Copy to avoid holding the lock during callbacks.
	entries := make([]*frameEntry, 0, len(framePending))
	for entry := range framePending {
		entries = append(entries, entry)
	}
	clear(framePending)
	frameMu.Unlock()

	for _, entry := range entries {
		runScheduled("schedule.StepFrame", entry.fn)
	}
}

// HasPendingFrameWork reports whether any frame callbacks are waiting.
func HasPendingFrameWork() bool {
	frameMu.Lock()
	defer frameMu.Unlock()
	return len(framePending) > 0
}

// runScheduled invokes fn with panic recovery so one callback cannot take
// down the drain loop.
func runScheduled(op string, fn func()) {
	defer errors.Recover(op)
	fn()
}
