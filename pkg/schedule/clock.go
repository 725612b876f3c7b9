package schedule

import (
	"sort"
	"sync"
	"time"
)

// Clock is the time source for DelayScheduler. The wall clock satisfies it
// through WallClock; tests substitute a controllable implementation.
type Clock interface {
	Now() time.Time
}

type wallClock struct{}

func (wallClock) Now() time.Time { return time.Now() }

// WallClock returns the real-time Clock.
func WallClock() Clock { return wallClock{} }

// DelayScheduler defers callbacks by a fixed delay measured against a
// Clock. Due callbacks run on RunDue, which the embedding runtime drives
// from its own loop; [Timer] is the self-firing wall-clock alternative.
type DelayScheduler struct {
	clock Clock
	delay time.Duration

	mu      sync.Mutex
	nextID  int
	pending map[int]delayEntry
}

type delayEntry struct {
	due time.Time
	fn  func()
}

// DelayedBy returns a scheduler deferring callbacks by delay on clock.
func DelayedBy(clock Clock, delay time.Duration) *DelayScheduler {
	return &DelayScheduler{
		clock:   clock,
		delay:   delay,
		pending: make(map[int]delayEntry),
	}
}

// Schedule queues fn to run once its delay elapses. The returned cancel
// drops it and is idempotent.
func (s *DelayScheduler) Schedule(fn func()) (cancel func()) {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.pending[id] = delayEntry{due: s.clock.Now().Add(s.delay), fn: fn}
	s.mu.Unlock()
	return func() {
		s.mu.Lock()
		delete(s.pending, id)
		s.mu.Unlock()
	}
}

// RunDue runs every callback whose delay has elapsed, in scheduling order,
// and returns how many ran.
func (s *DelayScheduler) RunDue() int {
	s.mu.Lock()
	now := s.clock.Now()
	ids := make([]int, 0, len(s.pending))
	for id, entry := range s.pending {
		if !entry.due.After(now) {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)
	due := make([]func(), len(ids))
	for i, id := range ids {
		due[i] = s.pending[id].fn
		delete(s.pending, id)
	}
	s.mu.Unlock()

	for _, fn := range due {
		runScheduled("schedule.DelayScheduler.RunDue", fn)
	}
	return len(due)
}

// Len reports how many callbacks are waiting.
func (s *DelayScheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}
