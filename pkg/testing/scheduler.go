package testing

// ManualScheduler is a schedule.Scheduler that holds scheduled callbacks
// until Fire is called. Tests use it to make debounce windows elapse on
// demand.
type ManualScheduler struct {
	pending map[int]func()
	nextID  int
}

// NewManualScheduler returns an empty manual scheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{pending: make(map[int]func())}
}

// Schedule queues fn until the next Fire. The returned cancel drops it and
// is idempotent.
func (s *ManualScheduler) Schedule(fn func()) (cancel func()) {
	s.nextID++
	id := s.nextID
	s.pending[id] = fn
	return func() {
		delete(s.pending, id)
	}
}

// Fire runs and clears every pending callback, in scheduling order, and
// returns how many ran. Callbacks scheduled during Fire wait for the next
// Fire.
func (s *ManualScheduler) Fire() int {
	if len(s.pending) == 0 {
		return 0
	}
	batch := s.pending
	s.pending = make(map[int]func())
	ran := 0
	for id := 1; id <= s.nextID; id++ {
		if fn, ok := batch[id]; ok {
			fn()
			ran++
		}
	}
	return ran
}

// PendingCount returns the number of callbacks waiting for Fire.
func (s *ManualScheduler) PendingCount() int {
	return len(s.pending)
}
