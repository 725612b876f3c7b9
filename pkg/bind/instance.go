package bind

// instanceState is the per-instance bookkeeping record kept in a class's
// weak side table. It must never hold a strong reference to its instance:
// subscribers receive the instance as an argument instead of capturing it.
type instanceState[T any] struct {
	// ready marks the instance eligible for reactive notifications. It is
	// set strictly after all construction-time callbacks have run, so an
	// event accidentally published during field initialization is never
	// delivered.
	ready bool

	// suppressions counts armed one-shot suppressions per content-attribute
	// name. A property-driven content write arms one; the next matching
	// change notification consumes it and does nothing further.
	suppressions map[string]int

	// stash holds per-binding transformer state, keyed by property name
	// then stash key.
	stash map[string]map[string]any

	// subs are dynamically subscribed bus listeners in registration order.
	subs []busSubscriber[T]

	// cleanups are teardown functions for external subscriptions, run on
	// disconnect.
	cleanups []func()

	nextSubID int
}

type busSubscriber[T any] struct {
	id int
	fn func(*T, Event)
}

func newInstanceState[T any]() *instanceState[T] {
	return &instanceState[T]{
		suppressions: make(map[string]int),
	}
}

// armSuppression records that the next change notification for name is
// self-caused and must be ignored.
func (s *instanceState[T]) armSuppression(name string) {
	s.suppressions[name]++
}

// consumeSuppression consumes one armed suppression for name, reporting
// whether one was armed.
func (s *instanceState[T]) consumeSuppression(name string) bool {
	if s.suppressions[name] == 0 {
		return false
	}
	s.suppressions[name]--
	if s.suppressions[name] == 0 {
		delete(s.suppressions, name)
	}
	return true
}

func (s *instanceState[T]) storeStash(property, key string, val any) {
	if s.stash == nil {
		s.stash = make(map[string]map[string]any)
	}
	if s.stash[property] == nil {
		s.stash[property] = make(map[string]any)
	}
	s.stash[property][key] = val
}

func (s *instanceState[T]) loadStash(property, key string) (any, bool) {
	v, ok := s.stash[property][key]
	return v, ok
}

func (s *instanceState[T]) subscribe(fn func(*T, Event)) (id int) {
	s.nextSubID++
	id = s.nextSubID
	s.subs = append(s.subs, busSubscriber[T]{id: id, fn: fn})
	return id
}

func (s *instanceState[T]) unsubscribe(id int) {
	for i, sub := range s.subs {
		if sub.id == id {
			s.subs = append(s.subs[:i], s.subs[i+1:]...)
			return
		}
	}
}

func (s *instanceState[T]) addCleanup(fn func()) {
	if fn != nil {
		s.cleanups = append(s.cleanups, fn)
	}
}

// runCleanups executes registered teardown functions in reverse order and
// clears them.
func (s *instanceState[T]) runCleanups() {
	for i := len(s.cleanups) - 1; i >= 0; i-- {
		if s.cleanups[i] != nil {
			s.cleanups[i]()
		}
	}
	s.cleanups = nil
}
