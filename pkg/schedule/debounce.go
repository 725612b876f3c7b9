package schedule

import (
	"runtime"
	"sync"
	"weak"
)

// Debounced wraps a per-instance method so bursts of calls within one
// scheduling window collapse to a single trailing call per instance. Only
// the instance's state at firing time is observed, which is the
// "last call wins" semantics for methods whose arguments live on the
// instance.
//
// Pending state is keyed weakly: a Debounced never keeps an instance alive,
// and a pending call whose instance has been collected fires into nothing.
type Debounced[T any] struct {
	scheduler Scheduler
	method    func(*T)

	mu      sync.Mutex
	pending map[weak.Pointer[T]]*pendingCall
	tracked map[weak.Pointer[T]]bool
}

// pendingCall identifies one scheduled call. The fired callback checks it
// is still the instance's current pending call before running: with a
// timer strategy the callback can already be in flight when a newer Call
// attempts to cancel it.
type pendingCall struct {
	cancel func()
}

// Debounce wraps method with the given scheduling strategy.
func Debounce[T any](s Scheduler, method func(*T)) *Debounced[T] {
	return &Debounced[T]{
		scheduler: s,
		method:    method,
		pending:   make(map[weak.Pointer[T]]*pendingCall),
		tracked:   make(map[weak.Pointer[T]]bool),
	}
}

// Call cancels the instance's pending scheduled call, if any, and
// reschedules. The wrapped method runs once the scheduling window elapses.
func (d *Debounced[T]) Call(h *T) {
	key := weak.Make(h)

	d.mu.Lock()
	if p := d.pending[key]; p != nil {
		p.cancel()
	}
	if !d.tracked[key] {
		d.tracked[key] = true
		// Drop bookkeeping once the instance is unreachable; cancel is
		// idempotent so racing with a fired call is fine.
		runtime.AddCleanup(h, func(k weak.Pointer[T]) {
			d.mu.Lock()
			if p := d.pending[k]; p != nil {
				p.cancel()
			}
			delete(d.pending, k)
			delete(d.tracked, k)
			d.mu.Unlock()
		}, key)
	}
	entry := &pendingCall{}
	d.pending[key] = entry
	entry.cancel = d.scheduler.Schedule(func() {
		d.mu.Lock()
		current := d.pending[key] == entry
		if current {
			delete(d.pending, key)
		}
		d.mu.Unlock()
		if !current {
			// Superseded by a newer Call after this callback was already
			// in flight.
			return
		}
		if strong := key.Value(); strong != nil {
			d.method(strong)
		}
	})
	d.mu.Unlock()
}

// Cancel drops the instance's pending scheduled call, if any.
// Canceling with nothing pending is a no-op.
func (d *Debounced[T]) Cancel(h *T) {
	key := weak.Make(h)
	d.mu.Lock()
	if p := d.pending[key]; p != nil {
		p.cancel()
		delete(d.pending, key)
	}
	d.mu.Unlock()
}

// Original returns the wrapped, undebounced method. Facilities that need a
// synchronous invocation - such as a reactive method's initial run - use
// this to bypass the scheduling window.
func (d *Debounced[T]) Original() func(*T) {
	return d.method
}

// DebounceFunc wraps a plain zero-argument callable. It returns the
// debounced callable and a cancel function for the pending call.
func DebounceFunc(s Scheduler, fn func()) (debounced func(), cancel func()) {
	var mu sync.Mutex
	var pending func()

	debounced = func() {
		mu.Lock()
		if pending != nil {
			pending()
		}
		pending = s.Schedule(func() {
			mu.Lock()
			pending = nil
			mu.Unlock()
			fn()
		})
		mu.Unlock()
	}
	cancel = func() {
		mu.Lock()
		if pending != nil {
			pending()
			pending = nil
		}
		mu.Unlock()
	}
	return debounced, cancel
}
