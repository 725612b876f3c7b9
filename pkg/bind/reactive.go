package bind

import (
	"github.com/go-drift/tether/pkg/errors"
	"github.com/go-drift/tether/pkg/schedule"
)

// ReactiveOptions configures a Reactive or ReactiveDebounced feature. The
// zero value is the default: run on every property event and once at
// construction.
type ReactiveOptions[T any] struct {
	// Keys restricts the reaction to events for the named properties.
	// Empty means every property.
	Keys []string
	// Predicate gates each run, including the initial one. Nil means
	// always run.
	Predicate func(*T) bool
	// NoInitial suppresses the initial run at construction.
	NoInitial bool
}

// reactiveEntry is one declared reactive method on a class.
type reactiveEntry[T any] struct {
	fn        func(*T)
	keys      map[string]struct{}
	predicate func(*T) bool
}

func (e *reactiveEntry[T]) matches(h *T, ev Event) bool {
	if e.keys != nil {
		if _, ok := e.keys[ev.Property]; !ok {
			return false
		}
	}
	return e.predicate == nil || e.predicate(h)
}

func (e *reactiveEntry[T]) invoke(h *T) {
	e.fn(h)
}

func keySet(keys []string) map[string]struct{} {
	if len(keys) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}

// Reactive declares a method that reruns whenever a bound property of the
// instance changes. The method also runs once during construction, after
// the features declared before it have initialized, so declaration order is
// the composition contract: declare reactions after the properties they
// read. ReactiveOptions.NoInitial disables the construction run.
func Reactive[T any](method func(*T), opts ...ReactiveOptions[T]) Feature[T] {
	return func(c *Class[T]) {
		opt := onlyOption(c.tag, "Reactive", opts)
		if method == nil {
			panic(&errors.ConfigError{Tag: c.tag, Feature: "Reactive", Reason: "nil method"})
		}
		installReactive(c, opt, method, method)
	}
}

// ReactiveDebounced declares a reactive method whose change-driven runs go
// through d, collapsing bursts of property changes into one trailing run
// per instance. The construction run bypasses the debounce and invokes the
// wrapped method synchronously, so the instance is fully realized before
// [Class.New] returns.
func ReactiveDebounced[T any](d *schedule.Debounced[T], opts ...ReactiveOptions[T]) Feature[T] {
	return func(c *Class[T]) {
		opt := onlyOption(c.tag, "ReactiveDebounced", opts)
		if d == nil {
			panic(&errors.ConfigError{Tag: c.tag, Feature: "ReactiveDebounced", Reason: "nil debounced method"})
		}
		installReactive(c, opt, d.Call, d.Original())
	}
}

func installReactive[T any](c *Class[T], opt ReactiveOptions[T], onChange, onInit func(*T)) {
	entry := &reactiveEntry[T]{
		fn:        onChange,
		keys:      keySet(opt.Keys),
		predicate: opt.Predicate,
	}
	c.reactives = append(c.reactives, entry)
	if opt.NoInitial {
		return
	}
	c.inits = append(c.inits, func(h *T) {
		if entry.predicate == nil || entry.predicate(h) {
			onInit(h)
		}
	})
}
