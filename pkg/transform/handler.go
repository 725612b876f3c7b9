package transform

import (
	"sync"

	"github.com/go-drift/tether/pkg/errors"
)

// NamedHandler is the property value of a Handler transformer: a callback
// registered under a stable name. The name is the content representation,
// so handlers survive the content round trip.
type NamedHandler[E any] struct {
	// Name is the registry name of the handler; "" means no handler.
	Name string
	// Fn is the callback, invoked with the host instance and the event.
	Fn func(host any, event E)
}

// HandlerRegistry maps handler names to callbacks. It is the Go rendering
// of inline event-handler content: content names a handler instead of
// carrying code.
type HandlerRegistry[E any] struct {
	mu       sync.RWMutex
	handlers map[string]func(host any, event E)
}

// NewHandlerRegistry returns an empty handler registry.
func NewHandlerRegistry[E any]() *HandlerRegistry[E] {
	return &HandlerRegistry[E]{handlers: make(map[string]func(host any, event E))}
}

// Register adds a named handler. Registering a name twice panics with a
// ConfigError; handler registration is a declaration-time activity.
func (r *HandlerRegistry[E]) Register(name string, fn func(host any, event E)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.handlers[name]; exists {
		panic(&errors.ConfigError{
			Feature: "transform.HandlerRegistry",
			Reason:  "handler " + name + " already registered",
		})
	}
	r.handlers[name] = fn
}

func (r *HandlerRegistry[E]) lookup(name string) (func(host any, event E), bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.handlers[name]
	return fn, ok
}

type handlerTransformer[E any] struct {
	Base[NamedHandler[E]]
	registry *HandlerRegistry[E]
}

// Handler returns a transformer whose content form is a handler name looked
// up in registry. Unknown names degrade to the no-value sentinel on the
// content path and are rejected on the property path. An absent attribute
// or empty name means no handler.
func Handler[E any](registry *HandlerRegistry[E]) Transformer[NamedHandler[E]] {
	if registry == nil {
		panic(&errors.ConfigError{
			Feature: "transform.Handler",
			Reason:  "nil handler registry",
		})
	}
	return handlerTransformer[E]{registry: registry}
}

func (t handlerTransformer[E]) Parse(ctx BindingContext, raw *string, previous NamedHandler[E], hasPrevious bool) (NamedHandler[E], bool) {
	if raw == nil || *raw == "" {
		return NamedHandler[E]{}, true
	}
	fn, ok := t.registry.lookup(*raw)
	if !ok {
		return NamedHandler[E]{}, false
	}
	return NamedHandler[E]{Name: *raw, Fn: fn}, true
}

func (t handlerTransformer[E]) Validate(input NamedHandler[E]) (NamedHandler[E], error) {
	if input.Name == "" {
		return NamedHandler[E]{}, nil
	}
	fn, ok := t.registry.lookup(input.Name)
	if !ok {
		return NamedHandler[E]{}, &errors.ValidationError{
			Input:  input.Name,
			Reason: "handler not registered",
		}
	}
	// Normalize to the registered callback so Eql stays name-based.
	return NamedHandler[E]{Name: input.Name, Fn: fn}, nil
}

func (handlerTransformer[E]) Stringify(value NamedHandler[E]) string { return value.Name }

func (handlerTransformer[E]) Eql(a, b NamedHandler[E]) bool { return a.Name == b.Name }

func (handlerTransformer[E]) UpdateContentAttr(old, newValue NamedHandler[E]) ContentUpdate {
	if newValue.Name == "" {
		return RemoveContent
	}
	return WriteContent
}
