package bind

import (
	"runtime"
	"sync"

	"github.com/go-drift/tether/pkg/errors"
)

// SubscribeOptions configures a SubscribeFunc or Subscribe feature.
type SubscribeOptions struct {
	// OnConnect establishes the subscription on each connect instead of
	// once at construction. Combined with disconnect teardown this gives a
	// subscription that follows the instance's attachment.
	OnConnect bool
}

// SubscribeFunc ties an external subscription to the instance lifecycle.
// attach establishes the subscription and returns its cancel function,
// which runs on disconnect and, as a garbage-collection backstop, once the
// instance becomes unreachable. Cancel is invoked at most once.
//
// If the embedding runtime never delivers Disconnect and the returned
// cancel function (or the subscription source) keeps the instance
// reachable, the subscription leaks. Sources that capture the instance
// must be paired with a runtime that delivers lifecycle notifications.
func SubscribeFunc[T any](attach func(*T) (cancel func()), opts ...SubscribeOptions) Feature[T] {
	return func(c *Class[T]) {
		opt := onlyOption(c.tag, "SubscribeFunc", opts)
		if attach == nil {
			panic(&errors.ConfigError{Tag: c.tag, Feature: "SubscribeFunc", Reason: "nil attach function"})
		}
		establish := func(h *T) {
			cancel := attach(h)
			if cancel == nil {
				return
			}
			var once sync.Once
			safeCancel := func() { once.Do(cancel) }
			c.state(h).addCleanup(safeCancel)
			runtime.AddCleanup(h, func(fn func()) { fn() }, safeCancel)
		}
		if opt.OnConnect {
			c.connects = append(c.connects, establish)
		} else {
			c.inits = append(c.inits, establish)
		}
	}
}

// Listenable is the subscription surface shared by observable sources:
// AddListener registers a callback and returns its unsubscribe function.
type Listenable interface {
	AddListener(func()) func()
}

// Subscribe is SubscribeFunc for Listenable sources: source resolves the
// instance's observable, and onChange runs on every source notification.
func Subscribe[T any, S Listenable](source func(*T) S, onChange func(*T), opts ...SubscribeOptions) Feature[T] {
	if onChange == nil {
		onChange = func(*T) {}
	}
	return SubscribeFunc(func(h *T) func() {
		return source(h).AddListener(func() { onChange(h) })
	}, opts...)
}

// Connected registers fn to run when the instance attaches to its host
// runtime.
func Connected[T any](fn func(*T)) Feature[T] {
	return func(c *Class[T]) {
		if fn == nil {
			panic(&errors.ConfigError{Tag: c.tag, Feature: "Connected", Reason: "nil callback"})
		}
		c.connects = append(c.connects, fn)
	}
}

// Disconnected registers fn to run when the instance detaches from its
// host runtime, before subscription teardown.
func Disconnected[T any](fn func(*T)) Feature[T] {
	return func(c *Class[T]) {
		if fn == nil {
			panic(&errors.ConfigError{Tag: c.tag, Feature: "Disconnected", Reason: "nil callback"})
		}
		c.disconnects = append(c.disconnects, fn)
	}
}
