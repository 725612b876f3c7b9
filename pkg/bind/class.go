package bind

import (
	"sort"
	"sync"

	"github.com/go-drift/tether/pkg/errors"
	"github.com/go-drift/tether/pkg/host"
)

// Event is published on an instance's reactive bus after any bound
// property changes.
type Event struct {
	// Property is the public name of the property that changed.
	Property string
}

// Feature is one declaration installed into a class while it is built:
// a property binding, a reactive method, a lifecycle callback or an
// external subscription. Features panic with a *errors.ConfigError on
// misconfiguration; class declaration is a fail-fast, one-time phase.
type Feature[T any] func(*Class[T])

// The global declared-name set: every content-attribute name ever declared
// by any class. Observed-attribute lists are computed against this set as a
// deliberate over-approximation - at list-computation time there is no way
// to know which names a specific class will bind, so correctness requires
// over-observing. The per-name observer lookup during dispatch narrows
// behavior back down to the names each class actually bound.
var (
	declaredMu    sync.RWMutex
	declaredNames = make(map[string]struct{})
)

func declareAttributeName(name string) {
	declaredMu.Lock()
	declaredNames[name] = struct{}{}
	declaredMu.Unlock()
}

func allDeclaredNames() []string {
	declaredMu.RLock()
	defer declaredMu.RUnlock()
	names := make([]string, 0, len(declaredNames))
	for name := range declaredNames {
		names = append(names, name)
	}
	return names
}

// Class describes one host type: its tag, its constructor and everything
// its features declared. A Class is immutable once NewClass returns and
// describes the type for the process lifetime.
//
// *Class implements [host.Definition] so it can be registered with a
// hosting runtime's type registry.
type Class[T any] struct {
	tag       string
	construct func() *T

	// observers maps content-attribute name to the bound observer.
	// First registrant wins: a later declaration of the same name on the
	// same class is a no-op.
	observers map[string]func(h *T, oldRaw, newRaw *string)

	inits       []func(h *T)
	connects    []func(h *T)
	disconnects []func(h *T)
	reactives   []*reactiveEntry[T]

	states sideTable[T, instanceState[T]]

	userObservedOnce sync.Once
	userObserved     map[string]struct{}
}

// NewClass builds the class descriptor for a host type. The constructor
// must be cheap and side-effect free; it is also used to probe the type for
// optional interfaces. Features install in declaration order.
//
// NewClass panics with a *errors.ConfigError on any misconfigured feature.
func NewClass[T any](tag string, construct func() *T, features ...Feature[T]) *Class[T] {
	if tag == "" {
		panic(&errors.ConfigError{Feature: "bind.NewClass", Reason: "empty tag"})
	}
	if construct == nil {
		panic(&errors.ConfigError{Tag: tag, Feature: "bind.NewClass", Reason: "nil constructor"})
	}
	c := &Class[T]{
		tag:       tag,
		construct: construct,
		observers: make(map[string]func(h *T, oldRaw, newRaw *string)),
	}
	for _, f := range features {
		f(c)
	}
	return c
}

// Define builds the class and registers it with [host.DefaultRegistry].
// Registration happens after all per-class wiring is installed.
func Define[T any](tag string, construct func() *T, features ...Feature[T]) *Class[T] {
	c := NewClass(tag, construct, features...)
	if err := host.DefaultRegistry.Define(c); err != nil {
		panic(err)
	}
	return c
}

// Tag returns the identifier the class registers under.
func (c *Class[T]) Tag() string { return c.tag }

// Register registers the class with r. Use Define for the default registry.
func (c *Class[T]) Register(r *host.Registry) error { return r.Define(c) }

// state returns the instance's bookkeeping record, creating it on first
// access.
func (c *Class[T]) state(h *T) *instanceState[T] {
	return c.states.getOrCreate(h, newInstanceState[T])
}

// New constructs an instance: run the constructor, install the attribute
// notification sink if the host type accepts one, run every
// construction-time callback in registration order, then mark the instance
// eligible for reactive notifications. The mark comes strictly last so a
// reactive method's initial invocation is never mistaken for a live change
// notification.
func (c *Class[T]) New() *T {
	h := c.construct()
	if installer, ok := any(h).(host.SinkInstaller); ok {
		installer.InstallSink(&classSink[T]{class: c, host: h})
	}
	for _, init := range c.inits {
		init(h)
	}
	c.state(h).ready = true
	return h
}

// Connect delivers the attach notification: the host type's own
// [host.ConnectNotifier] implementation first, then every declared connect
// callback in registration order.
func (c *Class[T]) Connect(h *T) {
	if notifier, ok := any(h).(host.ConnectNotifier); ok {
		notifier.Connected()
	}
	for _, fn := range c.connects {
		fn(h)
	}
}

// Disconnect delivers the detach notification: the host type's own
// [host.DisconnectNotifier] implementation first, then every declared
// disconnect callback, then teardown of established subscriptions.
func (c *Class[T]) Disconnect(h *T) {
	if notifier, ok := any(h).(host.DisconnectNotifier); ok {
		notifier.Disconnected()
	}
	for _, fn := range c.disconnects {
		fn(h)
	}
	if state, ok := c.states.get(h); ok {
		state.runCleanups()
	}
}

// AttributeChanged delivers an attribute-change notification: the host
// type's own [host.AttributeChangedNotifier] implementation first (only
// for names the host type itself declared), then the bound observer for
// that name, if any.
func (c *Class[T]) AttributeChanged(h *T, name string, oldValue, newValue *string) {
	if notifier, ok := any(h).(host.AttributeChangedNotifier); ok {
		if _, declared := c.hostObserved()[name]; declared {
			notifier.AttributeChanged(name, oldValue, newValue)
		}
	}
	if observer, ok := c.observers[name]; ok {
		observer(h, oldValue, newValue)
	}
}

// ObservedAttributes returns the union of the host type's own declared
// list and the entire global declared-name set, sorted. Over-observation
// is intentional; see the declared-name set above.
func (c *Class[T]) ObservedAttributes() []string {
	seen := make(map[string]struct{})
	for name := range c.hostObserved() {
		seen[name] = struct{}{}
	}
	for _, name := range allDeclaredNames() {
		seen[name] = struct{}{}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// hostObserved returns the host type's own statically declared attribute
// names, computed lazily from a probe instance.
func (c *Class[T]) hostObserved() map[string]struct{} {
	c.userObservedOnce.Do(func() {
		c.userObserved = make(map[string]struct{})
		probe := c.construct()
		if observer, ok := any(probe).(host.AttributeObserver); ok {
			for _, name := range observer.ObservedAttributes() {
				c.userObserved[name] = struct{}{}
			}
		}
	})
	return c.userObserved
}

// OnEvent subscribes fn to the instance's reactive bus. The subscriber
// receives the instance as an argument and must not capture it, or the
// side-table entry would keep the instance alive. It returns an
// unsubscribe function.
func (c *Class[T]) OnEvent(h *T, fn func(*T, Event)) (unsubscribe func()) {
	state := c.state(h)
	id := state.subscribe(fn)
	return func() {
		if s, ok := c.states.get(h); ok {
			s.unsubscribe(id)
		}
	}
}

// publish delivers ev to the instance's reactive consumers: declared
// reactive methods in registration order, then dynamic bus subscribers.
// Nothing is delivered before the instance passes the post-construction
// eligibility mark.
func (c *Class[T]) publish(h *T, ev Event) {
	state := c.state(h)
	if !state.ready {
		return
	}
	for _, entry := range c.reactives {
		if entry.matches(h, ev) {
			entry.invoke(h)
		}
	}
	if len(state.subs) == 0 {
		return
	}
	// Snapshot: a subscriber may unsubscribe during dispatch. In-flight
	// delivery completes for the whole snapshot; removal takes effect from
	// the next event.
	subs := make([]busSubscriber[T], len(state.subs))
	copy(subs, state.subs)
	for _, sub := range subs {
		sub.fn(h, ev)
	}
}

// CreateAny implements host.Definition.
func (c *Class[T]) CreateAny() any { return c.New() }

// ConnectAny implements host.Definition.
func (c *Class[T]) ConnectAny(instance any) {
	if h, ok := instance.(*T); ok {
		c.Connect(h)
	}
}

// DisconnectAny implements host.Definition.
func (c *Class[T]) DisconnectAny(instance any) {
	if h, ok := instance.(*T); ok {
		c.Disconnect(h)
	}
}

// AttributeChangedAny implements host.Definition.
func (c *Class[T]) AttributeChangedAny(instance any, name string, oldValue, newValue *string) {
	if h, ok := instance.(*T); ok {
		c.AttributeChanged(h, name, oldValue, newValue)
	}
}

// classSink adapts a (class, instance) pair to host.NotificationSink.
type classSink[T any] struct {
	class *Class[T]
	host  *T
}

func (s *classSink[T]) ObservedAttributes() []string {
	return s.class.ObservedAttributes()
}

func (s *classSink[T]) AttributeChanged(name string, oldValue, newValue *string) {
	s.class.AttributeChanged(s.host, name, oldValue, newValue)
}

// bindingContext is the transform.BindingContext for one (binding,
// instance) pair. It is created per operation and never outlives the call.
type bindingContext[T any] struct {
	class       *Class[T]
	host        *T
	property    string
	contentAttr string
}

func (ctx bindingContext[T]) Host() any                { return ctx.host }
func (ctx bindingContext[T]) Property() string         { return ctx.property }
func (ctx bindingContext[T]) ContentAttribute() string { return ctx.contentAttr }

func (ctx bindingContext[T]) Store(key string, val any) {
	ctx.class.state(ctx.host).storeStash(ctx.property, key, val)
}

func (ctx bindingContext[T]) Load(key string) (any, bool) {
	return ctx.class.state(ctx.host).loadStash(ctx.property, key)
}
