package transform

import "reflect"

// ContentUpdate governs what a property mutation does to the property's
// content representation.
type ContentUpdate int

const (
	// WriteContent pushes the stringified new value to the content attribute.
	WriteContent ContentUpdate = iota
	// KeepContent leaves the content attribute alone.
	KeepContent
	// RemoveContent removes the content attribute entirely.
	RemoveContent
)

// BindingContext is the engine-supplied context a transformer sees during
// Init, BeforeSet and Parse. It identifies the bound property and carries a
// per-binding, per-instance stash so a shared transformer can keep
// instance-scoped state (such as the captured initial value) without owning
// a side table of its own.
type BindingContext interface {
	// Host returns the host instance the property belongs to.
	Host() any
	// Property returns the property's public name.
	Property() string
	// ContentAttribute returns the resolved content-attribute name, or ""
	// for properties without a content counterpart.
	ContentAttribute() string
	// Store saves per-instance transformer state under key.
	Store(key string, val any)
	// Load retrieves per-instance transformer state stored under key.
	Load(key string) (any, bool)
}

// Transformer converts between the content and property representations of
// a value and hooks into the property lifecycle. One transformer value is
// shared by every instance of the class that declares it, so implementations
// keep instance state in the BindingContext stash, never in fields.
//
// Parse and Stringify are exception-free by contract. Validate is the only
// method permitted to reject, and it must do so before any state mutation.
type Transformer[V any] interface {
	// Parse converts content to a property value. raw == nil means the
	// attribute is absent. previous is the currently stored value;
	// hasPrevious is false during initialization, when no prior value
	// exists. A false second return is the no-value sentinel: the content
	// is unusable and the caller keeps the previous or initial value.
	Parse(ctx BindingContext, raw *string, previous V, hasPrevious bool) (V, bool)

	// Validate normalizes property-setter input and may reject it.
	Validate(input V) (V, error)

	// Transform is the loose coercion used by composite transformers. It
	// never fails.
	Transform(input V) V

	// Stringify converts a property value to its content form.
	Stringify(value V) string

	// Eql reports whether two values are equal for change detection.
	Eql(a, b V) bool

	// Init runs once at instance construction. raw is the content value
	// present at construction, if any; preset reports whether the storage
	// slot was pre-populated before the binding initializer ran. The
	// returned value becomes the property's initial value.
	Init(ctx BindingContext, value V, raw *string, preset bool) V

	// BeforeSet runs on every successful property write, from either
	// direction, before the value is committed. raw is the causing content
	// string for content-driven writes, nil otherwise.
	BeforeSet(ctx BindingContext, value V, raw *string) V

	// UpdateContentAttr decides whether a property mutation writes, keeps
	// or removes the content representation.
	UpdateContentAttr(old, newValue V) ContentUpdate
}

// Base provides default implementations for every Transformer method except
// Parse and Stringify, which are inherently type-specific. Embed it in
// custom transformers.
type Base[V any] struct{}

// Validate accepts the input unchanged.
func (Base[V]) Validate(input V) (V, error) { return input, nil }

// Transform returns the input unchanged.
func (Base[V]) Transform(input V) V { return input }

// Eql compares with reflect.DeepEqual.
func (Base[V]) Eql(a, b V) bool { return reflect.DeepEqual(a, b) }

// Init returns the value unchanged.
func (Base[V]) Init(ctx BindingContext, value V, raw *string, preset bool) V { return value }

// BeforeSet returns the value unchanged.
func (Base[V]) BeforeSet(ctx BindingContext, value V, raw *string) V { return value }

// UpdateContentAttr always writes.
func (Base[V]) UpdateContentAttr(old, newValue V) ContentUpdate { return WriteContent }

// initialKey is the stash key transformers use for the captured initial
// value.
const initialKey = "initial"

// storeInitial captures the effective initial value for later Parse
// fallbacks.
func storeInitial[V any](ctx BindingContext, value V) {
	ctx.Store(initialKey, value)
}

// loadInitial returns the captured initial value, if any.
func loadInitial[V any](ctx BindingContext) (V, bool) {
	var zero V
	v, ok := ctx.Load(initialKey)
	if !ok {
		return zero, false
	}
	typed, ok := v.(V)
	if !ok {
		return zero, false
	}
	return typed, true
}
