package bind

import "github.com/go-drift/tether/pkg/errors"

// Slot is the per-instance storage for one bound property. Embed one Slot
// field per property in the host struct and point the Prop or Attr feature
// at it.
//
// A Slot only becomes usable once the class initializer has run, which
// happens inside [Class.New]. Writing a value into the struct literal
// before that - NewSlot(v) - is supported: the initializer captures the
// pre-populated value and treats it as the instance's effective initial
// value.
type Slot[V any] struct {
	value  V
	preset bool
	setFn  func(V) error
	getFn  func(V) V
}

// NewSlot returns a slot pre-populated with v. The value takes the place
// of the declared default when the instance is initialized.
func NewSlot[V any](v V) Slot[V] {
	return Slot[V]{value: v, preset: true}
}

// Get returns the stored property value, through the read transform if one
// was declared.
func (s *Slot[V]) Get() V {
	if s.getFn != nil {
		return s.getFn(s.value)
	}
	return s.value
}

// Set validates input and commits it as the new property value. Setting a
// value equal (per the transformer) to the current one is a no-op. On
// success the content attribute is synchronized (for reflective
// attributes) and one reactive event is published.
//
// Set returns a *errors.ValidationError when the transformer rejects the
// input; the property and its content representation are left unchanged.
func (s *Slot[V]) Set(v V) error {
	if s.setFn == nil {
		return &errors.ConfigError{
			Feature: "bind.Slot",
			Reason:  "slot not bound; construct instances with Class.New",
		}
	}
	return s.setFn(v)
}

// MustSet is Set, panicking on validation failure.
func (s *Slot[V]) MustSet(v V) {
	if err := s.Set(v); err != nil {
		panic(err)
	}
}

// capturePreset returns the pre-populated value, if any, and resets the
// slot. Used by initializers to resolve the construction-order hazard
// where a struct literal populates the slot before the binding installs.
func (s *Slot[V]) capturePreset() (V, bool) {
	if !s.preset {
		var zero V
		return zero, false
	}
	v := s.value
	var zero V
	s.value = zero
	s.preset = false
	return v, true
}
