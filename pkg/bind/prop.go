package bind

import (
	"github.com/go-drift/tether/pkg/errors"
	"github.com/go-drift/tether/pkg/transform"
)

// Prop binds a typed property with no content-attribute counterpart.
// slotOf points the class-level binding at the instance's storage slot.
//
// The property initializes through the transformer's Init and Validate; a
// rejected initializer is a programming error and panics during Class.New.
// Every successful set publishes one reactive event keyed by name.
func Prop[T any, V any](name string, tr transform.Transformer[V], slotOf func(*T) *Slot[V], opts ...PropOptions[V]) Feature[T] {
	return func(c *Class[T]) {
		opt := onlyOption(c.tag, "Prop", opts)
		if name == "" {
			panic(&errors.ConfigError{Tag: c.tag, Feature: "Prop", Reason: "property name required"})
		}
		if tr == nil || slotOf == nil {
			panic(&errors.ConfigError{Tag: c.tag, Feature: "Prop", Reason: "nil transformer or slot accessor"})
		}

		c.inits = append(c.inits, func(h *T) {
			slot := slotOf(h)
			ctx := bindingContext[T]{class: c, host: h, property: name}

			initial := opt.Default
			preset, hadPreset := slot.capturePreset()
			if hadPreset {
				initial = preset
			}
			v := tr.Init(ctx, initial, nil, hadPreset)
			v, err := tr.Validate(v)
			if err != nil {
				panic(propertyError(name, err))
			}
			slot.value = v
			slot.getFn = opt.ReadTransform
			slot.setFn = func(nv V) error {
				nv, err := tr.Validate(nv)
				if err != nil {
					return propertyError(name, err)
				}
				if tr.Eql(nv, slot.value) {
					return nil
				}
				nv = tr.BeforeSet(ctx, nv, nil)
				slot.value = nv
				c.publish(h, Event{Property: name})
				return nil
			}
		})
	}
}
