package bind

import (
	"github.com/go-drift/tether/pkg/errors"
	"github.com/go-drift/tether/pkg/host"
	"github.com/go-drift/tether/pkg/transform"
)

// Attr binds a typed property to a content attribute, kept in sync in both
// directions through the transformer.
//
// Content to property: an attribute-change notification parses the new raw
// value and, if it parses and differs from the stored value, commits it and
// publishes one reactive event. Unparseable content is ignored and the
// property keeps its value.
//
// Property to content: a successful Slot.Set stringifies the new value and
// writes (or removes) the content attribute per the transformer's
// UpdateContentAttr verdict. The write arms a one-shot suppression so the
// echoed change notification is discarded instead of re-entering the
// property path.
//
// The content-attribute name defaults to the property name; AttrOptions.As
// overrides it. The first binding declared for a given content-attribute
// name on a class wins; later declarations of the same name keep their
// property behavior but never receive content notifications.
func Attr[T any, V any](name string, tr transform.Transformer[V], slotOf func(*T) *Slot[V], opts ...AttrOptions[V]) Feature[T] {
	return func(c *Class[T]) {
		opt := onlyOption(c.tag, "Attr", opts)
		if tr == nil || slotOf == nil {
			panic(&errors.ConfigError{Tag: c.tag, Feature: "Attr", Reason: "nil transformer or slot accessor"})
		}
		contentName := opt.As
		if contentName == "" {
			contentName = name
		}
		propName := name
		if propName == "" {
			propName = contentName
		}
		if contentName == "" {
			panic(&errors.ConfigError{Tag: c.tag, Feature: "Attr", Reason: "attribute needs a name or an As option"})
		}
		reflective := !opt.NonReflective

		if reflective {
			declareAttributeName(contentName)
			if _, taken := c.observers[contentName]; !taken {
				c.observers[contentName] = func(h *T, oldRaw, newRaw *string) {
					if rawEqual(oldRaw, newRaw) {
						return
					}
					state := c.state(h)
					if state.consumeSuppression(contentName) {
						return
					}
					slot := slotOf(h)
					ctx := bindingContext[T]{class: c, host: h, property: propName, contentAttr: contentName}
					v, ok := tr.Parse(ctx, newRaw, slot.value, true)
					if !ok || tr.Eql(v, slot.value) {
						return
					}
					slot.value = tr.BeforeSet(ctx, v, newRaw)
					c.publish(h, Event{Property: propName})
				}
			}
		}

		c.inits = append(c.inits, func(h *T) {
			obj, isObject := any(h).(host.Object)
			if reflective && !isObject {
				panic(&errors.ConfigError{
					Tag:     c.tag,
					Feature: "Attr",
					Reason:  "host type does not implement host.Object; use NonReflective or Prop",
				})
			}
			slot := slotOf(h)
			ctx := bindingContext[T]{class: c, host: h, property: propName, contentAttr: contentName}

			initial := opt.Default
			preset, hadPreset := slot.capturePreset()
			if hadPreset {
				initial = preset
			}
			var raw *string
			if reflective {
				if s, present := obj.Attribute(contentName); present {
					raw = &s
				}
			}
			// Init sees the declared initial value first so transformers can
			// capture it, then content present at construction takes over.
			v := tr.Init(ctx, initial, raw, hadPreset)
			committed := false
			if raw != nil {
				if parsed, ok := tr.Parse(ctx, raw, v, false); ok {
					slot.value = parsed
					committed = true
				}
			}
			if !committed {
				v, err := tr.Validate(v)
				if err != nil {
					panic(propertyError(propName, err))
				}
				slot.value = v
			}
			slot.getFn = opt.ReadTransform
			slot.setFn = func(nv V) error {
				nv, err := tr.Validate(nv)
				if err != nil {
					return propertyError(propName, err)
				}
				old := slot.value
				if tr.Eql(nv, old) {
					return nil
				}
				nv = tr.BeforeSet(ctx, nv, nil)
				slot.value = nv
				if reflective {
					state := c.state(h)
					switch tr.UpdateContentAttr(old, nv) {
					case transform.WriteContent:
						next := tr.Stringify(nv)
						if cur, present := obj.Attribute(contentName); !present || cur != next {
							state.armSuppression(contentName)
							obj.SetAttribute(contentName, next)
						}
					case transform.RemoveContent:
						if _, present := obj.Attribute(contentName); present {
							state.armSuppression(contentName)
							obj.RemoveAttribute(contentName)
						}
					case transform.KeepContent:
					}
				}
				c.publish(h, Event{Property: propName})
				return nil
			}
		})
	}
}

func rawEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
