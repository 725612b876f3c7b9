package bind

import (
	"github.com/go-drift/tether/pkg/errors"
)

// PropOptions configures a Prop feature. The zero value is the default.
type PropOptions[V any] struct {
	// Default is the declared initializer, used unless the instance's slot
	// was pre-populated.
	Default V
	// ReadTransform post-processes values returned by Slot.Get.
	// Identity when nil.
	ReadTransform func(V) V
}

// AttrOptions configures an Attr feature. The zero value is the default:
// reflective, content-attribute name equal to the property name.
type AttrOptions[V any] struct {
	// Default is the declared initializer, used unless content is present
	// at construction or the instance's slot was pre-populated.
	Default V
	// ReadTransform post-processes values returned by Slot.Get.
	ReadTransform func(V) V
	// As overrides the content-attribute name. Required when the property
	// has no stable public name.
	As string
	// NonReflective disables content synchronization entirely.
	NonReflective bool
}

// onlyOption enforces the at-most-one options struct convention.
func onlyOption[O any](tag, feature string, opts []O) O {
	if len(opts) > 1 {
		panic(&errors.ConfigError{
			Tag:     tag,
			Feature: feature,
			Reason:  "at most one options struct",
		})
	}
	var opt O
	if len(opts) == 1 {
		opt = opts[0]
	}
	return opt
}

// propertyError attributes a validation failure to its property.
func propertyError(property string, err error) error {
	if ve, ok := err.(*errors.ValidationError); ok && ve.Property == "" {
		return &errors.ValidationError{
			Property: property,
			Input:    ve.Input,
			Reason:   ve.Reason,
		}
	}
	return err
}
