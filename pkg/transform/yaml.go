package transform

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/tether/pkg/errors"
)

type yamlTransformer[T any] struct {
	Base[T]
}

// YAML returns a transformer for properties holding a YAML-serializable
// value of type T. It mirrors JSON but speaks YAML on the content side,
// which reads better for structured configuration attributes.
func YAML[T any]() Transformer[T] {
	return yamlTransformer[T]{}
}

func (yamlTransformer[T]) Parse(ctx BindingContext, raw *string, previous T, hasPrevious bool) (T, bool) {
	var zero T
	if raw == nil {
		initial, ok := loadInitial[T](ctx)
		return initial, ok
	}
	var v T
	if err := yaml.Unmarshal([]byte(*raw), &v); err != nil {
		return zero, false
	}
	return v, true
}

func (yamlTransformer[T]) Validate(input T) (T, error) {
	if _, err := yaml.Marshal(input); err != nil {
		var zero T
		return zero, &errors.ValidationError{
			Input:  "unserializable value",
			Reason: err.Error(),
		}
	}
	return input, nil
}

func (yamlTransformer[T]) Stringify(value T) string {
	data, err := yaml.Marshal(value)
	if err != nil {
		errors.Report(&errors.TetherError{
			Op:   "transform.YAML.stringify",
			Kind: errors.KindParse,
			Err:  err,
		})
		return ""
	}
	// yaml.Marshal appends a trailing newline that content attributes
	// should not carry.
	return strings.TrimSuffix(string(data), "\n")
}

func (t yamlTransformer[T]) Init(ctx BindingContext, value T, raw *string, preset bool) T {
	storeInitial(ctx, value)
	return value
}
