package transform

import (
	"encoding/json"

	"github.com/go-drift/tether/pkg/errors"
)

type jsonTransformer[T any] struct {
	Base[T]
}

// JSON returns a transformer for properties holding an arbitrary
// JSON-serializable value of type T. Content that does not unmarshal into T
// degrades to the no-value sentinel; property-setter input that does not
// marshal is rejected.
func JSON[T any]() Transformer[T] {
	return jsonTransformer[T]{}
}

func (jsonTransformer[T]) Parse(ctx BindingContext, raw *string, previous T, hasPrevious bool) (T, bool) {
	var zero T
	if raw == nil {
		initial, ok := loadInitial[T](ctx)
		return initial, ok
	}
	var v T
	if err := json.Unmarshal([]byte(*raw), &v); err != nil {
		return zero, false
	}
	return v, true
}

func (jsonTransformer[T]) Validate(input T) (T, error) {
	if _, err := json.Marshal(input); err != nil {
		var zero T
		return zero, &errors.ValidationError{
			Input:  "unserializable value",
			Reason: err.Error(),
		}
	}
	return input, nil
}

func (jsonTransformer[T]) Stringify(value T) string {
	data, err := json.Marshal(value)
	if err != nil {
		errors.Report(&errors.TetherError{
			Op:   "transform.JSON.stringify",
			Kind: errors.KindParse,
			Err:  err,
		})
		return "null"
	}
	return string(data)
}

func (t jsonTransformer[T]) Init(ctx BindingContext, value T, raw *string, preset bool) T {
	storeInitial(ctx, value)
	return value
}
