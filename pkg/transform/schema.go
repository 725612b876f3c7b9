package transform

import (
	"encoding/json"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/go-drift/tether/pkg/errors"
)

type schemaTransformer[T any] struct {
	Base[T]
	cctx   *cue.Context
	schema cue.Value
}

// Schema returns a transformer for JSON properties whose values must
// satisfy a CUE schema. Content that unmarshals but does not satisfy the
// schema degrades to the no-value sentinel; property-setter input that does
// not satisfy it is rejected.
//
// Schema panics with a ConfigError if source is not valid CUE.
func Schema[T any](source string) Transformer[T] {
	cctx := cuecontext.New()
	schema := cctx.CompileString(source)
	if err := schema.Err(); err != nil {
		panic(&errors.ConfigError{
			Feature: "transform.Schema",
			Reason:  "invalid schema: " + err.Error(),
		})
	}
	return schemaTransformer[T]{cctx: cctx, schema: schema}
}

// check reports whether v satisfies the schema.
func (t schemaTransformer[T]) check(v T) error {
	val := t.cctx.Encode(v)
	if err := val.Err(); err != nil {
		return err
	}
	return t.schema.Unify(val).Validate(cue.Concrete(true))
}

func (t schemaTransformer[T]) Parse(ctx BindingContext, raw *string, previous T, hasPrevious bool) (T, bool) {
	var zero T
	if raw == nil {
		initial, ok := loadInitial[T](ctx)
		return initial, ok
	}
	var v T
	if err := json.Unmarshal([]byte(*raw), &v); err != nil {
		return zero, false
	}
	if err := t.check(v); err != nil {
		return zero, false
	}
	return v, true
}

func (t schemaTransformer[T]) Validate(input T) (T, error) {
	if err := t.check(input); err != nil {
		var zero T
		return zero, &errors.ValidationError{
			Input:  "schema-checked value",
			Reason: err.Error(),
		}
	}
	return input, nil
}

func (t schemaTransformer[T]) Stringify(value T) string {
	data, err := json.Marshal(value)
	if err != nil {
		errors.Report(&errors.TetherError{
			Op:   "transform.Schema.stringify",
			Kind: errors.KindParse,
			Err:  err,
		})
		return "null"
	}
	return string(data)
}

func (t schemaTransformer[T]) Init(ctx BindingContext, value T, raw *string, preset bool) T {
	storeInitial(ctx, value)
	return value
}
