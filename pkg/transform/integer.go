package transform

import (
	"fmt"
	"math/big"

	"github.com/go-drift/tether/pkg/errors"
)

type intTransformer struct {
	Base[*big.Int]
	min, max *big.Int
}

// Int returns a transformer for bounded arbitrary-precision integer
// properties. A nil bound is unbounded on that side. Content outside the
// range is clamped; property-setter input outside the range is rejected.
//
// Int panics with a ConfigError if min > max.
func Int(min, max *big.Int) Transformer[*big.Int] {
	if min != nil && max != nil && min.Cmp(max) > 0 {
		panic(&errors.ConfigError{
			Feature: "transform.Int",
			Reason:  fmt.Sprintf("invalid range [%v, %v]", min, max),
		})
	}
	return intTransformer{min: min, max: max}
}

// AnyInt returns an unbounded Int transformer.
func AnyInt() Transformer[*big.Int] {
	return intTransformer{}
}

func (t intTransformer) clamp(v *big.Int) *big.Int {
	if t.min != nil && v.Cmp(t.min) < 0 {
		return new(big.Int).Set(t.min)
	}
	if t.max != nil && v.Cmp(t.max) > 0 {
		return new(big.Int).Set(t.max)
	}
	return v
}

func (t intTransformer) Parse(ctx BindingContext, raw *string, previous *big.Int, hasPrevious bool) (*big.Int, bool) {
	if raw == nil {
		initial, ok := loadInitial[*big.Int](ctx)
		return initial, ok
	}
	v, ok := new(big.Int).SetString(*raw, 10)
	if !ok {
		initial, ok := loadInitial[*big.Int](ctx)
		return initial, ok
	}
	return t.clamp(v), true
}

func (t intTransformer) Validate(input *big.Int) (*big.Int, error) {
	if input == nil {
		return nil, &errors.ValidationError{Input: "nil", Reason: "nil integer"}
	}
	if (t.min != nil && input.Cmp(t.min) < 0) || (t.max != nil && input.Cmp(t.max) > 0) {
		return nil, &errors.ValidationError{
			Input:  input.String(),
			Reason: fmt.Sprintf("out of range [%v, %v]", t.min, t.max),
		}
	}
	return input, nil
}

func (t intTransformer) Transform(input *big.Int) *big.Int {
	if input == nil {
		input = new(big.Int)
	}
	return t.clamp(input)
}

func (intTransformer) Stringify(value *big.Int) string {
	if value == nil {
		return "0"
	}
	return value.String()
}

func (intTransformer) Eql(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
}

func (t intTransformer) Init(ctx BindingContext, value *big.Int, raw *string, preset bool) *big.Int {
	if value == nil {
		value = new(big.Int)
	}
	storeInitial(ctx, value)
	return value
}
