package transform

import (
	"fmt"
	"math"
	"strconv"

	"github.com/go-drift/tether/pkg/errors"
)

type numberTransformer struct {
	Base[float64]
	min, max float64
}

// Number returns a transformer for bounded float64 properties.
//
// Content outside [min, max] is clamped; property-setter input outside the
// range is rejected with a validation error, matching the permissive-content
// versus strict-property asymmetry. Use AnyNumber for an unbounded range.
//
// Number panics with a ConfigError if min > max or either bound is NaN.
func Number(min, max float64) Transformer[float64] {
	if math.IsNaN(min) || math.IsNaN(max) || min > max {
		panic(&errors.ConfigError{
			Feature: "transform.Number",
			Reason:  fmt.Sprintf("invalid range [%v, %v]", min, max),
		})
	}
	return numberTransformer{min: min, max: max}
}

// AnyNumber returns an unbounded Number transformer.
func AnyNumber() Transformer[float64] {
	return numberTransformer{min: math.Inf(-1), max: math.Inf(1)}
}

func (t numberTransformer) clamp(v float64) float64 {
	if v < t.min {
		return t.min
	}
	if v > t.max {
		return t.max
	}
	return v
}

func (t numberTransformer) Parse(ctx BindingContext, raw *string, previous float64, hasPrevious bool) (float64, bool) {
	if raw == nil {
		initial, ok := loadInitial[float64](ctx)
		return initial, ok
	}
	v, err := strconv.ParseFloat(*raw, 64)
	if err != nil || math.IsNaN(v) {
		initial, ok := loadInitial[float64](ctx)
		return initial, ok
	}
	return t.clamp(v), true
}

func (t numberTransformer) Validate(input float64) (float64, error) {
	if math.IsNaN(input) {
		return 0, &errors.ValidationError{Input: "NaN", Reason: "not a number"}
	}
	if input < t.min || input > t.max {
		return 0, &errors.ValidationError{
			Input:  strconv.FormatFloat(input, 'g', -1, 64),
			Reason: fmt.Sprintf("out of range [%v, %v]", t.min, t.max),
		}
	}
	return input, nil
}

func (t numberTransformer) Transform(input float64) float64 {
	if math.IsNaN(input) {
		return t.clamp(0)
	}
	return t.clamp(input)
}

func (numberTransformer) Stringify(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}

func (numberTransformer) Eql(a, b float64) bool { return a == b }

func (t numberTransformer) Init(ctx BindingContext, value float64, raw *string, preset bool) float64 {
	storeInitial(ctx, value)
	return value
}
