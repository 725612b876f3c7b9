package transform

import (
	"fmt"

	"golang.org/x/text/cases"

	"github.com/go-drift/tether/pkg/errors"
)

type literalTransformer[V any] struct {
	inner  Transformer[V]
	values []V
}

// Literal returns a transformer restricting an inner transformer to a fixed
// set of allowed values. Content that parses to a value outside the set
// degrades to the no-value sentinel; property-setter input outside the set
// is rejected. The first listed value is the fallback for initializers
// outside the set.
//
// Literal panics with a ConfigError when values is empty.
func Literal[V any](inner Transformer[V], values ...V) Transformer[V] {
	if len(values) == 0 {
		panic(&errors.ConfigError{
			Feature: "transform.Literal",
			Reason:  "no allowed values",
		})
	}
	return literalTransformer[V]{inner: inner, values: values}
}

func (t literalTransformer[V]) member(v V) bool {
	for _, allowed := range t.values {
		if t.inner.Eql(allowed, v) {
			return true
		}
	}
	return false
}

func (t literalTransformer[V]) Parse(ctx BindingContext, raw *string, previous V, hasPrevious bool) (V, bool) {
	v, ok := t.inner.Parse(ctx, raw, previous, hasPrevious)
	if !ok || !t.member(v) {
		var zero V
		return zero, false
	}
	return v, true
}

func (t literalTransformer[V]) Validate(input V) (V, error) {
	v, err := t.inner.Validate(input)
	if err != nil {
		return v, err
	}
	if !t.member(v) {
		var zero V
		return zero, &errors.ValidationError{
			Input:  fmt.Sprintf("%v", v),
			Reason: fmt.Sprintf("not one of %d allowed values", len(t.values)),
		}
	}
	return v, nil
}

func (t literalTransformer[V]) Transform(input V) V {
	v := t.inner.Transform(input)
	if !t.member(v) {
		return t.values[0]
	}
	return v
}

func (t literalTransformer[V]) Stringify(value V) string { return t.inner.Stringify(value) }

func (t literalTransformer[V]) Eql(a, b V) bool { return t.inner.Eql(a, b) }

func (t literalTransformer[V]) Init(ctx BindingContext, value V, raw *string, preset bool) V {
	if !t.member(value) {
		value = t.values[0]
	}
	storeInitial(ctx, value)
	return value
}

func (t literalTransformer[V]) BeforeSet(ctx BindingContext, value V, raw *string) V {
	return t.inner.BeforeSet(ctx, value, raw)
}

func (t literalTransformer[V]) UpdateContentAttr(old, newValue V) ContentUpdate {
	return t.inner.UpdateContentAttr(old, newValue)
}

type foldedLiteralTransformer struct {
	literalTransformer[string]
	caser cases.Caser
}

// FoldedLiteral is Literal over strings with case-insensitive matching, the
// way platform enumerated attributes match. Content is matched by Unicode
// case folding; the stored property value is always the declared casing.
func FoldedLiteral(values ...string) Transformer[string] {
	if len(values) == 0 {
		panic(&errors.ConfigError{
			Feature: "transform.FoldedLiteral",
			Reason:  "no allowed values",
		})
	}
	return foldedLiteralTransformer{
		literalTransformer: literalTransformer[string]{inner: String(), values: values},
		caser:              cases.Fold(),
	}
}

// canonical returns the declared casing for v, if v folds to an allowed
// value.
func (t foldedLiteralTransformer) canonical(v string) (string, bool) {
	folded := t.caser.String(v)
	for _, allowed := range t.values {
		if t.caser.String(allowed) == folded {
			return allowed, true
		}
	}
	return "", false
}

func (t foldedLiteralTransformer) Parse(ctx BindingContext, raw *string, previous string, hasPrevious bool) (string, bool) {
	v, ok := t.inner.Parse(ctx, raw, previous, hasPrevious)
	if !ok {
		return "", false
	}
	return t.canonical(v)
}

func (t foldedLiteralTransformer) Validate(input string) (string, error) {
	v, ok := t.canonical(input)
	if !ok {
		return "", &errors.ValidationError{
			Input:  input,
			Reason: fmt.Sprintf("not one of %d allowed values", len(t.values)),
		}
	}
	return v, nil
}

func (t foldedLiteralTransformer) Transform(input string) string {
	v, ok := t.canonical(input)
	if !ok {
		return t.values[0]
	}
	return v
}

func (t foldedLiteralTransformer) Init(ctx BindingContext, value string, raw *string, preset bool) string {
	v, ok := t.canonical(value)
	if !ok {
		v = t.values[0]
	}
	storeInitial(ctx, v)
	return v
}
