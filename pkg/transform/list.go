package transform

import (
	"fmt"
	"strings"

	"github.com/go-drift/tether/pkg/errors"
)

type listTransformer[V any] struct {
	inner Transformer[V]
	sep   string
}

// List returns a transformer for properties holding a slice of values, each
// converted by inner and joined by sep in the content form. An empty sep
// defaults to ",". Elements whose content form fails to parse are dropped;
// property-setter input is rejected if any element fails the inner
// validation or if an element's content form contains the separator (which
// would break the round trip).
func List[V any](inner Transformer[V], sep string) Transformer[[]V] {
	if sep == "" {
		sep = ","
	}
	return listTransformer[V]{inner: inner, sep: sep}
}

func (t listTransformer[V]) Parse(ctx BindingContext, raw *string, previous []V, hasPrevious bool) ([]V, bool) {
	if raw == nil {
		initial, ok := loadInitial[[]V](ctx)
		return initial, ok
	}
	if strings.TrimSpace(*raw) == "" {
		return nil, true
	}
	parts := strings.Split(*raw, t.sep)
	out := make([]V, 0, len(parts))
	var zero V
	for _, part := range parts {
		part = strings.TrimSpace(part)
		v, ok := t.inner.Parse(ctx, &part, zero, false)
		if !ok {
			continue
		}
		out = append(out, v)
	}
	return out, true
}

func (t listTransformer[V]) Validate(input []V) ([]V, error) {
	out := make([]V, len(input))
	for i, elem := range input {
		v, err := t.inner.Validate(elem)
		if err != nil {
			return nil, &errors.ValidationError{
				Input:  fmt.Sprintf("element %d", i),
				Reason: err.Error(),
			}
		}
		if strings.Contains(t.inner.Stringify(v), t.sep) {
			return nil, &errors.ValidationError{
				Input:  fmt.Sprintf("element %d", i),
				Reason: fmt.Sprintf("content form contains separator %q", t.sep),
			}
		}
		out[i] = v
	}
	return out, nil
}

func (t listTransformer[V]) Transform(input []V) []V {
	out := make([]V, len(input))
	for i, elem := range input {
		out[i] = t.inner.Transform(elem)
	}
	return out
}

func (t listTransformer[V]) Stringify(value []V) string {
	parts := make([]string, len(value))
	for i, elem := range value {
		parts[i] = t.inner.Stringify(elem)
	}
	return strings.Join(parts, t.sep)
}

func (t listTransformer[V]) Eql(a, b []V) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !t.inner.Eql(a[i], b[i]) {
			return false
		}
	}
	return true
}

func (t listTransformer[V]) Init(ctx BindingContext, value []V, raw *string, preset bool) []V {
	storeInitial(ctx, value)
	return value
}

func (t listTransformer[V]) BeforeSet(ctx BindingContext, value []V, raw *string) []V {
	return value
}

func (t listTransformer[V]) UpdateContentAttr(old, newValue []V) ContentUpdate {
	return WriteContent
}
