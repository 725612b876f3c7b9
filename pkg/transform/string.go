package transform

import (
	"net/url"

	"github.com/go-drift/tether/pkg/errors"
)

type stringTransformer struct {
	Base[string]
}

// String returns a transformer for plain string properties. Removing the
// content attribute resets the property to its initial value.
func String() Transformer[string] {
	return stringTransformer{}
}

func (stringTransformer) Parse(ctx BindingContext, raw *string, previous string, hasPrevious bool) (string, bool) {
	if raw == nil {
		initial, ok := loadInitial[string](ctx)
		return initial, ok
	}
	return *raw, true
}

func (stringTransformer) Stringify(value string) string { return value }

func (stringTransformer) Eql(a, b string) bool { return a == b }

func (stringTransformer) Init(ctx BindingContext, value string, raw *string, preset bool) string {
	storeInitial(ctx, value)
	return value
}

type hrefTransformer struct {
	Base[string]
	base *url.URL
}

// Href returns a transformer for URL-valued string properties. Content is
// resolved against base (absolute content is kept as is; relative content is
// resolved the way a platform href attribute would be). The property always
// holds the resolved absolute form. A nil base leaves relative URLs
// unresolved.
func Href(base *url.URL) Transformer[string] {
	return hrefTransformer{base: base}
}

func (t hrefTransformer) resolve(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if t.base != nil {
		u = t.base.ResolveReference(u)
	}
	return u.String(), nil
}

func (t hrefTransformer) Parse(ctx BindingContext, raw *string, previous string, hasPrevious bool) (string, bool) {
	if raw == nil {
		initial, ok := loadInitial[string](ctx)
		return initial, ok
	}
	resolved, err := t.resolve(*raw)
	if err != nil {
		return "", false
	}
	return resolved, true
}

func (t hrefTransformer) Validate(input string) (string, error) {
	resolved, err := t.resolve(input)
	if err != nil {
		return "", &errors.ValidationError{
			Input:  input,
			Reason: "not a parsable URL",
		}
	}
	return resolved, nil
}

func (t hrefTransformer) Transform(input string) string {
	resolved, err := t.resolve(input)
	if err != nil {
		return input
	}
	return resolved
}

func (hrefTransformer) Stringify(value string) string { return value }

func (hrefTransformer) Eql(a, b string) bool { return a == b }

func (t hrefTransformer) Init(ctx BindingContext, value string, raw *string, preset bool) string {
	value = t.Transform(value)
	storeInitial(ctx, value)
	return value
}
