package transform

import (
	"strings"

	"golang.org/x/mod/semver"

	"github.com/go-drift/tether/pkg/errors"
)

type versionTransformer struct {
	Base[string]
}

// Version returns a transformer for semantic-version properties. Values are
// stored in canonical form with a leading "v" (golang.org/x/mod/semver
// conventions); content with or without the prefix is accepted. Content
// that is not a valid semantic version degrades to the no-value sentinel.
// The empty string is allowed and means "no version".
func Version() Transformer[string] {
	return versionTransformer{}
}

// canonical normalizes v, reporting whether it is a valid semantic version.
func (versionTransformer) canonical(v string) (string, bool) {
	if v == "" {
		return "", true
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "", false
	}
	return semver.Canonical(v), true
}

func (t versionTransformer) Parse(ctx BindingContext, raw *string, previous string, hasPrevious bool) (string, bool) {
	if raw == nil {
		initial, ok := loadInitial[string](ctx)
		return initial, ok
	}
	return t.canonical(*raw)
}

func (t versionTransformer) Validate(input string) (string, error) {
	v, ok := t.canonical(input)
	if !ok {
		return "", &errors.ValidationError{
			Input:  input,
			Reason: "not a semantic version",
		}
	}
	return v, nil
}

func (t versionTransformer) Transform(input string) string {
	v, ok := t.canonical(input)
	if !ok {
		return ""
	}
	return v
}

func (versionTransformer) Stringify(value string) string { return value }

func (versionTransformer) Eql(a, b string) bool {
	if a == "" || b == "" {
		return a == b
	}
	return semver.Compare(a, b) == 0
}

func (t versionTransformer) Init(ctx BindingContext, value string, raw *string, preset bool) string {
	value = t.Transform(value)
	storeInitial(ctx, value)
	return value
}
