package transform

type boolTransformer struct {
	Base[bool]
}

// Bool returns a transformer for presence booleans: a present content
// attribute (any string, including "") means true, an absent one means
// false. Setting the property to false removes the content attribute
// rather than writing a falsy string.
func Bool() Transformer[bool] {
	return boolTransformer{}
}

func (boolTransformer) Parse(ctx BindingContext, raw *string, previous bool, hasPrevious bool) (bool, bool) {
	return raw != nil, true
}

func (boolTransformer) Stringify(value bool) string { return "" }

func (boolTransformer) Eql(a, b bool) bool { return a == b }

func (boolTransformer) UpdateContentAttr(old, newValue bool) ContentUpdate {
	if newValue {
		return WriteContent
	}
	return RemoveContent
}
