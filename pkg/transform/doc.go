// Package transform defines the value-conversion contract that bridges a
// property's two representations: the external, always-string content form
// and the internal, typed property form.
//
// # The Transformer contract
//
// A [Transformer] converts in both directions and decides when a value has
// actually changed:
//
//   - Parse converts content to a property value and never fails; a false
//     second return means "content unusable" and callers fall back to the
//     previous or initial value.
//   - Validate is the single rejection point. It runs on property-setter
//     input and must reject before any state is mutated.
//   - Stringify converts a property value back to content and never fails.
//   - Eql is the change-detection predicate.
//
// Parse and Stringify must be inverses modulo normalization: for every value
// v accepted by Validate, Parse(Stringify(v)) is Eql-equal to v.
//
// # Built-in transformers
//
// The package ships transformers for plain and URL-resolving strings, bounded
// numbers, bounded big integers, presence booleans, JSON and YAML blobs,
// CUE-schema-validated JSON, enumerations, delimited lists, named event
// handlers, colors and semantic versions. All of them are expressed purely
// through the Transformer contract; no other package branches on which
// transformer a property uses.
//
// # Writing your own
//
// Embed [Base] to pick up default implementations and override what you
// need:
//
//	type celsius struct {
//	    transform.Base[float64]
//	}
//
//	func (celsius) Parse(ctx transform.BindingContext, raw *string, prev float64, ok bool) (float64, bool) { ... }
//	func (celsius) Stringify(v float64) string { ... }
package transform
