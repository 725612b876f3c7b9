// Package testing provides deterministic test support for the binding
// engine: a controllable clock, a manually stepped scheduler and an event
// recorder.
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import tethertest "github.com/go-drift/tether/pkg/testing"
package testing
