// Package errors provides structured error handling for the Tether library.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates a class-declaration or binding-install error.
	KindConfig
	// KindValidation indicates a property setter rejected its input.
	KindValidation
	// KindParse indicates content that could not be converted. Parse failures
	// are reported for diagnostics only; the engine degrades gracefully and
	// never surfaces them to callers.
	KindParse
	// KindSchedule indicates a debounce scheduling failure.
	KindSchedule
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindValidation:
		return "validation"
	case KindParse:
		return "parse"
	case KindSchedule:
		return "schedule"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// TetherError represents a structured error in the Tether library.
type TetherError struct {
	// Op is the operation that failed (e.g., "bind.Attr.set").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Property is the public property name, if applicable.
	Property string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *TetherError) Error() string {
	if e.Property != "" {
		return fmt.Sprintf("%s [%s] property=%s: %v", e.Op, e.Kind, e.Property, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *TetherError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "schedule.Frame.step").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ValidationError is returned by property setters when a transformer's
// Validate rejects the input. A failed validation leaves the property and
// its content representation unchanged.
type ValidationError struct {
	// Property is the public property name.
	Property string
	// Input describes the rejected input.
	Input string
	// Reason explains why the input was rejected.
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Property != "" {
		return fmt.Sprintf("invalid value for property %q: %s (got %s)", e.Property, e.Reason, e.Input)
	}
	return fmt.Sprintf("invalid value: %s (got %s)", e.Reason, e.Input)
}

// ConfigError represents a class-declaration or binding-install failure.
// Configuration errors surface synchronously at declaration time and are
// fatal to that declaration.
type ConfigError struct {
	// Tag is the class tag being declared.
	Tag string
	// Feature names the feature that failed to install (e.g., "Attr").
	Feature string
	// Reason explains the misconfiguration.
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Tag != "" {
		return fmt.Sprintf("configuring %q: %s: %s", e.Tag, e.Feature, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Feature, e.Reason)
}

// ErrorHandler receives errors reported by the Tether library.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *TetherError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
