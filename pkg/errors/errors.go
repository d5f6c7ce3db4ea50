// Package errors provides structured error handling for viewkit.
//
// Two kinds of failure exist. Runtime failures (a missing view factory, a
// panicking build closure, a malformed config) are reported through the
// global ErrorHandler and the caller degrades gracefully. Invariant
// violations (popping a phase that was never requested, building a view
// after it was released) mean the lifecycle adapter and the state machine
// have desynchronized; Fatal reports them and then panics.
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
	// KindPlatform indicates a native toolkit or view factory error.
	KindPlatform
	// KindConfig indicates a configuration or scenario file error.
	KindConfig
	// KindLifecycle indicates a render lifecycle error.
	KindLifecycle
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindBuild indicates a failure while materializing a view.
	KindBuild
)

func (k ErrorKind) String() string {
	switch k {
	case KindPlatform:
		return "platform"
	case KindConfig:
		return "config"
	case KindLifecycle:
		return "lifecycle"
	case KindPanic:
		return "panic"
	case KindBuild:
		return "build"
	default:
		return "unknown"
	}
}

// ViewKitError represents a structured runtime error.
type ViewKitError struct {
	// Op is the operation that failed (e.g., "platform.Registry.Create").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// ViewType is the native view type involved, if applicable.
	ViewType string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *ViewKitError) Error() string {
	if e.ViewType != "" {
		return fmt.Sprintf("%s [%s] view=%s: %v", e.Op, e.Kind, e.ViewType, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ViewKitError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "core.Render.Pop").
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

// BuildError represents a failure while a creator materialized its view.
type BuildError struct {
	// Creator is the name of the creator that failed.
	Creator string
	// Strategy is the build strategy in use (raw, representable, controller).
	Strategy string
	// Recovered is the panic value (nil for regular errors).
	Recovered any
	// Err is the underlying error (nil for panics).
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *BuildError) Error() string {
	if e.Recovered != nil {
		return fmt.Sprintf("panic in %s.%s build: %v", e.Creator, e.Strategy, e.Recovered)
	}
	if e.Err != nil {
		return fmt.Sprintf("error in %s.%s build: %v", e.Creator, e.Strategy, e.Err)
	}
	return fmt.Sprintf("unknown error in %s.%s build", e.Creator, e.Strategy)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// InvariantError is a programmer error. It is never recovered by the
// framework itself.
type InvariantError struct {
	// Op is the operation that detected the violation.
	Op string
	// Message describes the violated invariant.
	Message string
	// StackTrace contains the call stack at the time of the violation.
	StackTrace string
	// Timestamp is when the violation occurred.
	Timestamp time.Time
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violated in %s: %s", e.Op, e.Message)
}

// ErrorHandler receives errors reported by viewkit.
type ErrorHandler interface {
	// HandleError is called when a runtime error occurs.
	HandleError(err *ViewKitError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandleBuildError is called when a view build fails.
	HandleBuildError(err *BuildError)
	// HandleInvariant is called right before Fatal panics.
	HandleInvariant(err *InvariantError)
}
