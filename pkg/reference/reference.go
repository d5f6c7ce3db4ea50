// Package reference provides the ownership cell that sits between a creator
// and the native view it materialized.
//
// A Reference is either strong (it keeps its target alive), weak (it observes
// a target owned elsewhere) or nil. Weak lookups resolve live: once the target
// has been collected, Value returns nil. That is an expected outcome of the
// ownership model and never an error.
//
// References are not safe for concurrent mutation. Like the rest of the view
// layer they must only be touched from the UI goroutine.
package reference

import "weak"

// Kind is the ownership direction held by a Reference.
type Kind uint8

const (
	// KindNil holds nothing.
	KindNil Kind = iota
	// KindStrong owns the target.
	KindStrong
	// KindWeak observes a target owned elsewhere.
	KindWeak
)

func (k Kind) String() string {
	switch k {
	case KindStrong:
		return "strong"
	case KindWeak:
		return "weak"
	default:
		return "nil"
	}
}

// Reference is a tagged strong/weak/nil cell for a single *T.
// The zero value is a nil reference.
type Reference[T any] struct {
	kind   Kind
	strong *T
	weak   weak.Pointer[T]
}

// Strong returns a reference that owns v.
func Strong[T any](v *T) Reference[T] {
	return Reference[T]{kind: KindStrong, strong: v}
}

// Weak returns a reference that observes v without keeping it alive.
// Weak(nil) is a weak reference to nothing.
func Weak[T any](v *T) Reference[T] {
	return Reference[T]{kind: KindWeak, weak: weak.Make(v)}
}

// Nil returns an empty reference.
func Nil[T any]() Reference[T] {
	return Reference[T]{}
}

// Value returns the target, or nil if there is none or it was collected.
func (r Reference[T]) Value() *T {
	switch r.kind {
	case KindStrong:
		return r.strong
	case KindWeak:
		return r.weak.Value()
	default:
		return nil
	}
}

// Kind reports the ownership direction.
func (r Reference[T]) Kind() Kind { return r.kind }

// IsStrong reports whether r owns its target.
func (r Reference[T]) IsStrong() bool { return r.kind == KindStrong }

// IsWeak reports whether r observes its target.
func (r Reference[T]) IsWeak() bool { return r.kind == KindWeak }

// IsNil reports whether r holds no reference at all. A weak reference whose
// target was collected is still weak; use Value to test liveness.
func (r Reference[T]) IsNil() bool { return r.kind == KindNil }

// Erase converts r into a type-erased Any with the same ownership direction.
func (r Reference[T]) Erase() Any {
	switch r.kind {
	case KindStrong:
		return Any{kind: KindStrong, strong: r.strong}
	case KindWeak:
		wp := r.weak
		return Any{kind: KindWeak, resolve: func() any {
			if v := wp.Value(); v != nil {
				return v
			}
			return nil
		}}
	default:
		return Any{}
	}
}
