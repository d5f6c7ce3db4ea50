package core

import "github.com/go-drift/viewkit/pkg/platform"

// Disposable is implemented by resources a creator owns for its lifetime.
type Disposable interface {
	Dispose()
}

// OnDispose registers a cleanup function to run when the creator is
// disposed. Returns a function that unregisters it. Cleanups run once, in
// reverse registration order. If the creator is already disposed cleanup runs
// immediately.
func (c *Creator) OnDispose(cleanup func()) func() {
	if cleanup == nil {
		return func() {}
	}
	if c.render.disposed {
		cleanup()
		return func() {}
	}

	index := len(c.disposers)
	c.disposers = append(c.disposers, cleanup)
	return func() {
		if index < len(c.disposers) {
			c.disposers[index] = nil
		}
	}
}

func (c *Creator) runDisposers() {
	for i := len(c.disposers) - 1; i >= 0; i-- {
		if c.disposers[i] != nil {
			c.disposers[i]()
		}
	}
	c.disposers = nil
}

// UseController creates a controller and registers it for disposal together
// with the creator.
//
// Example:
//
//	player := core.UseController(c, func() *VideoController {
//	    return NewVideoController(url)
//	})
func UseController[C Disposable](c *Creator, create func() C) C {
	controller := create()
	c.OnDispose(controller.Dispose)
	return controller
}

// Managed holds a value bound to one property of a creator's view. The value
// is applied when the view is about to be rendered and again on every Set
// once it has been.
//
// Managed is NOT thread-safe. To update it from a background goroutine, post
// the update with platform.Dispatch:
//
//	go func() {
//	    text := fetchGreeting()
//	    platform.Dispatch(func() { greeting.Set(text) })
//	}()
type Managed[T any] struct {
	creator *Creator
	value   T
	apply   func(*platform.View, T)
}

// NewManaged binds initial to c's view through apply.
func NewManaged[T any](c *Creator, initial T, apply func(*platform.View, T)) *Managed[T] {
	m := &Managed[T]{creator: c, value: initial, apply: apply}
	c.Modify(func(v *platform.View) { m.apply(v, m.value) })
	return m
}

// Value returns the current value.
func (m *Managed[T]) Value() T {
	return m.value
}

// Set updates the value and pushes it to the view if it is already rendered.
func (m *Managed[T]) Set(value T) {
	m.value = value
	m.push()
}

// Update applies a transformation to the current value.
func (m *Managed[T]) Update(transform func(T) T) {
	m.Set(transform(m.value))
}

func (m *Managed[T]) push() {
	r := m.creator.render
	// Before notRendered the pending setter picks up the latest value.
	if r.disposed || r.state < PhaseNotRendered || r.Needs(PhaseNotRendered) {
		return
	}
	if v := m.creator.View(); v != nil {
		m.apply(v, m.value)
	}
}
