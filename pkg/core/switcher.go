package core

import (
	"github.com/go-drift/viewkit/pkg/platform"
	"github.com/go-drift/viewkit/pkg/reference"
)

// Switch pins the ownership direction between a creator and its view.
//
//   - creator without view: the creator's cell is cleared.
//   - released creator: the creator observes the view weakly and the view
//     owns the creator.
//   - unreleased creator: the creator owns the view and the view observes
//     the creator weakly.
//   - view without creator: the view observes nothing.
//
// Exactly one side of a live pair is strong afterwards.
func Switch(c *Creator, v *platform.View) {
	switch {
	case c != nil && v == nil:
		c.view = reference.Nil[platform.View]()
	case c != nil && c.released:
		c.view = reference.Weak(v)
		v.SetOwner(reference.Strong(c).Erase())
	case c != nil:
		c.view = reference.Strong(v)
		v.SetOwner(reference.Weak(c).Erase())
	case v != nil:
		v.SetOwner(reference.Weak[Creator](nil).Erase())
	}
}

// CreatorOf resolves the creator that built v, or nil if it is gone.
func CreatorOf(v *platform.View) *Creator {
	if v == nil {
		return nil
	}
	return reference.As[Creator](v.Owner())
}
