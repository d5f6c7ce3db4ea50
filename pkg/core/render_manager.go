package core

import "github.com/go-drift/viewkit/pkg/platform"

// RenderManager relays the container callbacks of one view into its
// creator's Render. It resolves the creator through the view's owner slot on
// every call, so once the creator is gone every callback is a no-op.
//
// Structural phases and visual presence are tracked separately: a view can be
// inTheScene and still invisible because it is hidden, has an empty frame or
// left its window. Appear and disappear follow visual presence only.
type RenderManager struct {
	view *platform.View
}

// NewRenderManager returns the lifecycle delegate for v.
func NewRenderManager(v *platform.View) *RenderManager {
	return &RenderManager{view: v}
}

func (m *RenderManager) creator() *Creator {
	c := CreatorOf(m.view)
	if c == nil || c.render.disposed {
		return nil
	}
	return c
}

// WillMoveToSuperview commits notRendered when the view gains a parent.
func (m *RenderManager) WillMoveToSuperview(newSuperview *platform.View) {
	if newSuperview == nil {
		return
	}
	if c := m.creator(); c != nil {
		c.render.Commit(PhaseNotRendered)
	}
}

// DidMoveToSuperview commits rendered when the view has a parent.
func (m *RenderManager) DidMoveToSuperview() {
	if m.view.Superview() == nil {
		return
	}
	if c := m.creator(); c != nil {
		c.render.Commit(PhaseRendered)
	}
}

// DidMoveToWindow signals disappear when the view left its window, and
// otherwise commits inTheScene and re-evaluates geometry.
func (m *RenderManager) DidMoveToWindow() {
	c := m.creator()
	if c == nil {
		return
	}
	if m.view.Window() == nil {
		c.fireDisappear()
		return
	}
	c.render.Commit(PhaseInTheScene)
	m.Frame(m.view.Frame())
}

// LayoutSubviews fires the layout chain and re-evaluates geometry.
func (m *RenderManager) LayoutSubviews() {
	c := m.creator()
	if c == nil {
		return
	}
	c.fireLayout(m.view)
	m.Frame(m.view.Frame())
}

// TraitDidChange fires the trait chain.
func (m *RenderManager) TraitDidChange() {
	if c := m.creator(); c != nil {
		c.fireTrait(m.view.Traits())
	}
}

// Frame signals appear if the view is in a window, not hidden and rect has
// a non-zero width and height.
func (m *RenderManager) Frame(rect platform.Rect) {
	if m.view.Window() == nil || m.view.IsHidden() {
		return
	}
	if !rect.HasArea() {
		return
	}
	if c := m.creator(); c != nil {
		c.fireAppear()
	}
}

// HiddenDidChange signals disappear when hidden, and otherwise re-evaluates
// geometry.
func (m *RenderManager) HiddenDidChange(hidden bool) {
	if hidden {
		if c := m.creator(); c != nil {
			c.fireDisappear()
		}
		return
	}
	m.Frame(m.view.Frame())
}

var _ platform.LifecycleDelegate = (*RenderManager)(nil)
