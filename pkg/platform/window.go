package platform

// Window is the top of a view hierarchy. Views reachable from its content
// view report it from Window().
type Window struct {
	content *View
}

// NewWindow returns a window whose content view fills bounds.
func NewWindow(bounds Rect) *Window {
	w := &Window{content: NewView("window")}
	w.content.window = w
	w.content.frame = bounds
	w.content.traits = DefaultTraits()
	return w
}

// Content returns the window's content view.
func (w *Window) Content() *View { return w.content }

// Bounds returns the content view frame.
func (w *Window) Bounds() Rect { return w.content.frame }

// SetRoot replaces every subview of the content view with root.
func (w *Window) SetRoot(root *View) {
	for _, sub := range w.content.Subviews() {
		if sub != root {
			sub.RemoveFromSuperview()
		}
	}
	if root != nil {
		w.content.AddSubview(root)
	}
}

// Root returns the first subview of the content view, or nil.
func (w *Window) Root() *View {
	if len(w.content.subviews) == 0 {
		return nil
	}
	return w.content.subviews[0]
}

// SetTraits changes the environment for the whole window.
func (w *Window) SetTraits(traits Traits) {
	w.content.SetTraits(traits)
}
