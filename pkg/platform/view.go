package platform

import (
	"maps"
	"slices"
	"sync/atomic"

	"github.com/go-drift/viewkit/pkg/reference"
)

var nextViewID atomic.Int64

// LifecycleDelegate receives the container callbacks a View delivers while it
// moves through the hierarchy. Callbacks arrive synchronously on the UI
// goroutine in toolkit order: WillMoveToSuperview, DidMoveToSuperview, then
// DidMoveToWindow for the view and every subview whose window changed.
type LifecycleDelegate interface {
	WillMoveToSuperview(newSuperview *View)
	DidMoveToSuperview()
	DidMoveToWindow()
	LayoutSubviews()
	TraitDidChange()
	HiddenDidChange(hidden bool)
}

// View is the retained native widget every creator materializes into.
// Concrete widgets are Views with a type tag and a property bag; the
// per-widget setters out of this package's scope write into that bag.
//
// Views are not safe for concurrent use.
type View struct {
	viewID    int64
	viewType  string
	frame     Rect
	hidden    bool
	window    *Window
	superview *View
	subviews  []*View
	traits    Traits
	props     map[string]any
	owner     reference.Any
	delegate  LifecycleDelegate
}

// NewView returns a detached view of the given type with a zero frame.
func NewView(viewType string) *View {
	return &View{
		viewID:   nextViewID.Add(1),
		viewType: viewType,
		props:    make(map[string]any),
	}
}

// ViewID returns the unique identifier for this view.
func (v *View) ViewID() int64 { return v.viewID }

// ViewType returns the type identifier for this view (e.g., "label").
func (v *View) ViewType() string { return v.viewType }

// Frame returns the view's current frame.
func (v *View) Frame() Rect { return v.frame }

// IsHidden reports the hidden flag.
func (v *View) IsHidden() bool { return v.hidden }

// Window returns the window the view is attached to, or nil.
func (v *View) Window() *Window { return v.window }

// Superview returns the parent view, or nil.
func (v *View) Superview() *View { return v.superview }

// Subviews returns a copy of the ordered child list.
func (v *View) Subviews() []*View { return slices.Clone(v.subviews) }

// Traits returns the environment traits currently applied to the view.
func (v *View) Traits() Traits { return v.traits }

// Owner returns the view's back-reference slot.
func (v *View) Owner() reference.Any { return v.owner }

// SetOwner replaces the back-reference slot. The slot lives exactly as long
// as the view.
func (v *View) SetOwner(owner reference.Any) { v.owner = owner }

// Delegate returns the installed lifecycle delegate, or nil.
func (v *View) Delegate() LifecycleDelegate { return v.delegate }

// SetDelegate installs the lifecycle delegate.
func (v *View) SetDelegate(d LifecycleDelegate) { v.delegate = d }

// Set stores a widget property.
func (v *View) Set(key string, value any) { v.props[key] = value }

// Get returns a widget property.
func (v *View) Get(key string) (any, bool) {
	value, ok := v.props[key]
	return value, ok
}

// PropKeys returns the names of the view's properties in sorted order.
func (v *View) PropKeys() []string {
	return slices.Sorted(maps.Keys(v.props))
}

// SetFrame updates the frame. A changed frame triggers a layout pass.
func (v *View) SetFrame(frame Rect) {
	if v.frame == frame {
		return
	}
	v.frame = frame
	v.LayoutIfNeeded()
}

// LayoutIfNeeded runs a layout pass on the view.
func (v *View) LayoutIfNeeded() {
	if v.delegate != nil {
		v.delegate.LayoutSubviews()
	}
}

// SetHidden updates the hidden flag and notifies the delegate on change.
func (v *View) SetHidden(hidden bool) {
	if v.hidden == hidden {
		return
	}
	v.hidden = hidden
	if v.delegate != nil {
		v.delegate.HiddenDidChange(hidden)
	}
}

// SetTraits applies new environment traits to the view and its subtree.
func (v *View) SetTraits(traits Traits) {
	if v.traits == traits {
		return
	}
	v.traits = traits
	if v.delegate != nil {
		v.delegate.TraitDidChange()
	}
	for _, sub := range v.Subviews() {
		sub.SetTraits(traits)
	}
}

// AddSubview appends child, detaching it from its previous superview first.
func (v *View) AddSubview(child *View) {
	if child == nil || child == v {
		return
	}
	if child.superview == v {
		return
	}
	if child.superview != nil {
		child.RemoveFromSuperview()
	}
	if child.delegate != nil {
		child.delegate.WillMoveToSuperview(v)
	}
	child.superview = v
	v.subviews = append(v.subviews, child)
	child.traits = v.traits
	if child.delegate != nil {
		child.delegate.DidMoveToSuperview()
	}
	child.moveToWindow(v.window)
}

// RemoveFromSuperview detaches the view from its parent and window.
func (v *View) RemoveFromSuperview() {
	parent := v.superview
	if parent == nil {
		return
	}
	if v.delegate != nil {
		v.delegate.WillMoveToSuperview(nil)
	}
	if i := slices.Index(parent.subviews, v); i >= 0 {
		parent.subviews = slices.Delete(parent.subviews, i, i+1)
	}
	v.superview = nil
	if v.delegate != nil {
		v.delegate.DidMoveToSuperview()
	}
	v.moveToWindow(nil)
}

func (v *View) moveToWindow(w *Window) {
	if v.window == w {
		return
	}
	v.window = w
	if v.delegate != nil {
		v.delegate.DidMoveToWindow()
	}
	for _, sub := range v.Subviews() {
		sub.moveToWindow(w)
	}
}
