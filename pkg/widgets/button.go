package widgets

import (
	"github.com/go-drift/viewkit/pkg/core"
	"github.com/go-drift/viewkit/pkg/platform"
)

// ButtonCreator describes a tappable button.
type ButtonCreator struct {
	*core.Creator
}

// Button returns a creator for an enabled button titled title.
func Button(title string) ButtonCreator {
	b := ButtonCreator{core.New(ViewTypeButton, core.Registered(ViewTypeButton, nil))}
	return b.Title(title).Enabled(true)
}

// Title sets the button title.
func (b ButtonCreator) Title(title string) ButtonCreator {
	b.Modify(func(v *platform.View) { v.Set(PropTitle, title) })
	return b
}

// Enabled toggles whether taps are delivered.
func (b ButtonCreator) Enabled(enabled bool) ButtonCreator {
	b.Modify(func(v *platform.View) { v.Set(PropEnabled, enabled) })
	return b
}

// OnTap sets the tap action.
func (b ButtonCreator) OnTap(action func()) ButtonCreator {
	b.Modify(func(v *platform.View) { v.Set(PropAction, action) })
	return b
}

// Named renames the underlying creator.
func (b ButtonCreator) Named(name string) ButtonCreator {
	b.Creator.Named(name)
	return b
}

// Tap delivers a tap to a button view, as the native toolkit would. It
// reports whether an action ran.
func Tap(v *platform.View) bool {
	if v == nil || v.IsHidden() {
		return false
	}
	if enabled, _ := v.Get(PropEnabled); enabled != true {
		return false
	}
	action, _ := v.Get(PropAction)
	fn, ok := action.(func())
	if !ok || fn == nil {
		return false
	}
	fn()
	return true
}
