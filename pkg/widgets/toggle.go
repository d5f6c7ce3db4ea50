package widgets

import (
	"weak"

	"github.com/go-drift/viewkit/pkg/core"
	"github.com/go-drift/viewkit/pkg/platform"
)

// ToggleCreator describes an on/off switch. The native view owns the
// current value; flips are mirrored back into Value.
type ToggleCreator struct {
	*core.Creator
	state *toggleState
}

type toggleState struct {
	value     *core.Managed[bool]
	onChanged []func(bool)
}

// Toggle returns a creator for an enabled switch starting at on.
func Toggle(on bool) ToggleCreator {
	c := core.New(ViewTypeToggle, core.Registered(ViewTypeToggle, nil))
	state := &toggleState{}
	state.value = core.NewManaged(c, on, func(v *platform.View, on bool) { v.Set(PropOn, on) })
	// The creator owns the state; the view only observes it.
	c.OnDispose(func() { state.onChanged = nil })
	ws := weak.Make(state)
	c.Modify(func(v *platform.View) {
		v.Set(PropChanged, func(on bool) {
			state := ws.Value()
			if state == nil {
				return
			}
			state.value.Set(on)
			for _, fn := range state.onChanged {
				fn(on)
			}
		})
	})
	return ToggleCreator{Creator: c, state: state}.Enabled(true)
}

// Value returns the switch's value. Setting it updates a rendered view
// without notifying OnChanged.
func (t ToggleCreator) Value() *core.Managed[bool] { return t.state.value }

// Enabled toggles whether flips are delivered.
func (t ToggleCreator) Enabled(enabled bool) ToggleCreator {
	t.Modify(func(v *platform.View) { v.Set(PropEnabled, enabled) })
	return t
}

// OnChanged adds fn to the handlers run after the user flips the switch.
func (t ToggleCreator) OnChanged(fn func(bool)) ToggleCreator {
	if fn != nil {
		t.state.onChanged = append(t.state.onChanged, fn)
	}
	return t
}

// Named renames the underlying creator.
func (t ToggleCreator) Named(name string) ToggleCreator {
	t.Creator.Named(name)
	return t
}

// Flip delivers a user flip to a toggle view, as the native toolkit would.
// It reports whether the value changed.
func Flip(v *platform.View) bool {
	if v == nil || v.IsHidden() {
		return false
	}
	if enabled, _ := v.Get(PropEnabled); enabled != true {
		return false
	}
	on, _ := v.Get(PropOn)
	next := on != true
	v.Set(PropOn, next)
	if changed, ok := v.Get(PropChanged); ok {
		if fn, ok := changed.(func(bool)); ok && fn != nil {
			fn(next)
		}
	}
	return true
}
