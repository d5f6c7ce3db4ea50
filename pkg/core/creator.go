package core

import (
	"fmt"
	"slices"
	"time"
	"weak"

	"github.com/go-drift/viewkit/pkg/errors"
	"github.com/go-drift/viewkit/pkg/platform"
	"github.com/go-drift/viewkit/pkg/reference"
)

// Creator describes how to build one native view and its children.
//
// Constructing a creator is cheap: no view exists until LoadView or
// ReleaseUIView is called, and the view is built at most once. Modifiers
// append to the creator's callback chains and return the creator so calls
// can be chained.
//
// Creators must only be used from the UI goroutine.
type Creator struct {
	name       string
	strategy   BuildStrategy
	view       reference.Reference[platform.View]
	loaded     bool
	released   bool
	building   bool
	render     *Render
	callbacks  viewCallbacks
	parent     weak.Pointer[Creator]
	children   []*Creator
	controller ViewController
	disposers  []func()
}

type viewCallbacks struct {
	layout    []func(*platform.View)
	trait     []func(platform.Traits)
	appear    []func()
	disappear []func()
}

// New returns a creator that builds its view with strategy and adopts
// children in order.
func New(name string, strategy BuildStrategy, children ...*Creator) *Creator {
	c := &Creator{name: name, strategy: strategy}
	c.render = NewRender(name, c.childRenders)
	c.Append(children...)
	return c
}

func (c *Creator) childRenders() []*Render {
	renders := make([]*Render, len(c.children))
	for i, child := range c.children {
		renders[i] = child.render
	}
	return renders
}

// Name returns the creator's debug name.
func (c *Creator) Name() string { return c.name }

// Named renames the creator. Names only appear in traces and errors.
func (c *Creator) Named(name string) *Creator {
	c.name = name
	c.render.name = name
	return c
}

// Strategy returns the build strategy.
func (c *Creator) Strategy() BuildStrategy { return c.strategy }

// Render returns the creator's phase state machine.
func (c *Creator) Render() *Render { return c.render }

// Reference returns the creator's side of the ownership cell.
func (c *Creator) Reference() reference.Reference[platform.View] { return c.view }

// Controller returns the controller loaded by a controller strategy, or nil.
func (c *Creator) Controller() ViewController { return c.controller }

// IsLoaded reports whether the view has been built.
func (c *Creator) IsLoaded() bool { return c.loaded }

// IsReleased reports whether ownership was handed to the view.
func (c *Creator) IsReleased() bool { return c.released }

// View returns the built view without building it. It returns nil before
// LoadView and after a weakly held view was collected.
func (c *Creator) View() *platform.View { return c.view.Value() }

// Parent returns the creator that adopted c, or nil.
func (c *Creator) Parent() *Creator { return c.parent.Value() }

// Children returns the adopted creators in registration order.
func (c *Creator) Children() []*Creator { return slices.Clone(c.children) }

// Append adopts children. If c's view is already loaded, their views are
// released and attached as subviews immediately.
func (c *Creator) Append(children ...*Creator) *Creator {
	for _, child := range children {
		if child == nil {
			continue
		}
		if child == c || child.Parent() != nil {
			errors.Fatal("core.Creator.Append", "%s: creator %s already has a parent", c.name, child.name)
		}
		child.parent = weak.Make(c)
		c.children = append(c.children, child)
		if c.loaded {
			if v := c.View(); v != nil {
				v.AddSubview(child.ReleaseUIView())
			}
		}
	}
	return c
}

// LoadView builds the view on first call and returns the cached view on
// every later call.
func (c *Creator) LoadView() *platform.View {
	if c.loaded {
		return c.View()
	}
	v := c.build()
	c.loaded = true
	v.SetDelegate(NewRenderManager(v))
	Switch(c, v)
	trace(c.name, EventMaterialize, c.render.state)
	for _, child := range c.children {
		v.AddSubview(child.ReleaseUIView())
	}
	return v
}

// ReleaseUIView builds the view if needed and hands ownership to it: from
// then on the view keeps the creator alive and the creator only observes the
// view. Calling it again returns the cached view.
func (c *Creator) ReleaseUIView() *platform.View {
	v := c.LoadView()
	if c.released {
		return v
	}
	c.released = true
	Switch(c, v)
	trace(c.name, EventRelease, c.render.state)
	return v
}

// Commit forces the creator's phase forward, for containers that attach
// children out of band.
func (c *Creator) Commit(phase Phase) { c.render.Commit(phase) }

// Dispose tears the creator and its children down. Pending callbacks are
// dropped and later lifecycle calls become no-ops.
func (c *Creator) Dispose() {
	if c.render.disposed {
		return
	}
	for _, child := range c.children {
		child.Dispose()
	}
	c.render.dispose()
	c.runDisposers()
	Switch(c, nil)
	trace(c.name, EventDispose, c.render.state)
}

func (c *Creator) build() *platform.View {
	if c.released {
		errors.Fatal("core.Creator.build", "%s: build invoked after release", c.name)
	}
	if c.building {
		errors.Fatal("core.Creator.build", "%s: build re-entered while building", c.name)
	}
	c.building = true
	defer func() { c.building = false }()
	return c.safeBuild()
}

// safeBuild runs the strategy with panic recovery. A failed build reports a
// BuildError and yields a placeholder view so the hierarchy stays intact.
func (c *Creator) safeBuild() (view *platform.View) {
	kind := c.strategy.Kind().String()
	defer func() {
		if r := recover(); r != nil {
			if inv, ok := r.(*errors.InvariantError); ok {
				panic(inv)
			}
			buildErr := &errors.BuildError{
				Creator:    c.name,
				Strategy:   kind,
				Recovered:  r,
				StackTrace: errors.CaptureStack(),
				Timestamp:  time.Now(),
			}
			errors.ReportBuildError(buildErr)
			view = placeholderView(buildErr)
		}
	}()

	v, err := c.strategy.build(c)
	if err == nil && v == nil {
		err = fmt.Errorf("build returned no view")
	}
	if err != nil {
		buildErr := &errors.BuildError{Creator: c.name, Strategy: kind, Err: err}
		errors.ReportBuildError(buildErr)
		return placeholderView(buildErr)
	}
	return v
}

func placeholderView(err *errors.BuildError) *platform.View {
	v := platform.NewView("placeholder")
	if DebugMode {
		v.Set("error", err.Error())
	}
	return v
}

// OnNotRendered runs h once the view is about to join a superview.
func (c *Creator) OnNotRendered(h func()) *Creator {
	c.render.OnNotRendered(h)
	return c
}

// OnRendered runs h once the view has a superview.
func (c *Creator) OnRendered(h func()) *Creator {
	c.render.OnRendered(h)
	return c
}

// OnInTheScene runs h once the view is attached to a window.
func (c *Creator) OnInTheScene(h func()) *Creator {
	c.render.OnInTheScene(h)
	return c
}

// OnLayout runs h after every layout pass.
func (c *Creator) OnLayout(h func(*platform.View)) *Creator {
	if h != nil {
		c.callbacks.layout = append(c.callbacks.layout, h)
	}
	return c
}

// OnTrait runs h whenever the view's environment traits change.
func (c *Creator) OnTrait(h func(platform.Traits)) *Creator {
	if h != nil {
		c.callbacks.trait = append(c.callbacks.trait, h)
	}
	return c
}

// OnAppear runs h whenever the view becomes visually present: attached to a
// window, not hidden and with a non-empty frame.
func (c *Creator) OnAppear(h func()) *Creator {
	if h != nil {
		c.callbacks.appear = append(c.callbacks.appear, h)
	}
	return c
}

// OnDisappear runs h whenever the view is hidden or leaves its window.
func (c *Creator) OnDisappear(h func()) *Creator {
	if h != nil {
		c.callbacks.disappear = append(c.callbacks.disappear, h)
	}
	return c
}

// Modify applies fn to the view when it is about to be rendered. Widget
// property setters are built on it.
func (c *Creator) Modify(fn func(*platform.View)) *Creator {
	if fn == nil {
		return c
	}
	return c.OnNotRendered(func() {
		if v := c.View(); v != nil {
			fn(v)
		}
	})
}

func (c *Creator) fireLayout(v *platform.View) {
	trace(c.name, EventLayout, c.render.state)
	for _, h := range c.callbacks.layout {
		h(v)
	}
}

func (c *Creator) fireTrait(t platform.Traits) {
	trace(c.name, EventTrait, c.render.state)
	for _, h := range c.callbacks.trait {
		h(t)
	}
}

func (c *Creator) fireAppear() {
	trace(c.name, EventAppear, c.render.state)
	for _, h := range c.callbacks.appear {
		h()
	}
}

func (c *Creator) fireDisappear() {
	trace(c.name, EventDisappear, c.render.state)
	for _, h := range c.callbacks.disappear {
		h()
	}
}
