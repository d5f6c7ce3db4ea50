// Package core binds creators to native views and drives their render
// lifecycle.
//
// A Creator is a cheap description of one native view: a BuildStrategy, a
// list of child creators and a set of lifecycle callbacks. Nothing native is
// built until the creator is loaded or released:
//
//	title := core.New("title", core.Raw(func() *platform.View {
//	    return platform.NewView("label")
//	})).Modify(func(v *platform.View) {
//	    v.Set("text", "Hello")
//	}).OnAppear(func() {
//	    log.Println("title visible")
//	})
//
//	window.SetRoot(title.ReleaseUIView())
//
// # Ownership
//
// Before release the creator owns its view and the view observes the creator
// weakly. ReleaseUIView flips the direction: the view, now held by the
// hierarchy, owns the creator and the creator observes the view. Switch
// applies the flip; exactly one side of a live pair is strong at any time.
//
// # Phases
//
// Every creator has a Render that moves through unset, notRendered, rendered
// and inTheScene as its view joins a superview and a window. RenderManager
// translates the view's container callbacks into Commit calls. Commit settles
// children first, most recently added child first, and then fires the
// creator's own chain for that phase. Callbacks registered after their phase
// was reached fire on the next run loop turn, coalesced into a single
// catch-up pass.
//
// Appear and disappear are tracked separately from phases: they follow visual
// presence (window, hidden flag, non-empty frame).
//
// # Threading
//
// Nothing in this package is safe for concurrent use. All calls must come
// from the UI goroutine, the same contract the native toolkit imposes.
package core
