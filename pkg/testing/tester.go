package testing

import (
	"errors"
	"slices"
	"testing"

	"github.com/go-drift/viewkit/pkg/core"
	"github.com/go-drift/viewkit/pkg/platform"
)

const (
	// DefaultTestWidth is the default logical width of the test window.
	DefaultTestWidth = 390
	// DefaultTestHeight is the default logical height of the test window.
	DefaultTestHeight = 844
	// DefaultSettleTurns bounds PumpAndSettle.
	DefaultSettleTurns = 100
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its turn budget.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: run loop did not settle")

// Tester mounts creators into a window backed by a private run loop and
// records every lifecycle event they emit.
type Tester struct {
	loop        *platform.Loop
	window      *platform.Window
	root        *core.Creator
	events      []core.Event
	restoreLoop func()
	prevTracer  func(core.Event)
}

// NewTester creates a tester with a window of the default size.
// Call Cleanup() when done, or use NewTesterWithT() instead.
func NewTester() *Tester {
	t := &Tester{
		loop:   platform.NewLoop(),
		window: platform.NewWindow(platform.RectOf(DefaultTestWidth, DefaultTestHeight)),
	}
	t.restoreLoop = t.loop.Install()
	t.prevTracer = core.SetTracer(t.record)
	return t
}

// NewTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewTesterWithT(t *testing.T) *Tester {
	tester := NewTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup unmounts the root and restores the global dispatcher and tracer.
func (t *Tester) Cleanup() {
	t.Unmount()
	core.SetTracer(t.prevTracer)
	t.restoreLoop()
}

func (t *Tester) record(e core.Event) {
	t.events = append(t.events, e)
	if t.prevTracer != nil {
		t.prevTracer(e)
	}
}

// Loop returns the tester's run loop.
func (t *Tester) Loop() *platform.Loop { return t.loop }

// Window returns the tester's window.
func (t *Tester) Window() *platform.Window { return t.window }

// Root returns the mounted creator, or nil.
func (t *Tester) Root() *core.Creator { return t.root }

// Mount releases c's view and makes it the window's root, replacing any
// previous root.
func (t *Tester) Mount(c *core.Creator) *platform.View {
	v := c.ReleaseUIView()
	t.root = c
	t.window.SetRoot(v)
	return v
}

// Unmount detaches the root view from the window.
func (t *Tester) Unmount() {
	if t.root == nil {
		return
	}
	if v := t.root.View(); v != nil {
		v.RemoveFromSuperview()
	}
	t.root = nil
}

// SetFrame sets the frame of c's view, delivering a layout pass.
func (t *Tester) SetFrame(c *core.Creator, frame platform.Rect) {
	if v := c.View(); v != nil {
		v.SetFrame(frame)
	}
}

// Pump runs a single run loop turn and returns how many tasks ran.
func (t *Tester) Pump() int {
	return t.loop.RunOnce()
}

// PumpAndSettle runs turns until the loop is idle. Returns ErrSettleTimeout
// if it is still busy after DefaultSettleTurns turns.
func (t *Tester) PumpAndSettle() error {
	if !t.loop.Drain(DefaultSettleTurns) {
		return ErrSettleTimeout
	}
	return nil
}

// Events returns the recorded lifecycle events.
func (t *Tester) Events() []core.Event {
	return slices.Clone(t.events)
}

// EventStrings returns the recorded events formatted with Event.String.
func (t *Tester) EventStrings() []string {
	out := make([]string, len(t.events))
	for i, e := range t.events {
		out[i] = e.String()
	}
	return out
}

// EventsOf returns the formatted events matching kinds, in order. With no
// kinds every event is returned.
func (t *Tester) EventsOf(kinds ...core.EventKind) []string {
	var out []string
	for _, e := range t.events {
		if len(kinds) == 0 || slices.Contains(kinds, e.Kind) {
			out = append(out, e.String())
		}
	}
	return out
}

// Saw reports whether an event with the given formatted form was recorded.
func (t *Tester) Saw(event string) bool {
	return slices.Contains(t.EventStrings(), event)
}

// ClearEvents forgets the recorded events.
func (t *Tester) ClearEvents() {
	t.events = nil
}
