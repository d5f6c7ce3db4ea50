package core

import (
	"io"
	"slices"
	"testing"

	"github.com/go-drift/viewkit/pkg/errors"
	"github.com/go-drift/viewkit/pkg/platform"
)

func installLoop(t *testing.T) *platform.Loop {
	t.Helper()
	l := platform.NewLoop()
	t.Cleanup(l.Install())
	return l
}

func quietErrors(t *testing.T) {
	t.Helper()
	errors.SetHandler(&errors.LogHandler{Out: io.Discard})
	t.Cleanup(func() { errors.SetHandler(nil) })
}

// expectFatal runs fn and returns the invariant it panicked with.
func expectFatal(t *testing.T, fn func()) (inv *errors.InvariantError) {
	t.Helper()
	quietErrors(t)
	defer func() {
		r := recover()
		var ok bool
		if inv, ok = r.(*errors.InvariantError); !ok {
			t.Fatalf("expected *errors.InvariantError panic, got %T (%v)", r, r)
		}
	}()
	fn()
	return nil
}

func TestRenderStateIsMonotonic(t *testing.T) {
	installLoop(t)
	r := NewRender("r", nil)
	steps := []Phase{PhaseRendered, PhaseNotRendered, PhaseInTheScene, PhaseRendered, PhaseUnset}
	prev := r.State()
	for _, p := range steps {
		r.Commit(p)
		if r.State() < prev {
			t.Fatalf("state regressed from %s to %s after Commit(%s)", prev, r.State(), p)
		}
		prev = r.State()
	}
	if r.State() != PhaseInTheScene {
		t.Errorf("State() = %s, want inTheScene", r.State())
	}
}

func TestPopWithoutPendingIsFatal(t *testing.T) {
	for _, p := range advancingPhases {
		t.Run(p.String(), func(t *testing.T) {
			r := NewRender("r", nil)
			inv := expectFatal(t, func() { r.Pop(p) })
			if inv.Op != "core.Render.Pop" {
				t.Errorf("Op = %q", inv.Op)
			}
		})
	}
}

func TestPopFiresLowerChainsCumulatively(t *testing.T) {
	installLoop(t)
	r := NewRender("r", nil)
	var fired []string
	r.OnNotRendered(func() { fired = append(fired, "notRendered") })
	r.OnRendered(func() { fired = append(fired, "rendered") })
	r.OnInTheScene(func() { fired = append(fired, "inTheScene") })

	r.Pop(PhaseRendered)

	if want := []string{"notRendered", "rendered"}; !slices.Equal(fired, want) {
		t.Errorf("fired = %v, want %v", fired, want)
	}
	if r.State() != PhaseRendered {
		t.Errorf("State() = %s, want rendered", r.State())
	}
	if r.Needs(PhaseNotRendered) || r.Needs(PhaseRendered) || !r.Needs(PhaseInTheScene) {
		t.Error("only inTheScene should still be pending")
	}

	r.Pop(PhaseInTheScene)
	if len(fired) != 3 {
		t.Errorf("fired = %v, want the inTheScene chain to fire once", fired)
	}
}

func TestHandlersRunInRegistrationOrder(t *testing.T) {
	installLoop(t)
	r := NewRender("r", nil)
	var fired []int
	for i := range 4 {
		r.OnRendered(func() { fired = append(fired, i) })
	}
	r.Commit(PhaseRendered)
	if !slices.Equal(fired, []int{0, 1, 2, 3}) {
		t.Errorf("fired = %v", fired)
	}
	if r.Count(PhaseRendered) != 4 {
		t.Errorf("Count = %d, want 4", r.Count(PhaseRendered))
	}
}

func TestPhaseDoesNotRefireWithoutNewRegistration(t *testing.T) {
	l := installLoop(t)
	r := NewRender("r", nil)
	calls := 0
	r.OnRendered(func() { calls++ })
	r.Commit(PhaseRendered)
	r.Commit(PhaseRendered)
	r.Commit(PhaseInTheScene)
	l.Drain(10)
	if calls != 1 {
		t.Errorf("handler ran %d times, want 1", calls)
	}
}

func TestCatchUpIsCoalesced(t *testing.T) {
	l := installLoop(t)
	r := NewRender("r", nil)
	r.Commit(PhaseRendered)

	var fired []string
	r.OnNotRendered(func() { fired = append(fired, "a") })
	r.OnNotRendered(func() { fired = append(fired, "b") })
	r.OnRendered(func() { fired = append(fired, "c") })

	if l.Pending() != 1 {
		t.Fatalf("Pending() = %d, want a single catch-up pass", l.Pending())
	}
	if len(fired) != 0 {
		t.Fatalf("catch-up must wait for the next turn, fired = %v", fired)
	}

	l.RunOnce()

	if want := []string{"a", "b", "c"}; !slices.Equal(fired, want) {
		t.Errorf("fired = %v, want %v", fired, want)
	}
	if l.Pending() != 0 {
		t.Errorf("no further pass should be queued, Pending() = %d", l.Pending())
	}
}

func TestCatchUpIgnoresPhasesAhead(t *testing.T) {
	l := installLoop(t)
	r := NewRender("r", nil)
	r.Commit(PhaseNotRendered)
	r.OnInTheScene(func() { t.Error("inTheScene must wait for its commit") })
	if l.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", l.Pending())
	}
}

func TestCatchUpAfterDisposeIsNoop(t *testing.T) {
	l := installLoop(t)
	r := NewRender("r", nil)
	r.Commit(PhaseInTheScene)
	r.OnRendered(func() { t.Error("disposed render must not fire") })
	r.dispose()
	l.RunOnce()
	if r.State() != PhaseInTheScene {
		t.Errorf("State() = %s", r.State())
	}
}

func TestRegistrationDuringFireDefersToNextTurn(t *testing.T) {
	l := installLoop(t)
	r := NewRender("r", nil)
	var fired []string
	r.OnRendered(func() {
		fired = append(fired, "outer")
		r.OnRendered(func() { fired = append(fired, "inner") })
	})

	r.Commit(PhaseRendered)
	if !slices.Equal(fired, []string{"outer"}) {
		t.Fatalf("fired = %v", fired)
	}
	if l.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1", l.Pending())
	}
	l.RunOnce()
	if !slices.Equal(fired, []string{"outer", "inner"}) {
		t.Errorf("fired = %v", fired)
	}
}

func TestCommitSettlesChildrenFirstInReverseOrder(t *testing.T) {
	installLoop(t)
	var fired []string
	a := NewRender("a", nil)
	b := NewRender("b", nil)
	parent := NewRender("parent", func() []*Render { return []*Render{a, b} })
	for _, r := range []*Render{parent, a, b} {
		r.OnRendered(func() { fired = append(fired, r.name) })
	}

	parent.Commit(PhaseRendered)

	if want := []string{"b", "a", "parent"}; !slices.Equal(fired, want) {
		t.Errorf("fired = %v, want %v", fired, want)
	}
}

func TestCommitWithoutPendingDoesNotRecurse(t *testing.T) {
	installLoop(t)
	childB := NewRender("childB", nil)
	childA := NewRender("childA", func() []*Render { return []*Render{childB} })
	root := NewRender("root", func() []*Render { return []*Render{childA} })

	root.Commit(PhaseNotRendered)

	if root.State() != PhaseNotRendered {
		t.Errorf("root State() = %s, want notRendered", root.State())
	}
	if childA.State() != PhaseUnset || childB.State() != PhaseUnset {
		t.Error("children should not be visited when the root has nothing pending")
	}
}

func TestCatchUpWithoutLoopReports(t *testing.T) {
	prev := platform.RegisterDispatch(nil)
	defer platform.RegisterDispatch(prev)

	var reported *errors.ViewKitError
	errors.SetHandler(&captureHandler{onError: func(e *errors.ViewKitError) { reported = e }})
	defer errors.SetHandler(nil)

	r := NewRender("r", nil)
	r.Commit(PhaseRendered)
	r.OnRendered(func() {})

	if reported == nil || reported.Kind != errors.KindLifecycle {
		t.Fatalf("expected a lifecycle error, got %v", reported)
	}
	if !r.Needs(PhaseRendered) {
		t.Error("the callback should stay pending")
	}
}

func TestParsePhase(t *testing.T) {
	for _, p := range []Phase{PhaseUnset, PhaseNotRendered, PhaseRendered, PhaseInTheScene} {
		got, ok := ParsePhase(p.String())
		if !ok || got != p {
			t.Errorf("ParsePhase(%q) = %s, %t", p.String(), got, ok)
		}
	}
	if _, ok := ParsePhase("bogus"); ok {
		t.Error("ParsePhase should reject unknown names")
	}
}

type captureHandler struct {
	errors.LogHandler
	onError func(*errors.ViewKitError)
	onBuild func(*errors.BuildError)
}

func (h *captureHandler) HandleError(err *errors.ViewKitError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *captureHandler) HandleBuildError(err *errors.BuildError) {
	if h.onBuild != nil {
		h.onBuild(err)
	}
}
