package testing

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/viewkit/pkg/core"
	"github.com/go-drift/viewkit/pkg/platform"
	"github.com/go-drift/viewkit/pkg/widgets"
)

func TestNewTester_Defaults(t *testing.T) {
	tester := NewTesterWithT(t)
	want := platform.RectOf(DefaultTestWidth, DefaultTestHeight)
	if got := tester.Window().Bounds(); got != want {
		t.Errorf("window bounds = %v, want %v", got, want)
	}
	if !platform.Dispatch(func() {}) || tester.Loop().Pending() != 1 {
		t.Error("the tester's loop should be the active dispatcher")
	}
}

func TestMountTrace(t *testing.T) {
	tester := NewTesterWithT(t)
	root := widgets.VStack(
		widgets.Label("a").Named("a").Creator,
		widgets.Label("b").Named("b").Creator,
	).Named("root")

	tester.Mount(root.Creator)

	got := tester.EventsOf(core.EventPhase)
	// Children join the stack view while it loads. The stack itself has no
	// setters, so nothing is pending on it.
	want := []string{
		"a phase notRendered",
		"b phase notRendered",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("phase events mismatch (-want +got):\n%s", diff)
	}
	for _, name := range []string{"root", "a", "b"} {
		if c := findCreator(tester, name); c == nil || c.Render().State() != core.PhaseInTheScene {
			t.Errorf("%s should be inTheScene", name)
		}
	}
}

func TestLayoutMakesChildrenAppear(t *testing.T) {
	tester := NewTesterWithT(t)
	a := widgets.Label("a").Named("a")
	b := widgets.Label("b").Named("b")
	root := widgets.VStack(a.Creator, b.Creator).Spacing(10).Named("root")
	tester.Mount(root.Creator)

	if got := tester.EventsOf(core.EventAppear); len(got) != 0 {
		t.Fatalf("nothing has a frame yet, got %v", got)
	}

	tester.SetFrame(root.Creator, platform.RectOf(100, 210))

	want := []string{"a appear", "b appear", "root appear"}
	if diff := cmp.Diff(want, tester.EventsOf(core.EventAppear)); diff != "" {
		t.Errorf("appear events mismatch (-want +got):\n%s", diff)
	}
	if got, want := b.View().Frame(), (platform.Rect{Y: 110, Width: 100, Height: 100}); got != want {
		t.Errorf("b frame = %v, want %v", got, want)
	}
}

func TestLateRegistrationSingleCatchUp(t *testing.T) {
	tester := NewTesterWithT(t)
	label := widgets.Label("x").Named("x")
	tester.Mount(label.Creator)
	tester.ClearEvents()

	calls := 0
	for range 3 {
		label.OnInTheScene(func() { calls++ })
	}
	if tester.Loop().Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1", tester.Loop().Pending())
	}
	if err := tester.PumpAndSettle(); err != nil {
		t.Fatal(err)
	}
	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
	want := []string{"x catch-up", "x phase inTheScene"}
	if diff := cmp.Diff(want, tester.EventStrings()); diff != "" {
		t.Errorf("events mismatch (-want +got):\n%s", diff)
	}
}

func TestUnmountSignalsDisappear(t *testing.T) {
	tester := NewTesterWithT(t)
	label := widgets.Label("x").Named("x")
	tester.Mount(label.Creator)
	tester.Unmount()
	if !tester.Saw("x disappear") {
		t.Errorf("events = %v", tester.EventStrings())
	}
	if tester.Root() != nil || tester.Window().Root() != nil {
		t.Error("root should be detached")
	}
}

func TestCaptureFatal(t *testing.T) {
	r := core.NewRender("r", nil)
	inv := CaptureFatal(func() { r.Pop(core.PhaseRendered) })
	if inv == nil {
		t.Fatal("expected an invariant violation")
	}
	if CaptureFatal(func() {}) != nil {
		t.Error("a normal return should capture nothing")
	}
}

func TestPumpAndSettleTimeout(t *testing.T) {
	tester := NewTesterWithT(t)
	var spin func()
	spin = func() { platform.Dispatch(spin) }
	platform.Dispatch(spin)
	if err := tester.PumpAndSettle(); err != ErrSettleTimeout {
		t.Errorf("err = %v, want ErrSettleTimeout", err)
	}
}

func findCreator(tester *Tester, name string) *core.Creator {
	return core.CreatorOf(tester.Find(ByName(name)).First())
}
