package testing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/viewkit/pkg/platform"
	"github.com/go-drift/viewkit/pkg/widgets"
)

type fakeT struct {
	name   string
	fatals []string
	errors []string
}

func (f *fakeT) Helper()      {}
func (f *fakeT) Name() string { return f.name }
func (f *fakeT) Fatalf(format string, args ...any) {
	f.fatals = append(f.fatals, format)
}
func (f *fakeT) Errorf(format string, args ...any) {
	f.errors = append(f.errors, format)
}

func mountSample(t *testing.T) *Tester {
	tester := NewTesterWithT(t)
	root := widgets.VStack(
		widgets.Label("Hello").Named("title").Lines(1).Creator,
		widgets.Button("Go").Named("go").OnTap(func() {}).Creator,
	).Named("root")
	tester.Mount(root.Creator)
	tester.SetFrame(root.Creator, platform.RectOf(100, 200))
	return tester
}

func TestCaptureSnapshot(t *testing.T) {
	snap := mountSample(t).CaptureSnapshot()
	root := snap.Root
	if root == nil || root.ID != "stack#0" || root.Creator != "root" || root.Phase != "inTheScene" {
		t.Fatalf("unexpected root: %+v", root)
	}
	if len(root.Children) != 2 {
		t.Fatalf("children = %d, want 2", len(root.Children))
	}
	title := root.Children[0]
	if title.Props[widgets.PropText] != "Hello" || title.Frame != [4]float64{0, 0, 100, 100} {
		t.Errorf("unexpected title node: %+v", title)
	}
	if _, ok := root.Children[1].Props[widgets.PropAction]; ok {
		t.Error("callbacks should not be serialized")
	}
}

func TestSnapshotEmptyWindow(t *testing.T) {
	if NewTesterWithT(t).CaptureSnapshot().Root != nil {
		t.Error("an empty window has no root node")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "golden", "sample.json")
	snap := mountSample(t).CaptureSnapshot()
	if err := snap.UpdateFile(path); err != nil {
		t.Fatal(err)
	}

	ft := &fakeT{name: "TestSnapshotRoundTrip"}
	snap.MatchesFile(ft, path)
	if len(ft.fatals)+len(ft.errors) != 0 {
		t.Errorf("golden should match: %v %v", ft.fatals, ft.errors)
	}

	snap.Root.Children[0].Hidden = true
	snap.MatchesFile(ft, path)
	if len(ft.errors) != 1 {
		t.Errorf("a changed snapshot should mismatch")
	}
	if diff := snap.Diff(mountSample(t).CaptureSnapshot()); !strings.Contains(diff, "hidden") {
		t.Errorf("diff should mention the hidden flag:\n%s", diff)
	}
}

func TestSnapshotMissingFile(t *testing.T) {
	ft := &fakeT{name: "TestSnapshotMissingFile"}
	(&Snapshot{}).MatchesFile(ft, filepath.Join(t.TempDir(), "nope.json"))
	if len(ft.fatals) != 1 || !strings.Contains(ft.fatals[0], "missing") {
		t.Errorf("fatals = %v", ft.fatals)
	}
}

func TestSnapshotUpdateEnv(t *testing.T) {
	t.Setenv(UpdateSnapshotsEnv, "1")
	path := filepath.Join(t.TempDir(), "new.json")
	ft := &fakeT{name: "TestSnapshotUpdateEnv"}
	mountSample(t).CaptureSnapshot().MatchesFile(ft, path)
	if _, err := os.Stat(path); err != nil {
		t.Errorf("snapshot should have been written: %v", err)
	}
}
