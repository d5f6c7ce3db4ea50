package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/viewkit/pkg/core"
	"github.com/go-drift/viewkit/pkg/platform"
)

// UpdateSnapshotsEnv makes MatchesFile rewrite golden files instead of
// comparing against them when set to 1.
const UpdateSnapshotsEnv = "VIEWKIT_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures the window's view hierarchy and each view's lifecycle
// position.
type Snapshot struct {
	Root *ViewNode `json:"root,omitempty"`
}

// ViewNode represents a view in the serialized hierarchy.
type ViewNode struct {
	ID       string         `json:"id"`
	Type     string         `json:"type"`
	Creator  string         `json:"creator,omitempty"`
	Phase    string         `json:"phase,omitempty"`
	Frame    [4]float64     `json:"frame"`
	Hidden   bool           `json:"hidden,omitempty"`
	Props    map[string]any `json:"props,omitempty"`
	Children []*ViewNode    `json:"children,omitempty"`
}

// CaptureSnapshot captures the hierarchy under the window's root view.
func (t *Tester) CaptureSnapshot() *Snapshot {
	snap := &Snapshot{}
	if root := t.window.Root(); root != nil {
		snap.Root = captureView(root, &typeCounter{})
	}
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When VIEWKIT_UPDATE_SNAPSHOTS=1
// is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateSnapshotsEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateSnapshotsEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s (-want +got)\n%s\n\nTo update: %s=1 go test -run %s", path, diff, UpdateSnapshotsEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a line diff from other to s. Returns empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return cmp.Diff(strings.Split(string(b), "\n"), strings.Split(string(a), "\n"))
}

// typeCounter assigns stable IDs like "label#0", "label#1".
type typeCounter struct {
	counts map[string]int
}

func (c *typeCounter) next(typeName string) string {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	n := c.counts[typeName]
	c.counts[typeName] = n + 1
	return fmt.Sprintf("%s#%d", typeName, n)
}

func captureView(v *platform.View, counter *typeCounter) *ViewNode {
	f := v.Frame()
	node := &ViewNode{
		ID:     counter.next(v.ViewType()),
		Type:   v.ViewType(),
		Frame:  [4]float64{f.X, f.Y, f.Width, f.Height},
		Hidden: v.IsHidden(),
		Props:  captureProps(v),
	}
	if c := core.CreatorOf(v); c != nil {
		node.Creator = c.Name()
		node.Phase = c.Render().State().String()
	}
	for _, sub := range v.Subviews() {
		node.Children = append(node.Children, captureView(sub, counter))
	}
	return node
}

// captureProps keeps the scalar properties of v. Callbacks and other
// values with no stable serialized form are skipped.
func captureProps(v *platform.View) map[string]any {
	props := map[string]any{}
	for _, key := range v.PropKeys() {
		value, _ := v.Get(key)
		if s, ok := serializeProp(reflect.ValueOf(value)); ok {
			props[key] = s
		}
	}
	if len(props) == 0 {
		return nil
	}
	return props
}

func serializeProp(v reflect.Value) (any, bool) {
	switch v.Kind() {
	case reflect.String:
		return v.String(), true
	case reflect.Bool:
		return v.Bool(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint(), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	default:
		return nil, false
	}
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
