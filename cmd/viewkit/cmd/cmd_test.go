package cmd

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/viewkit/cmd/viewkit/internal/scenario"
	"github.com/go-drift/viewkit/cmd/viewkit/internal/style"
)

const demo = `
tree:
  name: x
  kind: label
events:
  - {op: attach, target: x}
  - {op: frame, target: x, width: 10, height: 10}
  - {op: pump}
`

func parse(t *testing.T, doc string) *scenario.Scenario {
	t.Helper()
	s, err := scenario.Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

// inOrder reports the first wanted line missing from lines, keeping order.
func inOrder(lines, want []string) (string, bool) {
	i := 0
	for _, line := range lines {
		if i < len(want) && line == want[i] {
			i++
		}
	}
	if i < len(want) {
		return want[i], false
	}
	return "", true
}

func TestReplay(t *testing.T) {
	var buf bytes.Buffer
	st := style.New(&buf, false)
	if err := replay(&buf, st, parse(t, demo), 10, false); err != nil {
		t.Fatalf("replay: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	want := []string{
		"replay x",
		"> attach x",
		"  x materialize",
		"  x release",
		"  x phase notRendered",
		"> frame x 10x10",
		"  x appear",
		"> pump",
		"> dispose",
		"  x dispose",
	}
	if missing, ok := inOrder(lines, want); !ok {
		t.Errorf("missing %q in output:\n%s", missing, buf.String())
	}
	for _, line := range lines {
		if strings.Contains(line, "advance") || strings.Contains(line, "layout") {
			t.Errorf("verbose-only event printed: %q", line)
		}
	}
}

func TestReplayVerbose(t *testing.T) {
	var buf bytes.Buffer
	if err := replay(&buf, style.New(&buf, false), parse(t, demo), 10, true); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"x advance inTheScene", "x layout"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("verbose output should include %q:\n%s", want, buf.String())
		}
	}
}

func TestScenarioArgs(t *testing.T) {
	path, verbose, err := scenarioArgs("replay", []string{"--verbose", "a.yaml"})
	if err != nil || path != "a.yaml" || !verbose {
		t.Errorf("got %q %t %v", path, verbose, err)
	}
	if _, _, err := scenarioArgs("replay", nil); err == nil {
		t.Error("missing path should fail")
	}
	if _, _, err := scenarioArgs("replay", []string{"a.yaml", "b.yaml"}); err == nil {
		t.Error("extra argument should fail")
	}
}

func TestStepModel(t *testing.T) {
	m := newStepModel(parse(t, demo), style.New(&bytes.Buffer{}, false), 10, false)
	defer m.close()

	press := func(key tea.KeyMsg) tea.Cmd {
		_, cmd := m.Update(key)
		return cmd
	}
	press(tea.KeyMsg{Type: tea.KeySpace})
	if m.player.Position() != 1 {
		t.Fatalf("Position() = %d, want 1", m.player.Position())
	}
	press(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	if !strings.Contains(strings.Join(m.lines, "\n"), "x appear") {
		t.Errorf("lines = %q", m.lines)
	}
	press(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("p")})
	if view := m.View(); !strings.Contains(view, "event 2/3") || !strings.Contains(view, "next: pump") {
		t.Errorf("unexpected view:\n%s", view)
	}
	if cmd := press(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}); cmd == nil {
		t.Error("q should quit")
	}
}
