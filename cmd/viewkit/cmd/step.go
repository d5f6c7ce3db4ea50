package cmd

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/viewkit/cmd/viewkit/internal/scenario"
	"github.com/go-drift/viewkit/cmd/viewkit/internal/style"
	"github.com/go-drift/viewkit/pkg/core"
)

func init() {
	RegisterCommand(&Command{
		Name:  "step",
		Short: "Step through a scenario interactively",
		Long: `Replay a scenario one native event per key press.

Keys:
  space, n, enter   apply the next event
  p                 run the loop until it settles
  q, ctrl+c         quit

Posted work (catch-up passes) stays queued until you pump, so deferred
callbacks can be observed separately from the event that caused them.`,
		Usage: "viewkit step <scenario.yaml> [--verbose]",
		Run:   runStep,
	})
}

func runStep(args []string) error {
	path, verbose, err := scenarioArgs("step", args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, err := scenario.Load(path)
	if err != nil {
		return err
	}

	st := style.New(os.Stdout, style.ColorEnabled(cfg.Color, os.Stdout))
	m := newStepModel(s, st, cfg.MaxTurns, verbose || cfg.Verbose)
	defer m.close()

	_, err = tea.NewProgram(m).Run()
	return err
}

// stepVisibleLines bounds the scrollback shown by the step view.
const stepVisibleLines = 20

type stepModel struct {
	player  *scenario.Player
	styles  *style.Styles
	verbose bool
	name    string
	lines   []string
	err     error
	prev    func(core.Event)
}

func newStepModel(s *scenario.Scenario, st *style.Styles, maxTurns int, verbose bool) *stepModel {
	m := &stepModel{styles: st, verbose: verbose, name: s.Tree.Name}
	m.prev = core.SetTracer(m.record)
	m.player = scenario.NewPlayer(s, maxTurns)
	return m
}

func (m *stepModel) record(e core.Event) {
	if m.verbose || !style.Verbose(e.Kind) {
		m.lines = append(m.lines, "  "+m.styles.Event(e))
	}
}

func (m *stepModel) close() {
	m.player.Close()
	core.SetTracer(m.prev)
}

func (m *stepModel) Init() tea.Cmd { return nil }

func (m *stepModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case " ", "n", "enter":
		m.advance()
	case "p":
		m.pump()
	}
	return m, nil
}

func (m *stepModel) advance() {
	e, ok := m.player.Peek()
	if !ok {
		return
	}
	m.lines = append(m.lines, m.styles.Step(e.String()))
	if _, err := m.player.Step(); err != nil {
		m.fail(err)
	}
}

func (m *stepModel) pump() {
	pending := m.player.Loop().Pending()
	m.lines = append(m.lines, m.styles.Step(fmt.Sprintf("pump (%d queued)", pending)))
	if err := m.player.Pump(); err != nil {
		m.fail(err)
	}
}

func (m *stepModel) fail(err error) {
	m.err = err
	m.lines = append(m.lines, m.styles.Error(err.Error()))
}

func (m *stepModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Header("step "+m.name) + "\n\n")

	lines := m.lines
	if len(lines) > stepVisibleLines {
		lines = lines[len(lines)-stepVisibleLines:]
	}
	for _, line := range lines {
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")

	status := fmt.Sprintf("event %d/%d", m.player.Position(), m.player.Len())
	if e, ok := m.player.Peek(); ok {
		status += "  next: " + e.String()
	} else {
		status += "  done"
	}
	if n := m.player.Loop().Pending(); n > 0 {
		status += fmt.Sprintf("  queued: %d", n)
	}
	b.WriteString(m.styles.Dim(status+"  [space] step  [p] pump  [q] quit") + "\n")
	return b.String()
}
