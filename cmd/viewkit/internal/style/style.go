// Package style formats lifecycle traces for the terminal.
package style

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/go-drift/viewkit/pkg/core"
)

// ColorEnabled resolves a trace.color setting for w. In auto mode color is
// used only when w is a terminal and NO_COLOR is unset.
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Styles renders trace lines. The zero value is not usable; call New.
type Styles struct {
	renderer  *lipgloss.Renderer
	name      lipgloss.Style
	phase     lipgloss.Style
	structure lipgloss.Style
	visible   lipgloss.Style
	hidden    lipgloss.Style
	dim       lipgloss.Style
	header    lipgloss.Style
	step      lipgloss.Style
	err       lipgloss.Style
}

// New returns styles writing to w, with ANSI colors only if color is set.
func New(w io.Writer, color bool) *Styles {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Styles{
		renderer:  r,
		name:      r.NewStyle().Bold(true),
		phase:     r.NewStyle().Foreground(lipgloss.Color("81")),
		structure: r.NewStyle().Foreground(lipgloss.Color("141")),
		visible:   r.NewStyle().Foreground(lipgloss.Color("78")),
		hidden:    r.NewStyle().Foreground(lipgloss.Color("209")),
		dim:       r.NewStyle().Foreground(lipgloss.Color("243")),
		header:    r.NewStyle().Bold(true).Underline(true),
		step:      r.NewStyle().Foreground(lipgloss.Color("220")),
		err:       r.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	}
}

// Verbose reports whether kind is only printed in verbose mode.
func Verbose(kind core.EventKind) bool {
	switch kind {
	case core.EventAdvance, core.EventCatchUp, core.EventLayout:
		return true
	default:
		return false
	}
}

// Event renders one lifecycle event. Uncolored output matches Event.String.
func (s *Styles) Event(e core.Event) string {
	var kind lipgloss.Style
	switch e.Kind {
	case core.EventPhase:
		kind = s.phase
	case core.EventMaterialize, core.EventRelease, core.EventDispose:
		kind = s.structure
	case core.EventAppear:
		kind = s.visible
	case core.EventDisappear:
		kind = s.hidden
	default:
		kind = s.dim
	}

	out := s.name.Render(e.Creator) + " " + kind.Render(e.Kind.String())
	if e.Kind == core.EventAdvance || e.Kind == core.EventPhase {
		out += " " + kind.Render(e.Phase.String())
	}
	return out
}

// Header renders a section title.
func (s *Styles) Header(text string) string { return s.header.Render(text) }

// Step renders a replayed event marker.
func (s *Styles) Step(text string) string { return s.step.Render("> " + text) }

// Dim renders secondary text.
func (s *Styles) Dim(text string) string { return s.dim.Render(text) }

// Error renders an error message.
func (s *Styles) Error(text string) string { return s.err.Render(text) }
