package scenario

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-drift/viewkit/pkg/core"
	"github.com/go-drift/viewkit/pkg/platform"
	"github.com/go-drift/viewkit/pkg/widgets"
)

// DefaultWindowSize is the window the player attaches roots to.
var DefaultWindowSize = platform.RectOf(390, 844)

// ErrDone is returned by Step once every event has been applied.
var ErrDone = errors.New("scenario finished")

// ErrUnsettled is returned when a pump exceeds its turn budget.
var ErrUnsettled = errors.New("run loop did not settle")

// Player replays a scenario against a window on its own run loop. The loop
// is installed as the global dispatcher until Close.
type Player struct {
	scenario *Scenario
	loop     *platform.Loop
	window   *platform.Window
	root     *core.Creator
	creators map[string]*core.Creator
	// views retains what release and detach handed back, as an embedder
	// holding the result of ReleaseUIView would.
	views    map[string]*platform.View
	next     int
	maxTurns int
	restore  func()
}

// NewPlayer builds the scenario's tree. maxTurns bounds each pump.
func NewPlayer(s *Scenario, maxTurns int) *Player {
	p := &Player{
		scenario: s,
		loop:     platform.NewLoop(),
		window:   platform.NewWindow(DefaultWindowSize),
		creators: map[string]*core.Creator{},
		views:    map[string]*platform.View{},
		maxTurns: maxTurns,
	}
	p.restore = p.loop.Install()
	p.root = p.build(s.Tree)
	return p
}

func (p *Player) build(n Node) *core.Creator {
	text := n.Text
	if text == "" {
		text = n.Name
	}

	var c *core.Creator
	switch n.Kind {
	case KindLabel:
		c = widgets.Label(text).Named(n.Name).Creator
	case KindButton:
		c = widgets.Button(text).Named(n.Name).Creator
	default:
		children := make([]*core.Creator, len(n.Children))
		for i, child := range n.Children {
			children[i] = p.build(child)
		}
		axis := widgets.AxisVertical
		if n.Axis == "horizontal" {
			axis = widgets.AxisHorizontal
		}
		c = widgets.Stack(axis, children...).Spacing(n.Spacing).Named(n.Name).Creator
	}
	p.creators[n.Name] = c
	return c
}

// Root returns the creator built for the tree's root node.
func (p *Player) Root() *core.Creator { return p.root }

// Creator returns the creator built for the named node.
func (p *Player) Creator(name string) *core.Creator { return p.creators[name] }

// Window returns the player's window.
func (p *Player) Window() *platform.Window { return p.window }

// Loop returns the player's run loop.
func (p *Player) Loop() *platform.Loop { return p.loop }

// Done reports whether every event has been applied.
func (p *Player) Done() bool { return p.next >= len(p.scenario.Events) }

// Position returns the index of the next event.
func (p *Player) Position() int { return p.next }

// Len returns the number of events in the scenario.
func (p *Player) Len() int { return len(p.scenario.Events) }

// Peek returns the next event without applying it.
func (p *Player) Peek() (Event, bool) {
	if p.Done() {
		return Event{}, false
	}
	return p.scenario.Events[p.next], true
}

// Step applies the next event. Posted work is left on the loop until a pump.
func (p *Player) Step() (Event, error) {
	e, ok := p.Peek()
	if !ok {
		return Event{}, ErrDone
	}
	p.next++
	return e, p.apply(e)
}

// Run applies the remaining events and drains the loop.
func (p *Player) Run() error {
	for !p.Done() {
		if _, err := p.Step(); err != nil {
			return err
		}
	}
	return p.Pump()
}

// Close disposes the tree and restores the previous dispatcher.
func (p *Player) Close() {
	if p.restore == nil {
		return
	}
	p.root.Dispose()
	p.restore()
	p.restore = nil
}

func (p *Player) apply(e Event) error {
	if e.Op == OpPump {
		return p.Pump()
	}

	c := p.creators[e.Target]
	if c == nil {
		return fmt.Errorf("%s: unknown target %q", e.Op, e.Target)
	}

	switch e.Op {
	case OpRelease:
		p.views[e.Target] = c.ReleaseUIView()
	case OpAttach:
		v := c.ReleaseUIView()
		p.views[e.Target] = v
		p.window.SetRoot(v)
	case OpDetach:
		v := p.views[e.Target]
		if v == nil {
			v = c.View()
		}
		if v != nil {
			p.views[e.Target] = v
			v.RemoveFromSuperview()
		}
	case OpFrame, OpHidden, OpTrait:
		v := p.loaded(c)
		if v == nil {
			return fmt.Errorf("%s: view of %q is gone", e.Op, e.Target)
		}
		p.mutate(v, e)
	default:
		return fmt.Errorf("unknown op %q", e.Op)
	}
	return nil
}

func (p *Player) mutate(v *platform.View, e Event) {
	switch e.Op {
	case OpFrame:
		v.SetFrame(platform.RectOf(e.Width, e.Height))
	case OpHidden:
		v.SetHidden(e.Value)
	case OpTrait:
		traits := v.Traits()
		switch strings.ToLower(e.Appearance) {
		case "light":
			traits.Appearance = platform.AppearanceLight
		case "dark":
			traits.Appearance = platform.AppearanceDark
		default:
			if traits.Appearance == platform.AppearanceDark {
				traits.Appearance = platform.AppearanceLight
			} else {
				traits.Appearance = platform.AppearanceDark
			}
		}
		v.SetTraits(traits)
	}
}

// loaded returns c's view, materializing it on first use. A released view
// that neither the player nor the hierarchy retains yields nil.
func (p *Player) loaded(c *core.Creator) *platform.View {
	if v := p.views[c.Name()]; v != nil {
		return v
	}
	if v := c.View(); v != nil {
		return v
	}
	return c.LoadView()
}

// Pump drains the run loop without applying events.
func (p *Player) Pump() error {
	if !p.loop.Drain(p.maxTurns) {
		return fmt.Errorf("%w after %d turns", ErrUnsettled, p.maxTurns)
	}
	return nil
}
