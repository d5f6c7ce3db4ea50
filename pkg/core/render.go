package core

import (
	"weak"

	"github.com/go-drift/viewkit/pkg/errors"
	"github.com/go-drift/viewkit/pkg/platform"
)

// Render is the phase state machine owned by a single creator.
//
// Each advancing phase has its own callback chain, pending flag and
// registration counter. Registering a callback marks the phase pending;
// popping the phase fires the chain once and clears it. Phases are cumulative
// checkpoints: popping inTheScene also fires any pending notRendered and
// rendered chains, in that order.
//
// Render must only be used from the UI goroutine.
type Render struct {
	name     string
	state    Phase
	pending  [len(advancingPhases)]bool
	chains   [len(advancingPhases)][]func()
	counts   [len(advancingPhases)]int
	depth    int
	catchUp  bool
	disposed bool
	children func() []*Render
}

// NewRender returns a render in PhaseUnset. children, if non-nil, reports the
// child renders in registration order.
func NewRender(name string, children func() []*Render) *Render {
	return &Render{name: name, children: children}
}

// State returns the current phase.
func (r *Render) State() Phase { return r.state }

// Needs reports whether phase has callbacks waiting to fire.
func (r *Render) Needs(phase Phase) bool {
	i := phase.slot()
	return i >= 0 && r.pending[i]
}

// Count returns how many callbacks were ever registered for phase.
func (r *Render) Count(phase Phase) int {
	i := phase.slot()
	if i < 0 {
		return 0
	}
	return r.counts[i]
}

// Disposed reports whether the owning creator was torn down.
func (r *Render) Disposed() bool { return r.disposed }

// OnNotRendered appends h to the notRendered chain.
func (r *Render) OnNotRendered(h func()) *Render { return r.on(PhaseNotRendered, h) }

// OnRendered appends h to the rendered chain.
func (r *Render) OnRendered(h func()) *Render { return r.on(PhaseRendered, h) }

// OnInTheScene appends h to the inTheScene chain.
func (r *Render) OnInTheScene(h func()) *Render { return r.on(PhaseInTheScene, h) }

func (r *Render) on(phase Phase, h func()) *Render {
	if h == nil || r.disposed {
		return r
	}
	i := phase.slot()
	r.chains[i] = append(r.chains[i], h)
	r.counts[i]++
	r.pending[i] = true
	if r.state >= phase && r.depth == 0 {
		r.scheduleCatchUp()
	}
	return r
}

// Pop fires every pending chain up to and including phase and advances the
// state to at least phase. Popping a phase that is not pending means the
// lifecycle adapter and the state machine disagree; Pop treats that as fatal.
func (r *Render) Pop(phase Phase) {
	if r.disposed {
		return
	}
	if !r.Needs(phase) {
		errors.Fatal("core.Render.Pop", "%s: phase %s popped but not pending (state %s)", r.name, phase, r.state)
	}
	r.enter()
	defer r.leave()

	r.advance(phase)
	for _, p := range advancingPhases {
		if p > phase {
			break
		}
		if r.Needs(p) {
			r.fire(p)
		}
	}
}

// Commit advances the state to at least phase. If phase is pending, every
// child commits the same phase first, most recently added child first, and
// then the phase pops on r. Lower phases left pending behind the new state
// fire on the next catch-up pass.
func (r *Render) Commit(phase Phase) {
	if r.disposed || phase.slot() < 0 {
		return
	}
	r.advance(phase)
	if !r.Needs(phase) {
		if r.depth == 0 && r.overdue() {
			r.scheduleCatchUp()
		}
		return
	}
	r.enter()
	defer r.leave()

	if r.children != nil {
		children := r.children()
		for i := len(children) - 1; i >= 0; i-- {
			children[i].Commit(phase)
		}
	}
	// A child's callback may have committed r already.
	if r.Needs(phase) {
		r.Pop(phase)
	}
}

func (r *Render) advance(phase Phase) {
	if phase <= r.state {
		return
	}
	r.state = phase
	trace(r.name, EventAdvance, phase)
}

func (r *Render) fire(phase Phase) {
	i := phase.slot()
	chain := r.chains[i]
	r.chains[i] = nil
	r.pending[i] = false
	trace(r.name, EventPhase, phase)
	for _, h := range chain {
		h()
	}
}

func (r *Render) enter() { r.depth++ }

func (r *Render) leave() {
	r.depth--
	if r.depth == 0 && r.overdue() {
		r.scheduleCatchUp()
	}
}

// overdue reports whether a pending phase is already behind the state.
func (r *Render) overdue() bool {
	for _, p := range advancingPhases {
		if p <= r.state && r.Needs(p) {
			return true
		}
	}
	return false
}

// scheduleCatchUp queues a single catch-up pass on the next run loop turn.
// Further registrations before that turn share the same pass.
func (r *Render) scheduleCatchUp() {
	if r.catchUp || r.disposed {
		return
	}
	r.catchUp = true
	wr := weak.Make(r)
	ok := platform.Dispatch(func() {
		if target := wr.Value(); target != nil {
			target.runCatchUp()
		}
	})
	if !ok {
		r.catchUp = false
		errors.Report(&errors.ViewKitError{
			Op:   "core.Render.scheduleCatchUp",
			Kind: errors.KindLifecycle,
			Err:  errNoDispatch,
		})
	}
}

func (r *Render) runCatchUp() {
	r.catchUp = false
	if r.disposed {
		return
	}
	trace(r.name, EventCatchUp, r.state)
	r.enter()
	defer r.leave()
	for _, p := range advancingPhases {
		if p <= r.state && r.Needs(p) {
			r.Pop(p)
		}
	}
}

func (r *Render) dispose() {
	r.disposed = true
	r.chains = [len(advancingPhases)][]func(){}
	r.pending = [len(advancingPhases)]bool{}
}
