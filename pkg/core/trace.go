package core

import "fmt"

// EventKind identifies a lifecycle event reported to the tracer.
type EventKind uint8

const (
	// EventAdvance is reported when a creator's phase moves forward.
	EventAdvance EventKind = iota
	// EventPhase is reported when a phase's callback chain fires.
	EventPhase
	// EventCatchUp is reported when a deferred catch-up pass runs.
	EventCatchUp
	// EventMaterialize is reported when a creator builds its view.
	EventMaterialize
	// EventRelease is reported when ownership is handed to the view.
	EventRelease
	// EventLayout is reported after a layout pass.
	EventLayout
	// EventTrait is reported after a trait change.
	EventTrait
	// EventAppear is reported when the view becomes visible.
	EventAppear
	// EventDisappear is reported when the view stops being visible.
	EventDisappear
	// EventDispose is reported when a creator is torn down.
	EventDispose
)

func (k EventKind) String() string {
	switch k {
	case EventAdvance:
		return "advance"
	case EventPhase:
		return "phase"
	case EventCatchUp:
		return "catch-up"
	case EventMaterialize:
		return "materialize"
	case EventRelease:
		return "release"
	case EventLayout:
		return "layout"
	case EventTrait:
		return "trait"
	case EventAppear:
		return "appear"
	case EventDisappear:
		return "disappear"
	case EventDispose:
		return "dispose"
	default:
		return "unknown"
	}
}

// Event is one observed lifecycle transition.
type Event struct {
	Creator string
	Kind    EventKind
	// Phase is set for EventAdvance and EventPhase.
	Phase Phase
}

func (e Event) String() string {
	switch e.Kind {
	case EventAdvance, EventPhase:
		return fmt.Sprintf("%s %s %s", e.Creator, e.Kind, e.Phase)
	default:
		return fmt.Sprintf("%s %s", e.Creator, e.Kind)
	}
}

var tracer func(Event)

// SetTracer installs fn to observe every lifecycle event and returns the
// previous tracer. Like the rest of the package it must only be called from
// the UI goroutine.
func SetTracer(fn func(Event)) (prev func(Event)) {
	prev = tracer
	tracer = fn
	return prev
}

func trace(creator string, kind EventKind, phase Phase) {
	if tracer != nil {
		tracer(Event{Creator: creator, Kind: kind, Phase: phase})
	}
}
