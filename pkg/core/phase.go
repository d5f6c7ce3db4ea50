package core

// Phase is a structural lifecycle checkpoint. Phases are ordered and compared
// numerically; a creator's phase never moves backwards.
type Phase uint8

const (
	// PhaseUnset is the state of a creator whose view was never attached.
	PhaseUnset Phase = iota
	// PhaseNotRendered is entered when the view is about to join a superview.
	PhaseNotRendered
	// PhaseRendered is entered once the view has a superview.
	PhaseRendered
	// PhaseInTheScene is entered once the view is attached to a window.
	PhaseInTheScene
)

// advancingPhases lists the phases that carry callback chains, in order.
var advancingPhases = [...]Phase{PhaseNotRendered, PhaseRendered, PhaseInTheScene}

func (p Phase) String() string {
	switch p {
	case PhaseUnset:
		return "unset"
	case PhaseNotRendered:
		return "notRendered"
	case PhaseRendered:
		return "rendered"
	case PhaseInTheScene:
		return "inTheScene"
	default:
		return "invalid"
	}
}

// ParsePhase converts a phase name back into a Phase.
func ParsePhase(name string) (Phase, bool) {
	for _, p := range [...]Phase{PhaseUnset, PhaseNotRendered, PhaseRendered, PhaseInTheScene} {
		if p.String() == name {
			return p, true
		}
	}
	return PhaseUnset, false
}

// slot returns the index of p's chain, or -1 for PhaseUnset and invalid values.
func (p Phase) slot() int {
	if p < PhaseNotRendered || p > PhaseInTheScene {
		return -1
	}
	return int(p) - 1
}
