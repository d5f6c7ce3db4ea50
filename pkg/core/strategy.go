package core

import (
	"fmt"
	"maps"

	"github.com/go-drift/viewkit/pkg/platform"
)

// StrategyKind tags how a creator builds its view.
type StrategyKind uint8

const (
	// StrategyRaw calls a closure that returns the view.
	StrategyRaw StrategyKind = iota
	// StrategyRepresentable asks a Representable to make and configure the view.
	StrategyRepresentable
	// StrategyController loads the view of a ViewController.
	StrategyController
	// StrategyRegistered creates the view through the platform view registry.
	StrategyRegistered
)

func (k StrategyKind) String() string {
	switch k {
	case StrategyRaw:
		return "raw"
	case StrategyRepresentable:
		return "representable"
	case StrategyController:
		return "controller"
	case StrategyRegistered:
		return "registered"
	default:
		return "unknown"
	}
}

// Representable wraps a native view that needs a configuration step after
// it is made.
type Representable interface {
	MakeView() *platform.View
	UpdateView(view *platform.View)
}

// ViewController owns a view it loads on demand.
type ViewController interface {
	LoadView() *platform.View
	ViewDidLoad()
}

// BuildStrategy is the deferred build of a creator. The variant is fixed at
// construction time.
type BuildStrategy struct {
	kind          StrategyKind
	raw           func() *platform.View
	representable Representable
	controller    func() ViewController
	viewType      string
	params        map[string]any
}

// Raw builds the view with fn.
func Raw(fn func() *platform.View) BuildStrategy {
	return BuildStrategy{kind: StrategyRaw, raw: fn}
}

// RepresentableOf builds the view through r.
func RepresentableOf(r Representable) BuildStrategy {
	return BuildStrategy{kind: StrategyRepresentable, representable: r}
}

// Controller builds the view by loading the controller returned by fn. The
// controller lives as long as the creator.
func Controller(fn func() ViewController) BuildStrategy {
	return BuildStrategy{kind: StrategyController, controller: fn}
}

// Registered builds the view with the factory registered for viewType.
func Registered(viewType string, params map[string]any) BuildStrategy {
	return BuildStrategy{kind: StrategyRegistered, viewType: viewType, params: maps.Clone(params)}
}

// Kind returns the strategy variant.
func (s BuildStrategy) Kind() StrategyKind { return s.kind }

func (s BuildStrategy) build(c *Creator) (*platform.View, error) {
	switch s.kind {
	case StrategyRaw:
		if s.raw == nil {
			return nil, fmt.Errorf("raw strategy has no build function")
		}
		return s.raw(), nil
	case StrategyRepresentable:
		if s.representable == nil {
			return nil, fmt.Errorf("representable strategy has no representable")
		}
		v := s.representable.MakeView()
		if v != nil {
			s.representable.UpdateView(v)
		}
		return v, nil
	case StrategyController:
		if s.controller == nil {
			return nil, fmt.Errorf("controller strategy has no controller")
		}
		ctrl := s.controller()
		if ctrl == nil {
			return nil, fmt.Errorf("controller factory returned nil")
		}
		c.controller = ctrl
		v := ctrl.LoadView()
		if v != nil {
			ctrl.ViewDidLoad()
		}
		return v, nil
	case StrategyRegistered:
		return platform.GetViewRegistry().Create(s.viewType, s.params)
	default:
		return nil, fmt.Errorf("unknown build strategy %d", s.kind)
	}
}
