// Package scenario loads scripted view lifecycles for the viewkit CLI.
package scenario

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Node kinds.
const (
	KindStack  = "stack"
	KindLabel  = "label"
	KindButton = "button"
)

// Event operations.
const (
	OpRelease = "release"
	OpAttach  = "attach"
	OpDetach  = "detach"
	OpFrame   = "frame"
	OpHidden  = "hidden"
	OpTrait   = "trait"
	OpPump    = "pump"
)

// Scenario is a descriptor tree plus the native events replayed against it.
type Scenario struct {
	Tree   Node    `yaml:"tree"`
	Events []Event `yaml:"events"`
}

// Node describes one creator in the tree.
type Node struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
	// Text is the label text or button title. Defaults to Name.
	Text string `yaml:"text,omitempty"`
	// Axis is vertical (default) or horizontal. Stacks only.
	Axis     string  `yaml:"axis,omitempty"`
	Spacing  float64 `yaml:"spacing,omitempty"`
	Children []Node  `yaml:"children,omitempty"`
}

// Event is one scripted native event.
type Event struct {
	Op     string  `yaml:"op"`
	Target string  `yaml:"target,omitempty"`
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
	Value  bool    `yaml:"value,omitempty"`
	// Appearance is light or dark for trait events. Empty toggles.
	Appearance string `yaml:"appearance,omitempty"`
}

func (e Event) String() string {
	switch e.Op {
	case OpPump:
		return OpPump
	case OpFrame:
		return fmt.Sprintf("%s %s %gx%g", e.Op, e.Target, e.Width, e.Height)
	case OpHidden:
		return fmt.Sprintf("%s %s %t", e.Op, e.Target, e.Value)
	case OpTrait:
		if e.Appearance != "" {
			return fmt.Sprintf("%s %s %s", e.Op, e.Target, e.Appearance)
		}
		return fmt.Sprintf("%s %s", e.Op, e.Target)
	default:
		return fmt.Sprintf("%s %s", e.Op, e.Target)
	}
}

// Load reads and validates a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a scenario document.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks node kinds, name uniqueness and event targets.
func (s *Scenario) Validate() error {
	names := map[string]bool{}
	if err := validateNode(s.Tree, "tree", names); err != nil {
		return err
	}
	for i, e := range s.Events {
		where := fmt.Sprintf("events[%d]", i)
		switch e.Op {
		case OpPump:
			continue
		case OpRelease, OpAttach, OpDetach, OpHidden:
		case OpFrame:
			if e.Width < 0 || e.Height < 0 {
				return fmt.Errorf("%s: frame size must not be negative", where)
			}
		case OpTrait:
			switch strings.ToLower(e.Appearance) {
			case "", "light", "dark":
			default:
				return fmt.Errorf("%s: unknown appearance %q", where, e.Appearance)
			}
		case "":
			return fmt.Errorf("%s: op is required", where)
		default:
			return fmt.Errorf("%s: unknown op %q", where, e.Op)
		}
		if !names[e.Target] {
			return fmt.Errorf("%s: unknown target %q", where, e.Target)
		}
	}
	return nil
}

func validateNode(n Node, where string, names map[string]bool) error {
	if n.Name == "" {
		return fmt.Errorf("%s: name is required", where)
	}
	if names[n.Name] {
		return fmt.Errorf("%s: duplicate name %q", where, n.Name)
	}
	names[n.Name] = true

	switch n.Kind {
	case KindStack:
		switch n.Axis {
		case "", "vertical", "horizontal":
		default:
			return fmt.Errorf("%s: unknown axis %q", where, n.Axis)
		}
	case KindLabel, KindButton:
		if len(n.Children) > 0 {
			return fmt.Errorf("%s: %s %q cannot have children", where, n.Kind, n.Name)
		}
	default:
		return fmt.Errorf("%s: unknown kind %q", where, n.Kind)
	}

	for i, child := range n.Children {
		if err := validateNode(child, fmt.Sprintf("%s.children[%d]", where, i), names); err != nil {
			return err
		}
	}
	return nil
}
