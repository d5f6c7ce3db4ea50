package widgets

import (
	"github.com/go-drift/viewkit/pkg/core"
	"github.com/go-drift/viewkit/pkg/platform"
)

// Axis is the direction a Stack arranges its children in.
type Axis string

const (
	AxisVertical   Axis = "vertical"
	AxisHorizontal Axis = "horizontal"
)

// StackCreator describes a container laying out its children along an axis.
type StackCreator struct {
	*core.Creator
}

// Stack returns a creator for a stack of children along axis.
func Stack(axis Axis, children ...*core.Creator) StackCreator {
	s := StackCreator{core.New(ViewTypeStack, core.Registered(ViewTypeStack, map[string]any{PropAxis: axis}), children...)}
	s.OnLayout(arrange)
	return s
}

// VStack is Stack(AxisVertical, children...).
func VStack(children ...*core.Creator) StackCreator { return Stack(AxisVertical, children...) }

// HStack is Stack(AxisHorizontal, children...).
func HStack(children ...*core.Creator) StackCreator { return Stack(AxisHorizontal, children...) }

// Spacing sets the gap between children.
func (s StackCreator) Spacing(spacing float64) StackCreator {
	s.Modify(func(v *platform.View) { v.Set(PropSpacing, spacing) })
	return s
}

// Named renames the underlying creator.
func (s StackCreator) Named(name string) StackCreator {
	s.Creator.Named(name)
	return s
}

// arrange splits the stack's frame equally between its visible subviews.
// Hidden subviews keep their frame and take no space.
func arrange(v *platform.View) {
	var visible []*platform.View
	for _, sub := range v.Subviews() {
		if !sub.IsHidden() {
			visible = append(visible, sub)
		}
	}
	if len(visible) == 0 {
		return
	}
	axis, _ := v.Get(PropAxis)
	spacing, _ := v.Get(PropSpacing)
	gap, _ := spacing.(float64)

	bounds := v.Frame()
	total := bounds.Height
	if axis == AxisHorizontal {
		total = bounds.Width
	}
	share := (total - gap*float64(len(visible)-1)) / float64(len(visible))
	if share < 0 {
		share = 0
	}

	offset := 0.0
	for _, sub := range visible {
		frame := platform.Rect{X: 0, Y: offset, Width: bounds.Width, Height: share}
		if axis == AxisHorizontal {
			frame = platform.Rect{X: offset, Y: 0, Width: share, Height: bounds.Height}
		}
		sub.SetFrame(frame)
		offset += share + gap
	}
}
