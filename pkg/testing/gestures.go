package testing

import (
	"fmt"

	"github.com/go-drift/viewkit/pkg/platform"
	"github.com/go-drift/viewkit/pkg/widgets"
)

// Tap delivers a tap to the first view matched by finder. Hidden and
// disabled buttons ignore taps, which is reported as an error.
func (t *Tester) Tap(finder Finder) error {
	v, err := t.first("Tap", finder)
	if err != nil {
		return err
	}
	if !widgets.Tap(v) {
		return fmt.Errorf("Tap: view did not accept the tap: %s", finder.Description())
	}
	return nil
}

// Hide sets the hidden flag on the first view matched by finder.
func (t *Tester) Hide(finder Finder, hidden bool) error {
	v, err := t.first("Hide", finder)
	if err != nil {
		return err
	}
	v.SetHidden(hidden)
	return nil
}

// Resize sets the frame of the first view matched by finder, delivering a
// layout pass.
func (t *Tester) Resize(finder Finder, frame platform.Rect) error {
	v, err := t.first("Resize", finder)
	if err != nil {
		return err
	}
	v.SetFrame(frame)
	return nil
}

// SetAppearance changes the window's traits to appearance.
func (t *Tester) SetAppearance(appearance platform.Appearance) {
	traits := t.window.Content().Traits()
	traits.Appearance = appearance
	t.window.SetTraits(traits)
}

func (t *Tester) first(op string, finder Finder) (*platform.View, error) {
	result := t.Find(finder)
	if !result.Exists() {
		return nil, fmt.Errorf("%s: finder matched no views: %s", op, finder.Description())
	}
	return result.First(), nil
}
