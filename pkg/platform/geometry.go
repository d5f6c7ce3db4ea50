package platform

import "fmt"

// Rect is a frame in logical points.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectOf returns a rect at the origin with the given size.
func RectOf(width, height float64) Rect {
	return Rect{Width: width, Height: height}
}

// HasArea reports whether both dimensions are non-zero.
func (r Rect) HasArea() bool {
	return r.Width != 0 && r.Height != 0
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g %gx%g)", r.X, r.Y, r.Width, r.Height)
}

// Appearance is the light/dark interface style.
type Appearance string

const (
	AppearanceLight Appearance = "light"
	AppearanceDark  Appearance = "dark"
)

// Traits is the environment a view renders in. A change delivers
// TraitDidChange to every view in the subtree.
type Traits struct {
	Appearance Appearance
	// TextScale is the accessibility text size multiplier.
	TextScale float64
	// ReduceMotion mirrors the system accessibility setting.
	ReduceMotion bool
}

// DefaultTraits returns light appearance at 1x text.
func DefaultTraits() Traits {
	return Traits{Appearance: AppearanceLight, TextScale: 1}
}
