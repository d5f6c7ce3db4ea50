package widgets

import (
	"github.com/go-drift/viewkit/pkg/core"
	"github.com/go-drift/viewkit/pkg/platform"
)

// LabelCreator describes a read-only text view.
type LabelCreator struct {
	*core.Creator
}

// Label returns a creator for a label showing text.
func Label(text string) LabelCreator {
	l := LabelCreator{core.New(ViewTypeLabel, core.Registered(ViewTypeLabel, nil))}
	return l.Text(text)
}

// Text sets the displayed text.
func (l LabelCreator) Text(text string) LabelCreator {
	l.Modify(func(v *platform.View) { v.Set(PropText, text) })
	return l
}

// FontSize sets the point size.
func (l LabelCreator) FontSize(size float64) LabelCreator {
	l.Modify(func(v *platform.View) { v.Set(PropFontSize, size) })
	return l
}

// Lines limits the number of lines; 0 means unlimited.
func (l LabelCreator) Lines(n int) LabelCreator {
	l.Modify(func(v *platform.View) { v.Set(PropLines, n) })
	return l
}

// Named renames the underlying creator.
func (l LabelCreator) Named(name string) LabelCreator {
	l.Creator.Named(name)
	return l
}
