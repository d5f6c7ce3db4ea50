package widgets

import "github.com/go-drift/viewkit/pkg/platform"

// View types registered by this package.
const (
	ViewTypeLabel  = "label"
	ViewTypeButton = "button"
	ViewTypeStack  = "stack"
	ViewTypeToggle = "toggle"
)

// Property keys written by the setters in this package.
const (
	PropText     = "text"
	PropFontSize = "fontSize"
	PropLines    = "lines"
	PropTitle    = "title"
	PropEnabled  = "enabled"
	PropAction   = "action"
	PropAxis     = "axis"
	PropSpacing  = "spacing"
	PropOn       = "on"
	PropChanged  = "changed"
)

func init() {
	registry := platform.GetViewRegistry()
	for _, viewType := range []string{ViewTypeLabel, ViewTypeButton, ViewTypeStack, ViewTypeToggle} {
		registry.RegisterFactory(platform.FactoryFunc{
			Type: viewType,
			Fn: func(params map[string]any) (*platform.View, error) {
				v := platform.NewView(viewType)
				for key, value := range params {
					v.Set(key, value)
				}
				return v, nil
			},
		})
	}
}
