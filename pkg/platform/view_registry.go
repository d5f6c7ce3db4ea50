package platform

import (
	"sort"
	"sync"
)

// ViewFactory creates native views of a specific type.
type ViewFactory interface {
	// Create creates a new view instance.
	Create(params map[string]any) (*View, error)

	// ViewType returns the view type this factory creates.
	ViewType() string
}

// FactoryFunc adapts a function to ViewFactory.
type FactoryFunc struct {
	Type string
	Fn   func(params map[string]any) (*View, error)
}

func (f FactoryFunc) Create(params map[string]any) (*View, error) { return f.Fn(params) }
func (f FactoryFunc) ViewType() string                            { return f.Type }

// ViewRegistry maps view types to factories. Factories are usually
// registered from init functions, so the registry is safe for concurrent use
// even though the views it creates are not.
type ViewRegistry struct {
	factories map[string]ViewFactory
	mu        sync.RWMutex
}

var viewRegistry = NewViewRegistry()

// GetViewRegistry returns the global view registry.
func GetViewRegistry() *ViewRegistry {
	return viewRegistry
}

// NewViewRegistry returns an empty registry.
func NewViewRegistry() *ViewRegistry {
	return &ViewRegistry{factories: make(map[string]ViewFactory)}
}

// RegisterFactory registers a factory for a view type, replacing any
// previous one.
func (r *ViewRegistry) RegisterFactory(factory ViewFactory) {
	r.mu.Lock()
	r.factories[factory.ViewType()] = factory
	r.mu.Unlock()
}

// Create creates a new view of the given type.
func (r *ViewRegistry) Create(viewType string, params map[string]any) (*View, error) {
	r.mu.RLock()
	factory, ok := r.factories[viewType]
	r.mu.RUnlock()

	if !ok {
		return nil, ErrViewTypeNotFound
	}

	view, err := factory.Create(params)
	if err != nil {
		return nil, err
	}
	if view == nil {
		return nil, ErrNilView
	}
	return view, nil
}

// ViewTypes returns the registered view types in sorted order.
func (r *ViewRegistry) ViewTypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	types := make([]string, 0, len(r.factories))
	for t := range r.factories {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}
