package platform

import "errors"

// Sentinel errors for platform operations.
var (
	// ErrViewTypeNotFound is returned when no factory is registered for a view type.
	ErrViewTypeNotFound = errors.New("platform: view type not found")

	// ErrNilView is returned when a factory produces no view.
	ErrNilView = errors.New("platform: factory returned nil view")
)
