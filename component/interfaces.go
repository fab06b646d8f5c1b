package component

import "context"

// Component is a lifecycle-managed piece of infrastructure.
type Component interface {
	// Name returns the unique name of the component for registration.
	Name() string

	// Start initializes and starts the component.
	Start(ctx context.Context) error

	// Stop flushes and shuts down the component.
	Stop(ctx context.Context) error
}

// Describable is optionally implemented by components to report their
// settings in the startup log line.
type Describable interface {
	Describe() string
}
