package component

import (
	"context"
	stderrors "errors"
	"fmt"
	"sync"
	"time"

	"github.com/kbukum/stagekit/errors"
	"github.com/kbukum/stagekit/logger"
)

// DefaultStopTimeout bounds each component's Stop call.
const DefaultStopTimeout = 10 * time.Second

type componentEntry struct {
	component Component
	started   bool
}

// Registry manages component lifecycle with deterministic ordering.
type Registry struct {
	entries     []*componentEntry
	lookup      map[string]*componentEntry
	log         *logger.Logger
	stopTimeout time.Duration
	mu          sync.Mutex
}

// NewRegistry creates an empty registry that logs through log. A nil log
// uses the "component" logger.
func NewRegistry(log *logger.Logger) *Registry {
	if log == nil {
		log = logger.Get("component")
	}
	return &Registry{
		lookup:      make(map[string]*componentEntry),
		log:         log,
		stopTimeout: DefaultStopTimeout,
	}
}

// SetStopTimeout changes the per-component Stop deadline.
func (r *Registry) SetStopTimeout(d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopTimeout = d
}

// Register adds a component. Register dependencies first.
func (r *Registry) Register(c Component) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := c.Name()
	if _, exists := r.lookup[name]; exists {
		return errors.InvalidInput("component", fmt.Sprintf("%s already registered", name))
	}

	entry := &componentEntry{component: c}
	r.entries = append(r.entries, entry)
	r.lookup[name] = entry
	return nil
}

// StartAll starts components in registration order and stops at the first
// failure. Components started before the failure stay started so StopAll
// can release them.
func (r *Registry) StartAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, entry := range r.entries {
		name := entry.component.Name()
		if entry.started {
			continue
		}
		if err := entry.component.Start(ctx); err != nil {
			r.log.WithComponent(name).WithError(err).Error("component start failed")
			return fmt.Errorf("start %s: %w", name, err)
		}
		entry.started = true

		fields := logger.Fields(logger.FieldComponent, name)
		if d, ok := entry.component.(Describable); ok {
			fields["details"] = d.Describe()
		}
		r.log.Debug("component started", fields)
	}
	return nil
}

// StopAll stops started components in reverse registration order. Every
// component is attempted; the errors are joined.
func (r *Registry) StopAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for i := len(r.entries) - 1; i >= 0; i-- {
		entry := r.entries[i]
		if !entry.started {
			continue
		}
		name := entry.component.Name()

		stopCtx, cancel := context.WithTimeout(ctx, r.stopTimeout)
		err := entry.component.Stop(stopCtx)
		cancel()
		entry.started = false

		if err != nil {
			r.log.WithComponent(name).WithError(err).Error("component stop failed")
			errs = append(errs, fmt.Errorf("stop %s: %w", name, err))
			continue
		}
		r.log.Debug("component stopped", logger.Fields(logger.FieldComponent, name))
	}
	return stderrors.Join(errs...)
}

// Get returns a registered component by name, or nil.
func (r *Registry) Get(name string) Component {
	r.mu.Lock()
	defer r.mu.Unlock()
	if entry, ok := r.lookup[name]; ok {
		return entry.component
	}
	return nil
}

// Names returns component names in registration order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.entries))
	for _, entry := range r.entries {
		names = append(names, entry.component.Name())
	}
	return names
}
