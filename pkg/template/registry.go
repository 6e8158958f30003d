package template

import (
	"fmt"
	"sort"
	"sync"

	"github.com/killallgit/loom/pkg/logger"
)

// Registry holds named template functions. Lookups during execution are
// concurrent-safe; registration is expected to happen before chains run.
type Registry struct {
	mu        sync.RWMutex
	templates map[string]Func
}

// NewRegistry creates a new template registry
func NewRegistry() *Registry {
	return &Registry{
		templates: make(map[string]Func),
	}
}

// Register stores fn under name. Registering an existing name replaces the
// previous function silently.
func (r *Registry) Register(name string, fn Func) error {
	if fn == nil {
		return fmt.Errorf("%w: %q", ErrInvalidTemplate, name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.templates[name] = fn
	logger.Debug("Registered template: %s", name)
	return nil
}

// Unregister removes the entry if present and reports whether something
// was removed. Missing names are not an error.
func (r *Registry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, exists := r.templates[name]
	delete(r.templates, name)
	return exists
}

// Get retrieves a template function by name. Absence is a valid, silent
// outcome.
func (r *Registry) Get(name string) (Func, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, exists := r.templates[name]
	return fn, exists
}

// List returns all registered template names, sorted, as a snapshot
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadAll bulk-registers every entry in the mapping. A nil entry is logged
// and skipped without aborting the remaining registrations. Returns the
// number of templates registered.
func (r *Registry) LoadAll(templates map[string]Func) int {
	registered := 0
	for name, fn := range templates {
		if err := r.Register(name, fn); err != nil {
			logger.Warn("Skipping template %s: %v", name, err)
			continue
		}
		registered++
	}
	return registered
}
