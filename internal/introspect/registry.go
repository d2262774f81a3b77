package introspect

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	pkgerrors "github.com/cursedclient/cursedclient/pkg/errors"
)

// Registry maps fully-qualified host type names to registered descriptor
// objects. It stands in for runtime type lookup by name: host glue code
// registers the objects that carry "static" accessors (version-constant
// holders and the like) at startup, and probes resolve them by the names
// the candidate tables know.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]any
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]any)}
}

// Register associates a descriptor object with a fully-qualified type name.
// Duplicate names and nil descriptors are rejected.
func (r *Registry) Register(name string, descriptor any) error {
	if name == "" {
		return pkgerrors.NewRegistryError(name, fmt.Errorf("name is empty"))
	}
	if descriptor == nil {
		return pkgerrors.NewRegistryError(name, fmt.Errorf("descriptor is nil"))
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[name]; exists {
		return pkgerrors.NewRegistryError(name, fmt.Errorf("already registered"))
	}
	r.entries[name] = descriptor
	return nil
}

// Lookup resolves a registered descriptor by name.
func (r *Registry) Lookup(name string) (reflect.Value, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	descriptor, ok := r.entries[name]
	if !ok {
		return reflect.Value{}, false
	}
	return reflect.ValueOf(descriptor), true
}

// Names returns the registered type names in sorted order, for diagnostics.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reset clears all registrations (for tests).
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = make(map[string]any)
}
