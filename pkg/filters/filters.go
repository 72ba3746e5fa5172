// Package filters sanitizes submitted form values before validation.
// Elements reference filters by name; a Registry resolves the names and
// applies the chain in order.
package filters

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Func transforms a submitted value. Filters run before validation, so a
// Func should normalize rather than reject: malformed input becomes the
// closest sane value, not an error.
type Func func(value any) (any, error)

// Registry stores filters by name, providing discovery and duplication
// safeguards.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Func
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]Func),
	}
}

// Register adds a filter under a name. Duplicate names return an error.
func (r *Registry) Register(name string, fn Func) error {
	if fn == nil {
		return fmt.Errorf("filters: filter func is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("filters: name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[name]; exists {
		return fmt.Errorf("filters: filter %q already registered", name)
	}

	r.entries[name] = fn
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(name string, fn Func) {
	if err := r.Register(name, fn); err != nil {
		panic(err)
	}
}

// Get retrieves a filter by name.
func (r *Registry) Get(name string) (Func, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, ok := r.entries[name]
	if !ok {
		return nil, fmt.Errorf("filters: filter %q not found", name)
	}
	return fn, nil
}

// Has reports whether a filter is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.entries[name]
	return ok
}

// List returns the registered filter names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply runs the named filters over value in order. An unknown name or a
// failing filter aborts the chain.
func (r *Registry) Apply(names []string, value any) (any, error) {
	out := value
	for _, name := range names {
		fn, err := r.Get(name)
		if err != nil {
			return nil, err
		}
		next, err := fn(out)
		if err != nil {
			return nil, fmt.Errorf("filters: apply %q: %w", name, err)
		}
		out = next
	}
	return out, nil
}

// Default is the registry used when a form is not given its own. It carries
// every built-in filter.
var Default = Defaults()

// Apply runs the named filters from the default registry.
func Apply(names []string, value any) (any, error) {
	return Default.Apply(names, value)
}
