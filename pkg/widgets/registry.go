// Package widgets provides the concrete control kinds elements render
// through: text-like inputs, checkables, text areas and selects. A Registry
// maps kind names to widgets so declarative sources can look them up.
package widgets

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-forms/pkg/element"
)

// Registry stores widgets by kind name, providing discovery and duplication
// safeguards.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]element.Widget
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]element.Widget),
	}
}

// Register adds a widget under a kind name. Duplicate names return an error.
func (r *Registry) Register(kind string, w element.Widget) error {
	if w == nil {
		return fmt.Errorf("widgets: widget is required")
	}
	kind = strings.TrimSpace(kind)
	if kind == "" {
		return fmt.Errorf("widgets: kind is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[kind]; exists {
		return fmt.Errorf("widgets: kind %q already registered", kind)
	}

	r.entries[kind] = w
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(kind string, w element.Widget) {
	if err := r.Register(kind, w); err != nil {
		panic(err)
	}
}

// Get retrieves a widget by kind name.
func (r *Registry) Get(kind string) (element.Widget, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.entries[kind]
	if !ok {
		return nil, fmt.Errorf("widgets: kind %q not found", kind)
	}
	return w, nil
}

// MustGet panics if the kind is missing.
func (r *Registry) MustGet(kind string) element.Widget {
	w, err := r.Get(kind)
	if err != nil {
		panic(err)
	}
	return w
}

// List returns the registered kind names, sorted.
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

// Has reports whether a kind is registered.
func (r *Registry) Has(kind string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.entries[kind]
	return ok
}

// Defaults returns a registry with every built-in kind registered.
func Defaults() *Registry {
	r := NewRegistry()
	r.MustRegister(KindText, InputWidget("text"))
	r.MustRegister(KindPassword, InputWidget("password"))
	r.MustRegister(KindHidden, InputWidget("hidden"))
	r.MustRegister(KindEmail, InputWidget("email"))
	r.MustRegister(KindNumeric, InputWidget("number"))
	r.MustRegister(KindDate, InputWidget("date"))
	r.MustRegister(KindFile, InputWidget("file"))
	r.MustRegister(KindSubmit, InputWidget("submit"))
	r.MustRegister(KindCheck, CheckableWidget("checkbox"))
	r.MustRegister(KindRadio, CheckableWidget("radio"))
	r.MustRegister(KindTextArea, TextAreaWidget())
	r.MustRegister(KindSelect, SelectWidget())
	return r
}
