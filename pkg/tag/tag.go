// Package tag holds the shared presentation state for form controls: a
// process-wide store of displayed values and the attribute renderer every
// control goes through. Elements consult the store when they have no owning
// form, so a value set here shows up on the next render.
package tag

import (
	"sync"
)

// Attrs is the attribute map attached to rendered markup. Values may be any
// scalar; nil values are skipped when rendering.
type Attrs map[string]any

// Helper stores displayed values keyed by control name. The zero value is
// not usable; construct with NewHelper.
type Helper struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewHelper returns an empty value store.
func NewHelper() *Helper {
	return &Helper{values: make(map[string]any)}
}

// Default is the process-wide helper used by elements that were not given
// their own.
var Default = NewHelper()

// SetDefault stores the value displayed for a control name.
func (h *Helper) SetDefault(name string, value any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.values[name] = value
}

// SetDefaults replaces the stored values wholesale, or overlays them when
// merge is true.
func (h *Helper) SetDefaults(values map[string]any, merge bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !merge {
		h.values = make(map[string]any, len(values))
	}
	for name, value := range values {
		h.values[name] = value
	}
}

// HasValue reports whether a value is stored for the control name.
func (h *Helper) HasValue(name string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.values[name]
	return ok
}

// Value returns the stored value for the control name, or nil.
func (h *Helper) Value(name string) any {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.values[name]
}

// Reset drops every stored value.
func (h *Helper) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.values = make(map[string]any)
}

// RenderAttributes renders attrs after openTag; see the package-level
// function.
func (h *Helper) RenderAttributes(openTag string, attrs Attrs) string {
	return RenderAttributes(openTag, attrs)
}

// SetDefault stores a displayed value on the Default helper.
func SetDefault(name string, value any) {
	Default.SetDefault(name, value)
}

// SetDefaults stores displayed values on the Default helper.
func SetDefaults(values map[string]any, merge bool) {
	Default.SetDefaults(values, merge)
}

// HasValue reports whether the Default helper has a value for name.
func HasValue(name string) bool {
	return Default.HasValue(name)
}

// Value returns the Default helper's value for name, or nil.
func Value(name string) any {
	return Default.Value(name)
}

// Reset drops every value stored on the Default helper.
func Reset() {
	Default.Reset()
}
