package element

import (
	"github.com/goliatone/go-forms/pkg/tag"
)

// Form is the owning aggregate an element defers to. When a form is attached
// it is the authority on the element's value, even when it answers nil.
type Form interface {
	// Value resolves the captured input for the named element.
	Value(name string) any
	// Clear drops the captured input for the named element.
	Clear(name string)
}

// TagHelper resolves displayed values and renders attribute markup. Elements
// without an explicit helper fall back to tag.Default.
type TagHelper interface {
	HasValue(name string) bool
	Value(name string) any
	SetDefault(name string, value any)
	RenderAttributes(openTag string, attrs tag.Attrs) string
}

// Widget renders the control markup for one element kind.
type Widget interface {
	RenderControl(el *Element, extra tag.Attrs) (string, error)
}
