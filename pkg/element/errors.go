package element

import "errors"

var (
	// ErrNameRequired is returned when an element is created or renamed with
	// an empty or whitespace-only name.
	ErrNameRequired = errors.New("element: name must not be empty")

	// ErrInvalidFilters is returned when SetFilters receives anything other
	// than a single filter name or a list of filter names.
	ErrInvalidFilters = errors.New("element: filters must be a string or a list of strings")

	// ErrNoWidget is returned when an element without a widget is rendered.
	ErrNoWidget = errors.New("element: no widget attached")
)
