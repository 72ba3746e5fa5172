package element

// filterSet keeps the element's sanitization filters in the shape they were
// assigned: unset, a single name, or a list of names.
type filterSet struct {
	kind filterKind
	one  string
	many []string
}

type filterKind int

const (
	filterNone filterKind = iota
	filterSingle
	filterMany
)

func (f *filterSet) add(name string) {
	switch f.kind {
	case filterNone:
		f.kind = filterSingle
		f.one = name
	case filterSingle:
		f.kind = filterMany
		f.many = []string{f.one, name}
		f.one = ""
	case filterMany:
		f.many = append(f.many, name)
	}
}

func (f *filterSet) set(value any) error {
	switch v := value.(type) {
	case string:
		f.kind = filterSingle
		f.one = v
		f.many = nil
	case []string:
		names := make([]string, len(v))
		copy(names, v)
		f.kind = filterMany
		f.many = names
		f.one = ""
	case []any:
		names := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return ErrInvalidFilters
			}
			names = append(names, s)
		}
		f.kind = filterMany
		f.many = names
		f.one = ""
	default:
		return ErrInvalidFilters
	}
	return nil
}

// value returns the filters in their stored shape: nil, string or []string.
func (f *filterSet) value() any {
	switch f.kind {
	case filterSingle:
		return f.one
	case filterMany:
		out := make([]string, len(f.many))
		copy(out, f.many)
		return out
	default:
		return nil
	}
}

// names flattens the filters to a list regardless of stored shape.
func (f *filterSet) names() []string {
	switch f.kind {
	case filterSingle:
		return []string{f.one}
	case filterMany:
		out := make([]string, len(f.many))
		copy(out, f.many)
		return out
	default:
		return nil
	}
}

// AddFilter appends one filter name: an unset slot becomes a single filter, a
// single filter becomes a two-entry list, a list grows.
func (e *Element) AddFilter(name string) {
	e.filters.add(name)
}

// SetFilters replaces the filters wholesale. It accepts a single name or a
// list of names ([]string, or []any holding only strings); anything else
// returns ErrInvalidFilters and leaves the element unchanged.
func (e *Element) SetFilters(value any) error {
	return e.filters.set(value)
}

// Filters returns the filters in the shape they were stored: nil when unset,
// a string for a single filter, a []string for a list.
func (e *Element) Filters() any {
	return e.filters.value()
}

// FilterNames returns the filters flattened to a list, nil when unset.
func (e *Element) FilterNames() []string {
	return e.filters.names()
}
