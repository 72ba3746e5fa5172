// Package form assembles elements into a submit target. A Form owns its
// elements, binds and sanitizes incoming data, pushes bound values into an
// optional entity, runs every element's validators and collects the
// resulting messages.
package form

import (
	"fmt"

	"github.com/goliatone/go-forms/internal/label"
	"github.com/goliatone/go-forms/pkg/element"
	"github.com/goliatone/go-forms/pkg/filters"
	"github.com/goliatone/go-forms/pkg/messages"
	"github.com/goliatone/go-forms/pkg/tag"
	"github.com/goliatone/go-forms/pkg/validation"
)

// Form is an ordered collection of elements plus the data bound to them.
// Construct with New; the zero value is not usable.
type Form struct {
	action     string
	method     string
	attributes tag.Attrs
	entity     any
	data       map[string]any
	elements   []*element.Element
	index      map[string]int
	messages   *messages.Bag
	filters    *filters.Registry
	tags       element.TagHelper
}

// Option configures a form during construction.
type Option func(*Form)

// WithAction sets the submit target URL.
func WithAction(action string) Option {
	return func(f *Form) {
		f.action = action
	}
}

// WithMethod sets the submit method. New defaults to "post".
func WithMethod(method string) Option {
	return func(f *Form) {
		f.method = method
	}
}

// WithAttributes seeds the attributes rendered on the opening form tag.
func WithAttributes(attrs tag.Attrs) Option {
	return func(f *Form) {
		f.attributes = tag.Clone(attrs)
	}
}

// WithEntity attaches the domain object values are read from and written to.
func WithEntity(entity any) Option {
	return func(f *Form) {
		f.entity = entity
	}
}

// WithFilters overrides the filter registry used during Bind.
func WithFilters(reg *filters.Registry) Option {
	return func(f *Form) {
		if reg != nil {
			f.filters = reg
		}
	}
}

// WithTagHelper sets the tag helper handed to every added element, isolating
// the form from the process-wide default store.
func WithTagHelper(h element.TagHelper) Option {
	return func(f *Form) {
		f.tags = h
	}
}

// New creates an empty form.
func New(opts ...Option) *Form {
	f := &Form{
		method:     "post",
		attributes: tag.Attrs{},
		index:      make(map[string]int),
		messages:   messages.NewBag(),
		filters:    filters.Default,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}
	return f
}

// Action returns the submit target URL.
func (f *Form) Action() string {
	return f.action
}

// SetAction sets the submit target URL.
func (f *Form) SetAction(action string) {
	f.action = action
}

// Method returns the submit method.
func (f *Form) Method() string {
	return f.method
}

// SetMethod sets the submit method.
func (f *Form) SetMethod(method string) {
	f.method = method
}

// Attributes returns a copy of the opening tag attributes, never nil.
func (f *Form) Attributes() tag.Attrs {
	return tag.Clone(f.attributes)
}

// SetAttribute stores a single opening tag attribute.
func (f *Form) SetAttribute(key string, value any) {
	f.attributes[key] = value
}

// Entity returns the attached domain object, nil when none.
func (f *Form) Entity() any {
	return f.entity
}

// SetEntity attaches the domain object values are read from and written to.
func (f *Form) SetEntity(entity any) {
	f.entity = entity
}

// Data returns a copy of the currently bound data, never nil.
func (f *Form) Data() map[string]any {
	out := make(map[string]any, len(f.data))
	for key, value := range f.data {
		out[key] = value
	}
	return out
}

// Add appends an element and attaches this form as its owner. Element names
// are unique within a form.
func (f *Form) Add(el *element.Element) error {
	if el == nil {
		return fmt.Errorf("form: element is required")
	}
	if _, exists := f.index[el.Name()]; exists {
		return fmt.Errorf("form: element %q already added", el.Name())
	}

	f.attach(el)
	f.index[el.Name()] = len(f.elements)
	f.elements = append(f.elements, el)
	return nil
}

// MustAdd panics when Add fails. It returns the form so static layouts can
// chain additions.
func (f *Form) MustAdd(el *element.Element) *Form {
	if err := f.Add(el); err != nil {
		panic(err)
	}
	return f
}

// Insert places an element before or after the named reference element.
func (f *Form) Insert(el *element.Element, ref string, before bool) error {
	if el == nil {
		return fmt.Errorf("form: element is required")
	}
	if _, exists := f.index[el.Name()]; exists {
		return fmt.Errorf("form: element %q already added", el.Name())
	}
	pos, ok := f.index[ref]
	if !ok {
		return fmt.Errorf("form: element %q not found", ref)
	}
	if !before {
		pos++
	}

	f.attach(el)
	f.elements = append(f.elements, nil)
	copy(f.elements[pos+1:], f.elements[pos:])
	f.elements[pos] = el
	f.reindex()
	return nil
}

func (f *Form) attach(el *element.Element) {
	el.SetForm(f)
	if f.tags != nil {
		el.SetTag(f.tags)
	}
}

func (f *Form) reindex() {
	f.index = make(map[string]int, len(f.elements))
	for i, el := range f.elements {
		f.index[el.Name()] = i
	}
}

// Get retrieves an element by name.
func (f *Form) Get(name string) (*element.Element, error) {
	pos, ok := f.index[name]
	if !ok {
		return nil, fmt.Errorf("form: element %q not found", name)
	}
	return f.elements[pos], nil
}

// Has reports whether the named element exists.
func (f *Form) Has(name string) bool {
	_, ok := f.index[name]
	return ok
}

// Remove detaches and drops the named element. It reports whether an
// element was removed.
func (f *Form) Remove(name string) bool {
	pos, ok := f.index[name]
	if !ok {
		return false
	}

	f.elements[pos].SetForm(nil)
	f.elements = append(f.elements[:pos], f.elements[pos+1:]...)
	f.reindex()
	return true
}

// Elements returns the form's elements in order.
func (f *Form) Elements() []*element.Element {
	out := make([]*element.Element, len(f.elements))
	copy(out, f.elements)
	return out
}

// Len returns the number of elements.
func (f *Form) Len() int {
	return len(f.elements)
}

// Bind captures submitted data. Each element whose name appears in data has
// its filter chain applied and the result stored; when an entity is attached
// the matching struct field is updated too. Keys without a matching element
// are ignored and previously bound data is replaced.
func (f *Form) Bind(data map[string]any) error {
	bound := make(map[string]any, len(data))
	for _, el := range f.elements {
		raw, ok := data[el.Name()]
		if !ok {
			continue
		}
		value, err := f.filters.Apply(el.FilterNames(), raw)
		if err != nil {
			return fmt.Errorf("form: bind %q: %w", el.Name(), err)
		}
		bound[el.Name()] = value
		if f.entity != nil {
			setEntityField(f.entity, el.Name(), value)
		}
	}
	f.data = bound
	return nil
}

// Value resolves the captured value for name: the entity field when an
// entity is attached, then bound data, then nil. Elements consult their tag
// helper and local default only while detached from a form.
func (f *Form) Value(name string) any {
	if f.entity != nil {
		if value, ok := entityField(f.entity, name); ok {
			return value
		}
	}
	if value, ok := f.data[name]; ok {
		return value
	}
	return nil
}

// Clear drops the captured input for one element. An attached entity keeps
// its field value; only the bound data is forgotten.
func (f *Form) Clear(name string) {
	delete(f.data, name)
}

// Reset drops all captured input and every collected message.
func (f *Form) Reset() {
	f.data = nil
	f.messages = messages.NewBag()
	for _, el := range f.elements {
		el.SetMessages(nil)
	}
}

// Validate runs every element's validators against its resolved value and
// reports whether all of them passed. The form's message bag and each
// element's bag are replaced with this run's findings.
func (f *Form) Validate() bool {
	f.messages = messages.NewBag()
	for _, el := range f.elements {
		bag := messages.NewBag()
		value := el.Value()
		ctx := map[string]any{
			"field": el.Name(),
			"label": displayLabel(el),
			"value": value,
		}
		for _, v := range el.Validators() {
			if v == nil {
				continue
			}
			err := v.Validate(value)
			if err == nil {
				continue
			}
			bag.Append(messages.Message{
				Field: el.Name(),
				Text:  validation.Render(err, ctx),
				Kind:  validation.Kind(err),
			})
		}
		el.SetMessages(bag)
		f.messages.Merge(bag)
	}
	return f.messages.IsEmpty()
}

// IsValid binds data and validates in one step, the common request path.
func (f *Form) IsValid(data map[string]any) (bool, error) {
	if err := f.Bind(data); err != nil {
		return false, err
	}
	return f.Validate(), nil
}

// Messages returns the messages collected by the last validation run.
func (f *Form) Messages() *messages.Bag {
	return f.messages
}

// MessagesFor returns the named element's messages from the last run.
func (f *Form) MessagesFor(name string) []messages.Message {
	return f.messages.Filter(name)
}

// Label returns the caption used for the named element, falling back to a
// humanized form of its name.
func (f *Form) Label(name string) (string, error) {
	el, err := f.Get(name)
	if err != nil {
		return "", err
	}
	return displayLabel(el), nil
}

// Render draws the named element's control markup.
func (f *Form) Render(name string, extra ...tag.Attrs) (string, error) {
	el, err := f.Get(name)
	if err != nil {
		return "", err
	}
	return el.Render(extra...)
}

// RenderLabel draws the named element's label markup.
func (f *Form) RenderLabel(name string, extra tag.Attrs) (string, error) {
	el, err := f.Get(name)
	if err != nil {
		return "", err
	}
	return el.RenderLabel(extra), nil
}

// Open renders the form's opening tag with action and method applied.
// Caller attributes win over the stored ones.
func (f *Form) Open(extra ...tag.Attrs) string {
	attrs := tag.Clone(f.attributes)
	if len(extra) > 0 {
		for key, value := range extra[0] {
			attrs[key] = value
		}
	}
	if _, ok := attrs["action"]; !ok && f.action != "" {
		attrs["action"] = f.action
	}
	if _, ok := attrs["method"]; !ok {
		attrs["method"] = f.method
	}
	return f.helper().RenderAttributes("<form", attrs) + ">"
}

// Close renders the form's closing tag.
func (f *Form) Close() string {
	return "</form>"
}

func (f *Form) helper() element.TagHelper {
	if f.tags != nil {
		return f.tags
	}
	return tag.Default
}

func displayLabel(el *element.Element) string {
	if l := el.Label(); l != "" {
		return l
	}
	return label.Humanize(el.Name())
}
