// Package element implements the form field descriptor at the center of this
// library: a named, attribute-bearing control that carries its own filters,
// validation rules and messages, knows how to resolve its displayed value and
// how to render its attribute markup.
package element

import (
	"strings"

	"github.com/goliatone/go-forms/pkg/messages"
	"github.com/goliatone/go-forms/pkg/tag"
	"github.com/goliatone/go-forms/pkg/validation"
)

// Element describes one form field. Construct with New; the zero value is
// not usable.
type Element struct {
	name       string
	attributes tag.Attrs
	value      any
	label      string
	filters    filterSet
	validators []validation.Validator
	options    map[string]any
	messages   *messages.Bag
	form       Form
	tags       TagHelper
	widget     Widget
}

// Option configures an element during construction.
type Option func(*config)

type config struct {
	label      string
	value      any
	filters    any
	hasFilters bool
	validators []validation.Validator
	options    map[string]any
	widget     Widget
	tags       TagHelper
	form       Form
}

// WithLabel sets the element's caption.
func WithLabel(label string) Option {
	return func(cfg *config) {
		cfg.label = label
	}
}

// WithDefault sets the value used when neither the form nor the tag helper
// has one.
func WithDefault(value any) Option {
	return func(cfg *config) {
		cfg.value = value
	}
}

// WithFilters sets the element's sanitization filters. Accepts a single name
// or a list of names; New fails with ErrInvalidFilters on anything else.
func WithFilters(filters any) Option {
	return func(cfg *config) {
		cfg.filters = filters
		cfg.hasFilters = true
	}
}

// WithValidators appends validation rules.
func WithValidators(validators ...validation.Validator) Option {
	return func(cfg *config) {
		cfg.validators = append(cfg.validators, validators...)
	}
}

// WithUserOptions seeds the free-form option map.
func WithUserOptions(options map[string]any) Option {
	return func(cfg *config) {
		if cfg.options == nil {
			cfg.options = make(map[string]any, len(options))
		}
		for key, value := range options {
			cfg.options[key] = value
		}
	}
}

// WithWidget attaches the widget that renders this element.
func WithWidget(w Widget) Option {
	return func(cfg *config) {
		cfg.widget = w
	}
}

// WithTagHelper overrides the tag helper consulted for displayed values.
func WithTagHelper(h TagHelper) Option {
	return func(cfg *config) {
		cfg.tags = h
	}
}

// WithForm attaches the owning form.
func WithForm(f Form) Option {
	return func(cfg *config) {
		cfg.form = f
	}
}

// New creates an element. The name is trimmed and must not be empty; the
// attribute map may be nil.
func New(name string, attributes tag.Attrs, opts ...Option) (*Element, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, ErrNameRequired
	}

	cfg := &config{}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	el := &Element{
		name:       trimmed,
		attributes: tag.Clone(attributes),
		value:      cfg.value,
		label:      cfg.label,
		validators: make([]validation.Validator, 0, len(cfg.validators)),
		options:    make(map[string]any, len(cfg.options)),
		messages:   messages.NewBag(),
		form:       cfg.form,
		tags:       cfg.tags,
		widget:     cfg.widget,
	}
	el.validators = append(el.validators, cfg.validators...)
	for key, value := range cfg.options {
		el.options[key] = value
	}

	if cfg.hasFilters {
		if err := el.SetFilters(cfg.filters); err != nil {
			return nil, err
		}
	}
	return el, nil
}

// Must panics when err is non-nil; it wraps New for static element tables.
func Must(el *Element, err error) *Element {
	if err != nil {
		panic(err)
	}
	return el
}

// Name returns the element's name.
func (e *Element) Name() string {
	return e.name
}

// SetName renames the element. The name is trimmed and must not be empty.
func (e *Element) SetName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrNameRequired
	}
	e.name = trimmed
	return nil
}

// Label returns the element's caption, "" when unset.
func (e *Element) Label() string {
	return e.label
}

// SetLabel sets the element's caption.
func (e *Element) SetLabel(label string) {
	e.label = label
}

// Default returns the element's local default value.
func (e *Element) Default() any {
	return e.value
}

// SetDefault sets the element's local default value.
func (e *Element) SetDefault(value any) {
	e.value = value
}

// Form returns the owning form, nil when detached.
func (e *Element) Form() Form {
	return e.form
}

// SetForm attaches the owning form. Pass nil to detach.
func (e *Element) SetForm(f Form) {
	e.form = f
}

// Widget returns the attached widget, nil when none.
func (e *Element) Widget() Widget {
	return e.widget
}

// SetWidget attaches the widget that renders this element.
func (e *Element) SetWidget(w Widget) {
	e.widget = w
}

// Tag returns the tag helper in use, falling back to tag.Default.
func (e *Element) Tag() TagHelper {
	if e.tags != nil {
		return e.tags
	}
	return tag.Default
}

// SetTag overrides the tag helper consulted for displayed values.
func (e *Element) SetTag(h TagHelper) {
	e.tags = h
}

// Attribute returns the attribute stored under key, or fallback when absent.
func (e *Element) Attribute(key string, fallback any) any {
	if value, ok := e.attributes[key]; ok {
		return value
	}
	return fallback
}

// Attributes returns a copy of the attribute map, never nil.
func (e *Element) Attributes() tag.Attrs {
	return tag.Clone(e.attributes)
}

// SetAttribute stores a single attribute.
func (e *Element) SetAttribute(key string, value any) {
	e.attributes[key] = value
}

// SetAttributes replaces the attribute map wholesale.
func (e *Element) SetAttributes(attrs tag.Attrs) {
	e.attributes = tag.Clone(attrs)
}

// UserOption returns the free-form option stored under key, or fallback.
func (e *Element) UserOption(key string, fallback any) any {
	if value, ok := e.options[key]; ok {
		return value
	}
	return fallback
}

// SetUserOption stores a free-form option.
func (e *Element) SetUserOption(key string, value any) {
	e.options[key] = value
}

// UserOptions returns a copy of the free-form option map, never nil.
func (e *Element) UserOptions() map[string]any {
	out := make(map[string]any, len(e.options))
	for key, value := range e.options {
		out[key] = value
	}
	return out
}

// SetUserOptions replaces the free-form option map wholesale.
func (e *Element) SetUserOptions(options map[string]any) {
	e.options = make(map[string]any, len(options))
	for key, value := range options {
		e.options[key] = value
	}
}

// AddValidator appends one validation rule. Nil validators are ignored.
func (e *Element) AddValidator(v validation.Validator) {
	if v == nil {
		return
	}
	e.validators = append(e.validators, v)
}

// AddValidators adds validation rules. With merge the incoming rules follow
// the current ones; without it they replace them.
func (e *Element) AddValidators(validators []validation.Validator, merge bool) {
	incoming := make([]validation.Validator, len(validators))
	copy(incoming, validators)

	if !merge {
		e.validators = incoming
		return
	}
	e.validators = append(e.validators, incoming...)
}

// Validators returns a copy of the attached rules in order.
func (e *Element) Validators() []validation.Validator {
	out := make([]validation.Validator, len(e.validators))
	copy(out, e.validators)
	return out
}

// AppendMessage records one message on the element, stamping the element's
// name when the message has no field.
func (e *Element) AppendMessage(m messages.Message) {
	if m.Field == "" {
		m.Field = e.name
	}
	e.messages.Append(m)
}

// SetMessages replaces the element's message bag. A nil bag installs a fresh
// empty one.
func (e *Element) SetMessages(bag *messages.Bag) {
	if bag == nil {
		bag = messages.NewBag()
	}
	e.messages = bag
}

// Messages returns the element's message bag, never nil.
func (e *Element) Messages() *messages.Bag {
	return e.messages
}

// HasMessages reports whether any message is recorded.
func (e *Element) HasMessages() bool {
	return !e.messages.IsEmpty()
}

// Value resolves the element's displayed value: the owning form when one is
// attached, otherwise the tag helper's stored value, otherwise the local
// default. An attached form is authoritative even when it answers nil.
func (e *Element) Value() any {
	if e.form != nil {
		return e.form.Value(e.name)
	}

	helper := e.Tag()
	if helper.HasValue(e.name) {
		return helper.Value(e.name)
	}
	return e.value
}

// Clear resets the element's captured input: the owning form drops it when
// one is attached, otherwise the local default is written to the tag helper
// so the next render shows it.
func (e *Element) Clear() *Element {
	if e.form != nil {
		e.form.Clear(e.name)
		return e
	}
	e.Tag().SetDefault(e.name, e.value)
	return e
}
