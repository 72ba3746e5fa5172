// Package forms builds, binds and validates HTML form descriptors. The root
// package re-exports the common surface; the heavy lifting lives in
// pkg/element, pkg/form and their siblings.
package forms

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-forms/pkg/element"
	"github.com/goliatone/go-forms/pkg/form"
	"github.com/goliatone/go-forms/pkg/messages"
	"github.com/goliatone/go-forms/pkg/openapi"
	"github.com/goliatone/go-forms/pkg/schema"
	"github.com/goliatone/go-forms/pkg/tag"
	"github.com/goliatone/go-forms/pkg/validation"
	"github.com/goliatone/go-forms/pkg/widgets"
)

// Element is a single named form field: attributes, value resolution,
// filters, validators and messages.
type Element = element.Element

// Form aggregates elements, binds submitted data and validates it.
type Form = form.Form

// Attrs holds HTML attributes keyed by name.
type Attrs = tag.Attrs

// Message is one validation finding.
type Message = messages.Message

// Bag collects validation messages.
type Bag = messages.Bag

// Validator checks a single value.
type Validator = validation.Validator

// Choice is one option of a select element.
type Choice = widgets.Choice

// ElementOption configures element construction.
type ElementOption = element.Option

// FormOption configures form construction.
type FormOption = form.Option

// Element construction options, re-exported for root-level callers.
var (
	WithLabel      = element.WithLabel
	WithDefault    = element.WithDefault
	WithFilters    = element.WithFilters
	WithValidators = element.WithValidators
	WithWidget     = element.WithWidget
)

// Form construction options.
var (
	WithAction     = form.WithAction
	WithMethod     = form.WithMethod
	WithAttributes = form.WithAttributes
	WithEntity     = form.WithEntity
)

// New builds an element with the given name and attributes.
func New(name string, attrs Attrs, opts ...ElementOption) (*Element, error) {
	return element.New(name, attrs, opts...)
}

// Must builds an element and panics on error; for static declarations.
func Must(name string, attrs Attrs, opts ...ElementOption) *Element {
	return element.Must(element.New(name, attrs, opts...))
}

// NewForm builds an empty form.
func NewForm(opts ...FormOption) *Form {
	return form.New(opts...)
}

// FromOpenAPI builds the form for one operation declared in an OpenAPI 3
// document.
func FromOpenAPI(ctx context.Context, document []byte, operationID string, opts ...openapi.Option) (*Form, error) {
	return openapi.BuildForm(ctx, document, operationID, opts...)
}

// LoadDefinitions loads declarative form definitions (JSON or YAML) from a
// filesystem; build concrete forms through the returned store.
func LoadDefinitions(fsys fs.FS) (*schema.Store, error) {
	return schema.LoadFS(fsys)
}
