package openapi

import (
	"fmt"
	"math"
	"regexp"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-forms/internal/coerce"
	"github.com/goliatone/go-forms/pkg/element"
	"github.com/goliatone/go-forms/pkg/form"
	"github.com/goliatone/go-forms/pkg/tag"
	"github.com/goliatone/go-forms/pkg/validation"
	"github.com/goliatone/go-forms/pkg/widgets"
)

// addSchemaElements walks an object schema and adds one element per
// property. Nested objects flatten into dotted names.
func addSchemaElements(f *form.Form, schema *openapi3.Schema, prefix string, cfg config) error {
	if firstSchemaType(schema.Type) != "object" || len(schema.Properties) == 0 {
		return nil
	}

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	keys := make([]string, 0, len(schema.Properties))
	for key := range schema.Properties {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		ref := schema.Properties[key]
		if ref == nil || ref.Value == nil {
			continue
		}
		src := ref.Value
		name := prefix + key

		if firstSchemaType(src.Type) == "object" {
			if err := addSchemaElements(f, src, name+".", cfg); err != nil {
				return err
			}
			continue
		}

		el, err := buildElement(name, src, required[key], cfg)
		if err != nil {
			return err
		}
		if err := f.Add(el); err != nil {
			return err
		}
	}
	return nil
}

func buildElement(name string, src *openapi3.Schema, required bool, cfg config) (*element.Element, error) {
	ctl, err := resolveControl(src, cfg)
	if err != nil {
		return nil, fmt.Errorf("property %q: %w", name, err)
	}

	opts := []element.Option{element.WithWidget(ctl.widget)}
	if src.Title != "" {
		opts = append(opts, element.WithLabel(src.Title))
	}
	if src.Default != nil {
		opts = append(opts, element.WithDefault(src.Default))
	}

	userOpts := map[string]any{}
	if src.Description != "" {
		userOpts["help"] = src.Description
	}
	if ctl.list {
		userOpts["list"] = true
	}
	if len(userOpts) > 0 {
		opts = append(opts, element.WithUserOptions(userOpts))
	}

	rules, err := buildRules(src, required)
	if err != nil {
		return nil, fmt.Errorf("property %q: %w", name, err)
	}
	if len(rules) > 0 {
		opts = append(opts, element.WithValidators(rules...))
	}

	el, err := element.New(name, ctl.attrs, opts...)
	if err != nil {
		return nil, fmt.Errorf("property %q: %w", name, err)
	}
	return el, nil
}

// control pairs a widget with the attributes and bookkeeping its schema
// shape demands.
type control struct {
	widget element.Widget
	attrs  tag.Attrs
	list   bool
}

func resolveControl(src *openapi3.Schema, cfg config) (control, error) {
	if firstSchemaType(src.Type) == "array" {
		// Enumerated items become a multi-select; free-form arrays fall
		// back to a text input flagged as a list for binding surfaces.
		if items := src.Items; items != nil && items.Value != nil && len(items.Value.Enum) > 0 {
			return control{
				widget: widgets.SelectWidget(enumChoices(items.Value.Enum)...),
				attrs:  tag.Attrs{"multiple": "multiple"},
			}, nil
		}
		w, err := cfg.widgets.Get(widgets.KindText)
		if err != nil {
			return control{}, fmt.Errorf("element kind %q is not registered", widgets.KindText)
		}
		return control{widget: w, list: true}, nil
	}

	kind := elementKind(src)
	if kind == widgets.KindSelect {
		return control{widget: widgets.SelectWidget(enumChoices(src.Enum)...)}, nil
	}

	w, err := cfg.widgets.Get(kind)
	if err != nil {
		return control{}, fmt.Errorf("element kind %q is not registered", kind)
	}
	return control{widget: w}, nil
}

func enumChoices(enum []any) []widgets.Choice {
	choices := make([]widgets.Choice, 0, len(enum))
	for _, v := range enum {
		s := coerce.ToString(v)
		choices = append(choices, widgets.Choice{Value: s, Label: s})
	}
	return choices
}

// elementKind maps a property schema to a widget kind. Enums become selects
// regardless of type; string formats pick specialized inputs.
func elementKind(src *openapi3.Schema) string {
	if len(src.Enum) > 0 {
		return widgets.KindSelect
	}

	switch firstSchemaType(src.Type) {
	case "boolean":
		return widgets.KindCheck
	case "integer", "number":
		return widgets.KindNumeric
	case "string":
		switch src.Format {
		case "email":
			return widgets.KindEmail
		case "date", "date-time":
			return widgets.KindDate
		case "password":
			return widgets.KindPassword
		case "binary":
			return widgets.KindFile
		}
	}
	return widgets.KindText
}

func buildRules(src *openapi3.Schema, required bool) ([]validation.Validator, error) {
	var rules []validation.Validator
	if required {
		rules = append(rules, validation.Required())
	}

	if len(src.Enum) > 0 {
		values := make([]string, 0, len(src.Enum))
		for _, v := range src.Enum {
			values = append(values, coerce.ToString(v))
		}
		rules = append(rules, validation.InList(values))
		return rules, nil
	}

	switch firstSchemaType(src.Type) {
	case "string":
		if src.MinLength != 0 {
			rules = append(rules, validation.MinLength(int(src.MinLength)))
		}
		if src.MaxLength != nil {
			rules = append(rules, validation.MaxLength(int(*src.MaxLength)))
		}
		if src.Pattern != "" {
			if _, err := regexp.Compile(src.Pattern); err != nil {
				return nil, fmt.Errorf("invalid pattern: %w", err)
			}
			rules = append(rules, validation.Pattern(src.Pattern))
		}
		switch src.Format {
		case "email":
			rules = append(rules, validation.Email())
		case "uri", "url":
			rules = append(rules, validation.URL())
		}
	case "integer", "number":
		switch {
		case src.Min != nil && src.Max != nil:
			rules = append(rules, validation.Between(numericBound(*src.Min), numericBound(*src.Max)))
		case src.Min != nil:
			rules = append(rules, validation.Min(numericBound(*src.Min)))
		case src.Max != nil:
			rules = append(rules, validation.Max(numericBound(*src.Max)))
		}
	}
	return rules, nil
}

// numericBound keeps whole bounds rendering as integers in messages.
func numericBound(f float64) any {
	if f == math.Trunc(f) {
		return int(f)
	}
	return f
}

// firstSchemaType unwraps the schema type union; documents in practice
// declare a single type per property.
func firstSchemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	if slice := types.Slice(); len(slice) > 0 {
		return slice[0]
	}
	return ""
}
