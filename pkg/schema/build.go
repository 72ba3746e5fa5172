package schema

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/goliatone/go-forms/internal/coerce"
	"github.com/goliatone/go-forms/pkg/element"
	"github.com/goliatone/go-forms/pkg/form"
	"github.com/goliatone/go-forms/pkg/tag"
	"github.com/goliatone/go-forms/pkg/validation"
	"github.com/goliatone/go-forms/pkg/widgets"
)

var defaultWidgets = widgets.Defaults()

// Form builds a fresh runtime form for the id. Every call returns a new
// instance, so per-request mutation never leaks between builds.
func (s *Store) Form(id string, extra ...form.Option) (*form.Form, error) {
	e, ok := s.forms[id]
	if !ok {
		return nil, fmt.Errorf("schema: form %q not found", id)
	}
	return BuildForm(id, e.def, s.widgets, extra...)
}

// BuildForm constructs a runtime form from one definition. The registry
// resolves element kinds; pass nil for the built-in set. Extra options run
// after the definition-derived ones, so callers can attach entities, tag
// helpers or filter registries.
func BuildForm(id string, def FormDef, reg *widgets.Registry, extra ...form.Option) (*form.Form, error) {
	if reg == nil {
		reg = defaultWidgets
	}

	opts := make([]form.Option, 0, len(extra)+3)
	if def.Action != "" {
		opts = append(opts, form.WithAction(def.Action))
	}
	if def.Method != "" {
		opts = append(opts, form.WithMethod(def.Method))
	}
	if len(def.Attributes) > 0 {
		opts = append(opts, form.WithAttributes(tag.Attrs(def.Attributes)))
	}
	opts = append(opts, extra...)

	f := form.New(opts...)
	for _, elDef := range def.Elements {
		el, err := buildElement(elDef, reg)
		if err != nil {
			return nil, fmt.Errorf("schema: form %q: %w", id, err)
		}
		if err := f.Add(el); err != nil {
			return nil, fmt.Errorf("schema: form %q: %w", id, err)
		}
	}
	return f, nil
}

func buildElement(def ElementDef, reg *widgets.Registry) (*element.Element, error) {
	name := strings.TrimSpace(def.Name)
	if name == "" {
		return nil, fmt.Errorf("element name is required")
	}

	w, err := resolveWidget(def, reg)
	if err != nil {
		return nil, fmt.Errorf("element %q: %w", name, err)
	}

	opts := []element.Option{element.WithWidget(w)}
	if def.Label != "" {
		opts = append(opts, element.WithLabel(def.Label))
	}
	if def.Default != nil {
		opts = append(opts, element.WithDefault(def.Default))
	}
	if def.Filters != nil {
		opts = append(opts, element.WithFilters(def.Filters))
	}
	if len(def.Options) > 0 {
		opts = append(opts, element.WithUserOptions(def.Options))
	}

	if len(def.Validators) > 0 {
		rules := make([]validation.Validator, 0, len(def.Validators))
		for _, vdef := range def.Validators {
			rule, err := buildValidator(vdef)
			if err != nil {
				return nil, fmt.Errorf("element %q: %w", name, err)
			}
			rules = append(rules, rule)
		}
		opts = append(opts, element.WithValidators(rules...))
	}

	el, err := element.New(name, tag.Attrs(def.Attributes), opts...)
	if err != nil {
		return nil, fmt.Errorf("element %q: %w", name, err)
	}
	return el, nil
}

// resolveWidget maps an element kind to its widget. Select elements carry
// their choices, so they bypass the registry's stateless instance.
func resolveWidget(def ElementDef, reg *widgets.Registry) (element.Widget, error) {
	kind := strings.TrimSpace(def.Kind)
	if kind == "" {
		kind = widgets.KindText
	}

	if kind == widgets.KindSelect {
		choices := make([]widgets.Choice, len(def.Choices))
		for i, c := range def.Choices {
			label := c.Label
			if label == "" {
				label = c.Value
			}
			choices[i] = widgets.Choice{Value: c.Value, Label: label}
		}
		return widgets.SelectWidget(choices...), nil
	}

	w, err := reg.Get(kind)
	if err != nil {
		return nil, fmt.Errorf("element kind %q is not registered", kind)
	}
	return w, nil
}

func buildValidator(def ValidatorDef) (validation.Validator, error) {
	var opts []validation.RuleOption
	if strings.TrimSpace(def.Message) != "" {
		opts = append(opts, validation.WithMessage(def.Message))
	}

	switch def.Rule {
	case validation.RuleRequired:
		return validation.Required(opts...), nil
	case validation.RuleMinLength:
		n, err := intParam(def.Params, "min")
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", def.Rule, err)
		}
		return validation.MinLength(n, opts...), nil
	case validation.RuleMaxLength:
		n, err := intParam(def.Params, "max")
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", def.Rule, err)
		}
		return validation.MaxLength(n, opts...), nil
	case validation.RuleMin:
		v, err := anyParam(def.Params, "min")
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", def.Rule, err)
		}
		return validation.Min(v, opts...), nil
	case validation.RuleMax:
		v, err := anyParam(def.Params, "max")
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", def.Rule, err)
		}
		return validation.Max(v, opts...), nil
	case validation.RuleBetween:
		lo, err := anyParam(def.Params, "min")
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", def.Rule, err)
		}
		hi, err := anyParam(def.Params, "max")
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", def.Rule, err)
		}
		return validation.Between(lo, hi, opts...), nil
	case validation.RulePattern:
		expr, err := stringParam(def.Params, "pattern")
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", def.Rule, err)
		}
		if _, err := regexp.Compile(expr); err != nil {
			return nil, fmt.Errorf("rule %q: invalid pattern: %w", def.Rule, err)
		}
		return validation.Pattern(expr, opts...), nil
	case validation.RuleEmail:
		return validation.Email(opts...), nil
	case validation.RuleURL:
		return validation.URL(opts...), nil
	case validation.RuleNumeric:
		return validation.Numeric(opts...), nil
	case validation.RuleAlpha:
		return validation.Alpha(opts...), nil
	case validation.RuleInList:
		values, err := listParam(def.Params, "values")
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", def.Rule, err)
		}
		return validation.InList(values, opts...), nil
	case validation.RuleNotInList:
		values, err := listParam(def.Params, "values")
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", def.Rule, err)
		}
		return validation.NotInList(values, opts...), nil
	default:
		return nil, fmt.Errorf("unknown rule %q", def.Rule)
	}
}

func anyParam(params map[string]any, key string) (any, error) {
	v, ok := params[key]
	if !ok {
		return nil, fmt.Errorf("parameter %q is required", key)
	}
	return v, nil
}

func intParam(params map[string]any, key string) (int, error) {
	v, err := anyParam(params, key)
	if err != nil {
		return 0, err
	}
	return int(coerce.ToFloat64(v)), nil
}

func stringParam(params map[string]any, key string) (string, error) {
	v, err := anyParam(params, key)
	if err != nil {
		return "", err
	}
	s := coerce.ToString(v)
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("parameter %q is empty", key)
	}
	return s, nil
}

func listParam(params map[string]any, key string) ([]string, error) {
	v, err := anyParam(params, key)
	if err != nil {
		return nil, err
	}
	values, ok := coerce.StringSlice(v)
	if !ok || len(values) == 0 {
		return nil, fmt.Errorf("parameter %q must be a list of strings", key)
	}
	return values, nil
}
