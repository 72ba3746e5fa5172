package validation

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"github.com/goliatone/go-forms/internal/coerce"
)

// RuleOption adjusts how a rule reports failures.
type RuleOption func(*ruleConfig)

type ruleConfig struct {
	message string
}

// WithMessage overrides the rule's default message template. Templates may
// reference {{ field }}, {{ label }}, {{ value }} and the rule's own params.
func WithMessage(template string) RuleOption {
	return func(cfg *ruleConfig) {
		if strings.TrimSpace(template) != "" {
			cfg.message = template
		}
	}
}

func buildRuleConfig(fallback string, opts []RuleOption) ruleConfig {
	cfg := ruleConfig{message: fallback}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Required fails on missing values: nil and blank strings.
func Required(opts ...RuleOption) Validator {
	cfg := buildRuleConfig("{{ label }} is required", opts)
	return ValidatorFunc(func(value any) error {
		if coerce.IsEmpty(value) {
			return &RuleError{Kind: RuleRequired, Template: cfg.message}
		}
		return nil
	})
}

// MinLength fails when the value has fewer than n characters.
func MinLength(n int, opts ...RuleOption) Validator {
	cfg := buildRuleConfig("{{ label }} must be at least {{ min }} characters", opts)
	return ValidatorFunc(func(value any) error {
		s := coerce.ToString(value)
		if s == "" {
			return nil
		}
		if len([]rune(s)) < n {
			return &RuleError{Kind: RuleMinLength, Template: cfg.message, Params: map[string]any{"min": n}}
		}
		return nil
	})
}

// MaxLength fails when the value has more than n characters.
func MaxLength(n int, opts ...RuleOption) Validator {
	cfg := buildRuleConfig("{{ label }} must be at most {{ max }} characters", opts)
	return ValidatorFunc(func(value any) error {
		s := coerce.ToString(value)
		if len([]rune(s)) > n {
			return &RuleError{Kind: RuleMaxLength, Template: cfg.message, Params: map[string]any{"max": n}}
		}
		return nil
	})
}

// Min fails when the numeric value is below n.
func Min(n any, opts ...RuleOption) Validator {
	cfg := buildRuleConfig("{{ label }} must be at least {{ min }}", opts)
	floor := coerce.ToFloat64(n)
	return ValidatorFunc(func(value any) error {
		if coerce.IsEmpty(value) {
			return nil
		}
		if coerce.ToFloat64(value) < floor {
			return &RuleError{Kind: RuleMin, Template: cfg.message, Params: map[string]any{"min": n}}
		}
		return nil
	})
}

// Max fails when the numeric value is above n.
func Max(n any, opts ...RuleOption) Validator {
	cfg := buildRuleConfig("{{ label }} must be at most {{ max }}", opts)
	ceil := coerce.ToFloat64(n)
	return ValidatorFunc(func(value any) error {
		if coerce.IsEmpty(value) {
			return nil
		}
		if coerce.ToFloat64(value) > ceil {
			return &RuleError{Kind: RuleMax, Template: cfg.message, Params: map[string]any{"max": n}}
		}
		return nil
	})
}

// Between fails when the numeric value falls outside [min, max].
func Between(min, max any, opts ...RuleOption) Validator {
	cfg := buildRuleConfig("{{ label }} must be between {{ min }} and {{ max }}", opts)
	floor := coerce.ToFloat64(min)
	ceil := coerce.ToFloat64(max)
	return ValidatorFunc(func(value any) error {
		if coerce.IsEmpty(value) {
			return nil
		}
		v := coerce.ToFloat64(value)
		if v < floor || v > ceil {
			return &RuleError{Kind: RuleBetween, Template: cfg.message, Params: map[string]any{"min": min, "max": max}}
		}
		return nil
	})
}

// Pattern fails when the value does not match the regular expression. The
// pattern must compile; use regexp.Compile beforehand when it comes from
// untrusted configuration.
func Pattern(pattern string, opts ...RuleOption) Validator {
	re := regexp.MustCompile(pattern)
	cfg := buildRuleConfig("{{ label }} has an invalid format", opts)
	return ValidatorFunc(func(value any) error {
		s := coerce.ToString(value)
		if s == "" {
			return nil
		}
		if !re.MatchString(s) {
			return &RuleError{Kind: RulePattern, Template: cfg.message, Params: map[string]any{"pattern": pattern}}
		}
		return nil
	})
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email fails when the value does not look like an email address.
func Email(opts ...RuleOption) Validator {
	cfg := buildRuleConfig("{{ label }} must be a valid email address", opts)
	return ValidatorFunc(func(value any) error {
		s := coerce.ToString(value)
		if s == "" {
			return nil
		}
		if !emailPattern.MatchString(s) {
			return &RuleError{Kind: RuleEmail, Template: cfg.message}
		}
		return nil
	})
}

// URL fails when the value does not parse as an absolute URL.
func URL(opts ...RuleOption) Validator {
	cfg := buildRuleConfig("{{ label }} must be a valid URL", opts)
	return ValidatorFunc(func(value any) error {
		s := coerce.ToString(value)
		if s == "" {
			return nil
		}
		u, err := url.Parse(s)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return &RuleError{Kind: RuleURL, Template: cfg.message}
		}
		return nil
	})
}

// Numeric fails when the value contains anything besides digits.
func Numeric(opts ...RuleOption) Validator {
	cfg := buildRuleConfig("{{ label }} must contain only digits", opts)
	return ValidatorFunc(func(value any) error {
		s := coerce.ToString(value)
		if s == "" {
			return nil
		}
		for _, r := range s {
			if !unicode.IsDigit(r) {
				return &RuleError{Kind: RuleNumeric, Template: cfg.message}
			}
		}
		return nil
	})
}

// Alpha fails when the value contains anything besides letters.
func Alpha(opts ...RuleOption) Validator {
	cfg := buildRuleConfig("{{ label }} must contain only letters", opts)
	return ValidatorFunc(func(value any) error {
		s := coerce.ToString(value)
		if s == "" {
			return nil
		}
		for _, r := range s {
			if !unicode.IsLetter(r) {
				return &RuleError{Kind: RuleAlpha, Template: cfg.message}
			}
		}
		return nil
	})
}

// InList fails when the value matches none of the allowed values. Comparison
// is loose, so 1 matches "1".
func InList(allowed []string, opts ...RuleOption) Validator {
	cfg := buildRuleConfig("{{ label }} must be one of: {{ allowed }}", opts)
	values := make([]string, len(allowed))
	copy(values, allowed)
	return ValidatorFunc(func(value any) error {
		if coerce.IsEmpty(value) {
			return nil
		}
		for _, candidate := range values {
			if coerce.LooseEqual(value, candidate) {
				return nil
			}
		}
		return &RuleError{
			Kind:     RuleInList,
			Template: cfg.message,
			Params:   map[string]any{"allowed": strings.Join(values, ", ")},
		}
	})
}

// NotInList fails when the value matches one of the denied values.
func NotInList(denied []string, opts ...RuleOption) Validator {
	cfg := buildRuleConfig("{{ label }} must not be one of: {{ denied }}", opts)
	values := make([]string, len(denied))
	copy(values, denied)
	return ValidatorFunc(func(value any) error {
		if coerce.IsEmpty(value) {
			return nil
		}
		for _, candidate := range values {
			if coerce.LooseEqual(value, candidate) {
				return &RuleError{
					Kind:     RuleNotInList,
					Template: cfg.message,
					Params:   map[string]any{"denied": strings.Join(values, ", ")},
				}
			}
		}
		return nil
	})
}

// Callback wraps a custom validation function.
func Callback(fn func(value any) error) Validator {
	return ValidatorFunc(fn)
}
