// Package validation checks submitted form values. Rules follow one
// convention: empty values pass everything except Required, so optional
// fields stay optional until a value shows up.
package validation

import (
	"errors"
)

// Validator checks a single submitted value. Implementations return nil for
// valid input and an error describing the failure otherwise.
type Validator interface {
	Validate(value any) error
}

// ValidatorFunc adapts a function to the Validator interface.
type ValidatorFunc func(value any) error

// Validate calls f.
func (f ValidatorFunc) Validate(value any) error {
	return f(value)
}

// Rule kind identifiers, used to tag the messages a failed rule produces.
const (
	RuleRequired  = "required"
	RuleMinLength = "minLength"
	RuleMaxLength = "maxLength"
	RuleMin       = "min"
	RuleMax       = "max"
	RuleBetween   = "between"
	RulePattern   = "pattern"
	RuleEmail     = "email"
	RuleURL       = "url"
	RuleNumeric   = "numeric"
	RuleAlpha     = "alpha"
	RuleInList    = "in"
	RuleNotInList = "notIn"
)

// RuleError reports a failed rule. Template is a message template rendered
// with the rule's Params plus whatever context the caller adds (field, label,
// value).
type RuleError struct {
	Kind     string
	Template string
	Params   map[string]any
}

// Error renders the template with the rule params only. Callers that know
// the field context should prefer Render.
func (e *RuleError) Error() string {
	return RenderMessage(e.Template, e.Params)
}

// Render produces the display message for a validation failure. Rule errors
// render their template with the rule params overlaid by ctx; other errors
// pass through unchanged.
func Render(err error, ctx map[string]any) string {
	if err == nil {
		return ""
	}
	var rule *RuleError
	if !errors.As(err, &rule) {
		return err.Error()
	}

	merged := make(map[string]any, len(rule.Params)+len(ctx))
	for key, value := range rule.Params {
		merged[key] = value
	}
	for key, value := range ctx {
		merged[key] = value
	}
	return RenderMessage(rule.Template, merged)
}

// Kind returns the rule kind that produced err, or "" for foreign errors.
func Kind(err error) string {
	var rule *RuleError
	if errors.As(err, &rule) {
		return rule.Kind
	}
	return ""
}
