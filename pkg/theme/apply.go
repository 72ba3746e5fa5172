package theme

import (
	"errors"
	"strings"

	gotheme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-forms/internal/coerce"
	"github.com/goliatone/go-forms/pkg/form"
	"github.com/goliatone/go-forms/pkg/widgets"
)

// Token keys Apply understands. Kind-specific classes follow the
// "forms.<kind>.class" convention, e.g. "forms.text.class".
const (
	TokenFormClass    = "forms.form.class"
	TokenControlClass = "forms.control.class"
	TokenLabelClass   = "forms.label.class"
)

// LabelClassOption is the element user option Apply stores merged label
// classes under; render surfaces pass its value to RenderLabel.
const LabelClassOption = "label.class"

// Apply merges the selection's class tokens into the form and its elements.
// Classes already present stay put; theme classes append after them.
func Apply(f *form.Form, selection *gotheme.Selection) error {
	if f == nil {
		return errors.New("theme: form is required")
	}

	tokens := Tokens(selection)
	if len(tokens) == 0 {
		return nil
	}

	if class, ok := tokens[TokenFormClass]; ok {
		f.SetAttribute("class", mergeClass(f.Attributes()["class"], class))
	}

	for _, el := range f.Elements() {
		var additions []string
		if class, ok := tokens[TokenControlClass]; ok {
			additions = append(additions, class)
		}
		if kind := widgets.Kind(el.Widget()); kind != "" {
			if class, ok := tokens["forms."+kind+".class"]; ok {
				additions = append(additions, class)
			}
		}
		if len(additions) > 0 {
			el.SetAttribute("class", mergeClass(el.Attribute("class", nil), additions...))
		}
		if class, ok := tokens[TokenLabelClass]; ok {
			el.SetUserOption(LabelClassOption, mergeClass(el.UserOption(LabelClassOption, nil), class))
		}
	}
	return nil
}

// mergeClass appends class names not already present, preserving order.
func mergeClass(current any, additions ...string) string {
	classes := strings.Fields(coerce.ToString(current))
	seen := make(map[string]bool, len(classes))
	for _, class := range classes {
		seen[class] = true
	}
	for _, addition := range additions {
		for _, class := range strings.Fields(addition) {
			if !seen[class] {
				classes = append(classes, class)
				seen[class] = true
			}
		}
	}
	return strings.Join(classes, " ")
}
