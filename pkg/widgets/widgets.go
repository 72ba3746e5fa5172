package widgets

import (
	"html"
	"strings"

	"github.com/goliatone/go-forms/internal/coerce"
	"github.com/goliatone/go-forms/pkg/element"
	"github.com/goliatone/go-forms/pkg/tag"
)

// Built-in kind names understood by Defaults and the declarative builders.
const (
	KindText     = "text"
	KindPassword = "password"
	KindHidden   = "hidden"
	KindEmail    = "email"
	KindNumeric  = "numeric"
	KindDate     = "date"
	KindFile     = "file"
	KindSubmit   = "submit"
	KindCheck    = "check"
	KindRadio    = "radio"
	KindTextArea = "textarea"
	KindSelect   = "select"
)

// Choice is one selectable option of a select control.
type Choice struct {
	Value string
	Label string
}

type inputWidget struct {
	inputType string
}

type checkableWidget struct {
	inputType string
}

type textAreaWidget struct{}

type selectWidget struct {
	choices []Choice
}

// InputWidget renders a single-line <input> of the given HTML type.
func InputWidget(inputType string) element.Widget {
	return inputWidget{inputType: inputType}
}

// CheckableWidget renders a checkbox or radio <input>, marking it checked
// from the element's resolved value.
func CheckableWidget(inputType string) element.Widget {
	return checkableWidget{inputType: inputType}
}

// TextAreaWidget renders a <textarea> with the resolved value as body.
func TextAreaWidget() element.Widget {
	return textAreaWidget{}
}

// SelectWidget renders a static <select>, marking the choice that matches
// the resolved value as selected.
func SelectWidget(choices ...Choice) element.Widget {
	return selectWidget{choices: choices}
}

func (w inputWidget) RenderControl(el *element.Element, extra tag.Attrs) (string, error) {
	name, attrs := el.PrepareAttributes(extra, false)
	return renderInput(el.Tag(), w.inputType, name, attrs), nil
}

func (w checkableWidget) RenderControl(el *element.Element, extra tag.Attrs) (string, error) {
	name, attrs := el.PrepareAttributes(extra, true)
	return renderInput(el.Tag(), w.inputType, name, attrs), nil
}

func (w textAreaWidget) RenderControl(el *element.Element, extra tag.Attrs) (string, error) {
	name, attrs := el.PrepareAttributes(extra, false)

	body := ""
	if value, ok := attrs["value"]; ok && value != nil {
		body = coerce.ToString(value)
	}
	delete(attrs, "value")
	ensureControlIdentity(attrs, name)

	var sb strings.Builder
	sb.WriteString(el.Tag().RenderAttributes("<textarea", attrs))
	sb.WriteString(">")
	sb.WriteString(html.EscapeString(body))
	sb.WriteString("</textarea>")
	return sb.String(), nil
}

func (w selectWidget) RenderControl(el *element.Element, extra tag.Attrs) (string, error) {
	name, attrs := el.PrepareAttributes(extra, false)

	selected, hasSelected := attrs["value"]
	delete(attrs, "value")
	ensureControlIdentity(attrs, name)

	var sb strings.Builder
	sb.WriteString(el.Tag().RenderAttributes("<select", attrs))
	sb.WriteString(">")
	for _, choice := range w.choices {
		optionAttrs := tag.Attrs{"value": choice.Value}
		if hasSelected && coerce.LooseEqual(selected, choice.Value) {
			optionAttrs["selected"] = "selected"
		}
		sb.WriteString(el.Tag().RenderAttributes("<option", optionAttrs))
		sb.WriteString(">")
		sb.WriteString(html.EscapeString(choice.Label))
		sb.WriteString("</option>")
	}
	sb.WriteString("</select>")
	return sb.String(), nil
}

func renderInput(helper element.TagHelper, inputType, name string, attrs tag.Attrs) string {
	ensureControlIdentity(attrs, name)
	attrs["type"] = inputType
	return helper.RenderAttributes("<input", attrs) + " />"
}

// ensureControlIdentity fills name and id from the control name unless the
// caller set them.
func ensureControlIdentity(attrs tag.Attrs, name string) {
	if _, ok := attrs["name"]; !ok {
		attrs["name"] = name
	}
	if _, ok := attrs["id"]; !ok {
		attrs["id"] = name
	}
}

// Kind reports the kind name a widget renders, "" for foreign widgets.
func Kind(w element.Widget) string {
	switch v := w.(type) {
	case inputWidget:
		switch v.inputType {
		case "number":
			return KindNumeric
		default:
			return v.inputType
		}
	case checkableWidget:
		if v.inputType == "radio" {
			return KindRadio
		}
		return KindCheck
	case textAreaWidget:
		return KindTextArea
	case selectWidget:
		return KindSelect
	default:
		return ""
	}
}

// Choices returns a select widget's options, nil for every other widget.
func Choices(w element.Widget) []Choice {
	if v, ok := w.(selectWidget); ok {
		out := make([]Choice, len(v.choices))
		copy(out, v.choices)
		return out
	}
	return nil
}
