package element

import (
	"html"
	"strings"

	"github.com/goliatone/go-forms/internal/coerce"
	"github.com/goliatone/go-forms/pkg/tag"
)

// PrepareAttributes builds the attribute map a widget renders from: the
// element's stored attributes overlaid with the caller's, plus the resolved
// value. It returns the control name alongside the map and never mutates the
// stored attributes.
//
// With useChecked the resolved value marks checkable controls instead of
// overwriting their submit value: when the merged map already carries a
// "value", a loose match sets checked; when it does not, the resolved value
// becomes the submit value and any truthy resolved value sets checked.
func (e *Element) PrepareAttributes(extra tag.Attrs, useChecked bool) (string, tag.Attrs) {
	merged := tag.Clone(e.attributes)
	for key, value := range extra {
		merged[key] = value
	}

	value := e.Value()
	if value == nil {
		return e.name, merged
	}

	if !useChecked {
		merged["value"] = value
		return e.name, merged
	}

	if current, ok := merged["value"]; ok {
		if coerce.LooseEqual(current, value) {
			merged["checked"] = "checked"
		}
		return e.name, merged
	}

	if coerce.Truthy(value) {
		merged["checked"] = "checked"
	}
	merged["value"] = value
	return e.name, merged
}

// RenderLabel renders the element's <label> markup. The for target is the
// element's id attribute when present, its name otherwise; a caller-supplied
// "for" wins. The body is the element's label when set, the for target
// otherwise.
func (e *Element) RenderLabel(extra tag.Attrs) string {
	target := e.name
	if id, ok := e.attributes["id"]; ok && id != nil {
		target = coerce.ToString(id)
	}

	attrs := tag.Clone(extra)
	if _, ok := attrs["for"]; !ok {
		attrs["for"] = target
	}

	text := e.label
	if text == "" {
		text = target
	}

	var sb strings.Builder
	sb.WriteString(e.Tag().RenderAttributes("<label", attrs))
	sb.WriteString(">")
	sb.WriteString(html.EscapeString(text))
	sb.WriteString("</label>")
	return sb.String()
}

// Render produces the element's control markup through its widget. An
// optional attribute map overlays the element's own for this render only.
func (e *Element) Render(extra ...tag.Attrs) (string, error) {
	if e.widget == nil {
		return "", ErrNoWidget
	}

	var overlay tag.Attrs
	if len(extra) > 0 {
		overlay = extra[0]
	}
	return e.widget.RenderControl(e, overlay)
}

// String renders the element, returning "" when rendering fails; string
// conversion has no error channel.
func (e *Element) String() string {
	out, err := e.Render()
	if err != nil {
		return ""
	}
	return out
}
