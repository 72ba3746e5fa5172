package widgets

import (
	"github.com/goliatone/go-forms/pkg/element"
	"github.com/goliatone/go-forms/pkg/tag"
)

// The constructors below build an element with the matching widget already
// attached. Options run after the widget is set, so callers can still
// override it.

func newElement(name string, attrs tag.Attrs, w element.Widget, opts []element.Option) (*element.Element, error) {
	merged := make([]element.Option, 0, len(opts)+1)
	merged = append(merged, element.WithWidget(w))
	merged = append(merged, opts...)
	return element.New(name, attrs, merged...)
}

// Text builds a single-line text element.
func Text(name string, attrs tag.Attrs, opts ...element.Option) (*element.Element, error) {
	return newElement(name, attrs, InputWidget("text"), opts)
}

// Password builds a password element.
func Password(name string, attrs tag.Attrs, opts ...element.Option) (*element.Element, error) {
	return newElement(name, attrs, InputWidget("password"), opts)
}

// Hidden builds a hidden element.
func Hidden(name string, attrs tag.Attrs, opts ...element.Option) (*element.Element, error) {
	return newElement(name, attrs, InputWidget("hidden"), opts)
}

// Email builds an email element.
func Email(name string, attrs tag.Attrs, opts ...element.Option) (*element.Element, error) {
	return newElement(name, attrs, InputWidget("email"), opts)
}

// Numeric builds a numeric element.
func Numeric(name string, attrs tag.Attrs, opts ...element.Option) (*element.Element, error) {
	return newElement(name, attrs, InputWidget("number"), opts)
}

// Date builds a date element.
func Date(name string, attrs tag.Attrs, opts ...element.Option) (*element.Element, error) {
	return newElement(name, attrs, InputWidget("date"), opts)
}

// File builds a file upload element.
func File(name string, attrs tag.Attrs, opts ...element.Option) (*element.Element, error) {
	return newElement(name, attrs, InputWidget("file"), opts)
}

// Submit builds a submit element.
func Submit(name string, attrs tag.Attrs, opts ...element.Option) (*element.Element, error) {
	return newElement(name, attrs, InputWidget("submit"), opts)
}

// Check builds a checkbox element.
func Check(name string, attrs tag.Attrs, opts ...element.Option) (*element.Element, error) {
	return newElement(name, attrs, CheckableWidget("checkbox"), opts)
}

// Radio builds a radio element.
func Radio(name string, attrs tag.Attrs, opts ...element.Option) (*element.Element, error) {
	return newElement(name, attrs, CheckableWidget("radio"), opts)
}

// TextArea builds a multi-line text element.
func TextArea(name string, attrs tag.Attrs, opts ...element.Option) (*element.Element, error) {
	return newElement(name, attrs, TextAreaWidget(), opts)
}

// Select builds a select element with static choices.
func Select(name string, choices []Choice, attrs tag.Attrs, opts ...element.Option) (*element.Element, error) {
	return newElement(name, attrs, SelectWidget(choices...), opts)
}
