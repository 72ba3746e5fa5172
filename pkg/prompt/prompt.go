// Package prompt fills forms interactively: each element becomes a terminal
// prompt chosen by its widget kind, element rules run inline as the user
// types, and the collected answers bind back through the form for a final
// validation pass.
package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-forms/internal/coerce"
	"github.com/goliatone/go-forms/internal/label"
	"github.com/goliatone/go-forms/pkg/element"
	"github.com/goliatone/go-forms/pkg/form"
	"github.com/goliatone/go-forms/pkg/validation"
	"github.com/goliatone/go-forms/pkg/widgets"
)

// ErrAborted reports that the user interrupted the fill flow.
var ErrAborted = errors.New("prompt: aborted")

// ErrInvalid reports that the bound answers failed the form's validation
// pass; the form's message bag carries the details.
var ErrInvalid = errors.New("prompt: form did not validate")

// InputConfig configures text prompts, single and multi line.
type InputConfig struct {
	Message   string
	Default   string
	Help      string
	Validator func(string) error
}

// ConfirmConfig configures a yes/no prompt.
type ConfirmConfig struct {
	Message string
	Default bool
	Help    string
}

// SelectConfig configures a single-choice prompt.
type SelectConfig struct {
	Message      string
	Options      []string
	DefaultIndex int
	Help         string
	PageSize     int
}

// Driver abstracts the terminal implementation so fill logic can run
// against a script instead of a TTY.
type Driver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Password(ctx context.Context, cfg InputConfig) (string, error)
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)
	Select(ctx context.Context, cfg SelectConfig) (int, error)
	TextArea(ctx context.Context, cfg InputConfig) (string, error)
	Info(ctx context.Context, msg string) error
}

// Option adjusts how Fill drives the prompts.
type Option func(*config)

type config struct {
	driver   Driver
	pageSize int
}

// WithDriver swaps the terminal driver.
func WithDriver(d Driver) Option {
	return func(cfg *config) {
		if d != nil {
			cfg.driver = d
		}
	}
}

// WithPageSize caps how many select options render at once.
func WithPageSize(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.pageSize = n
		}
	}
}

func buildConfig(opts []Option) config {
	cfg := config{driver: NewSurveyDriver()}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Fill walks the form's elements in order, prompting for each one. Hidden
// and submit elements are skipped. Answers bind back through the form, so
// filters apply and failures land in the message bags; when the final pass
// fails the messages print through the driver and Fill returns ErrInvalid.
func Fill(ctx context.Context, f *form.Form, opts ...Option) error {
	if f == nil {
		return errors.New("prompt: form is required")
	}

	cfg := buildConfig(opts)

	answers := make(map[string]any, f.Len())
	for _, el := range f.Elements() {
		kind := widgets.Kind(el.Widget())
		if kind == widgets.KindHidden || kind == widgets.KindSubmit {
			continue
		}

		value, err := promptElement(ctx, cfg, el, kind)
		if err != nil {
			return err
		}
		answers[el.Name()] = value
	}

	ok, err := f.IsValid(answers)
	if err != nil {
		return fmt.Errorf("prompt: bind answers: %w", err)
	}
	if !ok {
		for _, text := range f.Messages().Texts() {
			if err := cfg.driver.Info(ctx, text); err != nil {
				return err
			}
		}
		return ErrInvalid
	}
	return nil
}

func promptElement(ctx context.Context, cfg config, el *element.Element, kind string) (any, error) {
	message := el.Label()
	if message == "" {
		message = label.Humanize(el.Name())
	}
	help := coerce.ToString(el.UserOption("help", nil))

	switch kind {
	case widgets.KindCheck:
		return cfg.driver.Confirm(ctx, ConfirmConfig{
			Message: message,
			Default: coerce.Truthy(seedValue(el)),
			Help:    help,
		})
	case widgets.KindSelect, widgets.KindRadio:
		if choices := widgets.Choices(el.Widget()); len(choices) > 0 {
			return promptChoice(ctx, cfg, el, message, help, choices)
		}
	case widgets.KindTextArea:
		return cfg.driver.TextArea(ctx, inputConfig(el, message, help))
	case widgets.KindPassword:
		return cfg.driver.Password(ctx, inputConfig(el, message, help))
	}
	return cfg.driver.Input(ctx, inputConfig(el, message, help))
}

func promptChoice(ctx context.Context, cfg config, el *element.Element, message, help string, choices []widgets.Choice) (any, error) {
	options := make([]string, len(choices))
	defaultIndex := 0
	for i, choice := range choices {
		options[i] = choice.Label
		if coerce.LooseEqual(seedValue(el), choice.Value) {
			defaultIndex = i
		}
	}

	idx, err := cfg.driver.Select(ctx, SelectConfig{
		Message:      message,
		Options:      options,
		DefaultIndex: defaultIndex,
		Help:         help,
		PageSize:     cfg.pageSize,
	})
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(choices) {
		return nil, fmt.Errorf("prompt: %s: selection out of range", el.Name())
	}
	return choices[idx].Value, nil
}

func inputConfig(el *element.Element, message, help string) InputConfig {
	return InputConfig{
		Message:   message,
		Default:   coerce.ToString(seedValue(el)),
		Help:      help,
		Validator: elementValidator(el, message),
	}
}

// seedValue picks what a prompt offers before the user answers: the resolved
// value when one exists, otherwise the element's declared default. Attached
// forms answer nil until input is bound.
func seedValue(el *element.Element) any {
	if value := el.Value(); value != nil {
		return value
	}
	return el.Default()
}

// elementValidator runs the element's rules inline so mistakes surface
// before the prompt advances.
func elementValidator(el *element.Element, caption string) func(string) error {
	rules := el.Validators()
	if len(rules) == 0 {
		return nil
	}

	field := el.Name()
	return func(input string) error {
		ctx := map[string]any{"field": field, "label": caption, "value": input}
		for _, rule := range rules {
			if err := rule.Validate(input); err != nil {
				return errors.New(validation.Render(err, ctx))
			}
		}
		return nil
	}
}
