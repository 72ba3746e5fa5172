package theme

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	gotheme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-forms/pkg/form"
	"github.com/goliatone/go-forms/pkg/tag"
	"github.com/goliatone/go-forms/pkg/widgets"
)

func testSelection() *gotheme.Selection {
	return &gotheme.Selection{
		Theme:   "acme",
		Variant: "dark",
		Manifest: &gotheme.Manifest{
			Name:    "acme",
			Version: "1.0.0",
			Tokens: map[string]string{
				"brand":               "#123456",
				"forms.form.class":    "form",
				"forms.control.class": "control",
				"forms.text.class":    "control--text",
				"forms.check.class":   "control--check",
				"forms.label.class":   "label",
			},
			Templates: map[string]string{
				"forms.input": "themes/acme/input.tmpl",
			},
			Assets: gotheme.Assets{
				Prefix: "/assets/themes/acme",
				Files: map[string]string{
					"stylesheet": "theme.css",
				},
			},
			Variants: map[string]gotheme.Variant{
				"dark": {
					Tokens: map[string]string{
						"brand": "#654321",
					},
					Templates: map[string]string{
						"forms.checkbox": "themes/acme/dark/checkbox.tmpl",
					},
					Assets: gotheme.Assets{
						Files: map[string]string{
							"vendor": "vendor.dark.js",
						},
					},
				},
			},
		},
	}
}

func TestTokens(t *testing.T) {
	t.Parallel()

	want := map[string]string{
		"brand":               "#654321",
		"forms.form.class":    "form",
		"forms.control.class": "control",
		"forms.text.class":    "control--text",
		"forms.check.class":   "control--check",
		"forms.label.class":   "label",
	}
	if diff := cmp.Diff(want, Tokens(testSelection())); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}

	if Tokens(nil) != nil {
		t.Error("Tokens(nil) should be nil")
	}
	if Tokens(&gotheme.Selection{Theme: "bare"}) != nil {
		t.Error("selection without manifest should yield nil tokens")
	}
}

func TestTokensUnknownVariant(t *testing.T) {
	t.Parallel()

	selection := testSelection()
	selection.Variant = "light"

	got := Tokens(selection)
	if got["brand"] != "#123456" {
		t.Errorf("brand = %q, want base token %q", got["brand"], "#123456")
	}
}

func TestCSSVars(t *testing.T) {
	t.Parallel()

	got := CSSVars(testSelection())
	if got["--brand"] != "#654321" {
		t.Errorf("--brand = %q, want %q", got["--brand"], "#654321")
	}
	if got["--forms-form-class"] != "form" {
		t.Errorf("--forms-form-class = %q, want %q", got["--forms-form-class"], "form")
	}
}

func TestStyleBlock(t *testing.T) {
	t.Parallel()

	want := strings.Join([]string{
		":root {",
		"--brand: #654321;",
		"--forms-check-class: control--check;",
		"--forms-control-class: control;",
		"--forms-form-class: form;",
		"--forms-label-class: label;",
		"--forms-text-class: control--text;",
		"}",
	}, "\n")
	if got := StyleBlock(testSelection()); got != want {
		t.Fatalf("StyleBlock() = %q, want %q", got, want)
	}

	if got := StyleBlock(nil); got != "" {
		t.Errorf("StyleBlock(nil) = %q, want empty", got)
	}
}

type stubSelector struct {
	selection *gotheme.Selection
	err       error
	name      string
	variant   string
}

func (s *stubSelector) Select(name, variant string, _ ...gotheme.QueryOption) (*gotheme.Selection, error) {
	s.name, s.variant = name, variant
	if s.err != nil {
		return nil, s.err
	}
	return s.selection, nil
}

func TestSelect(t *testing.T) {
	t.Parallel()

	selection := testSelection()
	selector := &stubSelector{selection: selection}

	got, err := Select(selector, "acme", "dark")
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if got != selection {
		t.Error("expected the selector's selection back")
	}
	if selector.name != "acme" || selector.variant != "dark" {
		t.Errorf("selector called with %q/%q, want acme/dark", selector.name, selector.variant)
	}
}

func TestSelectErrors(t *testing.T) {
	t.Parallel()

	if _, err := Select(nil, "acme", ""); err == nil {
		t.Error("expected error for nil selector")
	}

	boom := errors.New("boom")
	if _, err := Select(&stubSelector{err: boom}, "acme", ""); !errors.Is(err, boom) {
		t.Errorf("Select() error = %v, want wrapped boom", err)
	}

	if _, err := Select(&stubSelector{}, "acme", ""); err == nil {
		t.Error("expected error for nil selection")
	}
}

func TestRendererConfig(t *testing.T) {
	t.Parallel()

	cfg := RendererConfig(testSelection(), WithPartialFallbacks(map[string]string{
		"forms.input":    "fallback/input.tmpl",
		"forms.textarea": "fallback/textarea.tmpl",
	}))
	if cfg == nil {
		t.Fatal("expected renderer config")
	}

	if cfg.Theme != "acme" || cfg.Variant != "dark" {
		t.Errorf("selection identity = %s/%s, want acme/dark", cfg.Theme, cfg.Variant)
	}

	wantPartials := map[string]string{
		"forms.input":    "themes/acme/input.tmpl",
		"forms.textarea": "fallback/textarea.tmpl",
		"forms.checkbox": "themes/acme/dark/checkbox.tmpl",
	}
	if diff := cmp.Diff(wantPartials, cfg.Partials); diff != "" {
		t.Fatalf("partials mismatch (-want +got):\n%s", diff)
	}

	if cfg.Tokens["brand"] != "#654321" {
		t.Errorf("tokens brand = %q, want %q", cfg.Tokens["brand"], "#654321")
	}
	if cfg.CSSVars["--brand"] != "#654321" {
		t.Errorf("css vars brand = %q, want %q", cfg.CSSVars["--brand"], "#654321")
	}

	if cfg.AssetURL == nil {
		t.Fatal("expected asset resolver")
	}
	if got := cfg.AssetURL("vendor"); got != "/assets/themes/acme/vendor.dark.js" {
		t.Errorf("AssetURL(vendor) = %q, want variant file under manifest prefix", got)
	}
	if got := cfg.AssetURL("stylesheet"); got != "/assets/themes/acme/theme.css" {
		t.Errorf("AssetURL(stylesheet) = %q, want manifest file", got)
	}
	if got := cfg.AssetURL("missing"); got != "" {
		t.Errorf("AssetURL(missing) = %q, want empty", got)
	}

	if RendererConfig(nil) != nil {
		t.Error("RendererConfig(nil) should be nil")
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	username, err := widgets.Text("username", tag.Attrs{"class": "control"})
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	agree, err := widgets.Check("agree", nil)
	if err != nil {
		t.Fatalf("Check() error = %v", err)
	}

	f := form.New(form.WithAttributes(tag.Attrs{"class": "signup"}))
	f.MustAdd(username).MustAdd(agree)

	if err := Apply(f, testSelection()); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if got := f.Attributes()["class"]; got != "signup form" {
		t.Errorf("form class = %v, want %q", got, "signup form")
	}
	if got := username.Attribute("class", nil); got != "control control--text" {
		t.Errorf("username class = %v, want %q", got, "control control--text")
	}
	if got := agree.Attribute("class", nil); got != "control control--check" {
		t.Errorf("agree class = %v, want %q", got, "control control--check")
	}
	if got := username.UserOption(LabelClassOption, nil); got != "label" {
		t.Errorf("username label class = %v, want %q", got, "label")
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	t.Parallel()

	username, err := widgets.Text("username", nil)
	if err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	f := form.New()
	f.MustAdd(username)

	for i := 0; i < 2; i++ {
		if err := Apply(f, testSelection()); err != nil {
			t.Fatalf("Apply() error = %v", err)
		}
	}

	if got := username.Attribute("class", nil); got != "control control--text" {
		t.Errorf("username class = %v, want %q", got, "control control--text")
	}
}

func TestApplyWithoutTokens(t *testing.T) {
	t.Parallel()

	f := form.New(form.WithAttributes(tag.Attrs{"class": "plain"}))
	if err := Apply(f, nil); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if got := f.Attributes()["class"]; got != "plain" {
		t.Errorf("form class = %v, want untouched %q", got, "plain")
	}

	if err := Apply(nil, testSelection()); err == nil {
		t.Error("expected error for nil form")
	}
}
