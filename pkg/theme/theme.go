// Package theme bridges go-theme selections onto runtime forms: manifest
// tokens become element classes and CSS custom properties, templates become
// renderer partials, and asset keys resolve through the manifest prefix.
package theme

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	gotheme "github.com/goliatone/go-theme"
)

// Option adjusts how a selection expands into renderer configuration.
type Option func(*config)

type config struct {
	fallbacks map[string]string
}

// WithPartialFallbacks seeds partial templates used when neither the
// manifest nor the variant overrides them.
func WithPartialFallbacks(partials map[string]string) Option {
	return func(cfg *config) {
		if len(partials) > 0 {
			cfg.fallbacks = partials
		}
	}
}

func buildConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Select resolves a theme and variant through a go-theme selector.
func Select(selector gotheme.ThemeSelector, name, variant string) (*gotheme.Selection, error) {
	if selector == nil {
		return nil, errors.New("theme: selector is required")
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("theme: select %q/%q: %w", name, variant, err)
	}
	if selection == nil {
		return nil, fmt.Errorf("theme: selector returned no selection for %q/%q", name, variant)
	}
	return selection, nil
}

// Tokens merges manifest tokens with the selected variant's overrides.
func Tokens(selection *gotheme.Selection) map[string]string {
	if selection == nil || selection.Manifest == nil {
		return nil
	}
	manifest := selection.Manifest

	out := make(map[string]string, len(manifest.Tokens))
	for key, value := range manifest.Tokens {
		out[key] = value
	}
	if variant, ok := manifest.Variants[selection.Variant]; ok {
		for key, value := range variant.Tokens {
			out[key] = value
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// CSSVars turns merged tokens into custom-property declarations, one
// "--token" per token with dots flattened to dashes.
func CSSVars(selection *gotheme.Selection) map[string]string {
	tokens := Tokens(selection)
	if len(tokens) == 0 {
		return nil
	}
	out := make(map[string]string, len(tokens))
	for key, value := range tokens {
		out[cssVarName(key)] = value
	}
	return out
}

func cssVarName(token string) string {
	return "--" + strings.ReplaceAll(token, ".", "-")
}

// StyleBlock renders the selection's CSS vars as a :root block, "" when the
// selection carries no tokens.
func StyleBlock(selection *gotheme.Selection) string {
	return cssVarsStyle(CSSVars(selection))
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}

// RendererConfig expands a selection into renderer-facing configuration:
// merged tokens, derived CSS vars, partial templates and an asset resolver.
// Partials resolve fallbacks first, then manifest templates, then variant
// overrides.
func RendererConfig(selection *gotheme.Selection, opts ...Option) *gotheme.RendererConfig {
	if selection == nil {
		return nil
	}
	cfg := buildConfig(opts)

	return &gotheme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Tokens:   Tokens(selection),
		CSSVars:  CSSVars(selection),
		Partials: partials(selection, cfg.fallbacks),
		AssetURL: assetResolver(selection),
	}
}

func partials(selection *gotheme.Selection, fallbacks map[string]string) map[string]string {
	out := make(map[string]string, len(fallbacks))
	for key, value := range fallbacks {
		out[key] = value
	}
	if manifest := selection.Manifest; manifest != nil {
		for key, value := range manifest.Templates {
			out[key] = value
		}
		if variant, ok := manifest.Variants[selection.Variant]; ok {
			for key, value := range variant.Templates {
				out[key] = value
			}
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// assetResolver maps asset keys through the variant's files first, then the
// manifest's, joined under the asset prefix. Unknown keys resolve to "".
func assetResolver(selection *gotheme.Selection) func(string) string {
	manifest := selection.Manifest
	if manifest == nil {
		return nil
	}

	prefix := manifest.Assets.Prefix
	files := make(map[string]string, len(manifest.Assets.Files))
	for key, value := range manifest.Assets.Files {
		files[key] = value
	}
	if variant, ok := manifest.Variants[selection.Variant]; ok {
		if variant.Assets.Prefix != "" {
			prefix = variant.Assets.Prefix
		}
		for key, value := range variant.Assets.Files {
			files[key] = value
		}
	}

	return func(key string) string {
		file := files[key]
		if file == "" {
			return ""
		}
		if prefix == "" {
			return file
		}
		return strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(file, "/")
	}
}
