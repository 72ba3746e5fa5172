package validation

import (
	"bytes"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
)

var (
	templateSetOnce sync.Once
	templateSet     *pongo2.TemplateSet
)

func messageTemplates() *pongo2.TemplateSet {
	templateSetOnce.Do(func() {
		templateSet = pongo2.NewSet("forms-validation", pongo2.MustNewLocalFileSystemLoader(""))
	})
	return templateSet
}

// RenderMessage interpolates a rule message template. Plain strings come back
// untouched; templates that fail to parse or execute fall back to the raw
// template text.
func RenderMessage(template string, ctx map[string]any) string {
	if template == "" {
		return ""
	}
	if !strings.Contains(template, "{{") && !strings.Contains(template, "{%") {
		return template
	}

	tmpl, err := messageTemplates().FromString(template)
	if err != nil {
		return template
	}

	if ctx == nil {
		ctx = map[string]any{}
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteWriter(pongo2.Context(ctx), &buf); err != nil {
		return template
	}
	return buf.String()
}
