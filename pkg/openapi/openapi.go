// Package openapi builds runtime forms from OpenAPI 3 documents: one form
// per operation, with elements derived from the request body schema and
// validation rules derived from its constraints.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-forms/pkg/form"
	"github.com/goliatone/go-forms/pkg/widgets"
)

// OperationRef identifies one operation found in a document.
type OperationRef struct {
	ID          string
	Method      string
	Path        string
	Summary     string
	Description string
}

// Option configures document-to-form building.
type Option func(*config)

type config struct {
	widgets  *widgets.Registry
	formOpts []form.Option
}

// WithWidgets overrides the widget registry element kinds resolve against.
func WithWidgets(reg *widgets.Registry) Option {
	return func(cfg *config) {
		if reg != nil {
			cfg.widgets = reg
		}
	}
}

// WithFormOptions appends options applied to the built form, after the
// operation-derived action and method.
func WithFormOptions(opts ...form.Option) Option {
	return func(cfg *config) {
		cfg.formOpts = append(cfg.formOpts, opts...)
	}
}

func buildConfig(opts []Option) config {
	cfg := config{widgets: defaultWidgets}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

var defaultWidgets = widgets.Defaults()

// Operations lists the operations a document declares, sorted by id.
// Operations without an operationId get a synthesized "method:path" id.
func Operations(ctx context.Context, raw []byte) ([]OperationRef, error) {
	spec, err := loadDocument(ctx, raw)
	if err != nil {
		return nil, err
	}

	refs := collectOperations(spec)
	out := make([]OperationRef, 0, len(refs))
	for _, ref := range refs {
		out = append(out, ref.OperationRef)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// BuildForm builds the form for one operation, matched by its id. The form's
// action and method come from the operation's path and HTTP method; the
// elements come from the preferred request body media type.
func BuildForm(ctx context.Context, raw []byte, operationID string, opts ...Option) (*form.Form, error) {
	operationID = strings.TrimSpace(operationID)
	if operationID == "" {
		return nil, errors.New("openapi: operation id is required")
	}

	spec, err := loadDocument(ctx, raw)
	if err != nil {
		return nil, err
	}

	var match *boundOperation
	for _, ref := range collectOperations(spec) {
		if ref.ID == operationID {
			ref := ref
			match = &ref
			break
		}
	}
	if match == nil {
		return nil, fmt.Errorf("openapi: operation %q not found", operationID)
	}

	cfg := buildConfig(opts)

	formOpts := []form.Option{
		form.WithAction(match.Path),
		form.WithMethod(strings.ToLower(match.Method)),
	}
	formOpts = append(formOpts, cfg.formOpts...)

	f := form.New(formOpts...)
	schema := requestSchema(match.op)
	if schema != nil && schema.Value != nil {
		if err := addSchemaElements(f, schema.Value, "", cfg); err != nil {
			return nil, fmt.Errorf("openapi: operation %q: %w", operationID, err)
		}
	}
	return f, nil
}

func loadDocument(ctx context.Context, raw []byte) (*openapi3.T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}

	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: false,
	}
	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	if spec.Paths == nil || spec.Paths.Len() == 0 {
		return nil, errors.New("openapi: document does not contain any paths")
	}
	return spec, nil
}

type boundOperation struct {
	OperationRef
	op *openapi3.Operation
}

func collectOperations(spec *openapi3.T) []boundOperation {
	var out []boundOperation
	if spec.Paths == nil {
		return out
	}

	for path, item := range spec.Paths.Map() {
		if item == nil {
			continue
		}
		candidates := []struct {
			method string
			op     *openapi3.Operation
		}{
			{"GET", item.Get},
			{"PUT", item.Put},
			{"POST", item.Post},
			{"DELETE", item.Delete},
			{"PATCH", item.Patch},
			{"HEAD", item.Head},
			{"OPTIONS", item.Options},
			{"TRACE", item.Trace},
		}
		for _, c := range candidates {
			if c.op == nil {
				continue
			}
			id := c.op.OperationID
			if id == "" {
				id = strings.ToLower(c.method) + ":" + path
			}
			out = append(out, boundOperation{
				OperationRef: OperationRef{
					ID:          id,
					Method:      c.method,
					Path:        path,
					Summary:     c.op.Summary,
					Description: c.op.Description,
				},
				op: c.op,
			})
		}
	}
	return out
}

// requestSchema picks the schema of the preferred request media type:
// JSON, then form-urlencoded, then multipart, then whatever is declared.
func requestSchema(op *openapi3.Operation) *openapi3.SchemaRef {
	if op == nil || op.RequestBody == nil || op.RequestBody.Value == nil {
		return nil
	}

	content := op.RequestBody.Value.Content
	for _, mediaType := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[mediaType]; ok {
			return mt.Schema
		}
	}
	for _, mt := range content {
		return mt.Schema
	}
	return nil
}
