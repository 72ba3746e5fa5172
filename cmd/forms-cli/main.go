package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-forms/pkg/form"
	"github.com/goliatone/go-forms/pkg/openapi"
	"github.com/goliatone/go-forms/pkg/schema"
	"github.com/goliatone/go-forms/pkg/widgets"
)

func main() {
	definition := flag.String("definition", "", "form definition file (JSON or YAML)")
	formID := flag.String("form", "", "form id to render (defaults to the only one defined)")
	document := flag.String("openapi", "", "OpenAPI document path")
	operation := flag.String("operation", "", "operation ID to build the form from")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	if (*definition == "") == (*document == "") {
		log.Fatal("Pass exactly one of -definition or -openapi")
	}

	ctx := context.Background()

	var (
		f   *form.Form
		err error
	)
	if *definition != "" {
		f, err = formFromDefinition(*definition, *formID)
	} else {
		f, err = formFromOpenAPI(ctx, *document, *operation)
	}
	if err != nil {
		log.Fatalf("Failed to build form: %v", err)
	}

	markup, err := renderForm(f)
	if err != nil {
		log.Fatalf("Failed to render form: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, []byte(markup), 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Form written to %s\n", *output)
	} else {
		fmt.Println(markup)
	}
}

func formFromDefinition(path, id string) (*form.Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	store, err := schema.Load(data, path)
	if err != nil {
		return nil, err
	}

	if id == "" {
		ids := store.IDs()
		switch len(ids) {
		case 0:
			return nil, fmt.Errorf("%s defines no forms", path)
		case 1:
			id = ids[0]
		default:
			return nil, fmt.Errorf("pass -form to pick one of: %s", strings.Join(ids, ", "))
		}
	}

	return store.Form(id)
}

func formFromOpenAPI(ctx context.Context, path, operationID string) (*form.Form, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if operationID == "" {
		refs, err := openapi.Operations(ctx, data)
		if err != nil {
			return nil, err
		}
		ids := make([]string, len(refs))
		for i, ref := range refs {
			ids[i] = ref.ID
		}
		return nil, fmt.Errorf("pass -operation to pick one of: %s", strings.Join(ids, ", "))
	}

	return openapi.BuildForm(ctx, data, operationID)
}

func renderForm(f *form.Form) (string, error) {
	var b strings.Builder
	b.WriteString(f.Open())
	b.WriteString("\n")

	for _, el := range f.Elements() {
		kind := widgets.Kind(el.Widget())
		if kind != widgets.KindHidden && kind != widgets.KindSubmit {
			b.WriteString("  " + el.RenderLabel(nil) + "\n")
		}

		control, err := el.Render()
		if err != nil {
			return "", fmt.Errorf("render %s: %w", el.Name(), err)
		}
		b.WriteString("  " + control + "\n")
	}

	b.WriteString(f.Close())
	return b.String(), nil
}
