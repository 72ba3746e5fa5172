package forms

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-forms/pkg/validation"
)

func TestRootRoundTrip(t *testing.T) {
	t.Parallel()

	email := Must("email", Attrs{"placeholder": "you@example.test"},
		WithLabel("Email"),
		WithValidators(validation.Required(), validation.Email()))

	f := NewForm(WithAction("/subscribe"), WithMethod("post"))
	f.MustAdd(email)

	if got := f.Open(); got != `<form action="/subscribe" method="post">` {
		t.Errorf("Open() = %q", got)
	}
	if got := f.Close(); got != "</form>" {
		t.Errorf("Close() = %q", got)
	}

	ok, err := f.IsValid(map[string]any{"email": "nope"})
	if err != nil {
		t.Fatalf("IsValid() error = %v", err)
	}
	if ok {
		t.Fatal("expected validation to fail")
	}
	want := []Message{{Field: "email", Text: "Email must be a valid email address", Kind: validation.RuleEmail}}
	if diff := cmp.Diff(want, f.Messages().Messages()); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}

	ok, err = f.IsValid(map[string]any{"email": "neo@example.test"})
	if err != nil {
		t.Fatalf("IsValid() error = %v", err)
	}
	if !ok {
		t.Fatalf("expected validation to pass, messages: %v", f.Messages().Texts())
	}
}

func TestRootFromOpenAPI(t *testing.T) {
	t.Parallel()

	doc := `{
	  "openapi": "3.0.3",
	  "info": {"title": "t", "version": "1"},
	  "paths": {
	    "/ping": {
	      "post": {
	        "operationId": "ping",
	        "requestBody": {
	          "content": {
	            "application/json": {
	              "schema": {"type": "object", "properties": {"note": {"type": "string"}}}
	            }
	          }
	        },
	        "responses": {"200": {"description": "OK"}}
	      }
	    }
	  }
	}`

	f, err := FromOpenAPI(context.Background(), []byte(doc), "ping")
	if err != nil {
		t.Fatalf("FromOpenAPI() error = %v", err)
	}
	if !f.Has("note") {
		t.Error("expected element note")
	}
	if f.Action() != "/ping" {
		t.Errorf("Action() = %q, want %q", f.Action(), "/ping")
	}
}

func TestRootLoadDefinitions(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"forms/contact.yaml": &fstest.MapFile{Data: []byte(`
forms:
  contact:
    action: /contact
    elements:
      - name: subject
`)},
	}

	store, err := LoadDefinitions(fsys)
	if err != nil {
		t.Fatalf("LoadDefinitions() error = %v", err)
	}
	f, err := store.Form("contact")
	if err != nil {
		t.Fatalf("store.Form() error = %v", err)
	}
	if !f.Has("subject") {
		t.Error("expected element subject")
	}
}
