package schema

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func mustLoad(t *testing.T, fsys fstest.MapFS) *Store {
	t.Helper()
	store, err := LoadFS(fsys)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return store
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"forms/contact.json": &fstest.MapFile{Data: []byte(`{
  "forms": {
    "contact": {
      "action": "/contact",
      "elements": [
        {"name": "email", "kind": "email"},
        {"name": "message", "kind": "textarea"}
      ]
    }
  }
}`)},
		"forms/nested/signup.yaml": &fstest.MapFile{Data: []byte(`forms:
  signup:
    action: /signup
    elements:
      - name: username
        filters: [trim, lower]
      - name: plan
        kind: select
        choices:
          - value: basic
          - value: pro
            label: Professional
`)},
		"README.md": &fstest.MapFile{Data: []byte("docs")},
	}

	store := mustLoad(t, fsys)

	want := []string{"contact", "signup"}
	if diff := cmp.Diff(want, store.IDs()); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
	if store.Empty() {
		t.Fatal("expected a populated store")
	}
	if !store.Has("contact") || store.Has("nope") {
		t.Fatal("Has out of sync with loaded forms")
	}

	def, ok := store.Definition("signup")
	if !ok {
		t.Fatal("expected signup definition")
	}
	if def.Action != "/signup" {
		t.Fatalf("action: got %q", def.Action)
	}
	if len(def.Elements) != 2 {
		t.Fatalf("elements: got %d", len(def.Elements))
	}
	if got := def.Elements[0].Filters; got == nil {
		t.Fatal("expected filters to survive parsing")
	}

	src, ok := store.Source("contact")
	if !ok || src != "forms/contact.json" {
		t.Fatalf("source: got %q (ok=%v)", src, ok)
	}
}

func TestLoad(t *testing.T) {
	data := []byte(`forms:
  contact:
    action: /contact
    elements:
      - name: email
        kind: email
  feedback:
    elements:
      - name: message
        kind: textarea
`)

	store, err := Load(data, "contact.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := []string{"contact", "feedback"}
	if diff := cmp.Diff(want, store.IDs()); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}

	src, ok := store.Source("contact")
	if !ok || src != "contact.yaml" {
		t.Fatalf("source: got %q (ok=%v)", src, ok)
	}
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name string
		data string
		want string
	}{
		{name: "empty document", data: "  \n", want: "is empty"},
		{name: "invalid document", data: "not: [valid", want: "invalid JSON or YAML"},
		{name: "empty form id", data: `{"forms": {" ": {}}}`, want: "empty form id"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load([]byte(tc.data), "def.yaml")
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.Contains(err.Error(), "def.yaml") {
				t.Fatalf("error should name the source: %v", err)
			}
		})
	}
}

func TestLoadFSNil(t *testing.T) {
	store, err := LoadFS(nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !store.Empty() {
		t.Fatal("expected an empty store")
	}
	if ids := store.IDs(); len(ids) != 0 {
		t.Fatalf("ids: got %v", ids)
	}
}

func TestLoadFSDuplicateID(t *testing.T) {
	fsys := fstest.MapFS{
		"a.json": &fstest.MapFile{Data: []byte(`{"forms": {"contact": {}}}`)},
		"b.yaml": &fstest.MapFile{Data: []byte("forms:\n  contact: {}\n")},
	}

	_, err := LoadFS(fsys)
	if err == nil {
		t.Fatal("expected duplicate id to fail")
	}
	if !strings.Contains(err.Error(), `duplicate form "contact"`) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadFSEmptyFile(t *testing.T) {
	fsys := fstest.MapFS{
		"a.json": &fstest.MapFile{Data: []byte("   \n")},
	}

	_, err := LoadFS(fsys)
	if err == nil {
		t.Fatal("expected empty file to fail")
	}
	if !strings.Contains(err.Error(), "is empty") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadFSInvalidDocument(t *testing.T) {
	fsys := fstest.MapFS{
		"a.yaml": &fstest.MapFile{Data: []byte("not: [valid")},
	}

	_, err := LoadFS(fsys)
	if err == nil {
		t.Fatal("expected invalid document to fail")
	}
	if !strings.Contains(err.Error(), "invalid JSON or YAML") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoadFSEmptyFormID(t *testing.T) {
	fsys := fstest.MapFS{
		"a.json": &fstest.MapFile{Data: []byte(`{"forms": {"  ": {}}}`)},
	}

	_, err := LoadFS(fsys)
	if err == nil {
		t.Fatal("expected empty form id to fail")
	}
	if !strings.Contains(err.Error(), "empty form id") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNilStoreReads(t *testing.T) {
	var s *Store

	if !s.Empty() {
		t.Fatal("nil store must read as empty")
	}
	if s.Has("x") {
		t.Fatal("nil store must not report forms")
	}
	if ids := s.IDs(); ids != nil {
		t.Fatalf("ids: got %v", ids)
	}
	if _, ok := s.Definition("x"); ok {
		t.Fatal("nil store must not return definitions")
	}
	if _, ok := s.Source("x"); ok {
		t.Fatal("nil store must not return sources")
	}
}
