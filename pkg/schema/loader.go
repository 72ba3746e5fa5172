package schema

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-forms/pkg/widgets"
)

// Store holds the form definitions collected from a filesystem walk.
type Store struct {
	forms   map[string]entry
	widgets *widgets.Registry
}

type entry struct {
	def    FormDef
	source string
}

// LoadFS walks the provided filesystem and parses every JSON/YAML definition
// file. When fsys is nil or no definition files are present, the returned
// store is empty. Form ids are unique across the whole tree.
func LoadFS(fsys fs.FS) (*Store, error) {
	store := &Store{forms: make(map[string]entry)}
	if fsys == nil {
		return store, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, dirEntry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if dirEntry.IsDir() {
			return nil
		}
		if !isDefinitionFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("schema: read %s: %w", path, err)
		}

		return store.addDocument(data, path)
	})
	if err != nil {
		return nil, err
	}

	return store, nil
}

// Load parses a single definition document. Source names the document in
// error messages, typically its file path.
func Load(data []byte, source string) (*Store, error) {
	store := &Store{forms: make(map[string]entry)}
	if err := store.addDocument(data, source); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *Store) addDocument(data []byte, source string) error {
	doc, err := parseDefinition(data, source)
	if err != nil {
		return err
	}

	for rawID, def := range doc.Forms {
		id := strings.TrimSpace(rawID)
		if id == "" {
			return fmt.Errorf("schema: file %s defines an empty form id", source)
		}
		if existing, exists := s.forms[id]; exists {
			return fmt.Errorf("schema: duplicate form %q (files %s and %s)", id, existing.source, source)
		}
		s.forms[id] = entry{def: def, source: source}
	}
	return nil
}

func isDefinitionFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func parseDefinition(data []byte, source string) (Definition, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Definition{}, fmt.Errorf("schema: file %s is empty", source)
	}

	var doc Definition
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return Definition{}, fmt.Errorf("schema: parse %s: invalid JSON or YAML", source)
}

// UseWidgets overrides the widget registry forms are built against. The
// default carries every built-in kind.
func (s *Store) UseWidgets(reg *widgets.Registry) {
	s.widgets = reg
}

// Has reports whether a form id is defined.
func (s *Store) Has(id string) bool {
	if s == nil {
		return false
	}
	_, ok := s.forms[id]
	return ok
}

// IDs returns the defined form ids, sorted.
func (s *Store) IDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, 0, len(s.forms))
	for id := range s.forms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Empty reports whether the store holds any definitions.
func (s *Store) Empty() bool {
	return s == nil || len(s.forms) == 0
}

// Definition returns the raw definition for a form id.
func (s *Store) Definition(id string) (FormDef, bool) {
	if s == nil {
		return FormDef{}, false
	}
	e, ok := s.forms[id]
	return e.def, ok
}

// Source returns the file a form id was loaded from.
func (s *Store) Source(id string) (string, bool) {
	if s == nil {
		return "", false
	}
	e, ok := s.forms[id]
	return e.source, ok
}
