// Package schema loads declarative form definitions from JSON or YAML
// documents and builds runtime forms from them.
package schema

// Definition is the top-level shape of one definition document. A document
// may declare any number of forms keyed by id.
type Definition struct {
	Forms map[string]FormDef `json:"forms" yaml:"forms"`
}

// FormDef describes one form: its submit target and the ordered elements.
type FormDef struct {
	Action     string         `json:"action" yaml:"action"`
	Method     string         `json:"method" yaml:"method"`
	Attributes map[string]any `json:"attributes" yaml:"attributes"`
	Elements   []ElementDef   `json:"elements" yaml:"elements"`
}

// ElementDef describes one element. Kind selects the widget and defaults to
// "text"; Filters accepts a single name or a list of names, mirroring the
// runtime element API.
type ElementDef struct {
	Name       string         `json:"name" yaml:"name"`
	Kind       string         `json:"kind" yaml:"kind"`
	Label      string         `json:"label" yaml:"label"`
	Default    any            `json:"default" yaml:"default"`
	Attributes map[string]any `json:"attributes" yaml:"attributes"`
	Options    map[string]any `json:"options" yaml:"options"`
	Filters    any            `json:"filters" yaml:"filters"`
	Choices    []ChoiceDef    `json:"choices" yaml:"choices"`
	Validators []ValidatorDef `json:"validators" yaml:"validators"`
}

// ChoiceDef is one selectable option of a select element.
type ChoiceDef struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// ValidatorDef names a validation rule with its parameters and an optional
// message template override.
type ValidatorDef struct {
	Rule    string         `json:"rule" yaml:"rule"`
	Message string         `json:"message" yaml:"message"`
	Params  map[string]any `json:"params" yaml:"params"`
}
