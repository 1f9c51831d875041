package domain

// Schema is one node of a schema document: either a boolean schema
// (accept-all / reject-all) or an object-form node carrying validation
// keywords. Nodes are treated as immutable once constructed; the WithX
// builder methods return modified copies.
//
// A node with a non-empty Ref defers all structural interpretation to the
// resolved target: sibling keywords are ignored during validation.
type Schema struct {
	// Boolean is non-nil for boolean-form schemas.
	Boolean *bool

	Ref  string
	Type Type

	Definitions *SchemaMap

	// object keywords
	Properties           *SchemaMap
	PatternProperties    *SchemaMap
	AdditionalProperties *Schema
	PropertyNames        *Schema
	Required             []string
	Dependencies         []Dependency
	MaxProperties        *int
	MinProperties        *int

	// array keywords
	Items           Items
	AdditionalItems *Schema
	Contains        *Schema
	MaxItems        *int
	MinItems        *int
	UniqueItems     bool

	// numeric keywords
	MultipleOf       *float64
	Maximum          *float64
	Minimum          *float64
	ExclusiveMaximum *float64
	ExclusiveMinimum *float64

	// string keywords
	MaxLength *int
	MinLength *int
	Pattern   string

	// generic keywords
	Enum  []Value
	Const *Value
	AllOf []*Schema
	AnyOf []*Schema
	OneOf []*Schema

	// annotations
	Default     *Value
	Title       string
	Description string
}

// TrueSchema returns the boolean schema that accepts every value.
func TrueSchema() *Schema {
	b := true
	return &Schema{Boolean: &b}
}

// FalseSchema returns the boolean schema that rejects every value.
func FalseSchema() *Schema {
	b := false
	return &Schema{Boolean: &b}
}

// Blank returns an empty object-form node that accepts anything. Resolvers
// hand it out when no schema information is known so traversal can proceed.
func Blank() *Schema { return &Schema{} }

// IsBoolean reports whether the node is a boolean schema and its value.
func (s *Schema) IsBoolean() (value, ok bool) {
	if s == nil || s.Boolean == nil {
		return false, false
	}
	return *s.Boolean, true
}

// IsBlank reports whether the node carries no keywords at all.
func (s *Schema) IsBlank() bool {
	if s == nil {
		return true
	}
	return s.Boolean == nil &&
		s.Ref == "" &&
		s.Type.IsAny() &&
		s.Definitions.Len() == 0 &&
		s.Properties.Len() == 0 &&
		s.PatternProperties.Len() == 0 &&
		s.AdditionalProperties == nil &&
		s.PropertyNames == nil &&
		len(s.Required) == 0 &&
		len(s.Dependencies) == 0 &&
		s.MaxProperties == nil && s.MinProperties == nil &&
		s.Items.IsNone() &&
		s.AdditionalItems == nil &&
		s.Contains == nil &&
		s.MaxItems == nil && s.MinItems == nil &&
		!s.UniqueItems &&
		s.MultipleOf == nil &&
		s.Maximum == nil && s.Minimum == nil &&
		s.ExclusiveMaximum == nil && s.ExclusiveMinimum == nil &&
		s.MaxLength == nil && s.MinLength == nil &&
		s.Pattern == "" &&
		len(s.Enum) == 0 &&
		s.Const == nil &&
		len(s.AllOf) == 0 && len(s.AnyOf) == 0 && len(s.OneOf) == 0
}

// Clone returns a copy of the node with fresh keyword containers. Child
// schema pointers are shared since nodes are immutable.
func (s *Schema) Clone() *Schema {
	if s == nil {
		return nil
	}
	out := *s
	out.Definitions = s.Definitions.Clone()
	out.Properties = s.Properties.Clone()
	out.PatternProperties = s.PatternProperties.Clone()
	out.Required = cloneStrings(s.Required)
	out.Dependencies = cloneDependencies(s.Dependencies)
	out.Enum = cloneValues(s.Enum)
	out.AllOf = cloneSchemas(s.AllOf)
	out.AnyOf = cloneSchemas(s.AnyOf)
	out.OneOf = cloneSchemas(s.OneOf)
	out.Items = s.Items.clone()
	return &out
}

// Dependency is one entry of the "dependencies" keyword. Exactly one of
// Schema (schema-form dependency) or Props (property-names form) is set.
type Dependency struct {
	Key    string
	Schema *Schema
	Props  []string
}

// Items models the "items" keyword: absent, a single schema applied to every
// element, or a positional list of schemas.
type Items struct {
	single *Schema
	list   []*Schema
}

// NoItems returns the absent items form.
func NoItems() Items { return Items{} }

// SingleItems returns an items form applying s to every element.
func SingleItems(s *Schema) Items { return Items{single: s} }

// ListItems returns a positional items form.
func ListItems(list ...*Schema) Items {
	ls := make([]*Schema, len(list))
	copy(ls, list)
	return Items{list: ls}
}

// IsNone reports whether the items keyword is absent.
func (it Items) IsNone() bool { return it.single == nil && it.list == nil }

// Single returns the single-schema form.
func (it Items) Single() (*Schema, bool) { return it.single, it.single != nil }

// List returns the positional form.
func (it Items) List() ([]*Schema, bool) { return it.list, it.list != nil }

func (it Items) clone() Items {
	if it.list == nil {
		return it
	}
	return ListItems(it.list...)
}

// SchemaMap is an ordered mapping from names (or patterns) to schema nodes.
type SchemaMap struct {
	keys    []string
	entries map[string]*Schema
}

// NewSchemaMap returns an empty ordered schema map.
func NewSchemaMap() *SchemaMap {
	return &SchemaMap{entries: map[string]*Schema{}}
}

// Set stores a schema under name, appending new names in insertion order.
func (m *SchemaMap) Set(name string, s *Schema) *SchemaMap {
	if m == nil {
		m = NewSchemaMap()
	}
	if _, exists := m.entries[name]; !exists {
		m.keys = append(m.keys, name)
	}
	m.entries[name] = s
	return m
}

// Get looks up a schema by name.
func (m *SchemaMap) Get(name string) (*Schema, bool) {
	if m == nil {
		return nil, false
	}
	s, ok := m.entries[name]
	return s, ok
}

// Keys returns the names in insertion order.
func (m *SchemaMap) Keys() []string {
	if m == nil {
		return nil
	}
	return m.keys
}

// Len reports the number of entries.
func (m *SchemaMap) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Clone returns a copy sharing the child schema pointers.
func (m *SchemaMap) Clone() *SchemaMap {
	if m == nil {
		return nil
	}
	out := NewSchemaMap()
	for _, k := range m.keys {
		out.Set(k, m.entries[k])
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneValues(in []Value) []Value {
	if in == nil {
		return nil
	}
	out := make([]Value, len(in))
	copy(out, in)
	return out
}

func cloneSchemas(in []*Schema) []*Schema {
	if in == nil {
		return nil
	}
	out := make([]*Schema, len(in))
	copy(out, in)
	return out
}

func cloneDependencies(in []Dependency) []Dependency {
	if in == nil {
		return nil
	}
	out := make([]Dependency, len(in))
	copy(out, in)
	return out
}
