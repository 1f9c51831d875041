package domain

// Fluent keyword setters. Every WithX returns a modified copy so schema
// nodes can be assembled keyword-by-keyword without mutating shared state.

// WithType returns a copy with the declared type set.
func (s *Schema) WithType(t Type) *Schema {
	out := s.Clone()
	out.Type = t
	return out
}

// WithRef returns a copy carrying a reference.
func (s *Schema) WithRef(ref string) *Schema {
	out := s.Clone()
	out.Ref = ref
	return out
}

// WithDefinition returns a copy with a named definition added.
func (s *Schema) WithDefinition(name string, def *Schema) *Schema {
	out := s.Clone()
	if out.Definitions == nil {
		out.Definitions = NewSchemaMap()
	}
	out.Definitions.Set(name, def)
	return out
}

// WithProperty returns a copy with a named property schema added.
func (s *Schema) WithProperty(name string, prop *Schema) *Schema {
	out := s.Clone()
	if out.Properties == nil {
		out.Properties = NewSchemaMap()
	}
	out.Properties.Set(name, prop)
	return out
}

// WithPatternProperty returns a copy with a pattern property schema added.
func (s *Schema) WithPatternProperty(pattern string, prop *Schema) *Schema {
	out := s.Clone()
	if out.PatternProperties == nil {
		out.PatternProperties = NewSchemaMap()
	}
	out.PatternProperties.Set(pattern, prop)
	return out
}

// WithAdditionalProperties returns a copy with the fallback property schema set.
func (s *Schema) WithAdditionalProperties(prop *Schema) *Schema {
	out := s.Clone()
	out.AdditionalProperties = prop
	return out
}

// WithPropertyNames returns a copy with the propertyNames schema set.
func (s *Schema) WithPropertyNames(prop *Schema) *Schema {
	out := s.Clone()
	out.PropertyNames = prop
	return out
}

// WithRequired returns a copy with required property names appended.
func (s *Schema) WithRequired(names ...string) *Schema {
	out := s.Clone()
	out.Required = append(out.Required, names...)
	return out
}

// WithDependencySchema returns a copy with a schema-form dependency added.
func (s *Schema) WithDependencySchema(key string, dep *Schema) *Schema {
	out := s.Clone()
	out.Dependencies = append(out.Dependencies, Dependency{Key: key, Schema: dep})
	return out
}

// WithDependentRequired returns a copy with a property-names dependency added.
func (s *Schema) WithDependentRequired(key string, props ...string) *Schema {
	out := s.Clone()
	out.Dependencies = append(out.Dependencies, Dependency{Key: key, Props: cloneStrings(props)})
	return out
}

// WithMaxProperties returns a copy with the maxProperties bound set.
func (s *Schema) WithMaxProperties(n int) *Schema {
	out := s.Clone()
	out.MaxProperties = &n
	return out
}

// WithMinProperties returns a copy with the minProperties bound set.
func (s *Schema) WithMinProperties(n int) *Schema {
	out := s.Clone()
	out.MinProperties = &n
	return out
}

// WithItems returns a copy applying item to every array element.
func (s *Schema) WithItems(item *Schema) *Schema {
	out := s.Clone()
	out.Items = SingleItems(item)
	return out
}

// WithItemList returns a copy using positional item schemas.
func (s *Schema) WithItemList(items ...*Schema) *Schema {
	out := s.Clone()
	out.Items = ListItems(items...)
	return out
}

// WithAdditionalItems returns a copy with the overflow item schema set.
func (s *Schema) WithAdditionalItems(item *Schema) *Schema {
	out := s.Clone()
	out.AdditionalItems = item
	return out
}

// WithContains returns a copy with the contains schema set.
func (s *Schema) WithContains(item *Schema) *Schema {
	out := s.Clone()
	out.Contains = item
	return out
}

// WithMaxItems returns a copy with the maxItems bound set.
func (s *Schema) WithMaxItems(n int) *Schema {
	out := s.Clone()
	out.MaxItems = &n
	return out
}

// WithMinItems returns a copy with the minItems bound set.
func (s *Schema) WithMinItems(n int) *Schema {
	out := s.Clone()
	out.MinItems = &n
	return out
}

// WithUniqueItems returns a copy with the uniqueItems flag set.
func (s *Schema) WithUniqueItems(unique bool) *Schema {
	out := s.Clone()
	out.UniqueItems = unique
	return out
}

// WithMultipleOf returns a copy with the multipleOf divisor set.
func (s *Schema) WithMultipleOf(d float64) *Schema {
	out := s.Clone()
	out.MultipleOf = &d
	return out
}

// WithMaximum returns a copy with the inclusive maximum set.
func (s *Schema) WithMaximum(m float64) *Schema {
	out := s.Clone()
	out.Maximum = &m
	return out
}

// WithMinimum returns a copy with the inclusive minimum set.
func (s *Schema) WithMinimum(m float64) *Schema {
	out := s.Clone()
	out.Minimum = &m
	return out
}

// WithExclusiveMaximum returns a copy with the exclusive maximum set.
func (s *Schema) WithExclusiveMaximum(m float64) *Schema {
	out := s.Clone()
	out.ExclusiveMaximum = &m
	return out
}

// WithExclusiveMinimum returns a copy with the exclusive minimum set.
func (s *Schema) WithExclusiveMinimum(m float64) *Schema {
	out := s.Clone()
	out.ExclusiveMinimum = &m
	return out
}

// WithMaxLength returns a copy with the maximum string length set.
func (s *Schema) WithMaxLength(n int) *Schema {
	out := s.Clone()
	out.MaxLength = &n
	return out
}

// WithMinLength returns a copy with the minimum string length set.
func (s *Schema) WithMinLength(n int) *Schema {
	out := s.Clone()
	out.MinLength = &n
	return out
}

// WithPattern returns a copy with the string pattern set.
func (s *Schema) WithPattern(pattern string) *Schema {
	out := s.Clone()
	out.Pattern = pattern
	return out
}

// WithEnum returns a copy with the enum members set.
func (s *Schema) WithEnum(members ...Value) *Schema {
	out := s.Clone()
	out.Enum = cloneValues(members)
	return out
}

// WithConst returns a copy with the const value set.
func (s *Schema) WithConst(v Value) *Schema {
	out := s.Clone()
	out.Const = &v
	return out
}

// WithAllOf returns a copy with the allOf branch list set.
func (s *Schema) WithAllOf(branches ...*Schema) *Schema {
	out := s.Clone()
	out.AllOf = cloneSchemas(branches)
	return out
}

// WithAnyOf returns a copy with the anyOf branch list set.
func (s *Schema) WithAnyOf(branches ...*Schema) *Schema {
	out := s.Clone()
	out.AnyOf = cloneSchemas(branches)
	return out
}

// WithOneOf returns a copy with the oneOf branch list set.
func (s *Schema) WithOneOf(branches ...*Schema) *Schema {
	out := s.Clone()
	out.OneOf = cloneSchemas(branches)
	return out
}

// WithDefault returns a copy with the default value annotation set.
func (s *Schema) WithDefault(v Value) *Schema {
	out := s.Clone()
	out.Default = &v
	return out
}

// WithTitle returns a copy with the title annotation set.
func (s *Schema) WithTitle(title string) *Schema {
	out := s.Clone()
	out.Title = title
	return out
}

// WithDescription returns a copy with the description annotation set.
func (s *Schema) WithDescription(desc string) *Schema {
	out := s.Clone()
	out.Description = desc
	return out
}
