package domain

// SchemaToValue renders a Schema tree back into a document value. Member
// ordering follows a fixed keyword order rather than the source document.
func SchemaToValue(s *Schema) Value {
	if s == nil {
		return Object()
	}
	if b, ok := s.IsBoolean(); ok {
		return Bool(b)
	}

	out := Object()
	if s.Ref != "" {
		out = out.WithField("$ref", String(s.Ref))
	}
	if !s.Type.IsAny() {
		out = out.WithField("type", typeToValue(s.Type))
	}
	if s.Title != "" {
		out = out.WithField("title", String(s.Title))
	}
	if s.Description != "" {
		out = out.WithField("description", String(s.Description))
	}
	out = encodeSchemaMap(out, "definitions", s.Definitions)
	if len(s.Enum) > 0 {
		out = out.WithField("enum", Array(s.Enum...))
	}
	if s.Const != nil {
		out = out.WithField("const", *s.Const)
	}
	out = encodeNumber(out, "multipleOf", s.MultipleOf)
	out = encodeNumber(out, "maximum", s.Maximum)
	out = encodeNumber(out, "minimum", s.Minimum)
	out = encodeNumber(out, "exclusiveMaximum", s.ExclusiveMaximum)
	out = encodeNumber(out, "exclusiveMinimum", s.ExclusiveMinimum)
	out = encodeInt(out, "maxLength", s.MaxLength)
	out = encodeInt(out, "minLength", s.MinLength)
	if s.Pattern != "" {
		out = out.WithField("pattern", String(s.Pattern))
	}
	if single, ok := s.Items.Single(); ok {
		out = out.WithField("items", SchemaToValue(single))
	} else if list, ok := s.Items.List(); ok {
		items := Array()
		for _, child := range list {
			items = items.Append(SchemaToValue(child))
		}
		out = out.WithField("items", items)
	}
	if s.AdditionalItems != nil {
		out = out.WithField("additionalItems", SchemaToValue(s.AdditionalItems))
	}
	if s.Contains != nil {
		out = out.WithField("contains", SchemaToValue(s.Contains))
	}
	out = encodeInt(out, "maxItems", s.MaxItems)
	out = encodeInt(out, "minItems", s.MinItems)
	if s.UniqueItems {
		out = out.WithField("uniqueItems", Bool(true))
	}
	out = encodeInt(out, "maxProperties", s.MaxProperties)
	out = encodeInt(out, "minProperties", s.MinProperties)
	if len(s.Required) > 0 {
		req := Array()
		for _, name := range s.Required {
			req = req.Append(String(name))
		}
		out = out.WithField("required", req)
	}
	out = encodeSchemaMap(out, "properties", s.Properties)
	out = encodeSchemaMap(out, "patternProperties", s.PatternProperties)
	if s.AdditionalProperties != nil {
		out = out.WithField("additionalProperties", SchemaToValue(s.AdditionalProperties))
	}
	if s.PropertyNames != nil {
		out = out.WithField("propertyNames", SchemaToValue(s.PropertyNames))
	}
	if len(s.Dependencies) > 0 {
		deps := Object()
		for _, dep := range s.Dependencies {
			if dep.Schema != nil {
				deps = deps.WithField(dep.Key, SchemaToValue(dep.Schema))
				continue
			}
			props := Array()
			for _, name := range dep.Props {
				props = props.Append(String(name))
			}
			deps = deps.WithField(dep.Key, props)
		}
		out = out.WithField("dependencies", deps)
	}
	out = encodeSchemaList(out, "allOf", s.AllOf)
	out = encodeSchemaList(out, "anyOf", s.AnyOf)
	out = encodeSchemaList(out, "oneOf", s.OneOf)
	if s.Default != nil {
		out = out.WithField("default", *s.Default)
	}
	return out
}

func typeToValue(t Type) Value {
	if k, ok := t.Single(); ok {
		return String(kindName(k))
	}
	if k, ok := t.Nullable(); ok {
		return Array(String(kindName(k)), String("null"))
	}
	if members, ok := t.Union(); ok {
		names := Array()
		for _, m := range members {
			names = names.Append(String(kindName(m)))
		}
		return names
	}
	return Null()
}

func kindName(k Kind) string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "null"
	}
}

func encodeSchemaMap(out Value, key string, m *SchemaMap) Value {
	if m.Len() == 0 {
		return out
	}
	obj := Object()
	for _, name := range m.Keys() {
		child, _ := m.Get(name)
		obj = obj.WithField(name, SchemaToValue(child))
	}
	return out.WithField(key, obj)
}

func encodeSchemaList(out Value, key string, list []*Schema) Value {
	if len(list) == 0 {
		return out
	}
	arr := Array()
	for _, child := range list {
		arr = arr.Append(SchemaToValue(child))
	}
	return out.WithField(key, arr)
}

func encodeNumber(out Value, key string, f *float64) Value {
	if f == nil {
		return out
	}
	return out.WithField(key, Number(*f))
}

func encodeInt(out Value, key string, n *int) Value {
	if n == nil {
		return out
	}
	return out.WithField(key, Number(float64(*n)))
}
