package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrSchemaForm marks a document node that is neither an object nor a
	// boolean where a schema is expected.
	ErrSchemaForm = errors.New("schema: schema node must be an object or boolean")
	// ErrSchemaKeyword marks a keyword whose value has the wrong shape.
	ErrSchemaKeyword = errors.New("schema: malformed keyword")
)

// DecodeSchema parses a JSON schema document into a Schema tree.
func DecodeSchema(data []byte) (*Schema, error) {
	doc, err := DecodeValue(data)
	if err != nil {
		return nil, err
	}
	return SchemaFromValue(doc)
}

// SchemaFromValue builds a Schema node from a decoded document value.
// Unknown keywords are ignored; the check package reports them separately.
func SchemaFromValue(doc Value) (*Schema, error) {
	switch doc.Kind() {
	case KindBool:
		if doc.Bool() {
			return TrueSchema(), nil
		}
		return FalseSchema(), nil
	case KindObject:
		// handled below
	default:
		return nil, ErrSchemaForm
	}

	s := &Schema{}
	for _, key := range doc.Keys() {
		val, _ := doc.Field(key)
		var err error
		switch key {
		case "$ref":
			err = decodeString(key, val, &s.Ref)
		case "type":
			s.Type, err = decodeType(val)
		case "definitions":
			s.Definitions, err = decodeSchemaMap(key, val)
		case "properties":
			s.Properties, err = decodeSchemaMap(key, val)
		case "patternProperties":
			s.PatternProperties, err = decodeSchemaMap(key, val)
		case "additionalProperties":
			s.AdditionalProperties, err = SchemaFromValue(val)
		case "propertyNames":
			s.PropertyNames, err = SchemaFromValue(val)
		case "required":
			s.Required, err = decodeStrings(key, val)
		case "dependencies":
			s.Dependencies, err = decodeDependencies(val)
		case "maxProperties":
			s.MaxProperties, err = decodeInt(key, val)
		case "minProperties":
			s.MinProperties, err = decodeInt(key, val)
		case "items":
			s.Items, err = decodeItems(val)
		case "additionalItems":
			s.AdditionalItems, err = SchemaFromValue(val)
		case "contains":
			s.Contains, err = SchemaFromValue(val)
		case "maxItems":
			s.MaxItems, err = decodeInt(key, val)
		case "minItems":
			s.MinItems, err = decodeInt(key, val)
		case "uniqueItems":
			err = decodeBool(key, val, &s.UniqueItems)
		case "multipleOf":
			s.MultipleOf, err = decodeNumber(key, val)
		case "maximum":
			s.Maximum, err = decodeNumber(key, val)
		case "minimum":
			s.Minimum, err = decodeNumber(key, val)
		case "exclusiveMaximum":
			s.ExclusiveMaximum, err = decodeNumber(key, val)
		case "exclusiveMinimum":
			s.ExclusiveMinimum, err = decodeNumber(key, val)
		case "maxLength":
			s.MaxLength, err = decodeInt(key, val)
		case "minLength":
			s.MinLength, err = decodeInt(key, val)
		case "pattern":
			err = decodeString(key, val, &s.Pattern)
		case "enum":
			if val.Kind() != KindArray {
				err = fmt.Errorf("%w: enum must be an array", ErrSchemaKeyword)
				break
			}
			s.Enum = append([]Value(nil), val.Items()...)
		case "const":
			c := val
			s.Const = &c
		case "allOf":
			s.AllOf, err = decodeSchemaList(key, val)
		case "anyOf":
			s.AnyOf, err = decodeSchemaList(key, val)
		case "oneOf":
			s.OneOf, err = decodeSchemaList(key, val)
		case "default":
			d := val
			s.Default = &d
		case "title":
			err = decodeString(key, val, &s.Title)
		case "description":
			err = decodeString(key, val, &s.Description)
		}
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

func decodeType(val Value) (Type, error) {
	switch val.Kind() {
	case KindString:
		k, err := parseKindName(val.Text())
		if err != nil {
			return AnyType(), err
		}
		return SingleType(k), nil
	case KindArray:
		kinds := make([]Kind, 0, val.Len())
		hasNull := false
		for _, item := range val.Items() {
			if item.Kind() != KindString {
				return AnyType(), fmt.Errorf("%w: type list entries must be strings", ErrSchemaKeyword)
			}
			k, err := parseKindName(item.Text())
			if err != nil {
				return AnyType(), err
			}
			if k == KindNull {
				hasNull = true
			}
			kinds = append(kinds, k)
		}
		if hasNull && len(kinds) == 2 {
			for _, k := range kinds {
				if k != KindNull {
					return NullableType(k), nil
				}
			}
		}
		return UnionType(kinds...), nil
	default:
		return AnyType(), fmt.Errorf("%w: type must be a string or list of strings", ErrSchemaKeyword)
	}
}

func parseKindName(name string) (Kind, error) {
	switch name {
	case "null":
		return KindNull, nil
	case "boolean":
		return KindBool, nil
	case "integer":
		return KindInteger, nil
	case "number":
		return KindFloat, nil
	case "string":
		return KindString, nil
	case "array":
		return KindArray, nil
	case "object":
		return KindObject, nil
	default:
		return KindNull, fmt.Errorf("%w: unknown type name %q", ErrSchemaKeyword, name)
	}
}

func decodeItems(val Value) (Items, error) {
	if val.Kind() == KindArray {
		list := make([]*Schema, 0, val.Len())
		for _, item := range val.Items() {
			child, err := SchemaFromValue(item)
			if err != nil {
				return NoItems(), err
			}
			list = append(list, child)
		}
		return ListItems(list...), nil
	}
	child, err := SchemaFromValue(val)
	if err != nil {
		return NoItems(), err
	}
	return SingleItems(child), nil
}

func decodeDependencies(val Value) ([]Dependency, error) {
	if val.Kind() != KindObject {
		return nil, fmt.Errorf("%w: dependencies must be an object", ErrSchemaKeyword)
	}
	deps := make([]Dependency, 0, val.Len())
	for _, key := range val.Keys() {
		entry, _ := val.Field(key)
		if entry.Kind() == KindArray {
			props, err := decodeStrings("dependencies/"+key, entry)
			if err != nil {
				return nil, err
			}
			deps = append(deps, Dependency{Key: key, Props: props})
			continue
		}
		child, err := SchemaFromValue(entry)
		if err != nil {
			return nil, err
		}
		deps = append(deps, Dependency{Key: key, Schema: child})
	}
	return deps, nil
}

func decodeSchemaMap(key string, val Value) (*SchemaMap, error) {
	if val.Kind() != KindObject {
		return nil, fmt.Errorf("%w: %s must be an object", ErrSchemaKeyword, key)
	}
	m := NewSchemaMap()
	for _, name := range val.Keys() {
		entry, _ := val.Field(name)
		child, err := SchemaFromValue(entry)
		if err != nil {
			return nil, err
		}
		m.Set(name, child)
	}
	return m, nil
}

func decodeSchemaList(key string, val Value) ([]*Schema, error) {
	if val.Kind() != KindArray {
		return nil, fmt.Errorf("%w: %s must be an array", ErrSchemaKeyword, key)
	}
	list := make([]*Schema, 0, val.Len())
	for _, item := range val.Items() {
		child, err := SchemaFromValue(item)
		if err != nil {
			return nil, err
		}
		list = append(list, child)
	}
	return list, nil
}

func decodeStrings(key string, val Value) ([]string, error) {
	if val.Kind() != KindArray {
		return nil, fmt.Errorf("%w: %s must be an array of strings", ErrSchemaKeyword, key)
	}
	out := make([]string, 0, val.Len())
	for _, item := range val.Items() {
		if item.Kind() != KindString {
			return nil, fmt.Errorf("%w: %s must be an array of strings", ErrSchemaKeyword, key)
		}
		out = append(out, item.Text())
	}
	return out, nil
}

func decodeString(key string, val Value, dst *string) error {
	if val.Kind() != KindString {
		return fmt.Errorf("%w: %s must be a string", ErrSchemaKeyword, key)
	}
	*dst = val.Text()
	return nil
}

func decodeBool(key string, val Value, dst *bool) error {
	if val.Kind() != KindBool {
		return fmt.Errorf("%w: %s must be a boolean", ErrSchemaKeyword, key)
	}
	*dst = val.Bool()
	return nil
}

func decodeNumber(key string, val Value) (*float64, error) {
	if val.Kind() != KindFloat {
		return nil, fmt.Errorf("%w: %s must be a number", ErrSchemaKeyword, key)
	}
	f := val.Float()
	return &f, nil
}

func decodeInt(key string, val Value) (*int, error) {
	if val.Kind() != KindFloat {
		return nil, fmt.Errorf("%w: %s must be an integer", ErrSchemaKeyword, key)
	}
	f := val.Float()
	n := int(f)
	if float64(n) != f {
		return nil, fmt.Errorf("%w: %s must be an integer", ErrSchemaKeyword, key)
	}
	return &n, nil
}
