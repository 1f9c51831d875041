package domain

import (
	"errors"
	"testing"
)

func TestDecodeSchemaBooleanForms(t *testing.T) {
	s, err := DecodeSchema([]byte(`true`))
	if err != nil {
		t.Fatalf("decode true: %v", err)
	}
	if b, ok := s.IsBoolean(); !ok || !b {
		t.Fatalf("expected true schema")
	}

	s, err = DecodeSchema([]byte(`false`))
	if err != nil {
		t.Fatalf("decode false: %v", err)
	}
	if b, ok := s.IsBoolean(); !ok || b {
		t.Fatalf("expected false schema")
	}
}

func TestDecodeSchemaRejectsNonObjectForms(t *testing.T) {
	for _, raw := range []string{`42`, `"str"`, `[1]`, `null`} {
		if _, err := DecodeSchema([]byte(raw)); !errors.Is(err, ErrSchemaForm) {
			t.Fatalf("decode %s: expected ErrSchemaForm, got %v", raw, err)
		}
	}
}

func TestDecodeSchemaKeywords(t *testing.T) {
	raw := `{
		"type": "object",
		"properties": {
			"name": {"type": "string", "minLength": 1},
			"age": {"type": "integer", "minimum": 0}
		},
		"required": ["name"],
		"additionalProperties": false,
		"definitions": {
			"tag": {"type": "string"}
		}
	}`
	s, err := DecodeSchema([]byte(raw))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if k, ok := s.Type.Single(); !ok || k != KindObject {
		t.Fatalf("expected object type, got %s", s.Type)
	}
	if got := s.Properties.Keys(); len(got) != 2 || got[0] != "name" || got[1] != "age" {
		t.Fatalf("expected property order preserved, got %v", got)
	}
	name, ok := s.Properties.Get("name")
	if !ok || name.MinLength == nil || *name.MinLength != 1 {
		t.Fatalf("expected name minLength 1")
	}
	if len(s.Required) != 1 || s.Required[0] != "name" {
		t.Fatalf("expected required [name], got %v", s.Required)
	}
	if s.AdditionalProperties == nil {
		t.Fatalf("expected additionalProperties schema")
	}
	if b, ok := s.AdditionalProperties.IsBoolean(); !ok || b {
		t.Fatalf("expected additionalProperties false schema")
	}
	if _, ok := s.Definitions.Get("tag"); !ok {
		t.Fatalf("expected tag definition")
	}
}

func TestDecodeSchemaTypeForms(t *testing.T) {
	s, err := DecodeSchema([]byte(`{"type": ["null", "string"]}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if k, ok := s.Type.Nullable(); !ok || k != KindString {
		t.Fatalf("expected nullable string, got %s", s.Type)
	}

	s, err = DecodeSchema([]byte(`{"type": ["boolean", "object"]}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	members, ok := s.Type.Union()
	if !ok || len(members) != 2 {
		t.Fatalf("expected two-member union, got %s", s.Type)
	}

	if _, err := DecodeSchema([]byte(`{"type": "flavor"}`)); !errors.Is(err, ErrSchemaKeyword) {
		t.Fatalf("expected ErrSchemaKeyword for unknown type name, got %v", err)
	}
}

func TestDecodeSchemaItemsForms(t *testing.T) {
	s, err := DecodeSchema([]byte(`{"items": {"type": "string"}}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := s.Items.Single(); !ok {
		t.Fatalf("expected single items")
	}

	s, err = DecodeSchema([]byte(`{"items": [{"type": "string"}, {"type": "number"}], "additionalItems": false}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	list, ok := s.Items.List()
	if !ok || len(list) != 2 {
		t.Fatalf("expected two-item list")
	}
	if s.AdditionalItems == nil {
		t.Fatalf("expected additionalItems")
	}
}

func TestDecodeSchemaDependencies(t *testing.T) {
	raw := `{"dependencies": {"a": ["b", "c"], "d": {"required": ["e"]}}}`
	s, err := DecodeSchema([]byte(raw))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(s.Dependencies) != 2 {
		t.Fatalf("expected two dependencies, got %d", len(s.Dependencies))
	}
	if s.Dependencies[0].Key != "a" || len(s.Dependencies[0].Props) != 2 {
		t.Fatalf("expected property dependency a -> [b c]")
	}
	if s.Dependencies[1].Key != "d" || s.Dependencies[1].Schema == nil {
		t.Fatalf("expected schema dependency on d")
	}
}

func TestDecodeSchemaIgnoresUnknownKeywords(t *testing.T) {
	s, err := DecodeSchema([]byte(`{"format": "email", "x-vendor": 1, "type": "string"}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if k, ok := s.Type.Single(); !ok || k != KindString {
		t.Fatalf("expected string type despite unknown keywords")
	}
}

func TestSchemaEncodeDecodeRoundTrip(t *testing.T) {
	raw := `{"$ref":"#/definitions/base","definitions":{"base":{"type":"object","properties":{"id":{"type":"integer"}},"required":["id"]}}}`
	s, err := DecodeSchema([]byte(raw))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	again, err := SchemaFromValue(SchemaToValue(s))
	if err != nil {
		t.Fatalf("re-decode: %v", err)
	}
	if again.Ref != "#/definitions/base" {
		t.Fatalf("lost ref: %q", again.Ref)
	}
	base, ok := again.Definitions.Get("base")
	if !ok || base.Properties.Len() != 1 {
		t.Fatalf("lost definitions")
	}
}

func TestBuilderTransformsArePure(t *testing.T) {
	base := Blank().WithType(SingleType(KindObject))

	extended := base.
		WithProperty("name", Blank().WithType(SingleType(KindString))).
		WithRequired("name").
		WithMaxProperties(4)

	if base.Properties.Len() != 0 {
		t.Fatalf("base gained properties: %d", base.Properties.Len())
	}
	if len(base.Required) != 0 {
		t.Fatalf("base gained required: %v", base.Required)
	}
	if base.MaxProperties != nil {
		t.Fatalf("base gained maxProperties")
	}

	if extended.Properties.Len() != 1 {
		t.Fatalf("expected one property, got %d", extended.Properties.Len())
	}
	if extended.MaxProperties == nil || *extended.MaxProperties != 4 {
		t.Fatalf("expected maxProperties 4")
	}
}

func TestBuilderWithPropertyReplacesExisting(t *testing.T) {
	s := Blank().
		WithProperty("a", Blank().WithType(SingleType(KindString))).
		WithProperty("b", Blank()).
		WithProperty("a", Blank().WithType(SingleType(KindFloat)))

	if got := s.Properties.Keys(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("expected stable key order, got %v", got)
	}
	a, _ := s.Properties.Get("a")
	if k, ok := a.Type.Single(); !ok || k != KindFloat {
		t.Fatalf("expected a replaced with number type")
	}
}

func TestBuilderChainBuildsFullSchema(t *testing.T) {
	s := Blank().
		WithType(SingleType(KindObject)).
		WithProperty("tags", Blank().
			WithType(SingleType(KindArray)).
			WithItems(Blank().WithType(SingleType(KindString))).
			WithUniqueItems(true).
			WithMinItems(1)).
		WithDependentRequired("tags", "owner").
		WithDefinition("owner", Blank().WithType(SingleType(KindString))).
		WithTitle("tagged thing")

	tags, ok := s.Properties.Get("tags")
	if !ok {
		t.Fatalf("missing tags property")
	}
	if _, ok := tags.Items.Single(); !ok {
		t.Fatalf("missing items")
	}
	if !tags.UniqueItems || tags.MinItems == nil {
		t.Fatalf("missing array constraints")
	}
	if len(s.Dependencies) != 1 || s.Dependencies[0].Key != "tags" {
		t.Fatalf("missing dependency")
	}
	if s.Title != "tagged thing" {
		t.Fatalf("missing title")
	}
}

func TestCloneIsolatesContainers(t *testing.T) {
	orig := Blank().
		WithProperty("a", Blank()).
		WithRequired("a").
		WithEnum(String("x"))

	copied := orig.Clone()
	copied.Properties.Set("b", Blank())
	copied.Required = append(copied.Required, "b")

	if orig.Properties.Len() != 1 {
		t.Fatalf("clone shared properties map")
	}
	if len(orig.Required) != 1 {
		t.Fatalf("clone shared required slice")
	}
}
