package schema

import (
	"errors"
	"testing"
)

func mustEngineT(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	eng, err := New(opts...)
	if err != nil {
		t.Fatalf("engine: %v", err)
	}
	return eng
}

func mustValue(t *testing.T, raw string) Value {
	t.Helper()
	v, err := DecodeValueString(raw)
	if err != nil {
		t.Fatalf("decode value: %v", err)
	}
	return v
}

func TestBuiltSchemaValidatesEndToEnd(t *testing.T) {
	user := Blank().
		WithType(SingleType(KindObject)).
		WithProperty("name", Blank().WithType(SingleType(KindString)).WithMinLength(1)).
		WithProperty("age", Blank().WithType(SingleType(KindInteger)).WithMinimum(0)).
		WithProperty("tags", Blank().
			WithType(SingleType(KindArray)).
			WithItems(Blank().WithType(SingleType(KindString))).
			WithUniqueItems(true)).
		WithRequired("name")

	eng := mustEngineT(t)

	if err := eng.Validate(user, mustValue(t, `{"name": "ada", "age": 36, "tags": ["x", "y"]}`)); err != nil {
		t.Fatalf("expected valid document: %v", err)
	}

	err := eng.Validate(user, mustValue(t, `{"age": -1}`))
	if err == nil {
		t.Fatalf("expected failure")
	}
	if err.Error() != "Object is missing required properties: name" {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestEngineRoundTrip(t *testing.T) {
	root, err := DecodeSchema([]byte(`{
		"type": "object",
		"properties": {
			"profile": {"$ref": "#/definitions/profile"}
		},
		"definitions": {
			"profile": {
				"properties": {
					"nick": {"type": "string", "default": "anon"}
				}
			}
		}
	}`))
	if err != nil {
		t.Fatalf("decode schema: %v", err)
	}
	eng := mustEngineT(t)

	node, err := eng.SchemaAt(root, "#/profile/nick")
	if err != nil || node == nil {
		t.Fatalf("SchemaAt: node=%v err=%v", node, err)
	}
	if k, ok := node.Type.Single(); !ok || k != KindString {
		t.Fatalf("expected string node, got %s", node.Type)
	}

	doc := mustValue(t, `{}`)
	doc, err = eng.Set(root, "#/profile/nick", String("gopher"), doc)
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := eng.GetString(root, "#/profile/nick", doc); got != "gopher" {
		t.Fatalf("get after set: %q", got)
	}
	if err := eng.Validate(root, doc); err != nil {
		t.Fatalf("validate after set: %v", err)
	}
}

func TestEngineCollect(t *testing.T) {
	root, err := DecodeSchema([]byte(`{
		"properties": {
			"a": {"type": "string"},
			"b": {"minimum": 0}
		}
	}`))
	if err != nil {
		t.Fatalf("decode schema: %v", err)
	}
	out := mustEngineT(t).Collect(root, mustValue(t, `{"a": 1, "b": -1}`))
	if len(out) != 2 {
		t.Fatalf("expected two violations, got %v", out)
	}
	if _, ok := out["#/a"]; !ok {
		t.Fatalf("missing #/a violation: %v", out)
	}
}

func TestEngineImplyType(t *testing.T) {
	root, err := DecodeSchema([]byte(`{
		"properties": {
			"flags": {"type": ["boolean", "object"]}
		}
	}`))
	if err != nil {
		t.Fatalf("decode schema: %v", err)
	}
	typ, _, err := mustEngineT(t).ImplyType(root, mustValue(t, `{}`), "#/flags")
	if err != nil {
		t.Fatalf("imply: %v", err)
	}
	if k, ok := typ.Single(); !ok || k != KindObject {
		t.Fatalf("expected object, got %s", typ)
	}
}

func TestEngineRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxResolveDepth = -1
	if _, err := New(WithConfig(cfg)); !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("expected ErrConfigInvalid, got %v", err)
	}
}

func TestEngineCheckDocument(t *testing.T) {
	eng := mustEngineT(t)
	if err := eng.CheckDocument([]byte(`{"type": "object"}`)); err != nil {
		t.Fatalf("expected valid document: %v", err)
	}
	if err := eng.CheckDocument([]byte(`{"type": 1}`)); !errors.Is(err, ErrSchemaInvalid) {
		t.Fatalf("expected ErrSchemaInvalid, got %v", err)
	}

	doc := mustValue(t, `{"if": {}}`)
	if err := eng.CheckKeywords(doc); !errors.Is(err, ErrUnsupportedKeyword) {
		t.Fatalf("expected ErrUnsupportedKeyword, got %v", err)
	}
}

func TestPackageLevelConvenience(t *testing.T) {
	root := Blank().WithType(SingleType(KindString))
	if err := Validate(root, String("ok")); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if err := Validate(root, Number(1)); err == nil {
		t.Fatalf("expected failure")
	}
}
