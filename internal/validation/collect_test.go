package validation

import (
	"testing"

	"github.com/goliatone/go-schema/internal/domain"
)

func collectFor(t *testing.T, schema, value string) map[string]string {
	t.Helper()
	return New().Collect(mustSchema(t, schema), mustValue(t, value))
}

func TestCollectEmptyForValidDocument(t *testing.T) {
	out := collectFor(t, `{
		"properties": {"name": {"type": "string"}},
		"required": ["name"]
	}`, `{"name": "ada"}`)
	if len(out) != 0 {
		t.Fatalf("expected no violations, got %v", out)
	}
}

func TestCollectKeysByPointer(t *testing.T) {
	out := collectFor(t, `{
		"properties": {
			"name": {"type": "string"},
			"age": {"minimum": 0},
			"tags": {"items": {"maxLength": 3}}
		}
	}`, `{"name": 42, "age": -1, "tags": ["ok", "toolong"]}`)

	if len(out) != 3 {
		t.Fatalf("expected three violations, got %v", out)
	}
	if out["#/name"] != `Expecting a String but instead got: 42` {
		t.Fatalf("name violation: %q", out["#/name"])
	}
	if out["#/age"] != "Value is below the minimum of 0" {
		t.Fatalf("age violation: %q", out["#/age"])
	}
	if out["#/tags/1"] != "String is longer than the maximum length of 3" {
		t.Fatalf("tags violation: %q", out["#/tags/1"])
	}
}

func TestCollectCardinalityReportsAtContainer(t *testing.T) {
	out := collectFor(t, `{
		"properties": {
			"tags": {"minItems": 2, "items": {"type": "string"}},
			"owner": {"type": "string"}
		}
	}`, `{"tags": [1], "owner": 9}`)

	// The container-level failure short-circuits its element checks, but
	// sibling subtrees are still walked.
	if out["#/tags"] != "Array has fewer items than the minimum of 2" {
		t.Fatalf("tags violation: %q", out["#/tags"])
	}
	if _, ok := out["#/tags/0"]; ok {
		t.Fatalf("expected element check skipped after container failure: %v", out)
	}
	if out["#/owner"] != `Expecting a String but instead got: 9` {
		t.Fatalf("owner violation: %q", out["#/owner"])
	}
}

func TestCollectFalseSchema(t *testing.T) {
	out := collectFor(t, `{"properties": {"legacy": false}}`, `{"legacy": 1}`)
	if out["#/legacy"] != "Value is not allowed by the schema" {
		t.Fatalf("legacy violation: %q", out["#/legacy"])
	}
}

func TestCollectPropertyNamesAtChild(t *testing.T) {
	out := collectFor(t, `{"propertyNames": {"maxLength": 2}}`, `{"abc": 1, "ok": 2}`)
	if out["#/abc"] != "String is longer than the maximum length of 2" {
		t.Fatalf("propertyNames violation: %q", out["#/abc"])
	}
	if _, ok := out["#/ok"]; ok {
		t.Fatalf("unexpected violation for valid key: %v", out)
	}
}

func TestCollectCombinatorsAtNode(t *testing.T) {
	out := collectFor(t, `{
		"properties": {
			"v": {"oneOf": [{"minimum": 0}, {"enum": [1]}]}
		}
	}`, `{"v": 1}`)
	want := "oneOf expects value to succeed validation against exactly one schema but 2 validations succeeded"
	if out["#/v"] != want {
		t.Fatalf("combinator violation: %q", out["#/v"])
	}
}

func TestCollectFollowsReferences(t *testing.T) {
	out := collectFor(t, `{
		"properties": {"user": {"$ref": "#/definitions/user"}},
		"definitions": {
			"user": {"properties": {"name": {"type": "string"}}}
		}
	}`, `{"user": {"name": 7}}`)
	if out["#/user/name"] != `Expecting a String but instead got: 7` {
		t.Fatalf("ref violation: %q", out["#/user/name"])
	}
}

func TestCollectEscapesPointerSegments(t *testing.T) {
	root := domain.Blank().WithProperty("a/b", domain.Blank().WithType(domain.SingleType(domain.KindString)))
	doc := domain.Object().WithField("a/b", domain.Number(1))
	out := New().Collect(root, doc)
	if _, ok := out["#/a~1b"]; !ok {
		t.Fatalf("expected escaped pointer key, got %v", out)
	}
}
