package check

import (
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-schema/internal/domain"
)

func TestDocumentAcceptsValidSchema(t *testing.T) {
	raw := []byte(`{
		"type": "object",
		"properties": {"name": {"type": "string"}},
		"required": ["name"]
	}`)
	if err := Document(raw); err != nil {
		t.Fatalf("expected valid schema, got: %v", err)
	}
}

func TestDocumentRejectsMalformedSchema(t *testing.T) {
	cases := [][]byte{
		[]byte(`{"type": 42}`),
		[]byte(`{"required": "name"}`),
		[]byte(`{"properties": []}`),
		[]byte(`not json`),
	}
	for _, raw := range cases {
		err := Document(raw)
		if !errors.Is(err, ErrSchemaInvalid) {
			t.Fatalf("Document(%s): expected ErrSchemaInvalid, got %v", raw, err)
		}
	}
}

func mustValue(t *testing.T, raw string) domain.Value {
	t.Helper()
	v, err := domain.DecodeValueString(raw)
	if err != nil {
		t.Fatalf("decode value: %v", err)
	}
	return v
}

func TestKeywordSubsetAcceptsSupportedKeywords(t *testing.T) {
	doc := mustValue(t, `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"title": "thing",
		"type": "object",
		"properties": {
			"tags": {"items": {"type": "string"}, "uniqueItems": true}
		},
		"dependencies": {"a": ["b"], "c": {"required": ["d"]}},
		"x-internal": {"whatever": true}
	}`)
	if err := KeywordSubset(doc); err != nil {
		t.Fatalf("expected supported schema, got: %v", err)
	}
}

func TestKeywordSubsetRejectsUnknownKeyword(t *testing.T) {
	doc := mustValue(t, `{"if": {"type": "string"}, "then": {"minLength": 1}}`)
	err := KeywordSubset(doc)
	if !errors.Is(err, ErrUnsupportedKeyword) {
		t.Fatalf("expected ErrUnsupportedKeyword, got %v", err)
	}
	if !strings.Contains(err.Error(), "if") {
		t.Fatalf("expected offending keyword named, got %v", err)
	}
}

func TestKeywordSubsetReportsNestedLocation(t *testing.T) {
	doc := mustValue(t, `{
		"properties": {
			"user": {"format": "email"}
		}
	}`)
	err := KeywordSubset(doc)
	if !errors.Is(err, ErrUnsupportedKeyword) {
		t.Fatalf("expected ErrUnsupportedKeyword, got %v", err)
	}
	if !strings.Contains(err.Error(), "properties/user") {
		t.Fatalf("expected nested path, got %v", err)
	}
}

func TestKeywordSubsetWalksBranchLists(t *testing.T) {
	doc := mustValue(t, `{
		"anyOf": [
			{"type": "string"},
			{"contentEncoding": "base64"}
		]
	}`)
	err := KeywordSubset(doc)
	if !errors.Is(err, ErrUnsupportedKeyword) {
		t.Fatalf("expected ErrUnsupportedKeyword, got %v", err)
	}
	if !strings.Contains(err.Error(), "anyOf/1") {
		t.Fatalf("expected branch index in path, got %v", err)
	}
}

func TestKeywordSubsetAcceptsBooleanSubschemas(t *testing.T) {
	doc := mustValue(t, `{"additionalProperties": false, "items": true}`)
	if err := KeywordSubset(doc); err != nil {
		t.Fatalf("expected boolean subschemas accepted, got: %v", err)
	}
}
