// Package check vets schema documents themselves: a compile pass through a
// real draft-07 compiler catches authoring mistakes, and a keyword-subset
// walk reports keywords this engine does not understand. Neither check is
// required before validating; the engine simply ignores unknown keywords.
package check

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/goliatone/go-schema/internal/domain"
)

var (
	// ErrSchemaInvalid marks a document the draft compiler rejects.
	ErrSchemaInvalid = errors.New("check: schema invalid")
	// ErrUnsupportedKeyword marks a keyword outside the supported subset.
	ErrUnsupportedKeyword = errors.New("check: unsupported keyword")
)

var allowedKeywords = map[string]struct{}{
	"$schema":              {},
	"$id":                  {},
	"$ref":                 {},
	"type":                 {},
	"enum":                 {},
	"const":                {},
	"multipleOf":           {},
	"maximum":              {},
	"minimum":              {},
	"exclusiveMaximum":     {},
	"exclusiveMinimum":     {},
	"maxLength":            {},
	"minLength":            {},
	"pattern":              {},
	"items":                {},
	"additionalItems":      {},
	"maxItems":             {},
	"minItems":             {},
	"uniqueItems":          {},
	"contains":             {},
	"maxProperties":        {},
	"minProperties":        {},
	"required":             {},
	"properties":           {},
	"patternProperties":    {},
	"additionalProperties": {},
	"propertyNames":        {},
	"dependencies":         {},
	"allOf":                {},
	"anyOf":                {},
	"oneOf":                {},
	"definitions":          {},
	"default":              {},
	"title":                {},
	"description":          {},
}

// Document compiles the raw schema document with a draft-07 compiler and
// reports any authoring error.
func Document(data []byte) error {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7
	if err := compiler.AddResource("schema.json", bytes.NewReader(data)); err != nil {
		return fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	if _, err := compiler.Compile("schema.json"); err != nil {
		return fmt.Errorf("%w: %v", ErrSchemaInvalid, err)
	}
	return nil
}

// KeywordSubset walks a decoded schema document and rejects the first
// keyword outside the supported subset, reporting where it was found.
// Keys prefixed with "x-" are treated as vendor extensions and skipped.
func KeywordSubset(doc domain.Value) error {
	return checkNode(doc, "")
}

func checkNode(node domain.Value, path string) error {
	if node.Kind() == domain.KindBool {
		return nil
	}
	if node.Kind() != domain.KindObject {
		return fmt.Errorf("%w: schema node at %s must be an object or boolean", ErrUnsupportedKeyword, displayPath(path))
	}
	for _, key := range node.Keys() {
		if strings.HasPrefix(key, "x-") {
			continue
		}
		if _, ok := allowedKeywords[key]; !ok {
			return fmt.Errorf("%w: %s at %s", ErrUnsupportedKeyword, key, displayPath(path))
		}
		value, _ := node.Field(key)
		var err error
		switch key {
		case "properties", "patternProperties", "definitions":
			err = checkMap(value, joinPath(path, key))
		case "items":
			if value.Kind() == domain.KindArray {
				err = checkList(value, joinPath(path, key))
			} else {
				err = checkNode(value, joinPath(path, key))
			}
		case "additionalProperties", "additionalItems", "propertyNames", "contains":
			err = checkNode(value, joinPath(path, key))
		case "allOf", "anyOf", "oneOf":
			err = checkList(value, joinPath(path, key))
		case "dependencies":
			err = checkDependencies(value, joinPath(path, key))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func checkMap(value domain.Value, path string) error {
	if value.Kind() != domain.KindObject {
		return fmt.Errorf("%w: %s must be an object", ErrUnsupportedKeyword, displayPath(path))
	}
	for _, name := range value.Keys() {
		child, _ := value.Field(name)
		if err := checkNode(child, joinPath(path, name)); err != nil {
			return err
		}
	}
	return nil
}

func checkList(value domain.Value, path string) error {
	if value.Kind() != domain.KindArray {
		return fmt.Errorf("%w: %s must be an array", ErrUnsupportedKeyword, displayPath(path))
	}
	for idx, child := range value.Items() {
		if err := checkNode(child, fmt.Sprintf("%s/%d", path, idx)); err != nil {
			return err
		}
	}
	return nil
}

func checkDependencies(value domain.Value, path string) error {
	if value.Kind() != domain.KindObject {
		return fmt.Errorf("%w: %s must be an object", ErrUnsupportedKeyword, displayPath(path))
	}
	for _, name := range value.Keys() {
		child, _ := value.Field(name)
		if child.Kind() == domain.KindArray {
			continue
		}
		if err := checkNode(child, joinPath(path, name)); err != nil {
			return err
		}
	}
	return nil
}

func joinPath(parts ...string) string {
	trimmed := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		trimmed = append(trimmed, part)
	}
	return strings.Join(trimmed, "/")
}

func displayPath(path string) string {
	if path == "" {
		return "#"
	}
	return path
}
