package validation

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-schema/internal/domain"
)

const (
	msgFalseSchema = "Value is not allowed by the schema"
	msgEnum        = "Value is not present in enum"
	msgUnique      = "Array items are not unique"
	msgContains    = "Array does not contain expected value"
	msgAnyOf       = "None of the schemas in anyOf accept this value"
	// The upstream engine reuses the anyOf wording when zero oneOf branches
	// match; kept for compatibility.
	msgOneOfNone = "None of the schemas in anyOf allow this value"
	msgTooDeep   = "Validation exceeded the maximum schema depth"
)

func msgConst(expected, actual domain.Value) string {
	return fmt.Sprintf("Value doesn't equal const: expected %q but the actual value is %q",
		display(expected), display(actual))
}

func msgType(k domain.Kind, actual domain.Value) string {
	return fmt.Sprintf("Expecting %s %s but instead got: %s", article(k), k, actual)
}

func msgTypeUnion(members []domain.Kind, actual domain.Value) string {
	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.String()
	}
	return fmt.Sprintf("Expecting one of %s but instead got: %s", strings.Join(names, ", "), actual)
}

func msgMultipleOf(d float64) string {
	return fmt.Sprintf("Value is not a multiple of %s", domain.FormatNumber(d))
}

func msgMaximum(m float64) string {
	return fmt.Sprintf("Value is above the maximum of %s", domain.FormatNumber(m))
}

func msgExclusiveMaximum(m float64) string {
	return fmt.Sprintf("Value is not below the exclusive maximum of %s", domain.FormatNumber(m))
}

func msgMinimum(m float64) string {
	return fmt.Sprintf("Value is below the minimum of %s", domain.FormatNumber(m))
}

func msgExclusiveMinimum(m float64) string {
	return fmt.Sprintf("Value is not above the exclusive minimum of %s", domain.FormatNumber(m))
}

func msgMaxLength(n int) string {
	return fmt.Sprintf("String is longer than the maximum length of %d", n)
}

func msgMinLength(n int) string {
	return fmt.Sprintf("String is shorter than the minimum length of %d", n)
}

func msgPattern(pattern string) string {
	return fmt.Sprintf("String does not match the pattern '%s'", pattern)
}

func msgMaxItems(n int) string {
	return fmt.Sprintf("Array has more items than the maximum of %d", n)
}

func msgMinItems(n int) string {
	return fmt.Sprintf("Array has fewer items than the minimum of %d", n)
}

func msgItem(idx int, inner error) string {
	return fmt.Sprintf("Item at index %d: %s", idx, inner)
}

func msgMaxProperties(n int) string {
	return fmt.Sprintf("Object has more properties than the maximum of %d", n)
}

func msgMinProperties(n int) string {
	return fmt.Sprintf("Object has fewer properties than the minimum of %d", n)
}

func msgRequired(missing []string) string {
	return fmt.Sprintf("Object is missing required properties: %s", strings.Join(missing, ", "))
}

func msgProperty(key string, inner error) string {
	return fmt.Sprintf("Invalid property '%s': %s", key, inner)
}

func msgPropertyNames(key string, inner error) string {
	return fmt.Sprintf("Property '%s' doesn't validate against propertyNames schema: %s", key, inner)
}

func msgOneOfMany(count int) string {
	return fmt.Sprintf("oneOf expects value to succeed validation against exactly one schema but %d validations succeeded", count)
}

// display renders a value for const mismatch messages: strings show their
// raw content, everything else its JSON form.
func display(v domain.Value) string {
	if v.Kind() == domain.KindString {
		return v.Text()
	}
	return v.String()
}

func article(k domain.Kind) string {
	switch k {
	case domain.KindInteger, domain.KindArray, domain.KindObject:
		return "an"
	default:
		return "a"
	}
}
