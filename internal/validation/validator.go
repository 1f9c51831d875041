// Package validation walks a value against a schema node, applying every
// constraint keyword and reporting the first failure as a human-readable,
// path-qualified message.
package validation

import (
	"errors"
	"math"
	"regexp"
	"unicode/utf8"

	"github.com/goliatone/go-schema/internal/domain"
	"github.com/goliatone/go-schema/internal/resolver"
)

// DefaultMaxDepth bounds validation recursion across nested values, branch
// lists and reference chains.
const DefaultMaxDepth = 128

// multipleOfEpsilon is the relative tolerance used when checking that a
// quotient is an integer. Exact modulo would reject values like 2/3 against
// multipleOf 1/3 because of binary floating imprecision.
const multipleOfEpsilon = 1e-9

// Validator applies schema constraints to values.
type Validator struct {
	// MaxDepth caps recursion. Zero means DefaultMaxDepth.
	MaxDepth int

	res *resolver.Resolver
}

// New returns a validator with its own resolver and default bounds.
func New() *Validator { return NewWith(resolver.New()) }

// NewWith returns a validator sharing the given resolver.
func NewWith(res *resolver.Resolver) *Validator {
	if res == nil {
		res = resolver.New()
	}
	return &Validator{MaxDepth: DefaultMaxDepth, res: res}
}

func (v *Validator) max() int {
	if v == nil || v.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return v.MaxDepth
}

// Validate checks val against the schema, which also acts as the root for
// reference resolution. It returns nil on success and the first failure
// otherwise.
func (v *Validator) Validate(root *domain.Schema, val domain.Value) error {
	return v.validate(root, root, val, 0)
}

// ValidateWith checks val against a node that lives inside root.
func (v *Validator) ValidateWith(root, node *domain.Schema, val domain.Value) error {
	return v.validate(root, node, val, 0)
}

func (v *Validator) validate(root, s *domain.Schema, val domain.Value, depth int) error {
	if depth >= v.max() {
		return errors.New(msgTooDeep)
	}
	if s == nil {
		return nil
	}
	if b, ok := s.IsBoolean(); ok {
		if b {
			return nil
		}
		return errors.New(msgFalseSchema)
	}
	// A $ref fully overrides sibling keywords. An unresolvable reference
	// means no constraint is known, so the value passes.
	if s.Ref != "" {
		target := v.res.Reference(root, s.Ref)
		if target == nil {
			return nil
		}
		return v.validate(root, target, val, depth+1)
	}

	if err := checkEnum(s, val); err != nil {
		return err
	}
	if err := checkConst(s, val); err != nil {
		return err
	}
	if err := checkType(s.Type, val); err != nil {
		return err
	}
	if err := checkNumeric(s, val); err != nil {
		return err
	}
	if err := checkString(s, val); err != nil {
		return err
	}
	if err := v.checkArray(root, s, val, depth); err != nil {
		return err
	}
	if err := v.checkObject(root, s, val, depth); err != nil {
		return err
	}
	return v.checkCombinators(root, s, val, depth)
}

func checkEnum(s *domain.Schema, val domain.Value) error {
	if len(s.Enum) == 0 {
		return nil
	}
	for _, member := range s.Enum {
		if domain.Equal(member, val) {
			return nil
		}
	}
	return errors.New(msgEnum)
}

func checkConst(s *domain.Schema, val domain.Value) error {
	if s.Const == nil {
		return nil
	}
	if domain.Equal(*s.Const, val) {
		return nil
	}
	return errors.New(msgConst(*s.Const, val))
}

func checkType(t domain.Type, val domain.Value) error {
	if t.IsAny() {
		return nil
	}
	if k, ok := t.Single(); ok {
		if matchKind(k, val) {
			return nil
		}
		return errors.New(msgType(k, val))
	}
	if k, ok := t.Nullable(); ok {
		if val.IsNull() || matchKind(k, val) {
			return nil
		}
		return errors.New(msgType(k, val))
	}
	if members, ok := t.Union(); ok {
		for _, m := range members {
			if matchKind(m, val) {
				return nil
			}
		}
		return errors.New(msgTypeUnion(members, val))
	}
	return nil
}

func matchKind(k domain.Kind, val domain.Value) bool {
	switch k {
	case domain.KindNull:
		return val.IsNull()
	case domain.KindBool:
		return val.Kind() == domain.KindBool
	case domain.KindInteger:
		return val.Kind() == domain.KindFloat && isIntegral(val.Float())
	case domain.KindFloat:
		return val.Kind() == domain.KindFloat
	case domain.KindString:
		return val.Kind() == domain.KindString
	case domain.KindArray:
		return val.Kind() == domain.KindArray
	case domain.KindObject:
		return val.Kind() == domain.KindObject
	default:
		return false
	}
}

func isIntegral(f float64) bool {
	return math.Abs(f-math.Round(f)) <= multipleOfEpsilon
}

func checkNumeric(s *domain.Schema, val domain.Value) error {
	if val.Kind() != domain.KindFloat {
		return nil
	}
	n := val.Float()
	if s.MultipleOf != nil && !isMultiple(n, *s.MultipleOf) {
		return errors.New(msgMultipleOf(*s.MultipleOf))
	}
	if s.Maximum != nil && n > *s.Maximum {
		return errors.New(msgMaximum(*s.Maximum))
	}
	if s.ExclusiveMaximum != nil && n >= *s.ExclusiveMaximum {
		return errors.New(msgExclusiveMaximum(*s.ExclusiveMaximum))
	}
	if s.Minimum != nil && n < *s.Minimum {
		return errors.New(msgMinimum(*s.Minimum))
	}
	if s.ExclusiveMinimum != nil && n <= *s.ExclusiveMinimum {
		return errors.New(msgExclusiveMinimum(*s.ExclusiveMinimum))
	}
	return nil
}

// isMultiple reports whether n/d lands on an integer within floating
// tolerance, scaled by the magnitude of the quotient.
func isMultiple(n, d float64) bool {
	if d == 0 {
		return false
	}
	ratio := n / d
	return math.Abs(ratio-math.Round(ratio)) <= multipleOfEpsilon*math.Max(1, math.Abs(ratio))
}

func checkString(s *domain.Schema, val domain.Value) error {
	if val.Kind() != domain.KindString {
		return nil
	}
	text := val.Text()
	length := utf8.RuneCountInString(text)
	if s.MaxLength != nil && length > *s.MaxLength {
		return errors.New(msgMaxLength(*s.MaxLength))
	}
	if s.MinLength != nil && length < *s.MinLength {
		return errors.New(msgMinLength(*s.MinLength))
	}
	if s.Pattern != "" && !patternMatches(s.Pattern, text) {
		return errors.New(msgPattern(s.Pattern))
	}
	return nil
}

// patternMatches performs a substring search, not a full match. A pattern
// that fails to compile imposes no constraint.
func patternMatches(pattern, text string) bool {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return true
	}
	return re.MatchString(text)
}

func (v *Validator) checkArray(root, s *domain.Schema, val domain.Value, depth int) error {
	if val.Kind() != domain.KindArray {
		return nil
	}
	items := val.Items()
	if s.MaxItems != nil && len(items) > *s.MaxItems {
		return errors.New(msgMaxItems(*s.MaxItems))
	}
	if s.MinItems != nil && len(items) < *s.MinItems {
		return errors.New(msgMinItems(*s.MinItems))
	}
	if s.UniqueItems {
		for i := 0; i < len(items); i++ {
			for j := i + 1; j < len(items); j++ {
				if domain.Equal(items[i], items[j]) {
					return errors.New(msgUnique)
				}
			}
		}
	}
	if single, ok := s.Items.Single(); ok {
		for i, item := range items {
			if err := v.validate(root, single, item, depth+1); err != nil {
				return errors.New(msgItem(i, err))
			}
		}
	} else if list, ok := s.Items.List(); ok {
		for i, item := range items {
			var node *domain.Schema
			if i < len(list) {
				node = list[i]
			} else {
				node = s.AdditionalItems
			}
			if node == nil {
				continue
			}
			if err := v.validate(root, node, item, depth+1); err != nil {
				return errors.New(msgItem(i, err))
			}
		}
	}
	if s.Contains != nil {
		found := false
		for _, item := range items {
			if v.validate(root, s.Contains, item, depth+1) == nil {
				found = true
				break
			}
		}
		if !found {
			return errors.New(msgContains)
		}
	}
	return nil
}

func (v *Validator) checkObject(root, s *domain.Schema, val domain.Value, depth int) error {
	if val.Kind() != domain.KindObject {
		return nil
	}
	keys := val.Keys()
	if s.MaxProperties != nil && len(keys) > *s.MaxProperties {
		return errors.New(msgMaxProperties(*s.MaxProperties))
	}
	if s.MinProperties != nil && len(keys) < *s.MinProperties {
		return errors.New(msgMinProperties(*s.MinProperties))
	}
	if missing := missingKeys(val, s.Required); len(missing) > 0 {
		return errors.New(msgRequired(missing))
	}
	for _, key := range keys {
		child, _ := val.Field(key)
		for _, node := range propertySchemas(s, key) {
			if err := v.validate(root, node, child, depth+1); err != nil {
				return errors.New(msgProperty(key, err))
			}
		}
	}
	if s.PropertyNames != nil {
		for _, key := range keys {
			if err := v.validate(root, s.PropertyNames, domain.String(key), depth+1); err != nil {
				return errors.New(msgPropertyNames(key, err))
			}
		}
	}
	for _, dep := range s.Dependencies {
		if _, present := val.Field(dep.Key); !present {
			continue
		}
		if dep.Schema != nil {
			if err := v.validate(root, dep.Schema, val, depth+1); err != nil {
				return err
			}
			continue
		}
		if missing := missingKeys(val, dep.Props); len(missing) > 0 {
			return errors.New(msgRequired(missing))
		}
	}
	return nil
}

// propertySchemas collects every schema that applies to the named property:
// the direct property schema, pattern properties whose pattern matches the
// name as a substring, and additionalProperties when nothing else matched.
func propertySchemas(s *domain.Schema, key string) []*domain.Schema {
	var nodes []*domain.Schema
	if prop, ok := s.Properties.Get(key); ok {
		nodes = append(nodes, prop)
	}
	for _, pattern := range s.PatternProperties.Keys() {
		re, err := regexp.Compile(pattern)
		if err != nil || !re.MatchString(key) {
			continue
		}
		prop, _ := s.PatternProperties.Get(pattern)
		nodes = append(nodes, prop)
	}
	if len(nodes) == 0 && s.AdditionalProperties != nil {
		nodes = append(nodes, s.AdditionalProperties)
	}
	return nodes
}

func missingKeys(val domain.Value, required []string) []string {
	var missing []string
	for _, name := range required {
		if _, ok := val.Field(name); !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

func (v *Validator) checkCombinators(root, s *domain.Schema, val domain.Value, depth int) error {
	for _, branch := range s.AllOf {
		if err := v.validate(root, branch, val, depth+1); err != nil {
			return err
		}
	}
	if len(s.AnyOf) > 0 {
		matched := false
		for _, branch := range s.AnyOf {
			if v.validate(root, branch, val, depth+1) == nil {
				matched = true
				break
			}
		}
		if !matched {
			return errors.New(msgAnyOf)
		}
	}
	if len(s.OneOf) > 0 {
		matches := 0
		for _, branch := range s.OneOf {
			if v.validate(root, branch, val, depth+1) == nil {
				matches++
			}
		}
		switch {
		case matches == 0:
			return errors.New(msgOneOfNone)
		case matches > 1:
			return errors.New(msgOneOfMany(matches))
		}
	}
	return nil
}
