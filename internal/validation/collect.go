package validation

import (
	"strconv"

	"github.com/goliatone/go-schema/internal/domain"
)

// Collect walks val against the schema and returns one message per violated
// constraint, keyed by the pointer of the offending location. Form renderers
// use the map to annotate individual fields; messages are not path-prefixed
// since the key already carries the location.
func (v *Validator) Collect(root *domain.Schema, val domain.Value) map[string]string {
	out := map[string]string{}
	v.collect(root, root, val, nil, out, 0)
	return out
}

func (v *Validator) collect(root, s *domain.Schema, val domain.Value, segs []string, out map[string]string, depth int) {
	ptr := domain.FormatPointer(segs)
	if depth >= v.max() {
		out[ptr] = msgTooDeep
		return
	}
	if s == nil {
		return
	}
	if b, ok := s.IsBoolean(); ok {
		if !b {
			out[ptr] = msgFalseSchema
		}
		return
	}
	if s.Ref != "" {
		if target := v.res.Reference(root, s.Ref); target != nil {
			v.collect(root, target, val, segs, out, depth+1)
		}
		return
	}

	// Scalar-level constraints report at this node and stop, matching the
	// short-circuit behavior of single-message validation.
	if err := firstLocal(s, val); err != nil {
		out[ptr] = err.Error()
		return
	}

	if val.Kind() == domain.KindArray {
		if err := v.localArray(root, s, val, depth); err != nil {
			out[ptr] = err.Error()
			return
		}
		for i, item := range val.Items() {
			node := itemNode(s, i)
			if node == nil {
				continue
			}
			v.collect(root, node, item, append(segs, indexSegment(i)), out, depth+1)
		}
	}

	if val.Kind() == domain.KindObject {
		if err := v.localObject(root, s, val, depth); err != nil {
			out[ptr] = err.Error()
			return
		}
		for _, key := range val.Keys() {
			child, _ := val.Field(key)
			for _, node := range propertySchemas(s, key) {
				v.collect(root, node, child, append(segs, key), out, depth+1)
			}
			if s.PropertyNames != nil {
				if err := v.validate(root, s.PropertyNames, domain.String(key), depth+1); err != nil {
					out[domain.FormatPointer(append(segs, key))] = err.Error()
				}
			}
		}
	}

	if err := v.checkCombinators(root, s, val, depth); err != nil {
		out[ptr] = err.Error()
	}
}

// firstLocal runs the constraint checks that apply to the node itself,
// without descending into children.
func firstLocal(s *domain.Schema, val domain.Value) error {
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
	return checkString(s, val)
}

// localArray applies array cardinality and membership checks without
// recursing into elements.
func (v *Validator) localArray(root, s *domain.Schema, val domain.Value, depth int) error {
	stripped := *s
	stripped.Items = domain.NoItems()
	stripped.AdditionalItems = nil
	return v.checkArray(root, &stripped, val, depth)
}

// localObject applies object cardinality, required and dependency checks
// without recursing into properties.
func (v *Validator) localObject(root, s *domain.Schema, val domain.Value, depth int) error {
	stripped := *s
	stripped.Properties = nil
	stripped.PatternProperties = nil
	stripped.AdditionalProperties = nil
	stripped.PropertyNames = nil
	return v.checkObject(root, &stripped, val, depth)
}

func itemNode(s *domain.Schema, idx int) *domain.Schema {
	if single, ok := s.Items.Single(); ok {
		return single
	}
	if list, ok := s.Items.List(); ok {
		if idx < len(list) {
			return list[idx]
		}
		return s.AdditionalItems
	}
	return nil
}

func indexSegment(i int) string {
	return strconv.Itoa(i)
}
