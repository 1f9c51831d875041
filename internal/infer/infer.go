// Package infer determines a concrete type for schema nodes whose declared
// type is ambiguous: untyped nodes carrying composition branch lists, and
// the boolean/object union produced by boolean-form additionalProperties.
package infer

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-schema/internal/domain"
	"github.com/goliatone/go-schema/internal/resolver"
	"github.com/goliatone/go-schema/internal/validation"
)

// DefaultMaxDepth bounds inference recursion through references and branch
// lists.
const DefaultMaxDepth = 64

// ErrCannotImply marks a node whose concrete type cannot be determined.
var ErrCannotImply = errors.New("infer: cannot imply type")

// Inferencer resolves ambiguous schema types, optionally using the actual
// value at the location as a tie-breaker.
type Inferencer struct {
	// MaxDepth caps recursion. Zero means DefaultMaxDepth.
	MaxDepth int

	res *resolver.Resolver
	val *validation.Validator
}

// New returns an inferencer with its own resolver and validator.
func New() *Inferencer {
	res := resolver.New()
	return NewWith(res, validation.NewWith(res))
}

// NewWith returns an inferencer sharing the given resolver and validator.
func NewWith(res *resolver.Resolver, val *validation.Validator) *Inferencer {
	if res == nil {
		res = resolver.New()
	}
	if val == nil {
		val = validation.NewWith(res)
	}
	return &Inferencer{MaxDepth: DefaultMaxDepth, res: res, val: val}
}

func (in *Inferencer) max() int {
	if in == nil || in.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return in.MaxDepth
}

// ImplyType determines the concrete type and governing schema for the
// location addressed by pointer. The value at that location is used as a
// tie-breaker when present; its absence is not an error. On failure the
// result degrades to AnyType plus a blank schema alongside the error so
// callers can still render something.
func (in *Inferencer) ImplyType(root *domain.Schema, doc domain.Value, pointer string) (domain.Type, *domain.Schema, error) {
	segs, err := domain.ParsePointer(pointer)
	if err != nil {
		return domain.AnyType(), domain.Blank(), err
	}

	var actual *domain.Value
	if at, ok := doc.At(segs); ok {
		actual = &at
	}

	node, err := in.res.ForPointer(root, pointer)
	if err != nil {
		return domain.AnyType(), domain.Blank(), err
	}

	t, s, err := in.calc(actual, root, node, 0)
	if err != nil {
		return domain.AnyType(), domain.Blank(), fmt.Errorf("%w at %s", err, pointer)
	}
	return t, s, nil
}

// CalcSubSchemaType resolves the concrete type of a single node. The actual
// value is optional.
func (in *Inferencer) CalcSubSchemaType(actual *domain.Value, root, node *domain.Schema) (domain.Type, *domain.Schema, error) {
	return in.calc(actual, root, node, 0)
}

func (in *Inferencer) calc(actual *domain.Value, root, node *domain.Schema, depth int) (domain.Type, *domain.Schema, error) {
	if depth >= in.max() {
		return domain.AnyType(), domain.Blank(), fmt.Errorf("%w: resolution too deep", ErrCannotImply)
	}
	if node == nil {
		return domain.AnyType(), domain.Blank(), nil
	}
	if b, ok := node.IsBoolean(); ok {
		if b {
			return domain.AnyType(), domain.Blank(), nil
		}
		return domain.AnyType(), domain.Blank(), fmt.Errorf("%w: schema rejects every value", ErrCannotImply)
	}
	if node.Ref != "" {
		target := in.res.Reference(root, node.Ref)
		if target == nil {
			return domain.AnyType(), domain.Blank(), fmt.Errorf("%w: unresolvable reference %q", ErrCannotImply, node.Ref)
		}
		return in.calc(actual, root, target, depth+1)
	}

	if members, ok := node.Type.Union(); ok {
		// "Schema or false": boolean-form additionalProperties produces a
		// bool/object union that behaves as an object.
		if isBoolObjectUnion(members) {
			return domain.SingleType(domain.KindObject), node, nil
		}
		return node.Type, node, nil
	}

	if node.Type.IsAny() {
		return in.tryAllSchemas(actual, root, node, depth)
	}

	return node.Type, node, nil
}

// tryAllSchemas trial-evaluates every composition branch in order. A branch
// is accepted when the actual value validates against it, or, with no value
// available, when it is the first branch that structurally resolves. The
// fallback tiers mirror what the node itself declares.
func (in *Inferencer) tryAllSchemas(actual *domain.Value, root, node *domain.Schema, depth int) (domain.Type, *domain.Schema, error) {
	branches := make([]*domain.Schema, 0, len(node.AnyOf)+len(node.AllOf)+len(node.OneOf))
	branches = append(branches, node.AnyOf...)
	branches = append(branches, node.AllOf...)
	branches = append(branches, node.OneOf...)

	for _, branch := range branches {
		resolved := in.res.Deref(root, branch)
		if resolved == nil {
			continue
		}
		if _, ok := resolved.IsBoolean(); ok {
			continue
		}
		if actual != nil {
			if in.val.ValidateWith(root, branch, *actual) != nil {
				continue
			}
		}
		return in.calc(actual, root, resolved, depth+1)
	}

	if node.Properties.Len() > 0 || node.AdditionalProperties != nil {
		return domain.SingleType(domain.KindObject), node, nil
	}
	if len(node.Enum) > 0 {
		return domain.SingleType(node.Enum[0].Kind()), node, nil
	}
	if node.IsBlank() {
		return domain.AnyType(), node, nil
	}
	return domain.AnyType(), domain.Blank(), ErrCannotImply
}

func isBoolObjectUnion(members []domain.Kind) bool {
	if len(members) != 2 {
		return false
	}
	return (members[0] == domain.KindBool && members[1] == domain.KindObject) ||
		(members[0] == domain.KindObject && members[1] == domain.KindBool)
}
