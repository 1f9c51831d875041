// Package resolver resolves $ref strings and pointer paths against a root
// schema. Resolution is best effort: an unsupported or unresolvable
// reference yields nil (or a blank schema from FindProperty), never a fatal
// error, so validation and manipulation walks can always proceed.
package resolver

import (
	"strings"

	"github.com/goliatone/go-schema/internal/domain"
)

// DefaultMaxDepth bounds recursive reference chasing. Definitions that
// reference each other in a cycle exhaust the bound and resolve to nil
// instead of overflowing the stack.
const DefaultMaxDepth = 64

const definitionsPrefix = "#/definitions/"

// Resolver resolves references within a single root schema.
type Resolver struct {
	// MaxDepth caps recursive resolution. Zero means DefaultMaxDepth.
	MaxDepth int
}

// New returns a resolver with the default depth bound.
func New() *Resolver { return &Resolver{MaxDepth: DefaultMaxDepth} }

func (r *Resolver) max() int {
	if r == nil || r.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return r.MaxDepth
}

// Reference resolves a $ref string against root. Supported forms are "#"
// (the root itself) and "#/definitions/<name>". A definition carrying its
// own $ref is followed. Any other form returns nil.
func (r *Resolver) Reference(root *domain.Schema, ref string) *domain.Schema {
	return r.reference(root, ref, 0)
}

func (r *Resolver) reference(root *domain.Schema, ref string, depth int) *domain.Schema {
	if depth >= r.max() {
		return nil
	}
	if ref == "#" {
		return root
	}
	if !strings.HasPrefix(ref, definitionsPrefix) {
		return nil
	}
	name := unescape(ref[len(definitionsPrefix):])
	if name == "" || strings.Contains(name, "/") {
		return nil
	}
	if root == nil {
		return nil
	}
	def, ok := root.Definitions.Get(name)
	if !ok || def == nil {
		return nil
	}
	if def.Ref != "" {
		return r.reference(root, def.Ref, depth+1)
	}
	return def
}

// Deref substitutes the resolved target when s carries a $ref, and returns
// s unchanged otherwise. An unresolvable reference yields nil.
func (r *Resolver) Deref(root, s *domain.Schema) *domain.Schema {
	if s == nil || s.Ref == "" {
		return s
	}
	return r.Reference(root, s.Ref)
}

// FindProperty descends one level into s looking for the schema governing
// the named property: direct properties first, then additionalProperties,
// then each anyOf branch. When nothing matches it returns a blank permissive
// schema so callers can keep walking unknown territory.
func (r *Resolver) FindProperty(name string, root, s *domain.Schema) *domain.Schema {
	s = r.Deref(root, s)
	if s == nil {
		return domain.Blank()
	}
	if _, ok := s.IsBoolean(); ok {
		return domain.Blank()
	}
	if prop, ok := s.Properties.Get(name); ok {
		return prop
	}
	if s.AdditionalProperties != nil {
		return s.AdditionalProperties
	}
	for _, branch := range s.AnyOf {
		branch = r.Deref(root, branch)
		if branch == nil {
			continue
		}
		if prop, ok := branch.Properties.Get(name); ok {
			return prop
		}
	}
	return domain.Blank()
}

// ItemSchema returns the schema governing the array element at idx:
// the single items schema, the positional entry, or additionalItems for
// overflow. A blank schema is returned when nothing is declared.
func (r *Resolver) ItemSchema(root, s *domain.Schema, idx int) *domain.Schema {
	s = r.Deref(root, s)
	if s == nil {
		return domain.Blank()
	}
	if single, ok := s.Items.Single(); ok {
		return single
	}
	if list, ok := s.Items.List(); ok {
		if idx >= 0 && idx < len(list) {
			return list[idx]
		}
		if s.AdditionalItems != nil {
			return s.AdditionalItems
		}
	}
	return domain.Blank()
}

// ForPointer resolves the schema node addressed by a "#/a/b/0" pointer,
// folding FindProperty and Deref across the segments. Numeric segments
// descend through items schemas. It returns nil when a segment lands on a
// boolean schema or an unresolvable reference, and an error only for a
// malformed pointer.
func (r *Resolver) ForPointer(root *domain.Schema, pointer string) (*domain.Schema, error) {
	segs, err := domain.ParsePointer(pointer)
	if err != nil {
		return nil, err
	}
	cur := r.Deref(root, root)
	for _, seg := range segs {
		if cur == nil {
			return nil, nil
		}
		if _, ok := cur.IsBoolean(); ok {
			return nil, nil
		}
		if idx, numeric := domain.ParseIndex(seg); numeric && !cur.Items.IsNone() {
			cur = r.Deref(root, r.ItemSchema(root, cur, idx))
			continue
		}
		cur = r.Deref(root, r.FindProperty(seg, root, cur))
	}
	return cur, nil
}

func unescape(seg string) string {
	seg = strings.ReplaceAll(seg, "~1", "/")
	return strings.ReplaceAll(seg, "~0", "~")
}
