// Package accessor reads and writes values addressed by "#/a/b/0" paths.
// Reads never fail: absent or type-mismatched locations yield zero values.
// Writes return a new root value, creating intermediate containers along the
// way; the schema decides whether a missing container becomes an object or
// an array and seeds newly appended array items with typed defaults.
package accessor

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/goliatone/go-schema/internal/domain"
	"github.com/goliatone/go-schema/internal/infer"
	"github.com/goliatone/go-schema/internal/resolver"
)

var (
	// ErrIndexOutOfBounds marks a write past the end of an array. Appending
	// at exactly the current length is the only supported growth; larger
	// gaps are rejected rather than silently padded.
	ErrIndexOutOfBounds = errors.New("accessor: array index out of bounds")
	// ErrInvalidSegment marks a path segment that cannot address the value
	// it points into, such as a non-numeric segment on an array.
	ErrInvalidSegment = errors.New("accessor: path segment does not address the value")
)

// Accessor performs schema-guided path reads and writes.
type Accessor struct {
	res *resolver.Resolver
	inf *infer.Inferencer
}

// New returns an accessor with its own resolver and inferencer.
func New() *Accessor {
	res := resolver.New()
	return NewWith(res, infer.NewWith(res, nil))
}

// NewWith returns an accessor sharing the given resolver and inferencer.
func NewWith(res *resolver.Resolver, inf *infer.Inferencer) *Accessor {
	if res == nil {
		res = resolver.New()
	}
	if inf == nil {
		inf = infer.NewWith(res, nil)
	}
	return &Accessor{res: res, inf: inf}
}

// Get returns the value at path. The second result reports whether the
// path resolved to an existing value.
func (a *Accessor) Get(root *domain.Schema, path string, doc domain.Value) (domain.Value, bool) {
	segs, err := domain.ParsePointer(path)
	if err != nil {
		return domain.Null(), false
	}
	return doc.At(segs)
}

// GetString returns the string at path, or "" when absent or mismatched.
func (a *Accessor) GetString(root *domain.Schema, path string, doc domain.Value) string {
	v, ok := a.Get(root, path, doc)
	if !ok || v.Kind() != domain.KindString {
		return ""
	}
	return v.Text()
}

// GetInt returns the number at path truncated to int, or 0.
func (a *Accessor) GetInt(root *domain.Schema, path string, doc domain.Value) int {
	v, ok := a.Get(root, path, doc)
	if !ok || v.Kind() != domain.KindFloat {
		return 0
	}
	return int(v.Float())
}

// GetBool returns the boolean at path, or false.
func (a *Accessor) GetBool(root *domain.Schema, path string, doc domain.Value) bool {
	v, ok := a.Get(root, path, doc)
	if !ok || v.Kind() != domain.KindBool {
		return false
	}
	return v.Bool()
}

// GetLength returns the element count of the array or object at path, the
// rune count of the string at path, or 0.
func (a *Accessor) GetLength(root *domain.Schema, path string, doc domain.Value) int {
	v, ok := a.Get(root, path, doc)
	if !ok {
		return 0
	}
	switch v.Kind() {
	case domain.KindArray, domain.KindObject:
		return v.Len()
	case domain.KindString:
		return utf8.RuneCountInString(v.Text())
	default:
		return 0
	}
}

// Set returns a new root document with the value at path replaced by
// newVal. Missing intermediate containers are created along the way.
func (a *Accessor) Set(root *domain.Schema, path string, newVal, doc domain.Value) (domain.Value, error) {
	segs, err := domain.ParsePointer(path)
	if err != nil {
		return doc, err
	}
	node := a.res.Deref(root, root)
	return a.set(root, node, doc, segs, newVal)
}

func (a *Accessor) set(root *domain.Schema, node *domain.Schema, cur domain.Value, segs []string, newVal domain.Value) (domain.Value, error) {
	if len(segs) == 0 {
		return newVal, nil
	}
	seg := segs[0]

	switch cur.Kind() {
	case domain.KindArray:
		idx, numeric := domain.ParseIndex(seg)
		if !numeric {
			return cur, fmt.Errorf("%w: %q into array", ErrInvalidSegment, seg)
		}
		itemNode := a.res.Deref(root, a.res.ItemSchema(root, node, idx))
		switch {
		case idx < cur.Len():
			elem, _ := cur.Index(idx)
			child, err := a.set(root, itemNode, elem, segs[1:], newVal)
			if err != nil {
				return cur, err
			}
			return cur.WithIndex(idx, child), nil
		case idx == cur.Len():
			seed := a.DefaultFor(root, itemNode)
			child, err := a.set(root, itemNode, seed, segs[1:], newVal)
			if err != nil {
				return cur, err
			}
			return cur.Append(child), nil
		default:
			return cur, fmt.Errorf("%w: index %d on array of length %d", ErrIndexOutOfBounds, idx, cur.Len())
		}

	case domain.KindObject:
		childNode := a.res.Deref(root, a.res.FindProperty(seg, root, node))
		child, exists := cur.Field(seg)
		if !exists {
			child = a.seedFor(root, childNode, segs[1:])
		}
		updated, err := a.set(root, childNode, child, segs[1:], newVal)
		if err != nil {
			return cur, err
		}
		return cur.WithField(seg, updated), nil

	default:
		// Null or scalar at an intermediate position: replace it with a
		// container of the shape the path and schema imply.
		container := a.seedFor(root, node, segs)
		return a.set(root, node, container, segs, newVal)
	}
}

// seedFor picks the container created for a missing location that the given
// remaining segments will descend into. A numeric next segment combined
// with an array-typed (or untyped) schema produces an array; everything
// else produces an object.
func (a *Accessor) seedFor(root, node *domain.Schema, segs []string) domain.Value {
	if len(segs) == 0 {
		return domain.Null()
	}
	if _, numeric := domain.ParseIndex(segs[0]); !numeric {
		return domain.Object()
	}
	t, _, err := a.inf.CalcSubSchemaType(nil, root, node)
	if err != nil {
		return domain.Array()
	}
	if k, ok := t.Single(); ok && k != domain.KindArray {
		return domain.Object()
	}
	if k, ok := t.Nullable(); ok && k != domain.KindArray {
		return domain.Object()
	}
	return domain.Array()
}

// DefaultFor produces the empty-but-typed seed value for a schema node:
// "" for strings, 0 for numbers, false for booleans, {} for objects,
// [] for arrays, and null when no concrete type can be inferred.
func (a *Accessor) DefaultFor(root, s *domain.Schema) domain.Value {
	if s != nil && s.Default != nil {
		return *s.Default
	}
	t, _, err := a.inf.CalcSubSchemaType(nil, root, s)
	if err != nil {
		return domain.Null()
	}
	k, ok := t.Single()
	if !ok {
		if k, ok = t.Nullable(); !ok {
			return domain.Null()
		}
	}
	switch k {
	case domain.KindString:
		return domain.String("")
	case domain.KindInteger, domain.KindFloat:
		return domain.Number(0)
	case domain.KindBool:
		return domain.Bool(false)
	case domain.KindObject:
		return domain.Object()
	case domain.KindArray:
		return domain.Array()
	default:
		return domain.Null()
	}
}
