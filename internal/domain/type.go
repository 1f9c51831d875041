package domain

import "strings"

type typeForm uint8

const (
	formAny typeForm = iota
	formSingle
	formNullable
	formUnion
)

// Type is the declared type of a schema node: a single primitive, a
// nullable primitive, a union of primitives, or "any" when the node does not
// constrain its type. The zero Type is AnyType.
type Type struct {
	form    typeForm
	kind    Kind
	members []Kind
}

// AnyType returns the unconstrained type.
func AnyType() Type { return Type{} }

// SingleType returns a type requiring exactly one primitive kind.
func SingleType(k Kind) Type { return Type{form: formSingle, kind: k} }

// NullableType returns a type accepting k or null.
func NullableType(k Kind) Type { return Type{form: formNullable, kind: k} }

// UnionType returns a type accepting any of the given kinds.
func UnionType(members ...Kind) Type {
	ms := make([]Kind, len(members))
	copy(ms, members)
	return Type{form: formUnion, members: ms}
}

// IsAny reports whether the type is unconstrained.
func (t Type) IsAny() bool { return t.form == formAny }

// Single returns the primitive kind of a single type.
func (t Type) Single() (Kind, bool) {
	if t.form != formSingle {
		return KindNull, false
	}
	return t.kind, true
}

// Nullable returns the primitive kind of a nullable type.
func (t Type) Nullable() (Kind, bool) {
	if t.form != formNullable {
		return KindNull, false
	}
	return t.kind, true
}

// Union returns the member kinds of a union type.
func (t Type) Union() ([]Kind, bool) {
	if t.form != formUnion {
		return nil, false
	}
	return t.members, true
}

// String renders the type for diagnostics.
func (t Type) String() string {
	switch t.form {
	case formSingle:
		return t.kind.String()
	case formNullable:
		return "Nullable " + t.kind.String()
	case formUnion:
		names := make([]string, len(t.members))
		for i, m := range t.members {
			names[i] = m.String()
		}
		return "Union of " + strings.Join(names, ", ")
	default:
		return "Any"
	}
}
