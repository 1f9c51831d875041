package domain

// Kind identifies the runtime type of a JSON value, or the primitive type
// named by a schema "type" keyword. KindInteger never appears on a decoded
// Value (numbers always report KindFloat); it only occurs as a schema type.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInteger
	KindFloat
	KindString
	KindArray
	KindObject
)

// String renders the kind label used in validation messages.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBool:
		return "Bool"
	case KindInteger:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindString:
		return "String"
	case KindArray:
		return "Array"
	case KindObject:
		return "Object"
	default:
		return "Unknown"
	}
}

// Value is an immutable JSON document node. Object members preserve insertion
// order so documents round-trip stably. Every mutating helper returns a new
// Value that shares unmodified substructure with the receiver; callers must
// never modify slices returned by accessors.
type Value struct {
	kind Kind
	b    bool
	num  float64
	str  string
	arr  []Value
	keys []string
	obj  map[string]Value
}

// Null returns the JSON null value. It is also the zero Value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a JSON boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number returns a JSON number value.
func Number(n float64) Value { return Value{kind: KindFloat, num: n} }

// String returns a JSON string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Array returns a JSON array holding the given items.
func Array(items ...Value) Value {
	arr := make([]Value, len(items))
	copy(arr, items)
	return Value{kind: KindArray, arr: arr}
}

// Object returns an empty JSON object. Members are added with WithField.
func Object() Value {
	return Value{kind: KindObject, keys: []string{}, obj: map[string]Value{}}
}

// Kind reports the runtime kind of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is JSON null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool returns the boolean payload. Valid only for KindBool values.
func (v Value) Bool() bool { return v.b }

// Float returns the numeric payload. Valid only for KindFloat values.
func (v Value) Float() float64 { return v.num }

// Text returns the string payload. Valid only for KindString values.
func (v Value) Text() string { return v.str }

// Items returns the elements of an array value.
func (v Value) Items() []Value { return v.arr }

// Keys returns object member names in insertion order.
func (v Value) Keys() []string { return v.keys }

// Len reports the number of array elements or object members.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.keys)
	default:
		return 0
	}
}

// Field looks up an object member by name.
func (v Value) Field(name string) (Value, bool) {
	if v.kind != KindObject {
		return Null(), false
	}
	child, ok := v.obj[name]
	return child, ok
}

// Index returns the array element at i.
func (v Value) Index(i int) (Value, bool) {
	if v.kind != KindArray || i < 0 || i >= len(v.arr) {
		return Null(), false
	}
	return v.arr[i], true
}

// WithField returns a new object value with name set to child. New members
// are appended, existing members keep their position. Calling WithField on a
// non-object receiver starts from an empty object.
func (v Value) WithField(name string, child Value) Value {
	if v.kind != KindObject {
		v = Object()
	}
	out := Value{kind: KindObject}
	out.obj = make(map[string]Value, len(v.obj)+1)
	for k, val := range v.obj {
		out.obj[k] = val
	}
	if _, exists := v.obj[name]; exists {
		out.keys = v.keys
	} else {
		out.keys = make([]string, 0, len(v.keys)+1)
		out.keys = append(out.keys, v.keys...)
		out.keys = append(out.keys, name)
	}
	out.obj[name] = child
	return out
}

// WithIndex returns a new array value with the element at i replaced, or
// appended when i equals the current length. Any other index is a programmer
// error; callers are expected to bounds-check first.
func (v Value) WithIndex(i int, child Value) Value {
	if v.kind != KindArray {
		v = Array()
	}
	if i < 0 || i > len(v.arr) {
		panic("domain: value index out of range")
	}
	out := make([]Value, len(v.arr), len(v.arr)+1)
	copy(out, v.arr)
	if i == len(out) {
		out = append(out, child)
	} else {
		out[i] = child
	}
	return Value{kind: KindArray, arr: out}
}

// Append returns a new array value with child added at the end.
func (v Value) Append(child Value) Value {
	return v.WithIndex(v.Len(), child)
}

// At descends through the value by the given pointer segments. Object
// segments are member names, array segments are base-10 indices.
func (v Value) At(segs []string) (Value, bool) {
	cur := v
	for _, seg := range segs {
		switch cur.kind {
		case KindObject:
			child, ok := cur.Field(seg)
			if !ok {
				return Null(), false
			}
			cur = child
		case KindArray:
			idx, ok := ParseIndex(seg)
			if !ok || idx >= len(cur.arr) {
				return Null(), false
			}
			cur = cur.arr[idx]
		default:
			return Null(), false
		}
	}
	return cur, true
}

// Equal reports deep structural equality between two values.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindFloat:
		return a.num == b.num
	case KindString:
		return a.str == b.str
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(a.keys) != len(b.keys) {
			return false
		}
		for _, k := range a.keys {
			bv, ok := b.obj[k]
			if !ok || !Equal(a.obj[k], bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders the value as compact JSON.
func (v Value) String() string { return EncodeValue(v) }
