package domain

import "testing"

func TestDecodeValuePreservesKeyOrder(t *testing.T) {
	doc, err := DecodeValueString(`{"zeta":1,"alpha":{"b":true,"a":null},"mid":[1,"x"]}`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	keys := doc.Keys()
	if len(keys) != 3 || keys[0] != "zeta" || keys[1] != "alpha" || keys[2] != "mid" {
		t.Fatalf("expected declaration order, got %v", keys)
	}

	nested, ok := doc.Field("alpha")
	if !ok {
		t.Fatalf("expected alpha field")
	}
	inner := nested.Keys()
	if inner[0] != "b" || inner[1] != "a" {
		t.Fatalf("expected nested order preserved, got %v", inner)
	}
}

func TestDecodeValueRejectsInvalidJSON(t *testing.T) {
	if _, err := DecodeValueString(`{"a":`); err == nil {
		t.Fatalf("expected error for truncated JSON")
	}
}

func TestEncodeValueRoundTrip(t *testing.T) {
	cases := []string{
		`null`,
		`true`,
		`42`,
		`-1.5`,
		`"hello"`,
		`[]`,
		`{}`,
		`[1,"two",null,{"a":false}]`,
		`{"b":1,"a":[true]}`,
	}
	for _, raw := range cases {
		v, err := DecodeValueString(raw)
		if err != nil {
			t.Fatalf("decode %s: %v", raw, err)
		}
		if got := EncodeValue(v); got != raw {
			t.Fatalf("round trip %s: got %s", raw, got)
		}
	}
}

func TestWithFieldReplacesInPlace(t *testing.T) {
	doc := Object().
		WithField("a", Number(1)).
		WithField("b", Number(2)).
		WithField("c", Number(3))

	updated := doc.WithField("b", String("two"))

	keys := updated.Keys()
	if keys[0] != "a" || keys[1] != "b" || keys[2] != "c" {
		t.Fatalf("expected key order preserved, got %v", keys)
	}
	b, _ := updated.Field("b")
	if b.Kind() != KindString || b.Text() != "two" {
		t.Fatalf("expected replaced value, got %s", b)
	}

	// The original is untouched.
	orig, _ := doc.Field("b")
	if orig.Kind() != KindFloat || orig.Float() != 2 {
		t.Fatalf("original mutated: %s", orig)
	}
}

func TestWithIndexAppendsAtLength(t *testing.T) {
	arr := Array(Number(1), Number(2))
	grown := arr.WithIndex(2, Number(3))
	if grown.Len() != 3 {
		t.Fatalf("expected 3 items, got %d", grown.Len())
	}
	if arr.Len() != 2 {
		t.Fatalf("original mutated")
	}
}

func TestAtDescendsMixedContainers(t *testing.T) {
	doc, err := DecodeValueString(`{"users":[{"name":"ada"},{"name":"bob"}]}`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	v, ok := doc.At([]string{"users", "1", "name"})
	if !ok || v.Text() != "bob" {
		t.Fatalf("expected bob, got %s ok=%v", v, ok)
	}
	if _, ok := doc.At([]string{"users", "5"}); ok {
		t.Fatalf("expected miss on out-of-range index")
	}
	if _, ok := doc.At([]string{"missing"}); ok {
		t.Fatalf("expected miss on absent key")
	}
}

func TestEqualComparesDeeply(t *testing.T) {
	a, _ := DecodeValueString(`{"a":[1,{"b":null}],"c":"x"}`)
	b, _ := DecodeValueString(`{"a":[1,{"b":null}],"c":"x"}`)
	if !Equal(a, b) {
		t.Fatalf("expected equal values")
	}

	c, _ := DecodeValueString(`{"a":[1,{"b":0}],"c":"x"}`)
	if Equal(a, c) {
		t.Fatalf("expected unequal values")
	}
}

func TestParsePointer(t *testing.T) {
	cases := []struct {
		in   string
		want []string
		err  bool
	}{
		{in: "#", want: nil},
		{in: "", want: nil},
		{in: "#/a/b", want: []string{"a", "b"}},
		{in: "#/a~1b/c~0d", want: []string{"a/b", "c~d"}},
		{in: "#//a", err: true},
		{in: "a/b", err: true},
	}
	for _, tc := range cases {
		got, err := ParsePointer(tc.in)
		if tc.err {
			if err == nil {
				t.Fatalf("ParsePointer(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParsePointer(%q): %v", tc.in, err)
		}
		if len(got) != len(tc.want) {
			t.Fatalf("ParsePointer(%q): got %v", tc.in, got)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("ParsePointer(%q): got %v want %v", tc.in, got, tc.want)
			}
		}
	}
}

func TestFormatPointerRoundTrip(t *testing.T) {
	segs := []string{"a/b", "c~d", "plain"}
	ptr := FormatPointer(segs)
	back, err := ParsePointer(ptr)
	if err != nil {
		t.Fatalf("parse %q: %v", ptr, err)
	}
	for i := range segs {
		if back[i] != segs[i] {
			t.Fatalf("round trip mismatch: %v vs %v", back, segs)
		}
	}
	if FormatPointer(nil) != "#" {
		t.Fatalf("expected # for empty pointer")
	}
}

func TestParseIndex(t *testing.T) {
	if n, ok := ParseIndex("0"); !ok || n != 0 {
		t.Fatalf("expected 0, got %d ok=%v", n, ok)
	}
	if n, ok := ParseIndex("12"); !ok || n != 12 {
		t.Fatalf("expected 12, got %d ok=%v", n, ok)
	}
	for _, bad := range []string{"", "01", "-1", "x", "1x"} {
		if _, ok := ParseIndex(bad); ok {
			t.Fatalf("expected %q to be rejected", bad)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1, "1"},
		{1.5, "1.5"},
		{-0.25, "-0.25"},
		{1e21, "1e+21"},
	}
	for _, tc := range cases {
		if got := FormatNumber(tc.in); got != tc.want {
			t.Fatalf("FormatNumber(%v): got %s want %s", tc.in, got, tc.want)
		}
	}
}
