package domain

import (
	"errors"
	"strings"
)

// ErrInvalidPointer marks a pointer string that does not follow the
// "#/seg1/seg2" form.
var ErrInvalidPointer = errors.New("schema: invalid pointer")

// ParsePointer splits a "#/a/b/0" pointer into its segments. "#" and the
// empty string address the root and yield no segments. Segments are
// unescaped per RFC 6901 (~1 -> /, ~0 -> ~).
func ParsePointer(pointer string) ([]string, error) {
	if pointer == "" || pointer == "#" {
		return nil, nil
	}
	if !strings.HasPrefix(pointer, "#/") {
		return nil, ErrInvalidPointer
	}
	parts := strings.Split(pointer[2:], "/")
	for i, part := range parts {
		if part == "" {
			return nil, ErrInvalidPointer
		}
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		parts[i] = part
	}
	return parts, nil
}

// FormatPointer renders segments back into a "#/a/b/0" pointer.
func FormatPointer(segs []string) string {
	if len(segs) == 0 {
		return "#"
	}
	var b strings.Builder
	b.WriteByte('#')
	for _, seg := range segs {
		seg = strings.ReplaceAll(seg, "~", "~0")
		seg = strings.ReplaceAll(seg, "/", "~1")
		b.WriteByte('/')
		b.WriteString(seg)
	}
	return b.String()
}

// ParseIndex interprets a pointer segment as an array index: base-10 digits
// with no leading zeros.
func ParseIndex(seg string) (int, bool) {
	if seg == "" {
		return 0, false
	}
	if len(seg) > 1 && seg[0] == '0' {
		return 0, false
	}
	n := 0
	for i := 0; i < len(seg); i++ {
		c := seg[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
		if n < 0 {
			return 0, false
		}
	}
	return n, true
}
