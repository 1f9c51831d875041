package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// EncodeValue renders a Value as compact JSON, keeping object member order.
func EncodeValue(v Value) string {
	var b strings.Builder
	encodeValue(&b, v)
	return b.String()
}

func encodeValue(b *strings.Builder, v Value) {
	switch v.kind {
	case KindNull:
		b.WriteString("null")
	case KindBool:
		if v.b {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case KindFloat:
		b.WriteString(FormatNumber(v.num))
	case KindString:
		encodeString(b, v.str)
	case KindArray:
		b.WriteByte('[')
		for i, item := range v.arr {
			if i > 0 {
				b.WriteByte(',')
			}
			encodeValue(b, item)
		}
		b.WriteByte(']')
	case KindObject:
		b.WriteByte('{')
		for i, key := range v.keys {
			if i > 0 {
				b.WriteByte(',')
			}
			encodeString(b, key)
			b.WriteByte(':')
			encodeValue(b, v.obj[key])
		}
		b.WriteByte('}')
	}
}

func encodeString(b *strings.Builder, s string) {
	quoted, err := json.Marshal(s)
	if err != nil {
		b.WriteString(strconv.Quote(s))
		return
	}
	b.Write(quoted)
}

// FormatNumber renders a float the way JSON encoders do: integral values
// print without a fractional part, non-finite values fall back to null.
func FormatNumber(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}
	if math.Abs(f) < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
