package domain

import (
	"errors"

	"github.com/tidwall/gjson"
)

// ErrInvalidJSON marks input that cannot be decoded into a Value.
var ErrInvalidJSON = errors.New("schema: invalid JSON document")

// DecodeValue parses a JSON document into a Value tree. Object member order
// follows the document, so encoding the result reproduces the original
// member ordering.
func DecodeValue(data []byte) (Value, error) {
	if !gjson.ValidBytes(data) {
		return Null(), ErrInvalidJSON
	}
	return fromResult(gjson.ParseBytes(data)), nil
}

// DecodeValueString is DecodeValue over a string input.
func DecodeValueString(data string) (Value, error) {
	return DecodeValue([]byte(data))
}

func fromResult(r gjson.Result) Value {
	switch {
	case r.Type == gjson.Null:
		return Null()
	case r.Type == gjson.True:
		return Bool(true)
	case r.Type == gjson.False:
		return Bool(false)
	case r.Type == gjson.Number:
		return Number(r.Num)
	case r.Type == gjson.String:
		return String(r.Str)
	case r.IsArray():
		out := Array()
		r.ForEach(func(_, item gjson.Result) bool {
			out = out.Append(fromResult(item))
			return true
		})
		return out
	case r.IsObject():
		out := Object()
		r.ForEach(func(key, item gjson.Result) bool {
			out = out.WithField(key.Str, fromResult(item))
			return true
		})
		return out
	default:
		return Null()
	}
}
