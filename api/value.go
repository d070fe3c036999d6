package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Value is an untyped JSON value taken from a response. Every accessor checks
// the JSON type and fails with *TypeError instead of converting.
//
// Numbers are kept as json.Number: an integer is a literal without fraction or
// exponent, a float is a literal with one. 6 is not a float and 6.0 is not an
// integer.
type Value struct {
	path string
	raw  any
}

func newValue(path string, raw any) Value {
	return Value{path: path, raw: raw}
}

func decodeValue(path string, data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return Value{}, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return Value{}, fmt.Errorf("unexpected data after JSON value")
	}
	return newValue(path, raw), nil
}

// Path is the location of the value inside the response, e.g. "result.hex"
func (v Value) Path() string {
	return v.path
}

// Raw returns the decoded value (nil, bool, json.Number, string, []any or map[string]any)
func (v Value) Raw() any {
	return v.raw
}

// IsNull reports whether the value is JSON null or absent
func (v Value) IsNull() bool {
	return v.raw == nil
}

// AsObject returns the members of a JSON object
func (v Value) AsObject() (map[string]any, error) {
	obj, ok := v.raw.(map[string]any)
	if !ok {
		return nil, v.typeError("object")
	}
	return obj, nil
}

// Field returns member name of a JSON object. A missing member is returned as
// null, so the following accessor reports it.
func (v Value) Field(name string) (Value, error) {
	obj, err := v.AsObject()
	if err != nil {
		return Value{}, err
	}
	return newValue(v.path+"."+name, obj[name]), nil
}

// AsList returns the elements of a JSON array
func (v Value) AsList() ([]Value, error) {
	items, ok := v.raw.([]any)
	if !ok {
		return nil, v.typeError("list")
	}

	values := make([]Value, len(items))
	for i, item := range items {
		values[i] = newValue(fmt.Sprintf("%s[%d]", v.path, i), item)
	}
	return values, nil
}

// AsString returns a JSON string
func (v Value) AsString() (string, error) {
	s, ok := v.raw.(string)
	if !ok {
		return "", v.typeError("string")
	}
	return s, nil
}

// AsInt returns a JSON integer
func (v Value) AsInt() (int64, error) {
	n, ok := v.raw.(json.Number)
	if !ok || isFloatLiteral(n) {
		return 0, v.typeError("integer")
	}
	i, err := strconv.ParseInt(n.String(), 10, 64)
	if err != nil {
		return 0, v.typeError("64-bit integer")
	}
	return i, nil
}

// AsFloat returns a JSON number written with a fraction or exponent. Literals
// outside the float64 range are rejected.
func (v Value) AsFloat() (float64, error) {
	n, ok := v.raw.(json.Number)
	if !ok || !isFloatLiteral(n) {
		return 0, v.typeError("float")
	}
	f, err := strconv.ParseFloat(n.String(), 64)
	if err != nil {
		return 0, v.typeError("finite float")
	}
	return f, nil
}

// StringField is Field followed by AsString
func (v Value) StringField(name string) (string, error) {
	f, err := v.Field(name)
	if err != nil {
		return "", err
	}
	return f.AsString()
}

// IntField is Field followed by AsInt
func (v Value) IntField(name string) (int64, error) {
	f, err := v.Field(name)
	if err != nil {
		return 0, err
	}
	return f.AsInt()
}

// FloatField is Field followed by AsFloat
func (v Value) FloatField(name string) (float64, error) {
	f, err := v.Field(name)
	if err != nil {
		return 0, err
	}
	return f.AsFloat()
}

func (v Value) kind() string {
	switch n := v.raw.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case json.Number:
		if isFloatLiteral(n) {
			return "float"
		}
		return "integer"
	case string:
		return "string"
	case []any:
		return "list"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v.raw)
	}
}

func (v Value) typeError(want string) error {
	return &TypeError{Path: v.path, Want: want, Got: v.kind()}
}

func isFloatLiteral(n json.Number) bool {
	return strings.ContainsAny(n.String(), ".eE")
}
