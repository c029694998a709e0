package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
)

// Kind enumerates the shapes a decoded JSON value can take.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindComposite
)

// ErrNotObject is returned when a request body is valid JSON but not an object.
var ErrNotObject = errors.New("payload must be a JSON object")

// Value is one raw payload value. Numbers keep their literal text so integral checks
// never go through a lossy float conversion.
type Value struct {
	kind Kind
	b    bool
	num  json.Number
	str  string
}

// Null returns the JSON null value.
func Null() Value { return Value{kind: KindNull} }

// Bool wraps a JSON boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number wraps a JSON number literal.
func Number(lit string) Value { return Value{kind: KindNumber, num: json.Number(lit)} }

// String wraps a JSON string.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Composite stands for any array or object.
func Composite() Value { return Value{kind: KindComposite} }

// Kind reports the value shape.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is JSON null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Text returns the string payload and whether the value is a string.
func (v Value) Text() (string, bool) {
	return v.str, v.kind == KindString
}

// Literal returns the number literal and whether the value is a number.
func (v Value) Literal() (json.Number, bool) {
	return v.num, v.kind == KindNumber
}

func fromAny(raw interface{}) Value {
	switch t := raw.(type) {
	case nil:
		return Null()
	case bool:
		return Bool(t)
	case json.Number:
		return Number(t.String())
	case string:
		return String(t)
	default:
		return Composite()
	}
}

// Payload is a decoded JSON object keyed by field name.
type Payload map[string]Value

// DecodePayload reads exactly one JSON object from r.
func DecodePayload(r io.Reader) (Payload, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}
	if dec.More() {
		return nil, errors.New("decode payload: trailing data after object")
	}

	obj, ok := raw.(map[string]interface{})
	if !ok {
		return nil, ErrNotObject
	}

	payload := make(Payload, len(obj))
	for k, val := range obj {
		payload[k] = fromAny(val)
	}
	return payload, nil
}

// Keys returns the payload keys in lexical order.
func (p Payload) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
